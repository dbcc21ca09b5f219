package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors procsim.yml
type Config struct {
	TickMS    int    `yaml:"tick_ms"`    // 1000 (by default)
	Quantum   int    `yaml:"quantum"`    // 2 (by default)
	Algorithm string `yaml:"algorithm"`  // fcfs (by default)
	LogLevel  string `yaml:"log_level"`  // info (by default)
	LogFormat string `yaml:"log_format"` // text (by default)
}

// DefaultConfig is used when no config file is found.
func DefaultConfig() Config {
	return Config{
		TickMS:    1000,
		Quantum:   2,
		Algorithm: FCFS.String(),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only.
// A missing file falls back to the defaults, a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	// sanity clamps
	if cfg.TickMS <= 0 {
		cfg.TickMS = 1000
	}
	if cfg.Quantum <= 0 {
		cfg.Quantum = 2
	}
	if _, err := ParseAlgorithm(cfg.Algorithm); err != nil {
		cfg.Algorithm = FCFS.String()
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	return cfg, nil
}
