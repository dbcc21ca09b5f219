package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesAndClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procsim.yml")
	require.NoError(t, os.WriteFile(path, []byte("tick_ms: 250\nquantum: -1\nalgorithm: rr\nlog_format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.TickMS)
	assert.Equal(t, 2, cfg.Quantum)
	assert.Equal(t, "rr", cfg.Algorithm)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_UnknownAlgorithmFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procsim.yml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: lottery\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fcfs", cfg.Algorithm)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "procsim.yml")
	require.NoError(t, os.WriteFile(path, []byte("tick_ms: [1, 2\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
