// Package cli implements the procsim command line.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"procsim/internal/logging"
	"procsim/internal/sched"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	cfg    sched.Config
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the procsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "procsim",
		Short: "procsim — CPU scheduling simulator",
		Long:  "procsim builds FCFS, SJF and Round-Robin timelines for a process set, plays them back and reports turnaround, waiting and efficiency.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = sched.Load(flagConfig)
			if err != nil {
				return err
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if flagLogFormat != "" {
				cfg.LogFormat = flagLogFormat
			}
			logger = logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "procsim.yml", "YAML config file (defaults apply when missing)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newTimelineCmd(),
		newRunCmd(),
		newServeCmd(),
	)

	return root
}

// resolveAlgorithm returns the flag value when set, else the configured algorithm.
func resolveAlgorithm(flag string) (sched.Algorithm, error) {
	if flag == "" {
		flag = cfg.Algorithm
	}
	return sched.ParseAlgorithm(flag)
}

// resolveQuantum returns the flag value when it was given, else the configured quantum.
func resolveQuantum(cmd *cobra.Command, flag int) int {
	if cmd.Flags().Changed("quantum") {
		return flag
	}
	return cfg.Quantum
}
