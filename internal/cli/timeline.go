package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"procsim/internal/report"
	"procsim/internal/sched"
	"procsim/internal/workload"
)

func newTimelineCmd() *cobra.Command {
	var (
		file      string
		algorithm string
		quantum   int
		all       bool
		csvOut    string
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Compute a timeline and print its Gantt chart and metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && csvOut != "" {
				return fmt.Errorf("--csv needs a single algorithm")
			}
			procs, err := workload.Load(file)
			if err != nil {
				return err
			}
			q := resolveQuantum(cmd, quantum)

			algos := sched.Algorithms
			if !all {
				algo, err := resolveAlgorithm(algorithm)
				if err != nil {
					return err
				}
				algos = []sched.Algorithm{algo}
			}

			out := cmd.OutOrStdout()
			summaries := make(map[sched.Algorithm]sched.Summary, len(algos))
			var last sched.Timeline
			for _, algo := range algos {
				tl, err := sched.ComputeTimeline(procs, algo, q)
				if err != nil {
					return fmt.Errorf("%s: %w", algo, err)
				}
				metrics := sched.ComputeMetrics(tl, procs)
				summary := sched.Summarize(tl, metrics)
				summaries[algo] = summary
				last = tl

				title := algo.Title()
				if algo == sched.RoundRobin {
					title = fmt.Sprintf("%s (quantum=%d)", title, q)
				}
				report.Title(out, title)
				report.Gantt(out, tl)
				report.MetricsTable(out, metrics, summary)
				fmt.Fprintln(out)
				logger.Debug("timeline computed", "algorithm", algo, "length", len(tl))
			}
			if all {
				report.Comparison(out, summaries)
			}

			if csvOut != "" {
				f, err := os.Create(csvOut)
				if err != nil {
					return err
				}
				if err := report.WriteTimelineCSV(f, last); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				logger.Info("timeline written", "path", csvOut, "length", len(last))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Workload file (CSV name,arrival,burst or YAML)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm: fcfs, sjf, rr (default from config)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round-Robin quantum (default from config)")
	cmd.Flags().BoolVar(&all, "all", false, "Run every algorithm and compare")
	cmd.Flags().StringVar(&csvOut, "csv", "", "Write the timeline as CSV to this path")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
