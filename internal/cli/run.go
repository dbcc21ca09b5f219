package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"procsim/internal/playback"
	"procsim/internal/report"
	"procsim/internal/workload"
)

func newRunCmd() *cobra.Command {
	var (
		file        string
		algorithm   string
		quantum     int
		tick        time.Duration
		eventsCSV   string
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play a timeline back one time unit per tick",
		Long: "run computes the timeline and advances through it one unit per tick, printing the occupant " +
			"of every slot (and the ready queue for Round-Robin). With --interactive, type pause, resume, " +
			"reset or status on stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			procs, err := workload.Load(file)
			if err != nil {
				return err
			}
			algo, err := resolveAlgorithm(algorithm)
			if err != nil {
				return err
			}
			q := resolveQuantum(cmd, quantum)

			interval := time.Duration(cfg.TickMS) * time.Millisecond
			if cmd.Flags().Changed("tick") {
				interval = tick
			}
			if interval <= 0 {
				return fmt.Errorf("tick must be positive, got %s", interval)
			}

			out := cmd.OutOrStdout()
			sinks := playback.Sinks{&consoleSink{w: out}}
			if eventsCSV != "" {
				csvLog, err := playback.OpenCSVLog(eventsCSV)
				if err != nil {
					return err
				}
				defer func() {
					if err := csvLog.Close(); err != nil {
						logger.Error("closing event log", "path", eventsCSV, "error", err)
					}
				}()
				sinks = append(sinks, csvLog)
			}

			ctrl := playback.New(logger, sinks)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := ctrl.Start(procs, algo, q, interval); err != nil {
				return err
			}
			if interactive {
				go readCommands(ctx, cmd.InOrStdin(), out, ctrl)
			}

			select {
			case <-ctrl.Done():
			case <-ctx.Done():
				ctrl.Reset()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Workload file (CSV name,arrival,burst or YAML)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm: fcfs, sjf, rr (default from config)")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round-Robin quantum (default from config)")
	cmd.Flags().DurationVar(&tick, "tick", 0, "Duration of one time unit (default from config tick_ms)")
	cmd.Flags().StringVar(&eventsCSV, "events-csv", "", "Write every playback event as CSV to this path")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Read pause/resume/reset/status commands from stdin")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// consoleSink prints playback events as they happen.
type consoleSink struct {
	w io.Writer
}

func (s *consoleSink) Emit(ev playback.Event) {
	switch ev.Kind {
	case playback.EventProgress:
		line := fmt.Sprintf("[%3d/%d] %-8s", ev.Cursor, ev.Length, ev.Occupant)
		if len(ev.Ready) > 0 {
			queued := make([]string, 0, len(ev.Ready))
			for _, q := range ev.Ready {
				queued = append(queued, fmt.Sprintf("%s(rem:%d)", q.Name, q.Remaining))
			}
			line += " ready: " + strings.Join(queued, " ")
		}
		fmt.Fprintln(s.w, line)
	case playback.EventFinished:
		fmt.Fprintln(s.w)
		report.Title(s.w, "Results")
		report.Gantt(s.w, ev.Timeline)
		report.MetricsTable(s.w, ev.Metrics, ev.Summary)
	case playback.EventStarted:
		fmt.Fprintf(s.w, "%s: %d time units\n", ev.Algorithm.Title(), ev.Length)
	default:
		fmt.Fprintf(s.w, "-- %s at t=%d\n", strings.ToLower(ev.Kind.String()), ev.Cursor)
	}
}

// readCommands drives the controller from line commands until ctx is done or input ends.
func readCommands(ctx context.Context, in io.Reader, out io.Writer, ctrl *playback.Controller) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		var err error
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "p", "pause":
			err = ctrl.Pause()
		case "r", "resume":
			err = ctrl.Resume()
		case "x", "reset":
			ctrl.Reset()
		case "s", "status":
			st := ctrl.Snapshot()
			fmt.Fprintf(out, "-- %s at t=%d/%d\n", st.Status, st.Cursor, len(st.Timeline))
		case "":
		default:
			fmt.Fprintln(out, "commands: pause, resume, reset, status")
		}
		if errors.Is(err, playback.ErrInvalidStateTransition) {
			logger.Warn("command ignored", "error", err)
		}
	}
}
