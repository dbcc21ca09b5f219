// Package report renders timelines and metrics for terminals and files.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"procsim/internal/sched"
)

// Segment is a run of consecutive slots with the same occupant.
type Segment struct {
	Slot  sched.Slot `json:"-"`
	Name  string     `json:"name"`
	Start int        `json:"start"`
	Stop  int        `json:"stop"`
}

// Segments collapses the timeline into contiguous runs.
func Segments(tl sched.Timeline) []Segment {
	var segs []Segment
	for i, s := range tl {
		if n := len(segs); n > 0 && segs[n-1].Slot == s {
			segs[n-1].Stop = i + 1
			continue
		}
		segs = append(segs, Segment{Slot: s, Name: s.String(), Start: i, Stop: i + 1})
	}
	return segs
}

// Title writes a framed heading.
func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

// Gantt writes a one-line chart with the time boundaries underneath.
//
//	| P1 | P2 |
//	0    3    5
func Gantt(w io.Writer, tl sched.Timeline) {
	segs := Segments(tl)
	if len(segs) == 0 {
		_, _ = fmt.Fprintln(w, "(empty timeline)")
		return
	}

	var bar, axis strings.Builder
	bar.WriteString("|")
	axis.WriteString("0")
	col := 0
	for _, seg := range segs {
		label := " " + seg.Name + " "
		bar.WriteString(label + "|")
		col += len(label) + 1

		stop := strconv.Itoa(seg.Stop)
		pad := col - axis.Len()
		if pad < 1 {
			pad = 1
		}
		axis.WriteString(strings.Repeat(" ", pad) + stop)
	}
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, axis.String())
}

// MetricsTable writes the per-process records with averages in the footer and the most
// efficient process underneath.
func MetricsTable(w io.Writer, metrics []sched.Metric, summary sched.Summary) {
	rows := make([][]string, 0, len(metrics))
	for _, m := range metrics {
		if !m.Scheduled {
			rows = append(rows, []string{m.Name, strconv.Itoa(m.Arrival), strconv.Itoa(m.Burst), "-", "-", "-", "0.000"})
			continue
		}
		rows = append(rows, []string{
			m.Name,
			strconv.Itoa(m.Arrival),
			strconv.Itoa(m.Burst),
			strconv.Itoa(m.Finish),
			strconv.Itoa(m.Turnaround),
			strconv.Itoa(m.Waiting),
			fmt.Sprintf("%.3f", m.Efficiency),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Finish", "Turnaround", "Waiting", "Efficiency"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", summary.AverageTurnaround),
		fmt.Sprintf("Average\n%.2f", summary.AverageWaiting),
		fmt.Sprintf("Throughput\n%.2f/t", summary.Throughput)})
	table.Render()

	if best, ok := sched.MostEfficient(metrics); ok {
		_, _ = fmt.Fprintf(w, "Most efficient process: %s (efficiency=%.3f)\n", best.Name, best.Efficiency)
	}
	_, _ = fmt.Fprintf(w, "CPU utilization: %.1f%% (%d idle of %d units)\n",
		summary.CPUUtilization*100, summary.IdleTime, summary.TotalTime)
}

// Comparison writes one row per algorithm with its summary figures.
func Comparison(w io.Writer, results map[sched.Algorithm]sched.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Length", "Idle", "Avg turnaround", "Avg waiting", "Throughput"})
	for _, algo := range sched.Algorithms {
		s, ok := results[algo]
		if !ok {
			continue
		}
		table.Append([]string{
			algo.Title(),
			strconv.Itoa(s.TotalTime),
			strconv.Itoa(s.IdleTime),
			fmt.Sprintf("%.2f", s.AverageTurnaround),
			fmt.Sprintf("%.2f", s.AverageWaiting),
			fmt.Sprintf("%.3f", s.Throughput),
		})
	}
	table.Render()
}

// WriteTimelineCSV writes one time,occupant record per slot.
func WriteTimelineCSV(w io.Writer, tl sched.Timeline) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "occupant"}); err != nil {
		return err
	}
	for i, s := range tl {
		if err := cw.Write([]string{strconv.Itoa(i), s.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
