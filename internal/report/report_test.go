package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsim/internal/sched"
)

func TestSegments(t *testing.T) {
	tl := sched.Timeline{sched.Idle, "P1", "P1", "P2", "P1"}

	segs := Segments(tl)
	require.Len(t, segs, 4)
	assert.Equal(t, Segment{Slot: sched.Idle, Name: "idle", Start: 0, Stop: 1}, segs[0])
	assert.Equal(t, Segment{Slot: "P1", Name: "P1", Start: 1, Stop: 3}, segs[1])
	assert.Equal(t, Segment{Slot: "P2", Name: "P2", Start: 3, Stop: 4}, segs[2])
	assert.Equal(t, Segment{Slot: "P1", Name: "P1", Start: 4, Stop: 5}, segs[3])

	assert.Empty(t, Segments(nil))
}

func TestGantt(t *testing.T) {
	var buf bytes.Buffer
	Gantt(&buf, sched.Timeline{"P1", "P1", "P1", "P2", "P2"})
	assert.Equal(t, "| P1 | P2 |\n0    3    5\n", buf.String())

	buf.Reset()
	Gantt(&buf, sched.Timeline{sched.Idle, "A", "A"})
	assert.Equal(t, "| idle | A |\n0      1   3\n", buf.String())

	buf.Reset()
	Gantt(&buf, nil)
	assert.Equal(t, "(empty timeline)\n", buf.String())
}

func TestMetricsTable(t *testing.T) {
	procs := []sched.Process{
		{Name: "P1", Arrival: 0, Burst: 3},
		{Name: "P2", Arrival: 1, Burst: 2},
	}
	tl := sched.Timeline{"P1", "P1", "P1", "P2", "P2"}
	metrics := sched.ComputeMetrics(tl, procs)

	var buf bytes.Buffer
	MetricsTable(&buf, metrics, sched.Summarize(tl, metrics))
	out := buf.String()

	assert.Contains(t, out, "P1")
	assert.Contains(t, out, "P2")
	assert.Contains(t, out, "1.000")
	assert.Contains(t, out, "0.500")
	assert.Contains(t, out, "3.50")
	assert.Contains(t, out, "Most efficient process: P1 (efficiency=1.000)")
	assert.Contains(t, out, "CPU utilization: 100.0% (0 idle of 5 units)")
}

func TestComparison(t *testing.T) {
	var buf bytes.Buffer
	Comparison(&buf, map[sched.Algorithm]sched.Summary{
		sched.FCFS:       {TotalTime: 5, AverageWaiting: 1},
		sched.RoundRobin: {TotalTime: 6, AverageWaiting: 1.5},
	})
	out := buf.String()

	assert.Contains(t, out, "First-come, first-served")
	assert.Contains(t, out, "Round-robin")
	assert.NotContains(t, out, "Shortest-job-first")
	assert.Less(t, strings.Index(out, "First-come"), strings.Index(out, "Round-robin"))
}

func TestWriteTimelineCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTimelineCSV(&buf, sched.Timeline{"P1", sched.Idle}))
	assert.Equal(t, "time,occupant\n0,P1\n1,idle\n", buf.String())
}
