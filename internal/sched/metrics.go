package sched

// Metric is the per-process performance record of a finished timeline.
type Metric struct {
	Name       string  `json:"name"`
	Arrival    int     `json:"arrival"`
	Burst      int     `json:"burst"`
	Finish     int     `json:"finish"`     // first time unit after the last occupied slot
	Turnaround int     `json:"turnaround"` // Finish - Arrival
	Waiting    int     `json:"waiting"`    // Turnaround - Burst
	Efficiency float64 `json:"efficiency"` // Burst / Turnaround
	Scheduled  bool    `json:"scheduled"`  // false when the process never appears in the timeline
}

// ComputeMetrics derives one record per process, in the order of the process list.
func ComputeMetrics(tl Timeline, processes []Process) []Metric {
	lastSlot := make(map[string]int, len(processes))
	for i, s := range tl {
		if !s.IsIdle() {
			lastSlot[string(s)] = i
		}
	}

	metrics := make([]Metric, 0, len(processes))
	for _, p := range processes {
		m := Metric{Name: p.Name, Arrival: p.Arrival, Burst: p.Burst}
		if last, ok := lastSlot[p.Name]; ok {
			m.Scheduled = true
			m.Finish = last + 1
			m.Turnaround = m.Finish - p.Arrival
			m.Waiting = m.Turnaround - p.Burst
			if m.Turnaround != 0 {
				m.Efficiency = float64(p.Burst) / float64(m.Turnaround)
			}
		}
		metrics = append(metrics, m)
	}
	return metrics
}

// MostEfficient returns the scheduled record with the highest efficiency.
// Ties go to the record that comes first. ok is false when nothing was scheduled.
func MostEfficient(metrics []Metric) (best Metric, ok bool) {
	for _, m := range metrics {
		if !m.Scheduled {
			continue
		}
		if !ok || m.Efficiency > best.Efficiency {
			best, ok = m, true
		}
	}
	return best, ok
}

// Summary aggregates a finished run.
type Summary struct {
	TotalTime         int     `json:"total_time"`
	IdleTime          int     `json:"idle_time"`
	AverageTurnaround float64 `json:"average_turnaround"`
	AverageWaiting    float64 `json:"average_waiting"`
	CPUUtilization    float64 `json:"cpu_utilization"`
	Throughput        float64 `json:"throughput"` // processes per time unit
}

// Summarize computes averages over the scheduled records plus utilization and throughput.
func Summarize(tl Timeline, metrics []Metric) Summary {
	s := Summary{TotalTime: len(tl), IdleTime: tl.IdleSlots()}

	var turnaroundSum, waitingSum float64
	scheduled := 0
	for _, m := range metrics {
		if !m.Scheduled {
			continue
		}
		turnaroundSum += float64(m.Turnaround)
		waitingSum += float64(m.Waiting)
		scheduled++
	}
	if scheduled > 0 {
		s.AverageTurnaround = turnaroundSum / float64(scheduled)
		s.AverageWaiting = waitingSum / float64(scheduled)
	}
	if s.TotalTime > 0 {
		s.CPUUtilization = 1 - float64(s.IdleTime)/float64(s.TotalTime)
		s.Throughput = float64(scheduled) / float64(s.TotalTime)
	}
	return s
}
