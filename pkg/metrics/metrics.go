package metrics

import (
	"fmt"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/engine"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

// TaskMetrics holds the derived timing metrics for one task.
type TaskMetrics struct {
	TaskID   string  `json:"task_id"`
	Label    string  `json:"label"`
	Arrival  float64 `json:"arrival"`
	Burst    float64 `json:"burst"`
	Priority int     `json:"priority"`

	FirstStart float64 `json:"first_start"`
	Completion float64 `json:"completion"`
	Waiting    float64 `json:"waiting"`
	Turnaround float64 `json:"turnaround"`
	Response   float64 `json:"response"`
}

// Aggregate holds run-level metrics derived from the whole schedule.
type Aggregate struct {
	AverageWaiting    float64 `json:"average_waiting"`
	AverageTurnaround float64 `json:"average_turnaround"`
	AverageResponse   float64 `json:"average_response"`
	CPUUtilization    float64 `json:"cpu_utilization"`
	Throughput        float64 `json:"throughput"`
	TotalSpan         float64 `json:"total_span"`
	IdleTime          float64 `json:"idle_time"`
	TaskCount         int     `json:"task_count"`
}

// Report bundles per-task metrics (in input task order) with aggregates.
type Report struct {
	PerTask   []TaskMetrics `json:"per_task"`
	Aggregate Aggregate     `json:"aggregate"`
}

// Compute derives all metrics from a schedule. Every input task must appear
// in the schedule at least once; a missing task is reported as
// engine.ErrMalformedSchedule. Compute reads the schedule only, so calling
// it twice on the same inputs yields identical reports.
func Compute(sched engine.Schedule, tasks []task.Task) (*Report, error) {
	type window struct {
		firstStart float64
		completion float64
		seen       bool
	}
	windows := make(map[string]window, len(tasks))
	for _, iv := range sched {
		if iv.Idle() {
			continue
		}
		w, ok := windows[iv.TaskID]
		if !ok {
			w.firstStart = iv.Start
		}
		w.completion = iv.End
		w.seen = true
		windows[iv.TaskID] = w
	}

	report := &Report{PerTask: make([]TaskMetrics, 0, len(tasks))}
	var waitingSum, turnaroundSum, responseSum float64
	for _, t := range tasks {
		w, ok := windows[t.ID]
		if !ok || !w.seen {
			return nil, fmt.Errorf("%w: task %s has no execution interval", engine.ErrMalformedSchedule, t.ID)
		}

		turnaround := w.completion - t.Arrival
		m := TaskMetrics{
			TaskID:     t.ID,
			Label:      t.Label,
			Arrival:    t.Arrival,
			Burst:      t.Burst,
			Priority:   t.Priority,
			FirstStart: w.firstStart,
			Completion: w.completion,
			Waiting:    turnaround - t.Burst,
			Turnaround: turnaround,
			Response:   w.firstStart - t.Arrival,
		}
		report.PerTask = append(report.PerTask, m)

		waitingSum += m.Waiting
		turnaroundSum += m.Turnaround
		responseSum += m.Response
	}

	count := float64(len(report.PerTask))
	span := sched.Span()
	report.Aggregate = Aggregate{
		AverageWaiting:    waitingSum / count,
		AverageTurnaround: turnaroundSum / count,
		AverageResponse:   responseSum / count,
		TotalSpan:         span,
		IdleTime:          sched.IdleTime(),
		TaskCount:         len(report.PerTask),
	}
	if span > 0 {
		report.Aggregate.CPUUtilization = sched.BusyTime() / span
		report.Aggregate.Throughput = count / span
	}
	return report, nil
}

// MeanWaiting returns the mean waiting time across the report's tasks.
func (r *Report) MeanWaiting() float64 {
	return r.Aggregate.AverageWaiting
}
