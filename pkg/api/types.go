package api

import (
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/engine"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/metrics"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/risk"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

// ScheduleRequest is the JSON body for schedule and compare endpoints.
// Zero-valued options fall back to the documented defaults (quantum 2,
// threshold 2.0, multiplier 3.0).
type ScheduleRequest struct {
	Tasks                []task.Task `json:"tasks"`
	Quantum              float64     `json:"quantum,omitempty"`
	RiskThresholdSeconds float64     `json:"risk_threshold_seconds,omitempty"`
	StarvationMultiplier float64     `json:"starvation_multiplier,omitempty"`
}

// ScheduleResponse carries one algorithm's full result: the schedule with
// explicit idle intervals, the derived metrics and the risk flags.
type ScheduleResponse struct {
	Algorithm       string               `json:"algorithm"`
	Schedule        []engine.Interval    `json:"schedule"`
	Metrics         *metrics.Report      `json:"metrics"`
	Risk            []risk.Flag          `json:"risk"`
	CriticalSummary risk.CriticalSummary `json:"critical_summary"`
}

// CompareResponse carries the results of all four algorithms over the same
// workload, in canonical algorithm order.
type CompareResponse struct {
	Results []ScheduleResponse `json:"results"`
}
