// Package risk flags clinically risky delays in a computed schedule.
//
// The policy follows the documented clinical-alert rule: a critical
// monitoring task must not wait more than 2 seconds before it runs, and no
// task should wait disproportionately longer than its peers under the same
// algorithm (starvation).
package risk

import (
	"fmt"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/engine"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/metrics"
)

// Config carries the risk-assessment thresholds.
type Config struct {
	// Threshold is the maximum acceptable waiting time in simulation
	// seconds before a task is flagged.
	Threshold float64 `yaml:"risk_threshold_seconds" json:"risk_threshold_seconds"`

	// StarvationMultiplier flags a task as starved when its waiting time
	// exceeds this multiple of the run's mean waiting time.
	StarvationMultiplier float64 `yaml:"starvation_multiplier" json:"starvation_multiplier"`
}

// DefaultConfig returns the documented clinical-alert policy defaults.
func DefaultConfig() Config {
	return Config{Threshold: 2.0, StarvationMultiplier: 3.0}
}

// Validate checks that both thresholds are positive.
func (c Config) Validate() error {
	if c.Threshold <= 0 {
		return fmt.Errorf("%w: risk threshold must be greater than 0, got %v", engine.ErrInvalidInput, c.Threshold)
	}
	if c.StarvationMultiplier <= 0 {
		return fmt.Errorf("%w: starvation multiplier must be greater than 0, got %v", engine.ErrInvalidInput, c.StarvationMultiplier)
	}
	return nil
}

// Flag is the risk assessment for one task.
type Flag struct {
	TaskID   string  `json:"task_id"`
	Label    string  `json:"label"`
	Priority int     `json:"priority"`
	Waiting  float64 `json:"waiting"`

	// ExceedsThreshold is set when the task waited longer than the
	// configured clinical threshold.
	ExceedsThreshold bool `json:"exceeds_threshold"`

	// Starved is set when the task waited more than the configured
	// multiple of the run's mean waiting time.
	Starved bool `json:"starved"`

	// ComplianceNote is the fixed residual-risk note for the algorithm
	// that produced the schedule.
	ComplianceNote string `json:"compliance_note"`
}

// complianceNotes is the static per-algorithm residual-risk table.
var complianceNotes = map[engine.Algorithm]string{
	engine.FCFS:       "no priority inversion possible, but high-urgency tasks may wait arbitrarily long behind earlier arrivals (convoy effect)",
	engine.SJF:        "short tasks are favored; a long critical task can be repeatedly deferred by streams of short jobs",
	engine.Priority:   "urgent task can be delayed by an already-running low-priority task; document as residual risk",
	engine.RoundRobin: "delay is bounded by the quantum times the queue length; a large quantum still defers critical tasks by a full slice",
}

// ComplianceNote returns the fixed residual-risk note for an algorithm.
func ComplianceNote(alg engine.Algorithm) string {
	return complianceNotes[alg]
}

// Assess produces one flag per task from a metrics report. It is a pure
// function of its inputs: assessing the same report twice yields identical
// flags, and nothing in the report is mutated.
func Assess(report *metrics.Report, alg engine.Algorithm, cfg Config) ([]Flag, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mean := report.MeanWaiting()
	note := ComplianceNote(alg)

	flags := make([]Flag, 0, len(report.PerTask))
	for _, m := range report.PerTask {
		flags = append(flags, Flag{
			TaskID:           m.TaskID,
			Label:            m.Label,
			Priority:         m.Priority,
			Waiting:          m.Waiting,
			ExceedsThreshold: m.Waiting > cfg.Threshold,
			Starved:          mean > 0 && m.Waiting > cfg.StarvationMultiplier*mean,
			ComplianceNote:   note,
		})
	}
	return flags, nil
}

// CriticalSummary reports the worst waiting time among critical tasks
// (priority <= 2). HasCritical is false when the workload has no critical
// tasks, in which case the other fields are zero.
type CriticalSummary struct {
	HasCritical bool    `json:"has_critical"`
	TaskID      string  `json:"task_id"`
	Label       string  `json:"label"`
	MaxWaiting  float64 `json:"max_waiting"`
	Safe        bool    `json:"safe"`
}

// SummarizeCritical finds the critical task with the longest wait and
// compares it against the clinical threshold.
func SummarizeCritical(report *metrics.Report, cfg Config) CriticalSummary {
	var summary CriticalSummary
	for _, m := range report.PerTask {
		if m.Priority > 2 {
			continue
		}
		if !summary.HasCritical || m.Waiting > summary.MaxWaiting {
			summary = CriticalSummary{
				HasCritical: true,
				TaskID:      m.TaskID,
				Label:       m.Label,
				MaxWaiting:  m.Waiting,
			}
		}
	}
	if summary.HasCritical {
		summary.Safe = summary.MaxWaiting <= cfg.Threshold
	}
	return summary
}
