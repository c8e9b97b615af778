package task

import (
	"fmt"

	"github.com/google/uuid"
)

// Task represents one schedulable monitoring unit, e.g. an ECG arrhythmia
// check or a blood-pressure trend analysis. All times are simulation seconds.
type Task struct {
	// ID uniquely identifies the task. Assigned at creation and never
	// changed afterwards.
	ID string `yaml:"id" json:"id"`

	// Label is the human-readable name shown in charts and tables.
	Label string `yaml:"label" json:"label"`

	// Arrival is when the task becomes ready. Must be >= 0.
	Arrival float64 `yaml:"arrival" json:"arrival"`

	// Burst is the total CPU time the task needs. Must be > 0.
	Burst float64 `yaml:"burst" json:"burst"`

	// Priority encodes clinical urgency: lower value = more urgent
	// (1 = cardiac arrest, 5 = routine). Must be >= 0.
	Priority int `yaml:"priority" json:"priority"`
}

// New creates a task with a generated ID.
func New(label string, arrival, burst float64, priority int) Task {
	return Task{
		ID:       uuid.NewString(),
		Label:    label,
		Arrival:  arrival,
		Burst:    burst,
		Priority: priority,
	}
}

// Validate checks the task invariants.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task %q: id is required", t.Label)
	}
	if t.Burst <= 0 {
		return fmt.Errorf("task %s: burst must be greater than 0, got %v", t.ID, t.Burst)
	}
	if t.Arrival < 0 {
		return fmt.Errorf("task %s: arrival must not be negative, got %v", t.ID, t.Arrival)
	}
	if t.Priority < 0 {
		return fmt.Errorf("task %s: priority must not be negative, got %d", t.ID, t.Priority)
	}
	return nil
}

// ValidateAll checks that the list is non-empty, that every task is valid
// and that IDs do not collide.
func ValidateAll(tasks []Task) error {
	if len(tasks) == 0 {
		return fmt.Errorf("at least one task must be defined")
	}
	seen := make(map[string]struct{}, len(tasks))
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %d: %w", i, err)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("task %d: duplicate id %s", i, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// CloneAll returns an independent copy of the task list. Every algorithm run
// works on its own copy so concurrent comparisons never share state.
func CloneAll(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}
