package engine

import (
	"fmt"
	"math"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

// timeEps absorbs float64 rounding when comparing simulation times.
const timeEps = 1e-9

// Interval is one contiguous run on the CPU. An empty TaskID marks an idle
// interval where no task was ready.
type Interval struct {
	TaskID string  `json:"task_id"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// Idle reports whether the interval represents CPU idle time.
func (iv Interval) Idle() bool { return iv.TaskID == "" }

// Duration returns the interval length.
func (iv Interval) Duration() float64 { return iv.End - iv.Start }

// Schedule is an ordered sequence of execution intervals covering
// [earliest arrival, last completion] with idle time represented explicitly.
type Schedule []Interval

// Start returns the schedule start time.
func (s Schedule) Start() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0].Start
}

// End returns the schedule end time.
func (s Schedule) End() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].End
}

// Span returns the total schedule duration, idle time included.
func (s Schedule) Span() float64 { return s.End() - s.Start() }

// BusyTime returns the sum of non-idle interval durations.
func (s Schedule) BusyTime() float64 {
	var busy float64
	for _, iv := range s {
		if !iv.Idle() {
			busy += iv.Duration()
		}
	}
	return busy
}

// IdleTime returns the sum of idle interval durations.
func (s Schedule) IdleTime() float64 { return s.Span() - s.BusyTime() }

// Validate checks the schedule against the given task list: intervals must
// be well-formed, ordered and contiguous, the schedule must begin at the
// earliest arrival, and every task must appear at least once. Any violation
// is reported as ErrMalformedSchedule.
func (s Schedule) Validate(tasks []task.Task) error {
	if len(s) == 0 {
		return fmt.Errorf("%w: schedule is empty", ErrMalformedSchedule)
	}

	earliest := math.Inf(1)
	for _, t := range tasks {
		earliest = math.Min(earliest, t.Arrival)
	}
	if math.Abs(s.Start()-earliest) > timeEps {
		return fmt.Errorf("%w: schedule starts at %v, earliest arrival is %v", ErrMalformedSchedule, s.Start(), earliest)
	}

	scheduled := make(map[string]bool, len(tasks))
	for i, iv := range s {
		if iv.End <= iv.Start+timeEps {
			return fmt.Errorf("%w: interval %d has non-positive duration [%v, %v]", ErrMalformedSchedule, i, iv.Start, iv.End)
		}
		if i > 0 && math.Abs(iv.Start-s[i-1].End) > timeEps {
			return fmt.Errorf("%w: gap between interval %d ending at %v and interval %d starting at %v",
				ErrMalformedSchedule, i-1, s[i-1].End, i, iv.Start)
		}
		if !iv.Idle() {
			scheduled[iv.TaskID] = true
		}
	}

	for _, t := range tasks {
		if !scheduled[t.ID] {
			return fmt.Errorf("%w: task %s was never scheduled", ErrMalformedSchedule, t.ID)
		}
	}
	return nil
}
