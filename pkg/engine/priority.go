package engine

import "github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"

// runPriority implements non-preemptive priority scheduling: the ready task
// with the smallest priority value (most urgent) is selected, breaking ties
// by earliest arrival and then input order. A running task is never
// interrupted, so a more urgent arrival still waits for the current burst
// to finish.
func runPriority(tasks []task.Task) Schedule {
	return runNonPreemptive(tasks, func(a, b task.Task) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.Arrival < b.Arrival
	})
}
