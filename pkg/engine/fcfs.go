package engine

import "github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"

// runFCFS executes tasks in arrival order, each one to completion. The CPU
// idles between a completion and the next arrival when no task is ready.
func runFCFS(tasks []task.Task) Schedule {
	order := arrivalOrder(tasks)

	var sched Schedule
	current := tasks[order[0]].Arrival
	for _, i := range order {
		t := tasks[i]
		if t.Arrival > current {
			sched = append(sched, Interval{Start: current, End: t.Arrival})
			current = t.Arrival
		}
		sched = append(sched, Interval{TaskID: t.ID, Start: current, End: current + t.Burst})
		current += t.Burst
	}
	return sched
}
