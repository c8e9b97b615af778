package engine

import "github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"

// runSJF implements non-preemptive Shortest Job First. At each decision
// point it picks the ready task with the smallest burst, breaking ties by
// earliest arrival and then input order. Once started, a task runs to
// completion.
func runSJF(tasks []task.Task) Schedule {
	return runNonPreemptive(tasks, func(a, b task.Task) bool {
		if a.Burst != b.Burst {
			return a.Burst < b.Burst
		}
		return a.Arrival < b.Arrival
	})
}

// runNonPreemptive is the shared loop for SJF and Priority scheduling.
// better reports whether task a should be selected over task b among ready
// tasks; when neither is better the earlier input position wins.
func runNonPreemptive(tasks []task.Task, better func(a, b task.Task) bool) Schedule {
	order := arrivalOrder(tasks)
	done := make([]bool, len(tasks))

	var sched Schedule
	current := tasks[order[0]].Arrival
	for completed := 0; completed < len(tasks); completed++ {
		// Pick the best ready task. Scanning in arrival order makes the
		// final tie-break (input order among equal arrivals) implicit.
		best := -1
		for _, i := range order {
			t := tasks[i]
			if done[i] || t.Arrival > current+timeEps {
				continue
			}
			if best == -1 || better(t, tasks[best]) {
				best = i
			}
		}

		if best == -1 {
			// Nothing ready: idle until the next arrival.
			next := -1
			for _, i := range order {
				if !done[i] {
					next = i
					break
				}
			}
			sched = append(sched, Interval{Start: current, End: tasks[next].Arrival})
			current = tasks[next].Arrival
			completed--
			continue
		}

		t := tasks[best]
		sched = append(sched, Interval{TaskID: t.ID, Start: current, End: current + t.Burst})
		current += t.Burst
		done[best] = true
	}
	return sched
}
