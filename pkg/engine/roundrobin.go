package engine

import (
	"math"

	"github.com/emirpasic/gods/queues/arrayqueue"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

// runRoundRobin time-slices the CPU with a fixed quantum over a FIFO ready
// queue. Remaining burst is tracked in a per-run table keyed by task index,
// so the shared task records stay untouched. Tasks that arrive during a
// slice are enqueued before the preempted task re-enqueues, the conventional
// ordering that keeps new arrivals from being starved.
func runRoundRobin(tasks []task.Task, quantum float64) Schedule {
	order := arrivalOrder(tasks)
	remaining := make([]float64, len(tasks))
	for i, t := range tasks {
		remaining[i] = t.Burst
	}

	ready := arrayqueue.New()
	next := 0
	enqueueArrived := func(now float64) {
		for next < len(order) && tasks[order[next]].Arrival <= now+timeEps {
			ready.Enqueue(order[next])
			next++
		}
	}

	var sched Schedule
	current := tasks[order[0]].Arrival
	enqueueArrived(current)

	for next < len(order) || !ready.Empty() {
		head, ok := ready.Dequeue()
		if !ok {
			// Ready queue drained but tasks remain unarrived: idle until
			// the next arrival.
			arrival := tasks[order[next]].Arrival
			sched = append(sched, Interval{Start: current, End: arrival})
			current = arrival
			enqueueArrived(current)
			continue
		}

		i := head.(int)
		slice := math.Min(quantum, remaining[i])
		sched = append(sched, Interval{TaskID: tasks[i].ID, Start: current, End: current + slice})
		current += slice
		remaining[i] -= slice

		enqueueArrived(current)
		if remaining[i] > timeEps {
			ready.Enqueue(i)
		}
	}
	return sched
}
