package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

// Config carries algorithm options for a single run.
type Config struct {
	// Quantum is the Round Robin time slice. Required (> 0) only for
	// RoundRobin; the other algorithms ignore it.
	Quantum float64 `yaml:"quantum" json:"quantum"`
}

// DefaultConfig returns the default run options.
func DefaultConfig() Config {
	return Config{Quantum: 2}
}

// Run executes one algorithm over the task list and returns the produced
// schedule. The input list is never mutated: each run works on its own copy.
// Identical (algorithm, tasks, config) inputs always yield an identical
// schedule.
func Run(alg Algorithm, tasks []task.Task, cfg Config) (Schedule, error) {
	if err := task.ValidateAll(tasks); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	work := task.CloneAll(tasks)
	switch alg {
	case FCFS:
		return runFCFS(work), nil
	case SJF:
		return runSJF(work), nil
	case Priority:
		return runPriority(work), nil
	case RoundRobin:
		if cfg.Quantum <= 0 {
			return nil, fmt.Errorf("%w: quantum must be greater than 0, got %v", ErrInvalidInput, cfg.Quantum)
		}
		return runRoundRobin(work, cfg.Quantum), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %d", ErrInvalidInput, int(alg))
	}
}

// RunResult is the outcome of one algorithm in a comparison run.
type RunResult struct {
	Algorithm Algorithm
	Schedule  Schedule
	Err       error
}

// RunAll executes all four algorithms over the same workload, one goroutine
// per algorithm. Runs are independent: each operates on its own copy of the
// task list, so results are identical to running them sequentially. Results
// come back in canonical algorithm order.
func RunAll(tasks []task.Task, cfg Config) []RunResult {
	algs := Algorithms()
	results := make([]RunResult, len(algs))

	var wg sync.WaitGroup
	for i, alg := range algs {
		wg.Add(1)
		go func(i int, alg Algorithm) {
			defer wg.Done()
			sched, err := Run(alg, task.CloneAll(tasks), cfg)
			results[i] = RunResult{Algorithm: alg, Schedule: sched, Err: err}
		}(i, alg)
	}
	wg.Wait()
	return results
}

// arrivalOrder returns task indices sorted by arrival time, preserving input
// order among equal arrivals. All four algorithms consume tasks in this
// order, which pins down their tie-break behavior.
func arrivalOrder(tasks []task.Task) []int {
	order := make([]int, len(tasks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return tasks[order[a]].Arrival < tasks[order[b]].Arrival
	})
	return order
}
