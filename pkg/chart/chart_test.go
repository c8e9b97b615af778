package chart

import (
	"strings"
	"testing"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/engine"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/metrics"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/risk"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

func sampleRun(t *testing.T) (engine.Schedule, []task.Task, *metrics.Report) {
	t.Helper()
	tasks := []task.Task{
		{ID: "ECG-01", Label: "ECG Arrhythmia Check", Arrival: 0, Burst: 4, Priority: 3},
		{ID: "SpO2-02", Label: "SpO2 Saturation Analysis", Arrival: 1, Burst: 2, Priority: 4},
	}
	sched, err := engine.Run(engine.FCFS, tasks, engine.DefaultConfig())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	report, err := metrics.Compute(sched, tasks)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	return sched, tasks, report
}

func TestGenerateGantt(t *testing.T) {
	sched, tasks, _ := sampleRun(t)
	out := NewGenerator(80, false).GenerateGantt(sched, tasks)

	for _, want := range []string{"Execution Timeline", "ECG-01", "SpO2-02", "(idle)", "Legend:"} {
		if !strings.Contains(out, want) {
			t.Errorf("gantt output missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateGantt_EmptySchedule(t *testing.T) {
	out := NewGenerator(80, false).GenerateGantt(nil, nil)
	if !strings.Contains(out, "No schedule") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestGenerateMetricsTable(t *testing.T) {
	_, _, report := sampleRun(t)
	out := NewGenerator(80, false).GenerateMetricsTable(report)

	for _, want := range []string{"Per-Task Metrics", "Waiting", "Turnaround", "ECG Arrhythmia Check"} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics table missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateSummary(t *testing.T) {
	_, _, report := sampleRun(t)
	out := NewGenerator(80, false).GenerateSummary(engine.FCFS, report)

	for _, want := range []string{"First-Come, First-Served", "CPU Utilization", "Throughput"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateRiskReport(t *testing.T) {
	_, _, report := sampleRun(t)
	cfg := risk.DefaultConfig()
	flags, err := risk.Assess(report, engine.FCFS, cfg)
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	critical := risk.SummarizeCritical(report, cfg)

	out := NewGenerator(80, false).GenerateRiskReport(engine.FCFS, flags, critical, cfg)
	for _, want := range []string{"Clinical Risk Report", "Compliance note (FCFS)"} {
		if !strings.Contains(out, want) {
			t.Errorf("risk report missing %q:\n%s", want, out)
		}
	}
}

func TestGenerateComparison(t *testing.T) {
	_, tasks, _ := sampleRun(t)
	gen := NewGenerator(80, false)

	var rows []ComparisonRow
	for _, res := range engine.RunAll(tasks, engine.DefaultConfig()) {
		if res.Err != nil {
			t.Fatalf("%s: %v", res.Algorithm, res.Err)
		}
		report, err := metrics.Compute(res.Schedule, tasks)
		if err != nil {
			t.Fatalf("%s: %v", res.Algorithm, err)
		}
		flags, err := risk.Assess(report, res.Algorithm, risk.DefaultConfig())
		if err != nil {
			t.Fatalf("%s: %v", res.Algorithm, err)
		}
		rows = append(rows, ComparisonRow{Algorithm: res.Algorithm, Report: report, Flags: flags})
	}

	out := gen.GenerateComparison(rows)
	for _, want := range []string{"Algorithm Comparison", "FCFS", "SJF", "PRIORITY", "ROUND_ROBIN"} {
		if !strings.Contains(out, want) {
			t.Errorf("comparison missing %q:\n%s", want, out)
		}
	}
}
