package chart

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/engine"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/metrics"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/risk"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

const (
	defaultWidth = 80
	labelWidth   = 14
)

// Generator renders ASCII views of schedules, metrics and risk reports.
type Generator struct {
	width int

	red    func(a ...interface{}) string
	yellow func(a ...interface{}) string
	green  func(a ...interface{}) string
}

// NewGenerator creates a chart generator. When colored is false all output
// is plain text.
func NewGenerator(width int, colored bool) *Generator {
	if width < 40 {
		width = defaultWidth
	}

	plain := fmt.Sprint
	g := &Generator{width: width, red: plain, yellow: plain, green: plain}
	if colored {
		g.red = color.New(color.FgRed, color.Bold).SprintFunc()
		g.yellow = color.New(color.FgYellow).SprintFunc()
		g.green = color.New(color.FgGreen).SprintFunc()
	}
	return g
}

func (g *Generator) header(sb *strings.Builder, title string) {
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", g.width))
	sb.WriteString("\n\n")
}

// GenerateGantt renders the schedule as one row per task plus an idle row,
// scaled across the chart width.
func (g *Generator) GenerateGantt(sched engine.Schedule, tasks []task.Task) string {
	if len(sched) == 0 {
		return "No schedule to display"
	}

	var sb strings.Builder
	g.header(&sb, "Execution Timeline")

	cols := g.width - labelWidth - 2
	start := sched.Start()
	span := sched.Span()

	// timeAt maps a chart column to the simulation time at its center.
	timeAt := func(x int) float64 {
		return start + (float64(x)+0.5)/float64(cols)*span
	}
	covered := func(id string, t float64) bool {
		for _, iv := range sched {
			if iv.TaskID == id && iv.Start <= t && t < iv.End {
				return true
			}
		}
		return false
	}

	rows := make([]string, 0, len(tasks)+1)
	for _, t := range tasks {
		rows = append(rows, t.ID)
	}
	rows = append(rows, "")

	for _, id := range rows {
		name := id
		mark := "█"
		if id == "" {
			name = "(idle)"
			mark = "░"
		}
		if len(name) > labelWidth {
			name = name[:labelWidth]
		}
		sb.WriteString(fmt.Sprintf("%-*s |", labelWidth, name))
		for x := 0; x < cols; x++ {
			if covered(id, timeAt(x)) {
				sb.WriteString(mark)
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// X-axis with time markers.
	sb.WriteString(strings.Repeat(" ", labelWidth))
	sb.WriteString(" +")
	sb.WriteString(strings.Repeat("-", cols))
	sb.WriteString("\n")

	labelLine := make([]rune, cols)
	for i := range labelLine {
		labelLine[i] = ' '
	}
	step := niceStep(span)
	for t := 0.0; t <= span+1e-9; t += step {
		position := 0
		if span > 0 {
			position = int(t / span * float64(cols-1))
		}
		marker := trimFloat(start + t)
		if position+len(marker) <= cols {
			for i, ch := range marker {
				labelLine[position+i] = ch
			}
		}
	}
	sb.WriteString(strings.Repeat(" ", labelWidth))
	sb.WriteString("  ")
	sb.WriteString(string(labelLine))
	sb.WriteString("\n\n")

	sb.WriteString("Legend:\n")
	sb.WriteString("    █ - Task executing\n")
	sb.WriteString("    ░ - CPU idle\n")
	return sb.String()
}

// GenerateMetricsTable renders the per-task metrics table.
func (g *Generator) GenerateMetricsTable(report *metrics.Report) string {
	var sb strings.Builder
	g.header(&sb, "Per-Task Metrics")

	sb.WriteString(fmt.Sprintf("%-14s %-26s %8s %8s %5s %9s %11s %9s\n",
		"Task", "Label", "Arrival", "Burst", "Prio", "Waiting", "Turnaround", "Response"))
	for _, m := range report.PerTask {
		sb.WriteString(fmt.Sprintf("%-14s %-26s %8s %8s %5d %9s %11s %9s\n",
			m.TaskID, m.Label,
			trimFloat(m.Arrival), trimFloat(m.Burst), m.Priority,
			trimFloat(m.Waiting), trimFloat(m.Turnaround), trimFloat(m.Response)))
	}
	return sb.String()
}

// GenerateSummary renders the aggregate metrics for one run.
func (g *Generator) GenerateSummary(alg engine.Algorithm, report *metrics.Report) string {
	var sb strings.Builder
	g.header(&sb, fmt.Sprintf("Run Summary - %s", alg.FullName()))

	agg := report.Aggregate
	sb.WriteString(fmt.Sprintf("Tasks:               %d\n", agg.TaskCount))
	sb.WriteString(fmt.Sprintf("Total Span:          %ss (idle %ss)\n", trimFloat(agg.TotalSpan), trimFloat(agg.IdleTime)))
	sb.WriteString(fmt.Sprintf("CPU Utilization:     %.1f%%\n", agg.CPUUtilization*100))
	sb.WriteString(fmt.Sprintf("Throughput:          %.3f tasks/s\n", agg.Throughput))
	sb.WriteString(fmt.Sprintf("Avg Waiting:         %.2fs\n", agg.AverageWaiting))
	sb.WriteString(fmt.Sprintf("Avg Turnaround:      %.2fs\n", agg.AverageTurnaround))
	sb.WriteString(fmt.Sprintf("Avg Response:        %.2fs\n", agg.AverageResponse))
	return sb.String()
}

// GenerateRiskReport renders the flags, the critical-task summary and the
// algorithm's compliance note.
func (g *Generator) GenerateRiskReport(alg engine.Algorithm, flags []risk.Flag, critical risk.CriticalSummary, cfg risk.Config) string {
	var sb strings.Builder
	g.header(&sb, "Clinical Risk Report")

	flagged := 0
	for _, f := range flags {
		if !f.ExceedsThreshold && !f.Starved {
			continue
		}
		flagged++
		var notes []string
		if f.ExceedsThreshold {
			notes = append(notes, g.red(fmt.Sprintf("waited %.2fs > %.2fs threshold", f.Waiting, cfg.Threshold)))
		}
		if f.Starved {
			notes = append(notes, g.yellow("starved relative to peers"))
		}
		sb.WriteString(fmt.Sprintf("  [P%d] %-14s %s\n", f.Priority, f.TaskID, strings.Join(notes, ", ")))
	}
	if flagged == 0 {
		sb.WriteString(g.green("No tasks flagged."))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if critical.HasCritical {
		if critical.Safe {
			sb.WriteString(g.green(fmt.Sprintf("Safe: max critical wait %.1fs (%s) within %.1fs threshold.",
				critical.MaxWaiting, critical.TaskID, cfg.Threshold)))
		} else {
			sb.WriteString(g.red(fmt.Sprintf("High risk: critical task %s waited %.1fs and may delay life-saving intervention.",
				critical.TaskID, critical.MaxWaiting)))
		}
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("Compliance note (%s):\n  %s\n", alg, risk.ComplianceNote(alg)))
	return sb.String()
}

// ComparisonRow is one algorithm's line in the comparison table.
type ComparisonRow struct {
	Algorithm engine.Algorithm
	Report    *metrics.Report
	Flags     []risk.Flag
}

// GenerateComparison renders the all-algorithms comparison table.
func (g *Generator) GenerateComparison(rows []ComparisonRow) string {
	var sb strings.Builder
	g.header(&sb, "Algorithm Comparison")

	sb.WriteString(fmt.Sprintf("%-14s %9s %12s %9s %12s %7s\n",
		"Algorithm", "Avg Wait", "Avg Turnar.", "CPU Util", "Throughput", "Flags"))
	for _, row := range rows {
		agg := row.Report.Aggregate
		flagged := 0
		for _, f := range row.Flags {
			if f.ExceedsThreshold || f.Starved {
				flagged++
			}
		}
		count := fmt.Sprintf("%d", flagged)
		if flagged > 0 {
			count = g.yellow(count)
		}
		sb.WriteString(fmt.Sprintf("%-14s %8.2fs %11.2fs %8.1f%% %12.3f %7s\n",
			row.Algorithm, agg.AverageWaiting, agg.AverageTurnaround,
			agg.CPUUtilization*100, agg.Throughput, count))
	}
	return sb.String()
}

// niceStep picks an axis label spacing that keeps markers readable.
func niceStep(span float64) float64 {
	switch {
	case span <= 10:
		return 1
	case span <= 30:
		return 5
	case span <= 100:
		return 10
	default:
		return span / 10
	}
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
