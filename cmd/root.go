package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/chart"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/engine"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/metrics"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/risk"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/scenario"
	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

var (
	scenarioName  string
	scenarioYAML  string
	scenarioJSON  string
	algorithmName string
	quantum       float64
	riskThreshold float64
	starvationMul float64
	compareAll    bool
	csvPath       string
	chartWidth    int
	noColor       bool
	listScenarios bool
)

var rootCmd = &cobra.Command{
	Use:   "icu-scheduler",
	Short: "ICU CPU Scheduling Simulator",
	Long: `Simulates CPU scheduling algorithms over ICU vital-sign monitoring
workloads (ECG, blood-pressure, SpO2 analysis tasks).

The tool loads a clinical scenario, computes a deterministic schedule with
the selected algorithm (FCFS, SJF, PRIORITY or ROUND_ROBIN), derives timing
metrics, and flags clinically risky delays against the 2-second alert
policy.`,
	RunE: runSimulation,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&scenarioName, "scenario", "s", "Normal Monitoring", "Built-in clinical scenario to run")
	rootCmd.Flags().StringVarP(&scenarioYAML, "file", "f", "", "Path to a YAML workload file (overrides --scenario)")
	rootCmd.Flags().StringVarP(&scenarioJSON, "json", "j", "", "Path to a JSON scenario file (overrides --scenario)")
	rootCmd.Flags().StringVarP(&algorithmName, "algorithm", "a", "FCFS", "Algorithm: FCFS, SJF, PRIORITY or ROUND_ROBIN")
	rootCmd.Flags().Float64VarP(&quantum, "quantum", "q", 2, "Round Robin time quantum in seconds")
	rootCmd.Flags().Float64Var(&riskThreshold, "risk-threshold", 2.0, "Clinical waiting-time threshold in seconds")
	rootCmd.Flags().Float64Var(&starvationMul, "starvation-multiplier", 3.0, "Starvation multiple of mean waiting time")
	rootCmd.Flags().BoolVarP(&compareAll, "compare", "c", false, "Run all four algorithms and print a comparison")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Write the per-task metrics table to a CSV file")
	rootCmd.Flags().IntVarP(&chartWidth, "width", "w", 80, "Chart width in characters")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVarP(&listScenarios, "list", "l", false, "List built-in scenarios and exit")

	rootCmd.AddCommand(serveCmd)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if listScenarios {
		for _, s := range scenario.Builtins() {
			fmt.Printf("%-28s %d tasks  %s\n", s.Name, len(s.Tasks), s.Description)
		}
		return nil
	}

	sc, err := loadScenario()
	if err != nil {
		return err
	}

	engineCfg := engine.Config{Quantum: quantum}
	riskCfg := risk.Config{Threshold: riskThreshold, StarvationMultiplier: starvationMul}
	gen := chart.NewGenerator(chartWidth, !noColor)

	fmt.Printf("Scenario: %s (%d tasks)\n", sc.Name, len(sc.Tasks))

	if compareAll {
		return runComparison(sc.Tasks, engineCfg, riskCfg, gen)
	}

	alg, err := engine.ParseAlgorithm(algorithmName)
	if err != nil {
		return err
	}

	sched, err := engine.Run(alg, sc.Tasks, engineCfg)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	report, err := metrics.Compute(sched, sc.Tasks)
	if err != nil {
		return fmt.Errorf("metrics computation failed: %w", err)
	}
	flags, err := risk.Assess(report, alg, riskCfg)
	if err != nil {
		return fmt.Errorf("risk assessment failed: %w", err)
	}
	critical := risk.SummarizeCritical(report, riskCfg)

	fmt.Println(gen.GenerateGantt(sched, sc.Tasks))
	fmt.Println(gen.GenerateMetricsTable(report))
	fmt.Println(gen.GenerateSummary(alg, report))
	fmt.Println(gen.GenerateRiskReport(alg, flags, critical, riskCfg))

	if csvPath != "" {
		if err := writeCSV(csvPath, report); err != nil {
			return err
		}
		fmt.Printf("Metrics exported to %s\n", csvPath)
	}
	return nil
}

func runComparison(tasks []task.Task, engineCfg engine.Config, riskCfg risk.Config, gen *chart.Generator) error {
	results := engine.RunAll(tasks, engineCfg)

	rows := make([]chart.ComparisonRow, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("%s failed: %w", res.Algorithm, res.Err)
		}
		report, err := metrics.Compute(res.Schedule, tasks)
		if err != nil {
			return fmt.Errorf("%s metrics failed: %w", res.Algorithm, err)
		}
		flags, err := risk.Assess(report, res.Algorithm, riskCfg)
		if err != nil {
			return fmt.Errorf("%s risk assessment failed: %w", res.Algorithm, err)
		}
		rows = append(rows, chart.ComparisonRow{Algorithm: res.Algorithm, Report: report, Flags: flags})
	}

	fmt.Println(gen.GenerateComparison(rows))
	return nil
}

func loadScenario() (*scenario.Scenario, error) {
	switch {
	case scenarioYAML != "":
		return scenario.LoadYAML(scenarioYAML)
	case scenarioJSON != "":
		scenarios, err := scenario.LoadJSON(scenarioJSON)
		if err != nil {
			return nil, err
		}
		if scenarioName != "" {
			for i := range scenarios {
				if scenarios[i].Name == scenarioName {
					return &scenarios[i], nil
				}
			}
		}
		return &scenarios[0], nil
	default:
		s, err := scenario.Lookup(scenarioName)
		if err != nil {
			return nil, err
		}
		return &s, nil
	}
}

func writeCSV(path string, report *metrics.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer f.Close()
	if err := report.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to export metrics: %w", err)
	}
	return nil
}
