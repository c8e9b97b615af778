// Package scenario supplies predefined and file-based ICU workloads to the
// scheduling engine.
package scenario

import (
	"fmt"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

// Scenario is a named, ordered workload of monitoring tasks.
type Scenario struct {
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
	Tasks       []task.Task `yaml:"tasks" json:"tasks"`
}

// Builtins returns the predefined clinical scenarios, in menu order.
func Builtins() []Scenario {
	return []Scenario{
		{
			Name:        "Normal Monitoring",
			Description: "Routine vitals processing on a stable patient",
			Tasks: []task.Task{
				{ID: "ECG-01", Label: "ECG Arrhythmia Check", Arrival: 0, Burst: 4, Priority: 3},
				{ID: "SpO2-02", Label: "SpO2 Saturation Analysis", Arrival: 1, Burst: 2, Priority: 4},
				{ID: "BP-03", Label: "BP Trend Analysis", Arrival: 2, Burst: 3, Priority: 3},
			},
		},
		{
			Name:        "Hypotension Alert",
			Description: "Blood-pressure alert arriving ahead of routine checks",
			Tasks: []task.Task{
				{ID: "BP-ALERT", Label: "Hypotension Alert Handler", Arrival: 0, Burst: 5, Priority: 1},
				{ID: "ECG-01", Label: "ECG Arrhythmia Check", Arrival: 1, Burst: 3, Priority: 2},
				{ID: "SpO2-02", Label: "SpO2 Saturation Analysis", Arrival: 2, Burst: 1, Priority: 3},
			},
		},
		{
			Name:        "Code Blue (Cardiac Arrest)",
			Description: "Cardiac arrest response with mixed-criticality tasks",
			Tasks: []task.Task{
				{ID: "ECG-EMERG", Label: "Emergency ECG Analysis", Arrival: 0, Burst: 2, Priority: 1},
				{ID: "Defib-Check", Label: "Defibrillator Self-Test", Arrival: 0, Burst: 1, Priority: 1},
				{ID: "Vent-Status", Label: "Ventilator Status Check", Arrival: 1, Burst: 3, Priority: 2},
				{ID: "SpO2-Monitor", Label: "SpO2 Monitoring", Arrival: 2, Burst: 1, Priority: 3},
			},
		},
	}
}

// Lookup finds a built-in scenario by name.
func Lookup(name string) (Scenario, error) {
	for _, s := range Builtins() {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("unknown scenario %q", name)
}
