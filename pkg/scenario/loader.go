package scenario

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

// taskSpec is one task entry in a YAML workload file. Repeat and Interval
// describe recurring monitoring tasks: repeat > 1 expands the entry into
// that many instances spaced interval seconds apart.
type taskSpec struct {
	ID       string  `yaml:"id,omitempty"`
	Label    string  `yaml:"label"`
	Arrival  float64 `yaml:"arrival"`
	Burst    float64 `yaml:"burst"`
	Priority int     `yaml:"priority"`
	Repeat   int     `yaml:"repeat,omitempty"`
	Interval float64 `yaml:"interval,omitempty"`
}

type scenarioFile struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Tasks       []taskSpec `yaml:"tasks"`
}

// LoadYAML loads and validates a scenario from a YAML workload file.
func LoadYAML(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}

	s, err := expand(&file)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return s, nil
}

// expand turns a parsed file into a validated scenario, unrolling repeated
// entries and assigning IDs where the file omits them.
func expand(file *scenarioFile) (*Scenario, error) {
	if file.Name == "" {
		return nil, fmt.Errorf("scenario name is required")
	}
	if len(file.Tasks) == 0 {
		return nil, fmt.Errorf("at least one task must be defined")
	}

	s := &Scenario{Name: file.Name, Description: file.Description}
	for i, spec := range file.Tasks {
		repeat := spec.Repeat
		if repeat == 0 {
			repeat = 1
		}
		if repeat < 0 {
			return nil, fmt.Errorf("task %d: repeat must not be negative", i)
		}
		if repeat > 1 && spec.Interval <= 0 {
			return nil, fmt.Errorf("task %d: interval must be greater than 0 when repeat is set", i)
		}

		id := spec.ID
		if id == "" {
			id = uuid.NewString()
		}
		for k := 0; k < repeat; k++ {
			instanceID := id
			if k > 0 {
				instanceID = fmt.Sprintf("%s-%d", id, k+1)
			}
			s.Tasks = append(s.Tasks, task.Task{
				ID:       instanceID,
				Label:    spec.Label,
				Arrival:  spec.Arrival + float64(k)*spec.Interval,
				Burst:    spec.Burst,
				Priority: spec.Priority,
			})
		}
	}

	if err := task.ValidateAll(s.Tasks); err != nil {
		return nil, err
	}
	return s, nil
}
