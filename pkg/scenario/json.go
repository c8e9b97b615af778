package scenario

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

// LoadJSON loads scenarios from a JSON file in the dashboard exchange
// format: an object mapping scenario names to task arrays, each task an
// object with pid, arrival, burst and priority fields.
func LoadJSON(filename string) ([]Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to parse scenario file: not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("failed to parse scenario file: expected an object of scenarios")
	}

	var scenarios []Scenario
	var parseErr error
	root.ForEach(func(name, tasks gjson.Result) bool {
		if !tasks.IsArray() {
			parseErr = fmt.Errorf("scenario %q: expected a task array", name.String())
			return false
		}

		s := Scenario{Name: name.String()}
		tasks.ForEach(func(_, entry gjson.Result) bool {
			pid := entry.Get("pid").String()
			s.Tasks = append(s.Tasks, task.Task{
				ID:       pid,
				Label:    pid,
				Arrival:  entry.Get("arrival").Float(),
				Burst:    entry.Get("burst").Float(),
				Priority: int(entry.Get("priority").Int()),
			})
			return true
		})

		if err := task.ValidateAll(s.Tasks); err != nil {
			parseErr = fmt.Errorf("scenario %q: %w", name.String(), err)
			return false
		}
		scenarios = append(scenarios, s)
		return true
	})
	if parseErr != nil {
		return nil, fmt.Errorf("invalid scenario: %w", parseErr)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("invalid scenario: file defines no scenarios")
	}
	return scenarios, nil
}
