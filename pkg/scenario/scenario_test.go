package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vnautiyal11/ICU-CPU-Scheduler/pkg/task"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestBuiltins_AreValid(t *testing.T) {
	builtins := Builtins()
	if len(builtins) != 3 {
		t.Fatalf("expected 3 built-in scenarios, got %d", len(builtins))
	}
	for _, s := range builtins {
		if err := task.ValidateAll(s.Tasks); err != nil {
			t.Errorf("scenario %q: %v", s.Name, err)
		}
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup("Code Blue (Cardiac Arrest)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Tasks) != 4 {
		t.Errorf("expected 4 tasks, got %d", len(s.Tasks))
	}

	if _, err := Lookup("No Such Scenario"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: Post-Op Monitoring
description: Recovery ward vitals
tasks:
  - id: ECG-01
    label: ECG Arrhythmia Check
    arrival: 0
    burst: 4
    priority: 3
  - id: BP-02
    label: BP Trend Analysis
    arrival: 1.5
    burst: 2
    priority: 2
`)
	s, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Post-Op Monitoring" {
		t.Errorf("unexpected name %q", s.Name)
	}
	if len(s.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(s.Tasks))
	}
	if s.Tasks[1].Arrival != 1.5 {
		t.Errorf("expected arrival 1.5, got %v", s.Tasks[1].Arrival)
	}
}

func TestLoadYAML_ExpandsRepeats(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: Continuous SpO2
tasks:
  - id: SpO2
    label: SpO2 Sample
    arrival: 0
    burst: 1
    priority: 3
    repeat: 3
    interval: 5
`)
	s, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Tasks) != 3 {
		t.Fatalf("expected 3 expanded tasks, got %d", len(s.Tasks))
	}

	wantIDs := []string{"SpO2", "SpO2-2", "SpO2-3"}
	wantArrivals := []float64{0, 5, 10}
	for i, tk := range s.Tasks {
		if tk.ID != wantIDs[i] {
			t.Errorf("task %d: id %q, want %q", i, tk.ID, wantIDs[i])
		}
		if tk.Arrival != wantArrivals[i] {
			t.Errorf("task %d: arrival %v, want %v", i, tk.Arrival, wantArrivals[i])
		}
	}
}

func TestLoadYAML_GeneratesMissingIDs(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: Anonymous Tasks
tasks:
  - label: ECG Check
    arrival: 0
    burst: 2
    priority: 1
`)
	s, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Tasks[0].ID == "" {
		t.Error("expected a generated task ID")
	}
}

func TestLoadYAML_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"no name", "tasks:\n  - {id: A, label: A, burst: 1}\n", "name is required"},
		{"no tasks", "name: Empty\n", "at least one task"},
		{"zero burst", "name: Bad\ntasks:\n  - {id: A, label: A, burst: 0}\n", "burst"},
		{"repeat without interval", "name: Bad\ntasks:\n  - {id: A, label: A, burst: 1, repeat: 2}\n", "interval"},
		{"not yaml", "{{nope", "parse"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "scenario.yaml", tc.content)
			_, err := LoadYAML(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}

	if _, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "icu_scenarios.json", `{
  "Normal Monitoring": [
    {"pid": "ECG-01", "arrival": 0, "burst": 4, "priority": 3},
    {"pid": "SpO2-02", "arrival": 1, "burst": 2, "priority": 4}
  ],
  "Hypotension Alert": [
    {"pid": "BP-ALERT", "arrival": 0, "burst": 5, "priority": 1}
  ]
}`)
	scenarios, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scenarios) != 2 {
		t.Fatalf("expected 2 scenarios, got %d", len(scenarios))
	}
	if scenarios[0].Name != "Normal Monitoring" {
		t.Errorf("unexpected scenario name %q", scenarios[0].Name)
	}
	if scenarios[0].Tasks[0].ID != "ECG-01" || scenarios[0].Tasks[0].Burst != 4 {
		t.Errorf("unexpected first task %+v", scenarios[0].Tasks[0])
	}
}

func TestLoadJSON_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"invalid json", "{nope"},
		{"not an object", "[1, 2]"},
		{"scenario not an array", `{"Bad": {"pid": "A"}}`},
		{"invalid task", `{"Bad": [{"pid": "A", "arrival": 0, "burst": 0}]}`},
		{"no scenarios", "{}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "bad.json", tc.content)
			if _, err := LoadJSON(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
