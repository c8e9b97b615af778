package task

import (
	"reflect"
	"strings"
	"testing"
)

func TestNew_AssignsID(t *testing.T) {
	a := New("ECG Arrhythmia Check", 0, 4, 3)
	b := New("ECG Arrhythmia Check", 0, 4, 3)
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected generated IDs")
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct IDs for distinct tasks")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		task    Task
		wantErr string
	}{
		{"valid", Task{ID: "A", Burst: 1}, ""},
		{"missing id", Task{Burst: 1}, "id is required"},
		{"zero burst", Task{ID: "A", Burst: 0}, "burst"},
		{"negative burst", Task{ID: "A", Burst: -2}, "burst"},
		{"negative arrival", Task{ID: "A", Burst: 1, Arrival: -1}, "arrival"},
		{"negative priority", Task{ID: "A", Burst: 1, Priority: -1}, "priority"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.task.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	if err := ValidateAll(nil); err == nil {
		t.Error("expected error for empty task list")
	}

	dup := []Task{
		{ID: "A", Burst: 1},
		{ID: "A", Burst: 2},
	}
	if err := ValidateAll(dup); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("expected duplicate-id error, got %v", err)
	}

	ok := []Task{
		{ID: "A", Burst: 1},
		{ID: "B", Burst: 2, Arrival: 1, Priority: 5},
	}
	if err := ValidateAll(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCloneAll_IsIndependent(t *testing.T) {
	orig := []Task{{ID: "A", Burst: 1}, {ID: "B", Burst: 2}}
	clone := CloneAll(orig)

	if !reflect.DeepEqual(orig, clone) {
		t.Fatal("clone differs from original")
	}
	clone[0].Burst = 99
	if orig[0].Burst != 1 {
		t.Fatal("mutating the clone changed the original")
	}
}
