package models

import (
	"encoding/json"
	"testing"
	"time"
)

func validTask() Task {
	return Task{
		Name:        "Register app on Play Console",
		Category:    CategoryOperation,
		StartDate:   NewDate(2025, time.February, 1),
		EndDate:     NewDate(2025, time.February, 28),
		Progress:    0,
		Responsible: []string{"hong", "choi"},
		Status:      StatusNotStarted,
	}
}

func TestValidate(t *testing.T) {
	task := validTask()
	if err := task.Validate(); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Task)
	}{
		{"empty name", func(t *Task) { t.Name = "" }},
		{"unknown category", func(t *Task) { t.Category = "finance" }},
		{"missing start date", func(t *Task) { t.StartDate = Date{} }},
		{"missing end date", func(t *Task) { t.EndDate = Date{} }},
		{"end before start", func(t *Task) { t.EndDate = NewDate(2025, time.January, 1) }},
		{"progress below range", func(t *Task) { t.Progress = -1 }},
		{"progress above range", func(t *Task) { t.Progress = 101 }},
		{"empty responsible", func(t *Task) { t.Responsible = nil }},
		{"unknown status", func(t *Task) { t.Status = "paused" }},
	}

	for _, c := range cases {
		task := validTask()
		c.mutate(&task)
		if err := task.Validate(); err == nil {
			t.Errorf("%s: expected validation error", c.name)
		}
	}
}

func TestValidateSelfDependency(t *testing.T) {
	task := validTask()
	task.ID = "t1"
	task.Dependencies = []string{"t1"}
	if err := task.Validate(); err == nil {
		t.Error("self-dependency should be rejected")
	}

	// Dangling references to other ids are tolerated.
	task.Dependencies = []string{"ghost"}
	if err := task.Validate(); err != nil {
		t.Errorf("dangling dependency rejected: %v", err)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `"2024-02-29"` {
		t.Errorf("marshaled to %s", b)
	}

	var parsed Date
	if err := json.Unmarshal(b, &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if parsed != d {
		t.Errorf("round trip changed the date: %s vs %s", parsed, d)
	}

	var empty Date
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil {
		t.Fatalf("empty string should decode to zero date: %v", err)
	}
	if !empty.IsZero() {
		t.Error("empty string did not decode to zero date")
	}
}

func TestDaysUntil(t *testing.T) {
	a := NewDate(2024, time.January, 31)
	b := NewDate(2024, time.February, 1)

	if got := a.DaysUntil(b); got != 1 {
		t.Errorf("DaysUntil = %d, want 1", got)
	}
	if got := b.DaysUntil(a); got != -1 {
		t.Errorf("DaysUntil reversed = %d, want -1", got)
	}
	if got := a.DaysUntil(a); got != 0 {
		t.Errorf("DaysUntil same day = %d, want 0", got)
	}
}

func TestTaskUpdateApplyPartial(t *testing.T) {
	task := validTask()
	task.ID = "t1"

	name := "Renamed"
	progress := 40
	update := TaskUpdate{Name: &name, Progress: &progress}
	update.Apply(&task)

	if task.Name != "Renamed" || task.Progress != 40 {
		t.Errorf("update not applied: %+v", task)
	}
	// Untouched fields keep their values.
	if task.Category != CategoryOperation || task.Status != StatusNotStarted {
		t.Errorf("unset fields were modified: %+v", task)
	}
	if len(task.Responsible) != 2 {
		t.Errorf("responsible was modified: %v", task.Responsible)
	}
}

func TestCloneIsDeep(t *testing.T) {
	task := validTask()
	task.Dependencies = []string{"x"}

	clone := task.Clone()
	clone.Responsible[0] = "other"
	clone.Dependencies[0] = "y"

	if task.Responsible[0] != "hong" || task.Dependencies[0] != "x" {
		t.Error("Clone shares slices with the original")
	}
}
