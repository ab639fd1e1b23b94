package models

import "fmt"

type Category string

const (
	CategoryDevelopment Category = "development"
	CategoryOperation   Category = "operation"
	CategoryMarketing   Category = "marketing"
	CategoryLegal       Category = "legal"
)

// Categories lists the closed category vocabulary in display order.
var Categories = []Category{
	CategoryDevelopment,
	CategoryOperation,
	CategoryMarketing,
	CategoryLegal,
}

var CategoryLabels = map[Category]string{
	CategoryDevelopment: "Development",
	CategoryOperation:   "Operation",
	CategoryMarketing:   "Marketing",
	CategoryLegal:       "Legal & Compliance",
}

var CategoryColors = map[Category]string{
	CategoryDevelopment: "blue",
	CategoryOperation:   "green",
	CategoryMarketing:   "purple",
	CategoryLegal:       "orange",
}

func (c Category) Valid() bool {
	_, ok := CategoryLabels[c]
	return ok
}

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusDelayed    Status = "delayed"
)

var Statuses = []Status{
	StatusNotStarted,
	StatusInProgress,
	StatusCompleted,
	StatusDelayed,
}

var StatusLabels = map[Status]string{
	StatusNotStarted: "Not started",
	StatusInProgress: "In progress",
	StatusCompleted:  "Completed",
	StatusDelayed:    "Delayed",
}

var StatusColors = map[Status]string{
	StatusNotStarted: "gray",
	StatusInProgress: "blue",
	StatusCompleted:  "green",
	StatusDelayed:    "red",
}

func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

// Task is the single source-of-truth entity. Everything else the system
// serves (groups, grid buckets, milestones) is recomputed from a
// snapshot of these.
type Task struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	StartDate    Date     `json:"startDate"`
	EndDate      Date     `json:"endDate"`
	Progress     int      `json:"progress"`
	Responsible  []string `json:"responsible"`
	Status       Status   `json:"status"`
	Dependencies []string `json:"dependencies,omitempty"`
	Description  string   `json:"description,omitempty"`
	IsMilestone  bool     `json:"isMilestone"`
}

// Validate checks the fields required at creation time. The ID is not
// checked: it is assigned only after validation passes.
func (t *Task) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if !t.Category.Valid() {
		return fmt.Errorf("unknown category '%s'", t.Category)
	}
	if t.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if t.EndDate.IsZero() {
		return fmt.Errorf("end date is required")
	}
	if t.EndDate.Before(t.StartDate.Time) {
		return fmt.Errorf("end date %s is before start date %s", t.EndDate, t.StartDate)
	}
	if t.Progress < 0 || t.Progress > 100 {
		return fmt.Errorf("progress must be between 0 and 100, got %d", t.Progress)
	}
	if len(t.Responsible) == 0 {
		return fmt.Errorf("at least one responsible member is required")
	}
	if !t.Status.Valid() {
		return fmt.Errorf("unknown status '%s'", t.Status)
	}
	for _, dep := range t.Dependencies {
		if t.ID != "" && dep == t.ID {
			return fmt.Errorf("task cannot depend on itself")
		}
	}
	return nil
}

// Clone returns a deep copy, so snapshots handed to readers cannot
// alias the slices held by the service.
func (t Task) Clone() Task {
	c := t
	c.Responsible = append([]string(nil), t.Responsible...)
	if t.Dependencies != nil {
		c.Dependencies = append([]string(nil), t.Dependencies...)
	}
	return c
}

type MilestoneStatus string

const (
	MilestoneUpcoming  MilestoneStatus = "upcoming"
	MilestoneCompleted MilestoneStatus = "completed"
)

// Milestone is projected 1:1 from tasks flagged IsMilestone. It is
// never stored or mutated on its own.
type Milestone struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Date        Date            `json:"date"`
	Status      MilestoneStatus `json:"status"`
	Description string          `json:"description"`
}

// TaskUpdate carries a partial update: nil fields are left untouched.
type TaskUpdate struct {
	Name         *string   `json:"name,omitempty"`
	Category     *Category `json:"category,omitempty"`
	StartDate    *Date     `json:"startDate,omitempty"`
	EndDate      *Date     `json:"endDate,omitempty"`
	Progress     *int      `json:"progress,omitempty"`
	Responsible  *[]string `json:"responsible,omitempty"`
	Status       *Status   `json:"status,omitempty"`
	Dependencies *[]string `json:"dependencies,omitempty"`
	Description  *string   `json:"description,omitempty"`
	IsMilestone  *bool     `json:"isMilestone,omitempty"`
}

// Apply merges the set fields into the task.
func (u TaskUpdate) Apply(t *Task) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.StartDate != nil {
		t.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		t.EndDate = *u.EndDate
	}
	if u.Progress != nil {
		t.Progress = *u.Progress
	}
	if u.Responsible != nil {
		t.Responsible = append([]string(nil), (*u.Responsible)...)
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
	if u.Dependencies != nil {
		t.Dependencies = append([]string(nil), (*u.Dependencies)...)
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.IsMilestone != nil {
		t.IsMilestone = *u.IsMilestone
	}
}
