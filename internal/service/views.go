package service

import (
	"github.com/dustin/go-humanize"

	"github.com/WBS/schedule-tracker/internal/models"
	"github.com/WBS/schedule-tracker/internal/timeline"
)

// TaskView is a task enriched with the derived display state the list
// view needs.
type TaskView struct {
	models.Task
	Badge       *timeline.DeadlineBadge `json:"badge,omitempty"`
	DependsOn   []string                `json:"dependsOn,omitempty"`
	DueLabel    string                  `json:"dueLabel,omitempty"`
	StatusLabel string                  `json:"statusLabel"`
	StatusColor string                  `json:"statusColor"`
}

type ListGroup struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Color    string          `json:"color"`
	Tasks    []TaskView      `json:"tasks"`
}

type ListState struct {
	Loading bool        `json:"loading"`
	Groups  []ListGroup `json:"groups"`
}

// ListState builds the grouped list view for the given reference date.
// category filters to a single category; empty means all.
func (s *TaskService) ListState(today models.Date, category models.Category) ListState {
	tasks, loading := s.Snapshot()
	state := ListState{Loading: loading}
	if loading {
		return state
	}

	filtered := filterByCategory(tasks, category)

	for _, group := range timeline.GroupByCategory(filtered) {
		lg := ListGroup{
			Category: group.Category,
			Label:    models.CategoryLabels[group.Category],
			Color:    models.CategoryColors[group.Category],
		}
		for _, task := range group.Tasks {
			view := TaskView{
				Task:        task,
				DependsOn:   timeline.ResolveDependencies(task, tasks),
				StatusLabel: models.StatusLabels[task.Status],
				StatusColor: models.StatusColors[task.Status],
			}
			if badge, ok := timeline.ClassifyDeadline(task, today); ok {
				view.Badge = &badge
				view.DueLabel = humanize.RelTime(task.EndDate.Time, today.Time, "overdue", "left")
			}
			lg.Tasks = append(lg.Tasks, view)
		}
		state.Groups = append(state.Groups, lg)
	}

	return state
}

// TimelineBar is one rendered bar of the Gantt view.
type TimelineBar struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Responsible []string      `json:"responsible"`
	Progress    int           `json:"progress"`
	Status      models.Status `json:"status"`
	StatusColor string        `json:"statusColor"`
	timeline.Span
}

type TimelineGroup struct {
	Category models.Category `json:"category"`
	Label    string          `json:"label"`
	Color    string          `json:"color"`
	Bars     []TimelineBar   `json:"bars"`
}

type TimelineState struct {
	Loading bool            `json:"loading"`
	Empty   bool            `json:"empty"`
	Grid    *timeline.Grid  `json:"grid,omitempty"`
	Today   *float64        `json:"today,omitempty"`
	Groups  []TimelineGroup `json:"groups,omitempty"`
}

// TimelineState builds the Gantt view. With no tasks it reports an
// explicit empty state instead of attempting a zero-day grid.
func (s *TaskService) TimelineState(today models.Date, category models.Category) TimelineState {
	tasks, loading := s.Snapshot()
	state := TimelineState{Loading: loading}
	if loading {
		return state
	}

	filtered := filterByCategory(tasks, category)
	if len(filtered) == 0 {
		state.Empty = true
		return state
	}

	grid, err := timeline.BuildGrid(filtered)
	if err != nil {
		state.Empty = true
		return state
	}
	state.Grid = &grid

	if marker, ok := grid.TodayMarker(today); ok {
		state.Today = &marker
	}

	for _, group := range timeline.GroupByCategory(filtered) {
		tg := TimelineGroup{
			Category: group.Category,
			Label:    models.CategoryLabels[group.Category],
			Color:    models.CategoryColors[group.Category],
		}
		for _, task := range group.Tasks {
			tg.Bars = append(tg.Bars, TimelineBar{
				ID:          task.ID,
				Name:        task.Name,
				Responsible: task.Responsible,
				Progress:    task.Progress,
				Status:      task.Status,
				StatusColor: models.StatusColors[task.Status],
				Span:        grid.TaskSpan(task),
			})
		}
		state.Groups = append(state.Groups, tg)
	}

	return state
}

// MilestoneView adds the countdown the milestone cards display.
type MilestoneView struct {
	models.Milestone
	DaysUntil int    `json:"daysUntil"`
	DueLabel  string `json:"dueLabel"`
}

type MilestoneState struct {
	Loading    bool            `json:"loading"`
	Milestones []MilestoneView `json:"milestones"`
}

// MilestoneState projects the milestone list from the current snapshot.
func (s *TaskService) MilestoneState(today models.Date) MilestoneState {
	tasks, loading := s.Snapshot()
	state := MilestoneState{Loading: loading}
	if loading {
		return state
	}

	for _, m := range timeline.ProjectMilestones(tasks) {
		state.Milestones = append(state.Milestones, MilestoneView{
			Milestone: m,
			DaysUntil: today.DaysUntil(m.Date),
			DueLabel:  humanize.RelTime(m.Date.Time, today.Time, "overdue", "left"),
		})
	}

	return state
}

func filterByCategory(tasks []models.Task, category models.Category) []models.Task {
	if category == "" {
		return tasks
	}
	var filtered []models.Task
	for _, t := range tasks {
		if t.Category == category {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
