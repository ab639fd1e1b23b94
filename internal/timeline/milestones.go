package timeline

import "github.com/WBS/schedule-tracker/internal/models"

// ProjectMilestones derives the milestone list from tasks flagged as
// milestones. Order follows the source task order. Re-running on an
// unchanged collection yields an identical list.
func ProjectMilestones(tasks []models.Task) []models.Milestone {
	var milestones []models.Milestone
	for _, t := range tasks {
		if !t.IsMilestone {
			continue
		}
		status := models.MilestoneUpcoming
		if t.Status == models.StatusCompleted {
			status = models.MilestoneCompleted
		}
		milestones = append(milestones, models.Milestone{
			ID:          t.ID,
			Name:        t.Name,
			Date:        t.EndDate,
			Status:      status,
			Description: t.Description,
		})
	}
	return milestones
}

// ResolveDependencies maps a task's dependency ids to the names of the
// tasks they point at. Dangling references are dropped silently.
func ResolveDependencies(t models.Task, tasks []models.Task) []string {
	if len(t.Dependencies) == 0 {
		return nil
	}
	byID := make(map[string]string, len(tasks))
	for _, other := range tasks {
		byID[other.ID] = other.Name
	}
	var names []string
	for _, dep := range t.Dependencies {
		if name, ok := byID[dep]; ok {
			names = append(names, name)
		}
	}
	return names
}
