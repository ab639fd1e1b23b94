package timeline

import "github.com/WBS/schedule-tracker/internal/models"

// CategoryGroup is one bucket of the category partition.
type CategoryGroup struct {
	Category models.Category
	Tasks    []models.Task
}

// GroupByCategory partitions tasks by category. The partition is
// stable: tasks keep their source order inside each group, and groups
// appear in first-occurrence order, not fixed enum order. An empty
// input yields an empty (non-nil-safe to range) result.
func GroupByCategory(tasks []models.Task) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[models.Category]int)

	for _, task := range tasks {
		i, ok := index[task.Category]
		if !ok {
			i = len(groups)
			index[task.Category] = i
			groups = append(groups, CategoryGroup{Category: task.Category})
		}
		groups[i].Tasks = append(groups[i].Tasks, task)
	}

	return groups
}
