// Package timeline is the layout and derivation engine: every function
// here is a pure transformation over an immutable snapshot of tasks and
// a reference "today" date.
package timeline

import (
	"fmt"

	"github.com/WBS/schedule-tracker/internal/models"
)

type BadgeTier string

const (
	BadgeOverdue  BadgeTier = "overdue"
	BadgeDueToday BadgeTier = "due-today"
	BadgeUrgent   BadgeTier = "urgent"
	BadgeWarning  BadgeTier = "warning"
	BadgeNormal   BadgeTier = "normal"
)

// DeadlineBadge is the derived urgency marker shown next to a task.
type DeadlineBadge struct {
	Tier          BadgeTier `json:"tier"`
	DaysRemaining int       `json:"daysRemaining"`
	Label         string    `json:"label"`
}

// DaysRemaining returns the day-granular count from today to the task's
// end date. Negative once today is past the end date.
func DaysRemaining(t models.Task, today models.Date) int {
	return today.DaysUntil(t.EndDate)
}

// ClassifyDeadline derives the deadline badge for a task. Completed
// tasks carry no badge; ok is false for them.
func ClassifyDeadline(t models.Task, today models.Date) (DeadlineBadge, bool) {
	if t.Status == models.StatusCompleted {
		return DeadlineBadge{}, false
	}

	days := DaysRemaining(t, today)
	badge := DeadlineBadge{DaysRemaining: days}

	switch {
	case days < 0:
		badge.Tier = BadgeOverdue
		badge.Label = fmt.Sprintf("%d days overdue", -days)
		if days == -1 {
			badge.Label = "1 day overdue"
		}
	case days == 0:
		badge.Tier = BadgeDueToday
		badge.Label = "due today"
	case days <= 3:
		badge.Tier = BadgeUrgent
		badge.Label = fmt.Sprintf("D-%d", days)
	case days <= 7:
		badge.Tier = BadgeWarning
		badge.Label = fmt.Sprintf("D-%d", days)
	default:
		badge.Tier = BadgeNormal
		badge.Label = fmt.Sprintf("D-%d", days)
	}

	return badge, true
}
