package timeline

import (
	"errors"

	"github.com/WBS/schedule-tracker/internal/models"
)

// ErrNoTasks is returned when a grid is requested for an empty
// collection. A zero-day grid would be a zero denominator for every
// offset computation, so the caller must special-case it.
var ErrNoTasks = errors.New("no tasks to lay out")

// MonthBucket is one column of the timeline header.
type MonthBucket struct {
	Label  string `json:"label"`  // "2024-01"
	Days   int    `json:"days"`   // actual day count of the month
	Offset int    `json:"offset"` // cumulative days from grid start
}

// Grid is the month-bucketed coordinate system covering every task.
// It always starts on the first day of the earliest month and ends on
// the last day of the latest month.
type Grid struct {
	Start     models.Date   `json:"start"`
	End       models.Date   `json:"end"`
	TotalDays int           `json:"totalDays"`
	Months    []MonthBucket `json:"months"`
}

// BuildGrid computes the minimal month-aligned span over all task start
// and end dates and splits it into month buckets.
func BuildGrid(tasks []models.Task) (Grid, error) {
	if len(tasks) == 0 {
		return Grid{}, ErrNoTasks
	}

	minDate := tasks[0].StartDate
	maxDate := tasks[0].EndDate
	for _, t := range tasks {
		if t.StartDate.Before(minDate.Time) {
			minDate = t.StartDate
		}
		if t.EndDate.Before(minDate.Time) {
			minDate = t.EndDate
		}
		if t.EndDate.After(maxDate.Time) {
			maxDate = t.EndDate
		}
		if t.StartDate.After(maxDate.Time) {
			maxDate = t.StartDate
		}
	}

	start := models.NewDate(minDate.Year(), minDate.Month(), 1)
	// Day 0 of the next month is the last day of maxDate's month.
	end := models.NewDate(maxDate.Year(), maxDate.Month()+1, 0)

	grid := Grid{
		Start:     start,
		End:       end,
		TotalDays: start.DaysUntil(end) + 1,
	}

	offset := 0
	for cur := start; !cur.After(end.Time); cur = models.NewDate(cur.Year(), cur.Month()+1, 1) {
		days := models.NewDate(cur.Year(), cur.Month()+1, 0).Day()
		grid.Months = append(grid.Months, MonthBucket{
			Label:  cur.Format("2006-01"),
			Days:   days,
			Offset: offset,
		})
		offset += days
	}

	return grid, nil
}

// MonthWidth returns a bucket's share of the total span, for scaling
// header columns.
func (g Grid) MonthWidth(m MonthBucket) float64 {
	return float64(m.Days) / float64(g.TotalDays)
}
