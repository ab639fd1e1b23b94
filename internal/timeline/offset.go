package timeline

import "github.com/WBS/schedule-tracker/internal/models"

// Span is a task's horizontal placement on the grid. Left and Width are
// fractions of the total day span in [0,1]; the caller scales them to
// whatever display width it renders at.
type Span struct {
	StartOffsetDays int     `json:"startOffsetDays"`
	DurationDays    int     `json:"durationDays"`
	Left            float64 `json:"left"`
	Width           float64 `json:"width"`
}

// TaskSpan maps a task's inclusive [start,end] interval onto the grid.
// No clamping: grid bounds are derived from the same collection, so
// every task is in range by construction.
func (g Grid) TaskSpan(t models.Task) Span {
	startOffset := g.Start.DaysUntil(t.StartDate)
	duration := t.StartDate.DaysUntil(t.EndDate) + 1

	return Span{
		StartOffsetDays: startOffset,
		DurationDays:    duration,
		Left:            float64(startOffset) / float64(g.TotalDays),
		Width:           float64(duration) / float64(g.TotalDays),
	}
}

// TodayMarker returns the marker's fractional position. ok is false
// when today falls outside the grid, meaning the marker is simply not
// drawn.
func (g Grid) TodayMarker(today models.Date) (float64, bool) {
	offset := g.Start.DaysUntil(today)
	if offset < 0 || offset > g.TotalDays {
		return 0, false
	}
	return float64(offset) / float64(g.TotalDays), true
}
