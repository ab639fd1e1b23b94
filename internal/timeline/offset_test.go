package timeline

import (
	"testing"
	"time"

	"github.com/WBS/schedule-tracker/internal/models"
)

func offsetGrid(t *testing.T) Grid {
	t.Helper()
	tasks := []models.Task{
		spanTask("a", models.NewDate(2024, time.January, 15), models.NewDate(2024, time.March, 10)),
	}
	grid, err := BuildGrid(tasks)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}
	return grid
}

func TestTaskSpan(t *testing.T) {
	grid := offsetGrid(t)

	task := spanTask("b", models.NewDate(2024, time.January, 15), models.NewDate(2024, time.January, 20))
	span := grid.TaskSpan(task)

	if span.StartOffsetDays != 14 {
		t.Errorf("startOffsetDays = %d, want 14", span.StartOffsetDays)
	}
	if span.DurationDays != 6 {
		t.Errorf("durationDays = %d, want 6", span.DurationDays)
	}
	if want := 14.0 / 91.0; span.Left != want {
		t.Errorf("left = %f, want %f", span.Left, want)
	}
	if want := 6.0 / 91.0; span.Width != want {
		t.Errorf("width = %f, want %f", span.Width, want)
	}
}

func TestTaskSpanSingleDay(t *testing.T) {
	grid := offsetGrid(t)

	day := models.NewDate(2024, time.February, 1)
	span := grid.TaskSpan(spanTask("c", day, day))

	if span.DurationDays != 1 {
		t.Errorf("single-day task has duration %d, want 1", span.DurationDays)
	}
	if span.StartOffsetDays != 31 {
		t.Errorf("startOffsetDays = %d, want 31", span.StartOffsetDays)
	}
}

func TestTaskSpanAtGridStart(t *testing.T) {
	grid := offsetGrid(t)

	span := grid.TaskSpan(spanTask("d", grid.Start, grid.Start.AddDays(9)))
	if span.StartOffsetDays != 0 || span.Left != 0 {
		t.Errorf("task at grid start: offset=%d left=%f, want 0/0", span.StartOffsetDays, span.Left)
	}
}

func TestTodayMarker(t *testing.T) {
	grid := offsetGrid(t)

	marker, ok := grid.TodayMarker(models.NewDate(2024, time.February, 15))
	if !ok {
		t.Fatal("expected marker inside the grid")
	}
	if want := 45.0 / 91.0; marker != want {
		t.Errorf("marker = %f, want %f", marker, want)
	}

	if _, ok := grid.TodayMarker(models.NewDate(2023, time.December, 31)); ok {
		t.Error("marker before grid start should be omitted")
	}
	if _, ok := grid.TodayMarker(models.NewDate(2024, time.April, 2)); ok {
		t.Error("marker after grid end should be omitted")
	}

	// Boundary dates still show the marker.
	if _, ok := grid.TodayMarker(grid.Start); !ok {
		t.Error("marker at grid start should be shown")
	}
	if _, ok := grid.TodayMarker(grid.End); !ok {
		t.Error("marker at grid end should be shown")
	}
}
