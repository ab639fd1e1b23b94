package timeline

import (
	"errors"
	"testing"
	"time"

	"github.com/WBS/schedule-tracker/internal/models"
)

func spanTask(id string, start, end models.Date) models.Task {
	return models.Task{
		ID:          id,
		Name:        id,
		Category:    models.CategoryDevelopment,
		StartDate:   start,
		EndDate:     end,
		Responsible: []string{"hong"},
		Status:      models.StatusInProgress,
	}
}

func TestBuildGridMonthAlignment(t *testing.T) {
	tasks := []models.Task{
		spanTask("a", models.NewDate(2024, time.January, 15), models.NewDate(2024, time.February, 10)),
		spanTask("b", models.NewDate(2024, time.February, 1), models.NewDate(2024, time.March, 10)),
	}

	grid, err := BuildGrid(tasks)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	if grid.Start.String() != "2024-01-01" {
		t.Errorf("grid start = %s, want 2024-01-01", grid.Start)
	}
	if grid.End.String() != "2024-03-31" {
		t.Errorf("grid end = %s, want 2024-03-31", grid.End)
	}
	if grid.TotalDays != 91 {
		t.Errorf("totalDays = %d, want 91", grid.TotalDays)
	}

	want := []MonthBucket{
		{Label: "2024-01", Days: 31, Offset: 0},
		{Label: "2024-02", Days: 29, Offset: 31}, // leap year
		{Label: "2024-03", Days: 31, Offset: 60},
	}
	if len(grid.Months) != len(want) {
		t.Fatalf("got %d month buckets, want %d", len(grid.Months), len(want))
	}
	for i, m := range grid.Months {
		if m != want[i] {
			t.Errorf("month %d = %+v, want %+v", i, m, want[i])
		}
	}
}

func TestBuildGridSingleMonth(t *testing.T) {
	tasks := []models.Task{
		spanTask("a", models.NewDate(2025, time.June, 5), models.NewDate(2025, time.June, 20)),
	}

	grid, err := BuildGrid(tasks)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}
	if grid.Start.String() != "2025-06-01" || grid.End.String() != "2025-06-30" {
		t.Errorf("grid span = %s..%s, want 2025-06-01..2025-06-30", grid.Start, grid.End)
	}
	if grid.TotalDays != 30 {
		t.Errorf("totalDays = %d, want 30", grid.TotalDays)
	}
	if len(grid.Months) != 1 {
		t.Errorf("got %d month buckets, want 1", len(grid.Months))
	}
}

func TestBuildGridYearBoundary(t *testing.T) {
	tasks := []models.Task{
		spanTask("a", models.NewDate(2024, time.December, 20), models.NewDate(2025, time.January, 5)),
	}

	grid, err := BuildGrid(tasks)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}
	if grid.TotalDays != 62 {
		t.Errorf("totalDays = %d, want 62", grid.TotalDays)
	}
	if grid.Months[0].Label != "2024-12" || grid.Months[1].Label != "2025-01" {
		t.Errorf("month labels = %s, %s", grid.Months[0].Label, grid.Months[1].Label)
	}
}

func TestBuildGridEmptyCollection(t *testing.T) {
	_, err := BuildGrid(nil)
	if !errors.Is(err, ErrNoTasks) {
		t.Errorf("got err %v, want ErrNoTasks", err)
	}
}

func TestMonthWidthsSumToOne(t *testing.T) {
	tasks := []models.Task{
		spanTask("a", models.NewDate(2024, time.January, 15), models.NewDate(2024, time.March, 10)),
	}
	grid, err := BuildGrid(tasks)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	sum := 0.0
	for _, m := range grid.Months {
		sum += grid.MonthWidth(m)
	}
	if sum < 0.9999 || sum > 1.0001 {
		t.Errorf("month widths sum to %f, want 1", sum)
	}
}
