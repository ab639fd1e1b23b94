package service

import "github.com/WBS/schedule-tracker/internal/models"

// TaskStore is the persistence collaborator. The service never reads it
// back after the initial bulk load: each mutation emits exactly one
// store command, and the outcome of that command does not alter the
// in-memory snapshot.
type TaskStore interface {
	GetTasks() ([]models.Task, error)
	Insert(task models.Task) error
	Update(task models.Task) error
	Delete(id string) error
}
