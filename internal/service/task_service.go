package service

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/WBS/schedule-tracker/internal/models"
)

// TaskService owns the in-memory task collection. Mutations apply to
// the snapshot first and then emit one asynchronous store command each;
// a failed command is logged and never rolls the snapshot back.
type TaskService struct {
	store TaskStore

	mu      sync.Mutex
	tasks   []models.Task
	loading bool
}

func NewTaskService(store TaskStore) *TaskService {
	return &TaskService{
		store:   store,
		loading: true,
	}
}

// Load performs the one-time bulk fetch. Until it finishes, readers see
// the loading state, so "not yet loaded" is never mistaken for "no
// tasks exist". On failure the service settles into an empty-but-loaded
// state instead of crashing.
func (s *TaskService) Load() {
	tasks, err := s.store.GetTasks()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		log.Printf("load tasks: %v", err)
		s.tasks = nil
	} else {
		s.tasks = tasks
	}
	s.loading = false
}

func (s *TaskService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Snapshot returns a deep copy of the collection and the loading flag.
func (s *TaskService) Snapshot() ([]models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cloneLocked(), s.loading
}

func (s *TaskService) cloneLocked() []models.Task {
	tasks := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t.Clone())
	}
	return tasks
}

// AddTask validates, assigns a fresh id, and appends the task. The id
// is assigned only after validation passes, and no store command is
// attempted for a rejected task.
func (s *TaskService) AddTask(task models.Task) (models.Task, error) {
	task.ID = ""
	if err := task.Validate(); err != nil {
		return models.Task{}, fmt.Errorf("invalid task: %w", err)
	}

	task.ID = uuid.NewString()
	task = task.Clone()

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.persist("insert", func() error { return s.store.Insert(task) })

	return task, nil
}

// UpdateTask merges a partial update into the matching task. An unknown
// id is a silent no-op: false is returned and no store command is
// emitted.
func (s *TaskService) UpdateTask(id string, update models.TaskUpdate) (models.Task, bool) {
	s.mu.Lock()

	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Task{}, false
	}

	update.Apply(&s.tasks[i])
	updated := s.tasks[i].Clone()
	s.mu.Unlock()

	s.persist("update", func() error { return s.store.Update(updated) })

	return updated, true
}

// DeleteTask removes the matching task; unknown ids are a no-op.
func (s *TaskService) DeleteTask(id string) bool {
	s.mu.Lock()

	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.mu.Unlock()

	s.persist("delete", func() error { return s.store.Delete(id) })

	return true
}

// SetProgress is the progress-slider path. It carries the one place
// where progress drives status: 100 forces completed, anything between
// forces in-progress, and zero leaves the prior status untouched.
// Direct status changes through UpdateTask bypass this rule.
func (s *TaskService) SetProgress(id string, progress int) (models.Task, bool, error) {
	if progress < 0 || progress > 100 {
		return models.Task{}, false, fmt.Errorf("progress must be between 0 and 100, got %d", progress)
	}

	s.mu.Lock()

	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Task{}, false, nil
	}

	s.tasks[i].Progress = progress
	switch {
	case progress == 100:
		s.tasks[i].Status = models.StatusCompleted
	case progress > 0:
		s.tasks[i].Status = models.StatusInProgress
	}
	updated := s.tasks[i].Clone()
	s.mu.Unlock()

	s.persist("update", func() error { return s.store.Update(updated) })

	return updated, true, nil
}

func (s *TaskService) indexLocked(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskService) persist(op string, command func() error) {
	go func() {
		if err := command(); err != nil {
			log.Printf("persist %s: %v", op, err)
		}
	}()
}
