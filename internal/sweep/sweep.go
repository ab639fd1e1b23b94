// Package sweep runs a scheduled diagnostic pass over the task
// snapshot, logging tasks whose deadlines have slipped. It only reads:
// status changes stay on the explicit mutation paths.
package sweep

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/WBS/schedule-tracker/internal/models"
	"github.com/WBS/schedule-tracker/internal/service"
	"github.com/WBS/schedule-tracker/internal/timeline"
)

type Service struct {
	taskService *service.TaskService
	cron        *cron.Cron
}

func NewService(taskService *service.TaskService) *Service {
	return &Service{
		taskService: taskService,
	}
}

// Start schedules the daily sweep and runs one immediately.
func (s *Service) Start() {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc("@daily", s.Run); err != nil {
		log.Printf("[sweep] failed to schedule: %v", err)
		return
	}
	s.cron.Start()
	s.Run()
}

func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Run reports every overdue, non-completed task in the snapshot.
func (s *Service) Run() {
	tasks, loading := s.taskService.Snapshot()
	if loading {
		log.Printf("[sweep] skipped, tasks not loaded yet")
		return
	}

	today := models.Today()
	overdue := 0
	for _, task := range tasks {
		badge, ok := timeline.ClassifyDeadline(task, today)
		if !ok || badge.Tier != timeline.BadgeOverdue {
			continue
		}
		overdue++
		log.Printf("[sweep] task %s (%s) is %s", task.ID, task.Name, badge.Label)
	}

	log.Printf("[sweep] done, %d of %d tasks overdue", overdue, len(tasks))
}
