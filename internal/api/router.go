package api

import (
	"database/sql"
	"net/http"

	"github.com/WBS/schedule-tracker/internal/api/handlers"
	"github.com/WBS/schedule-tracker/internal/repository"
	"github.com/WBS/schedule-tracker/internal/service"
)

func SetupRouter(db *sql.DB, teamMembers []string) (*http.ServeMux, *service.TaskService) {
	mux := http.NewServeMux()

	taskRepo := repository.NewTaskRepository(db)
	taskService := service.NewTaskService(taskRepo)

	taskHandler := handlers.NewTaskHandler(taskService)
	timelineHandler := handlers.NewTimelineHandler(taskService, teamMembers)

	mux.HandleFunc("POST /tasks", taskHandler.CreateTask)
	mux.HandleFunc("GET /tasks", taskHandler.ListTasks)
	mux.HandleFunc("PATCH /tasks/{id}", taskHandler.UpdateTask)
	mux.HandleFunc("DELETE /tasks/{id}", taskHandler.DeleteTask)
	mux.HandleFunc("POST /tasks/{id}/progress", taskHandler.UpdateProgress)

	mux.HandleFunc("GET /timeline", timelineHandler.GetTimeline)
	mux.HandleFunc("GET /milestones", timelineHandler.GetMilestones)
	mux.HandleFunc("GET /meta", timelineHandler.GetMeta)

	return mux, taskService
}
