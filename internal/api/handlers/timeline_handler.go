package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/WBS/schedule-tracker/internal/models"
	"github.com/WBS/schedule-tracker/internal/service"
)

type TimelineHandler struct {
	taskService *service.TaskService
	teamMembers []string
}

func NewTimelineHandler(taskService *service.TaskService, teamMembers []string) *TimelineHandler {
	return &TimelineHandler{
		taskService: taskService,
		teamMembers: teamMembers,
	}
}

func (h *TimelineHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	if h.taskService.Loading() {
		writeLoading(w)
		return
	}

	state := h.taskService.TimelineState(models.Today(), categoryParam(r))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(state)
}

func (h *TimelineHandler) GetMilestones(w http.ResponseWriter, r *http.Request) {
	if h.taskService.Loading() {
		writeLoading(w)
		return
	}

	state := h.taskService.MilestoneState(models.Today())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(state)
}

type vocabularyEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

func (h *TimelineHandler) GetMeta(w http.ResponseWriter, r *http.Request) {
	categories := make([]vocabularyEntry, 0, len(models.Categories))
	for _, c := range models.Categories {
		categories = append(categories, vocabularyEntry{
			ID:    string(c),
			Label: models.CategoryLabels[c],
			Color: models.CategoryColors[c],
		})
	}

	statuses := make([]vocabularyEntry, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		statuses = append(statuses, vocabularyEntry{
			ID:    string(s),
			Label: models.StatusLabels[s],
			Color: models.StatusColors[s],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"categories":  categories,
		"statuses":    statuses,
		"teamMembers": h.teamMembers,
	})
}
