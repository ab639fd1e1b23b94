package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/WBS/schedule-tracker/internal/models"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// GetTasks performs the one-time bulk load, ordered by start date
// ascending.
func (r *TaskRepository) GetTasks() ([]models.Task, error) {
	query := `
		SELECT id, name, category, start_date, end_date, progress,
		       responsible, status, dependencies, description, is_milestone
		FROM tasks
		ORDER BY start_date ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("Error trying to get tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task

	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) Insert(task models.Task) error {
	responsible, dependencies, err := encodeLists(task)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (id, name, category, start_date, end_date, progress,
		                   responsible, status, dependencies, description, is_milestone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		task.ID,
		task.Name,
		string(task.Category),
		task.StartDate.String(),
		task.EndDate.String(),
		task.Progress,
		responsible,
		string(task.Status),
		dependencies,
		task.Description,
		task.IsMilestone,
	)
	if err != nil {
		return fmt.Errorf("Error trying to insert task: %w", err)
	}

	return nil
}

func (r *TaskRepository) Update(task models.Task) error {
	responsible, dependencies, err := encodeLists(task)
	if err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET name = ?, category = ?, start_date = ?, end_date = ?, progress = ?,
		    responsible = ?, status = ?, dependencies = ?, description = ?,
		    is_milestone = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err = r.db.Exec(query,
		task.Name,
		string(task.Category),
		task.StartDate.String(),
		task.EndDate.String(),
		task.Progress,
		responsible,
		string(task.Status),
		dependencies,
		task.Description,
		task.IsMilestone,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("Error trying to update task: %w", err)
	}

	return nil
}

func (r *TaskRepository) Delete(id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("Error trying to delete task: %w", err)
	}
	return nil
}

func encodeLists(task models.Task) (responsible string, dependencies string, err error) {
	b, err := json.Marshal(task.Responsible)
	if err != nil {
		return "", "", fmt.Errorf("marshal responsible: %w", err)
	}
	responsible = string(b)

	deps := task.Dependencies
	if deps == nil {
		deps = []string{}
	}
	b, err = json.Marshal(deps)
	if err != nil {
		return "", "", fmt.Errorf("marshal dependencies: %w", err)
	}
	dependencies = string(b)

	return responsible, dependencies, nil
}

func scanTask(rows *sql.Rows) (models.Task, error) {
	var task models.Task
	var category, status, startDate, endDate, responsible string
	var dependencies, description sql.NullString

	err := rows.Scan(
		&task.ID,
		&task.Name,
		&category,
		&startDate,
		&endDate,
		&task.Progress,
		&responsible,
		&status,
		&dependencies,
		&description,
		&task.IsMilestone,
	)
	if err != nil {
		return models.Task{}, fmt.Errorf("scan task: %w", err)
	}

	task.Category = models.Category(category)
	task.Status = models.Status(status)

	task.StartDate, err = models.ParseDate(startDate)
	if err != nil {
		return models.Task{}, fmt.Errorf("parse start date: %w", err)
	}
	task.EndDate, err = models.ParseDate(endDate)
	if err != nil {
		return models.Task{}, fmt.Errorf("parse end date: %w", err)
	}

	if err := json.Unmarshal([]byte(responsible), &task.Responsible); err != nil {
		return models.Task{}, fmt.Errorf("parse responsible: %w", err)
	}

	if dependencies.Valid && dependencies.String != "" {
		var deps []string
		if err := json.Unmarshal([]byte(dependencies.String), &deps); err != nil {
			return models.Task{}, fmt.Errorf("parse dependencies: %w", err)
		}
		if len(deps) > 0 {
			task.Dependencies = deps
		}
	}

	if description.Valid {
		task.Description = description.String
	}

	return task, nil
}
