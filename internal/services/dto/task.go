package dto

import (
	"time"

	"kirismor_backend/internal/models"
)

type CreateTaskRequest struct {
	Title       string              `json:"title" binding:"required,max=200"`
	Description string              `json:"description,omitempty"`
	Priority    models.TaskPriority `json:"priority" binding:"required" validate:"task_priority"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string              `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string              `json:"description,omitempty"`
	Priority    *models.TaskPriority `json:"priority,omitempty" validate:"omitempty,task_priority"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
}

type UpdateTaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required" validate:"task_status"`
}

type TaskListQuery struct {
	Status   string `form:"status"`
	Priority string `form:"priority"`
	Page     int    `form:"page"`
	Size     int    `form:"page_size"`
}

type TaskResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Priority    models.TaskPriority `json:"priority"`
	Status      models.TaskStatus   `json:"status"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type TaskListResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Pagination Pagination     `json:"pagination"`
}
