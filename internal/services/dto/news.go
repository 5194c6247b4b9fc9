package dto

import (
	"time"

	"kirismor_backend/internal/models"
)

type CreateNewsRequest struct {
	Title   string          `json:"title" binding:"required,max=200"`
	Content string          `json:"content" binding:"required"`
	Role    models.UserRole `json:"role" binding:"required" validate:"user_role"`
}

type UpdateNewsRequest struct {
	Title   *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Content *string `json:"content,omitempty"`
}

type NewsResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

type NewsListResponse struct {
	News       []NewsResponse `json:"news"`
	Pagination Pagination     `json:"pagination"`
}
