package dto

import (
	"time"

	"kirismor_backend/internal/models"
)

type CreateJobRequestRequest struct {
	Title        string  `json:"title" binding:"required,max=200"`
	Description  string  `json:"description" binding:"required"`
	Requirements string  `json:"requirements,omitempty"`
	RecruiterID  *string `json:"recruiter_id,omitempty"`
}

type UpdateJobRequestRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description  *string `json:"description,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	RecruiterID  *string `json:"recruiter_id,omitempty"`
}

type UpdateRequestStatusRequest struct {
	Status  models.RequestStatus `json:"status" binding:"required" validate:"request_status"`
	Comment string               `json:"comment,omitempty"`
}

type RequestListQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page"`
	Size   int    `form:"page_size"`
}

type JobRequestResponse struct {
	ID           string               `json:"id"`
	EmployerID   string               `json:"employer_id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Requirements string               `json:"requirements,omitempty"`
	Status       models.RequestStatus `json:"status"`
	RecruiterID  *string              `json:"recruiter_id,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

type JobRequestListResponse struct {
	Requests   []JobRequestResponse `json:"requests"`
	Pagination Pagination           `json:"pagination"`
}

type StatusUpdateResponse struct {
	ID          string               `json:"id"`
	RequestID   string               `json:"request_id"`
	NewStatus   models.RequestStatus `json:"new_status"`
	UpdatedByID string               `json:"updated_by_id"`
	Message     string               `json:"message,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type RequestHistoryResponse struct {
	Request JobRequestResponse     `json:"request"`
	History []StatusUpdateResponse `json:"history"`
}
