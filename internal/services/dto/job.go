package dto

import (
	"time"

	"kirismor_backend/internal/models"
)

type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description" binding:"required"`
	Requirements string   `json:"requirements,omitempty"`
	Salary       *float64 `json:"salary,omitempty" binding:"omitempty,gte=0"`
}

type UpdateJobRequest struct {
	Title        *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Description  *string  `json:"description,omitempty"`
	Requirements *string  `json:"requirements,omitempty"`
	Salary       *float64 `json:"salary,omitempty" binding:"omitempty,gte=0"`
}

type JobListQuery struct {
	Search string `form:"q"`
	Page   int    `form:"page"`
	Size   int    `form:"page_size"`
}

type JobResponse struct {
	ID           string           `json:"id"`
	RecruiterID  string           `json:"recruiter_id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Requirements string           `json:"requirements,omitempty"`
	Salary       *float64         `json:"salary,omitempty"`
	Status       models.JobStatus `json:"status"`
	LikeCount    int64            `json:"like_count"`
	CreatedAt    time.Time        `json:"created_at"`

	// Set for authenticated candidates only.
	Liked     *bool `json:"liked,omitempty"`
	Favorited *bool `json:"favorited,omitempty"`
}

type JobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Pagination Pagination    `json:"pagination"`
}
