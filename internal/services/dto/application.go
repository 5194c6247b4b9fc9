package dto

import (
	"time"

	"kirismor_backend/internal/models"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required" validate:"application_status"`
}

type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	JobTitle    string                   `json:"job_title,omitempty"`
	ApplicantID *string                  `json:"applicant_id,omitempty"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}
