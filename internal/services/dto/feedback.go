package dto

import "time"

type SubmitFeedbackRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Message     string `json:"message" binding:"required"`
	PhoneNumber string `json:"phone_number,omitempty" binding:"omitempty,max=15"`
}

// SubmitFeedbackResponse distinguishes the two outcomes of a guest
// submission: an already verified address posts immediately, anyone
// else is asked to confirm via email first.
type SubmitFeedbackResponse struct {
	Posted               bool   `json:"posted"`
	VerificationRequired bool   `json:"verification_required"`
	Message              string `json:"message"`
}

type FeedbackResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	JobTitle  string    `json:"job_title,omitempty"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type FeedbackListResponse struct {
	Feedbacks []FeedbackResponse `json:"feedbacks"`
}
