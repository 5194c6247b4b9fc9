package models

import "time"

// GuestFeedback is the permanent, verified record of an unauthenticated
// visitor's comment on a job.
type GuestFeedback struct {
	BaseModel
	JobID       string `gorm:"type:uuid;not null;index" json:"job_id"`
	Email       string `gorm:"not null;index" json:"email"`
	Message     string `gorm:"type:text;not null" json:"message"`
	PhoneNumber string `gorm:"size:15" json:"phone_number"`
	IsVerified  bool   `gorm:"default:false" json:"is_verified"`

	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}

// TempGuestFeedback stages feedback until the visitor confirms the emailed
// token. One staged row per email; resubmitting replaces it.
type TempGuestFeedback struct {
	BaseModel
	JobID             string    `gorm:"type:uuid;not null" json:"job_id"`
	Email             string    `gorm:"not null;uniqueIndex" json:"email"`
	Message           string    `gorm:"type:text;not null" json:"message"`
	PhoneNumber       string    `gorm:"size:15" json:"phone_number"`
	VerificationToken string    `gorm:"not null;index" json:"-"`
	ExpiresAt         time.Time `gorm:"not null" json:"-"`
}
