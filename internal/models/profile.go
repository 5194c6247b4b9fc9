package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profiles are 1:1 satellites of User. The user id is the profile's own
// primary key, so a profile cannot outlive its user and each user owns at
// most one row per profile table.

type CandidateProfile struct {
	UserID      string         `gorm:"type:uuid;primaryKey" json:"user_id"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	PhoneNumber string         `gorm:"size:15" json:"phone_number"`
	PhotoURL    string         `json:"photo_url"`
	Location    string         `json:"location"`
	Bio         string         `json:"bio"`
	DateOfBirth *time.Time     `json:"date_of_birth,omitempty"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// Age derives the candidate's age in whole years, nil when unknown.
func (p *CandidateProfile) Age(now time.Time) *int {
	if p.DateOfBirth == nil {
		return nil
	}
	years := now.Year() - p.DateOfBirth.Year()
	// Compare month and day, not YearDay, so leap years do not shift
	// the birthday.
	if now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day()) {
		years--
	}
	return &years
}

type ClientProfile struct {
	UserID      string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	PhoneNumber string    `gorm:"size:15" json:"phone_number"`
	PhotoURL    string    `json:"photo_url"`
	Location    string    `json:"location"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type RecruiterProfile struct {
	UserID      string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	CompanyName string    `json:"company_name"`
	PhoneNumber string    `gorm:"size:15" json:"phone_number"`
	PhotoURL    string    `json:"photo_url"`
	Location    string    `json:"location"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
