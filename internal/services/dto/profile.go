package dto

import "time"

type UpdateCandidateProfileRequest struct {
	FirstName   *string    `json:"first_name,omitempty"`
	LastName    *string    `json:"last_name,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty" binding:"omitempty,max=15"`
	PhotoURL    *string    `json:"photo_url,omitempty"`
	Location    *string    `json:"location,omitempty"`
	Bio         *string    `json:"bio,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Skills      []string   `json:"skills,omitempty"`
}

type UpdateClientProfileRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty" binding:"omitempty,max=15"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Location    *string `json:"location,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

type UpdateRecruiterProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty" binding:"omitempty,max=15"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Location    *string `json:"location,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

type CandidateProfileResponse struct {
	UserID      string     `json:"user_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Location    string     `json:"location,omitempty"`
	Bio         string     `json:"bio,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Age         *int       `json:"age,omitempty"`
	Skills      []string   `json:"skills,omitempty"`
}

type RecruiterListResponse struct {
	Recruiters []RecruiterDTO `json:"recruiters"`
	Pagination Pagination     `json:"pagination"`
}

type RecruiterDTO struct {
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name,omitempty"`
	Location    string `json:"location,omitempty"`
	IsFavorite  bool   `json:"is_favorite"`
}
