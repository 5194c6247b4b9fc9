package dto

import (
	"time"

	"kirismor_backend/internal/models"
)

type RegisterRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required" validate:"user_role"`

	// Candidate fields
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`

	// Client and recruiter fields
	CompanyName string `json:"company_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" binding:"omitempty,max=15"`
	Location    string `json:"location,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

type UserDTO struct {
	ID         string            `json:"id"`
	Email      string            `json:"email"`
	Role       models.UserRole   `json:"role"`
	Status     models.UserStatus `json:"status"`
	IsVerified bool              `json:"is_verified"`
	IsStaff    bool              `json:"is_staff"`
	CreatedAt  time.Time         `json:"created_at"`
	Profile    interface{}       `json:"profile,omitempty"`
}

type AdminCreateUserRequest struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required" validate:"user_role"`
	IsStaff  bool            `json:"is_staff"`
}

type UpdateUserStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required,oneof=pending active suspended banned"`
}

type UserListResponse struct {
	Users      []UserDTO  `json:"users"`
	Pagination Pagination `json:"pagination"`
}
