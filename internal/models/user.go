package models

import "time"

type User struct {
	BaseModel
	Email                string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash         string     `gorm:"not null" json:"-"`
	Role                 UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status               UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsVerified           bool       `gorm:"default:false" json:"is_verified"`
	IsStaff              bool       `gorm:"default:false" json:"is_staff"`
	IsSuperuser          bool       `gorm:"default:false" json:"is_superuser"`
	VerificationToken    string     `json:"-"`
	VerificationTokenExp *time.Time `json:"-"`

	// Relations
	CandidateProfile *CandidateProfile `gorm:"foreignKey:UserID" json:"candidate_profile,omitempty"`
	ClientProfile    *ClientProfile    `gorm:"foreignKey:UserID" json:"client_profile,omitempty"`
	RecruiterProfile *RecruiterProfile `gorm:"foreignKey:UserID" json:"recruiter_profile,omitempty"`
	RefreshTokens    []RefreshToken    `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
