package repositories

import (
	"errors"
	"strings"

	"kirismor_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	CreateCandidateProfile(db *gorm.DB, profile *models.CandidateProfile) error
	FindCandidateProfileByUserID(db *gorm.DB, userID string) (*models.CandidateProfile, error)
	UpdateCandidateProfile(db *gorm.DB, profile *models.CandidateProfile) error

	CreateClientProfile(db *gorm.DB, profile *models.ClientProfile) error
	FindClientProfileByUserID(db *gorm.DB, userID string) (*models.ClientProfile, error)
	UpdateClientProfile(db *gorm.DB, profile *models.ClientProfile) error

	CreateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error
	FindRecruiterProfileByUserID(db *gorm.DB, userID string) (*models.RecruiterProfile, error)
	UpdateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error

	RecruiterProfileExists(db *gorm.DB, userID string) (bool, error)
	FindRecruiterProfiles(db *gorm.DB, search string, limit, offset int) ([]models.RecruiterProfile, int64, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

// Candidate

func (r *ProfileRepositoryImpl) CreateCandidateProfile(db *gorm.DB, profile *models.CandidateProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindCandidateProfileByUserID(db *gorm.DB, userID string) (*models.CandidateProfile, error) {
	var profile models.CandidateProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateCandidateProfile(db *gorm.DB, profile *models.CandidateProfile) error {
	result := db.Model(&models.CandidateProfile{}).Where("user_id = ?", profile.UserID).Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Client

func (r *ProfileRepositoryImpl) CreateClientProfile(db *gorm.DB, profile *models.ClientProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindClientProfileByUserID(db *gorm.DB, userID string) (*models.ClientProfile, error) {
	var profile models.ClientProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateClientProfile(db *gorm.DB, profile *models.ClientProfile) error {
	result := db.Model(&models.ClientProfile{}).Where("user_id = ?", profile.UserID).Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// Recruiter

func (r *ProfileRepositoryImpl) CreateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindRecruiterProfileByUserID(db *gorm.DB, userID string) (*models.RecruiterProfile, error) {
	var profile models.RecruiterProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateRecruiterProfile(db *gorm.DB, profile *models.RecruiterProfile) error {
	result := db.Model(&models.RecruiterProfile{}).Where("user_id = ?", profile.UserID).Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// RecruiterProfileExists is the capability check for recruiter-only
// features. A recruiter without a profile row cannot manage tasks.
func (r *ProfileRepositoryImpl) RecruiterProfileExists(db *gorm.DB, userID string) (bool, error) {
	var count int64
	err := db.Model(&models.RecruiterProfile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// FindRecruiterProfiles pages through the directory, optionally
// narrowed by a case-insensitive name search.
func (r *ProfileRepositoryImpl) FindRecruiterProfiles(db *gorm.DB, search string, limit, offset int) ([]models.RecruiterProfile, int64, error) {
	query := db.Model(&models.RecruiterProfile{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.RecruiterProfile
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}
