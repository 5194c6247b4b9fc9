package repositories

import (
	"errors"
	"strings"
	"time"

	"kirismor_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackRepository interface {
	CreateFeedback(db *gorm.DB, feedback *models.GuestFeedback) error
	FindVerifiedByEmail(db *gorm.DB, email string) (*models.GuestFeedback, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.GuestFeedback, error)
	FindByRecruiter(db *gorm.DB, recruiterID, titleSearch string) ([]models.GuestFeedback, error)

	UpsertTempFeedback(db *gorm.DB, temp *models.TempGuestFeedback) error
	FindTempByToken(db *gorm.DB, token string) (*models.TempGuestFeedback, error)
	DeleteTemp(db *gorm.DB, id string) error
	DeleteExpiredTemp(db *gorm.DB, now time.Time) (int64, error)
}

type FeedbackRepositoryImpl struct{}

func NewFeedbackRepository() FeedbackRepository {
	return &FeedbackRepositoryImpl{}
}

func (r *FeedbackRepositoryImpl) CreateFeedback(db *gorm.DB, feedback *models.GuestFeedback) error {
	return db.Create(feedback).Error
}

// FindVerifiedByEmail returns any verified feedback row for the address.
// One completed round trip marks the email trusted across all jobs.
func (r *FeedbackRepositoryImpl) FindVerifiedByEmail(db *gorm.DB, email string) (*models.GuestFeedback, error) {
	var feedback models.GuestFeedback
	err := db.Where("email = ? AND is_verified = ?", email, true).
		First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.GuestFeedback, error) {
	var feedbacks []models.GuestFeedback
	err := db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

// FindByRecruiter collects feedback across every job the recruiter
// owns, optionally narrowed by a case-insensitive job-title search.
func (r *FeedbackRepositoryImpl) FindByRecruiter(db *gorm.DB, recruiterID, titleSearch string) ([]models.GuestFeedback, error) {
	query := db.Preload("Job").
		Joins("JOIN jobs ON jobs.id = guest_feedbacks.job_id").
		Where("jobs.recruiter_id = ?", recruiterID)

	if titleSearch != "" {
		query = query.Where("LOWER(jobs.title) LIKE ?", "%"+strings.ToLower(titleSearch)+"%")
	}

	var feedbacks []models.GuestFeedback
	err := query.Order("guest_feedbacks.created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

// UpsertTempFeedback replaces any pending submission for the same email.
// Re-submitting before verification refreshes the message and the token.
func (r *FeedbackRepositoryImpl) UpsertTempFeedback(db *gorm.DB, temp *models.TempGuestFeedback) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", temp.Email).Delete(&models.TempGuestFeedback{}).Error; err != nil {
			return err
		}
		return tx.Create(temp).Error
	})
}

func (r *FeedbackRepositoryImpl) FindTempByToken(db *gorm.DB, token string) (*models.TempGuestFeedback, error) {
	var temp models.TempGuestFeedback
	err := db.Where("verification_token = ?", token).First(&temp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return &temp, nil
}

func (r *FeedbackRepositoryImpl) DeleteTemp(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.TempGuestFeedback{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}

func (r *FeedbackRepositoryImpl) DeleteExpiredTemp(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Where("expires_at < ?", now).Delete(&models.TempGuestFeedback{})
	return result.RowsAffected, result.Error
}
