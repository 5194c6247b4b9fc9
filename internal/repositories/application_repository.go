package repositories

import (
	"errors"
	"strings"
	"time"

	"kirismor_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error)
	FindByRecruiter(db *gorm.DB, recruiterID, titleSearch string) ([]models.Application, error)
	UpdateStatus(db *gorm.DB, applicationID string, status models.ApplicationStatus) error
	CountByJob(db *gorm.DB, jobID string) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, application *models.Application) error {
	return db.Create(application).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) FindByApplicant(db *gorm.DB, applicantID string) ([]models.Application, error) {
	var applications []models.Application
	err := db.Preload("Job").Where("applicant_id = ?", applicantID).
		Order("created_at DESC").Find(&applications).Error
	return applications, err
}

// FindByRecruiter collects applications across every job the recruiter
// owns, optionally narrowed by a case-insensitive job-title search.
func (r *ApplicationRepositoryImpl) FindByRecruiter(db *gorm.DB, recruiterID, titleSearch string) ([]models.Application, error) {
	query := db.Preload("Job").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.recruiter_id = ?", recruiterID)

	if titleSearch != "" {
		query = query.Where("LOWER(jobs.title) LIKE ?", "%"+strings.ToLower(titleSearch)+"%")
	}

	var applications []models.Application
	err := query.Order("applications.created_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(db *gorm.DB, applicationID string, status models.ApplicationStatus) error {
	result := db.Model(&models.Application{}).Where("id = ?", applicationID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) CountByJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}
