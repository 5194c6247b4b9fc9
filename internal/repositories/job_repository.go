package repositories

import (
	"errors"
	"strings"
	"time"

	"kirismor_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobFilter struct {
	Status      models.JobStatus
	RecruiterID string
	Search      string
	Page        int
	PageSize    int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Update(db *gorm.DB, job *models.Job) error
	UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error
	Delete(db *gorm.DB, jobID string) error
	FindWithFilter(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error)
	FindByRecruiter(db *gorm.DB, recruiterID string) ([]models.Job, error)
	CountByStatus(db *gorm.DB, status models.JobStatus) (int64, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.Preload("Recruiter").First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	result := db.Model(job).Updates(map[string]interface{}{
		"title":        job.Title,
		"description":  job.Description,
		"requirements": job.Requirements,
		"salary":       job.Salary,
		"updated_at":   time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error {
	result := db.Model(&models.Job{}).Where("id = ?", jobID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, jobID string) error {
	result := db.Where("id = ?", jobID).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindWithFilter(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := db.Model(&models.Job{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.RecruiterID != "" {
		query = query.Where("recruiter_id = ?", criteria.RecruiterID)
	}
	if criteria.Search != "" {
		// LOWER on both sides keeps the match case-insensitive on every
		// supported driver.
		search := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(requirements) LIKE ?",
			search, search, search,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) FindByRecruiter(db *gorm.DB, recruiterID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("recruiter_id = ?", recruiterID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountByStatus(db *gorm.DB, status models.JobStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Job{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
