package repositories

import (
	"errors"
	"time"

	"kirismor_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("job request not found")

type RequestFilter struct {
	EmployerID  string
	RecruiterID string
	Status      models.RequestStatus
	Page        int
	PageSize    int
}

type RequestRepository interface {
	Create(db *gorm.DB, request *models.JobRequest) error
	FindByID(db *gorm.DB, id string) (*models.JobRequest, error)
	Update(db *gorm.DB, request *models.JobRequest) error
	Delete(db *gorm.DB, requestID string) error
	FindWithFilter(db *gorm.DB, criteria RequestFilter) ([]models.JobRequest, int64, error)
	CountByStatus(db *gorm.DB, status models.RequestStatus) (int64, error)

	// UpdateStatusWithAudit mutates the request status and appends the
	// audit row in one transaction. Both happen or neither does.
	UpdateStatusWithAudit(db *gorm.DB, request *models.JobRequest, update *models.JobRequestStatusUpdate) error
	FindStatusUpdates(db *gorm.DB, requestID string) ([]models.JobRequestStatusUpdate, error)
}

type RequestRepositoryImpl struct{}

func NewRequestRepository() RequestRepository {
	return &RequestRepositoryImpl{}
}

func (r *RequestRepositoryImpl) Create(db *gorm.DB, request *models.JobRequest) error {
	return db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobRequest, error) {
	var request models.JobRequest
	err := db.Preload("Employer").Preload("Recruiter").
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) Update(db *gorm.DB, request *models.JobRequest) error {
	result := db.Model(request).Updates(map[string]interface{}{
		"title":        request.Title,
		"description":  request.Description,
		"requirements": request.Requirements,
		"recruiter_id": request.RecruiterID,
		"status":       request.Status,
		"updated_at":   time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) Delete(db *gorm.DB, requestID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_request_id = ?", requestID).
			Delete(&models.JobRequestStatusUpdate{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", requestID).Delete(&models.JobRequest{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRequestNotFound
		}
		return nil
	})
}

func (r *RequestRepositoryImpl) FindWithFilter(db *gorm.DB, criteria RequestFilter) ([]models.JobRequest, int64, error) {
	var requests []models.JobRequest
	query := db.Model(&models.JobRequest{})

	if criteria.EmployerID != "" {
		query = query.Where("employer_id = ?", criteria.EmployerID)
	}
	if criteria.RecruiterID != "" {
		query = query.Where("recruiter_id = ?", criteria.RecruiterID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error
	return requests, total, err
}

func (r *RequestRepositoryImpl) CountByStatus(db *gorm.DB, status models.RequestStatus) (int64, error) {
	var count int64
	err := db.Model(&models.JobRequest{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *RequestRepositoryImpl) UpdateStatusWithAudit(db *gorm.DB, request *models.JobRequest, update *models.JobRequestStatusUpdate) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.JobRequest{}).Where("id = ?", request.ID).Updates(map[string]interface{}{
			"status":       request.Status,
			"recruiter_id": request.RecruiterID,
			"updated_at":   time.Now(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRequestNotFound
		}

		return tx.Create(update).Error
	})
}

func (r *RequestRepositoryImpl) FindStatusUpdates(db *gorm.DB, requestID string) ([]models.JobRequestStatusUpdate, error) {
	var updates []models.JobRequestStatusUpdate
	err := db.Where("job_request_id = ?", requestID).
		Order("created_at ASC").Find(&updates).Error
	return updates, err
}
