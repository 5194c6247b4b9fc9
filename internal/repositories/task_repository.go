package repositories

import (
	"errors"
	"time"

	"kirismor_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTaskNotFound = errors.New("task not found")

type TaskFilter struct {
	CreatedByID string
	Status      models.TaskStatus
	Priority    models.TaskPriority
	Page        int
	PageSize    int
}

type TaskRepository interface {
	Create(db *gorm.DB, task *models.Task) error
	FindByID(db *gorm.DB, id string) (*models.Task, error)
	Update(db *gorm.DB, task *models.Task) error
	UpdateStatus(db *gorm.DB, taskID string, status models.TaskStatus) error
	Delete(db *gorm.DB, taskID string) error
	FindWithFilter(db *gorm.DB, criteria TaskFilter) ([]models.Task, int64, error)
}

type TaskRepositoryImpl struct{}

func NewTaskRepository() TaskRepository {
	return &TaskRepositoryImpl{}
}

func (r *TaskRepositoryImpl) Create(db *gorm.DB, task *models.Task) error {
	return db.Create(task).Error
}

func (r *TaskRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Task, error) {
	var task models.Task
	err := db.First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) Update(db *gorm.DB, task *models.Task) error {
	result := db.Model(task).Updates(map[string]interface{}{
		"title":       task.Title,
		"description": task.Description,
		"priority":    task.Priority,
		"due_date":    task.DueDate,
		"updated_at":  time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) UpdateStatus(db *gorm.DB, taskID string, status models.TaskStatus) error {
	result := db.Model(&models.Task{}).Where("id = ?", taskID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(db *gorm.DB, taskID string) error {
	result := db.Where("id = ?", taskID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) FindWithFilter(db *gorm.DB, criteria TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task
	query := db.Model(&models.Task{})

	if criteria.CreatedByID != "" {
		query = query.Where("created_by_id = ?", criteria.CreatedByID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Priority != "" {
		query = query.Where("priority = ?", criteria.Priority)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tasks).Error
	return tasks, total, err
}
