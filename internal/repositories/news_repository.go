package repositories

import (
	"errors"
	"time"

	"kirismor_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news not found")

type NewsRepository interface {
	Create(db *gorm.DB, news *models.News) error
	FindByID(db *gorm.DB, id string) (*models.News, error)
	Update(db *gorm.DB, news *models.News) error
	Delete(db *gorm.DB, newsID string) error
	FindByRole(db *gorm.DB, role models.UserRole, limit, offset int) ([]models.News, int64, error)
	FindAll(db *gorm.DB, limit, offset int) ([]models.News, int64, error)
}

type NewsRepositoryImpl struct{}

func NewNewsRepository() NewsRepository {
	return &NewsRepositoryImpl{}
}

func (r *NewsRepositoryImpl) Create(db *gorm.DB, news *models.News) error {
	return db.Create(news).Error
}

func (r *NewsRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.News, error) {
	var news models.News
	err := db.First(&news, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, err
	}
	return &news, nil
}

func (r *NewsRepositoryImpl) Update(db *gorm.DB, news *models.News) error {
	result := db.Model(news).Updates(map[string]interface{}{
		"title":      news.Title,
		"content":    news.Content,
		"role":       news.Role,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepositoryImpl) Delete(db *gorm.DB, newsID string) error {
	result := db.Where("id = ?", newsID).Delete(&models.News{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepositoryImpl) FindByRole(db *gorm.DB, role models.UserRole, limit, offset int) ([]models.News, int64, error) {
	var items []models.News
	query := db.Model(&models.News{}).Where("role = ?", role)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}

func (r *NewsRepositoryImpl) FindAll(db *gorm.DB, limit, offset int) ([]models.News, int64, error) {
	var items []models.News

	var total int64
	if err := db.Model(&models.News{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&items).Error
	return items, total, err
}
