package repositories

import (
	"errors"

	"kirismor_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository interface {
	// Likes and favorites are idempotent: repeating the action returns
	// the existing row instead of creating a duplicate.
	GetOrCreateLike(db *gorm.DB, userID, jobID string) (*models.Like, bool, error)
	DeleteLike(db *gorm.DB, userID, jobID string) error
	CountLikesByJob(db *gorm.DB, jobID string) (int64, error)

	GetOrCreateFavorite(db *gorm.DB, userID, jobID string) (*models.Favorite, bool, error)
	DeleteFavorite(db *gorm.DB, userID, jobID string) error
	FindFavoritesByUser(db *gorm.DB, userID string) ([]models.Favorite, error)

	GetOrCreateFavoriteRecruiter(db *gorm.DB, userID, recruiterID string) (*models.FavoriteRecruiter, bool, error)
	DeleteFavoriteRecruiter(db *gorm.DB, userID, recruiterID string) error
	FindFavoriteRecruitersByUser(db *gorm.DB, userID string) ([]models.FavoriteRecruiter, error)
}

type FavoriteRepositoryImpl struct{}

func NewFavoriteRepository() FavoriteRepository {
	return &FavoriteRepositoryImpl{}
}

// Likes

func (r *FavoriteRepositoryImpl) GetOrCreateLike(db *gorm.DB, userID, jobID string) (*models.Like, bool, error) {
	var like models.Like
	err := db.Where("user_id = ? AND job_id = ?", userID, jobID).First(&like).Error
	if err == nil {
		return &like, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	like = models.Like{UserID: userID, JobID: jobID}
	if err := db.Create(&like).Error; err != nil {
		return nil, false, err
	}
	return &like, true, nil
}

func (r *FavoriteRepositoryImpl) DeleteLike(db *gorm.DB, userID, jobID string) error {
	result := db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) CountLikesByJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Like{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

// Favorite jobs

func (r *FavoriteRepositoryImpl) GetOrCreateFavorite(db *gorm.DB, userID, jobID string) (*models.Favorite, bool, error) {
	var favorite models.Favorite
	err := db.Where("user_id = ? AND job_id = ?", userID, jobID).First(&favorite).Error
	if err == nil {
		return &favorite, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	favorite = models.Favorite{UserID: userID, JobID: jobID}
	if err := db.Create(&favorite).Error; err != nil {
		return nil, false, err
	}
	return &favorite, true, nil
}

func (r *FavoriteRepositoryImpl) DeleteFavorite(db *gorm.DB, userID, jobID string) error {
	result := db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) FindFavoritesByUser(db *gorm.DB, userID string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := db.Preload("Job").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&favorites).Error
	return favorites, err
}

// Favorite recruiters

func (r *FavoriteRepositoryImpl) GetOrCreateFavoriteRecruiter(db *gorm.DB, userID, recruiterID string) (*models.FavoriteRecruiter, bool, error) {
	var fav models.FavoriteRecruiter
	err := db.Where("user_id = ? AND recruiter_id = ?", userID, recruiterID).First(&fav).Error
	if err == nil {
		return &fav, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	fav = models.FavoriteRecruiter{UserID: userID, RecruiterID: recruiterID}
	if err := db.Create(&fav).Error; err != nil {
		return nil, false, err
	}
	return &fav, true, nil
}

func (r *FavoriteRepositoryImpl) DeleteFavoriteRecruiter(db *gorm.DB, userID, recruiterID string) error {
	result := db.Where("user_id = ? AND recruiter_id = ?", userID, recruiterID).
		Delete(&models.FavoriteRecruiter{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepositoryImpl) FindFavoriteRecruitersByUser(db *gorm.DB, userID string) ([]models.FavoriteRecruiter, error) {
	var favs []models.FavoriteRecruiter
	err := db.Preload("Recruiter").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&favs).Error
	return favs, err
}
