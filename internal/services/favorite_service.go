package services

import (
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ToggleResult reports whether the toggle created or removed the mark.
type ToggleResult struct {
	Created bool  `json:"created"`
	Count   int64 `json:"count"`
}

type FavoriteService interface {
	LikeJob(db *gorm.DB, userID, jobID string) (*ToggleResult, error)
	UnlikeJob(db *gorm.DB, userID, jobID string) (*ToggleResult, error)
	FavoriteJob(db *gorm.DB, userID, jobID string) (*ToggleResult, error)
	UnfavoriteJob(db *gorm.DB, userID, jobID string) error
	ListFavoriteJobs(db *gorm.DB, userID string) (*dto.JobListResponse, error)
	FavoriteRecruiter(db *gorm.DB, userID, recruiterID string) (*ToggleResult, error)
	UnfavoriteRecruiter(db *gorm.DB, userID, recruiterID string) error
}

type FavoriteServiceImpl struct {
	favoriteRepo repositories.FavoriteRepository
	jobRepo      repositories.JobRepository
	profileRepo  repositories.ProfileRepository
}

func NewFavoriteService(
	favoriteRepo repositories.FavoriteRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
) FavoriteService {
	return &FavoriteServiceImpl{
		favoriteRepo: favoriteRepo,
		jobRepo:      jobRepo,
		profileRepo:  profileRepo,
	}
}

// LikeJob is idempotent: liking twice leaves exactly one row.
func (s *FavoriteServiceImpl) LikeJob(db *gorm.DB, userID, jobID string) (*ToggleResult, error) {
	if err := s.ensureJobExists(db, jobID); err != nil {
		return nil, err
	}

	_, created, err := s.favoriteRepo.GetOrCreateLike(db, userID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	count, err := s.favoriteRepo.CountLikesByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &ToggleResult{Created: created, Count: count}, nil
}

func (s *FavoriteServiceImpl) UnlikeJob(db *gorm.DB, userID, jobID string) (*ToggleResult, error) {
	err := s.favoriteRepo.DeleteLike(db, userID, jobID)
	if err != nil && !apperrors.Is(err, repositories.ErrFavoriteNotFound) {
		return nil, apperrors.InternalError(err)
	}

	count, err := s.favoriteRepo.CountLikesByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &ToggleResult{Created: false, Count: count}, nil
}

func (s *FavoriteServiceImpl) FavoriteJob(db *gorm.DB, userID, jobID string) (*ToggleResult, error) {
	if err := s.ensureJobExists(db, jobID); err != nil {
		return nil, err
	}

	_, created, err := s.favoriteRepo.GetOrCreateFavorite(db, userID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &ToggleResult{Created: created}, nil
}

func (s *FavoriteServiceImpl) UnfavoriteJob(db *gorm.DB, userID, jobID string) error {
	err := s.favoriteRepo.DeleteFavorite(db, userID, jobID)
	if err != nil && !apperrors.Is(err, repositories.ErrFavoriteNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FavoriteServiceImpl) ListFavoriteJobs(db *gorm.DB, userID string) (*dto.JobListResponse, error) {
	favorites, err := s.favoriteRepo.FindFavoritesByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobs := make([]dto.JobResponse, 0, len(favorites))
	for _, f := range favorites {
		if f.Job == nil {
			continue
		}
		likeCount, _ := s.favoriteRepo.CountLikesByJob(db, f.JobID)
		jobs = append(jobs, dto.JobResponse{
			ID:           f.Job.ID,
			RecruiterID:  f.Job.RecruiterID,
			Title:        f.Job.Title,
			Description:  f.Job.Description,
			Requirements: f.Job.Requirements,
			Salary:       f.Job.Salary,
			Status:       f.Job.Status,
			LikeCount:    likeCount,
			CreatedAt:    f.Job.CreatedAt,
		})
	}

	pageSize := len(jobs)
	if pageSize == 0 {
		pageSize = 1
	}
	return &dto.JobListResponse{
		Jobs:       jobs,
		Pagination: dto.NewPagination(1, pageSize, int64(len(jobs))),
	}, nil
}

func (s *FavoriteServiceImpl) FavoriteRecruiter(db *gorm.DB, userID, recruiterID string) (*ToggleResult, error) {
	exists, err := s.profileRepo.RecruiterProfileExists(db, recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !exists {
		return nil, apperrors.ErrProfileNotFound
	}

	_, created, err := s.favoriteRepo.GetOrCreateFavoriteRecruiter(db, userID, recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &ToggleResult{Created: created}, nil
}

func (s *FavoriteServiceImpl) UnfavoriteRecruiter(db *gorm.DB, userID, recruiterID string) error {
	err := s.favoriteRepo.DeleteFavoriteRecruiter(db, userID, recruiterID)
	if err != nil && !apperrors.Is(err, repositories.ErrFavoriteNotFound) {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *FavoriteServiceImpl) ensureJobExists(db *gorm.DB, jobID string) error {
	var count int64
	if err := db.Model(&models.Job{}).Where("id = ?", jobID).Count(&count).Error; err != nil {
		return apperrors.InternalError(err)
	}
	if count == 0 {
		return apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}
	return nil
}
