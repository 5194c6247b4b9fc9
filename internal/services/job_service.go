package services

import (
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(db *gorm.DB, recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(db *gorm.DB, jobID, viewerID string) (*dto.JobResponse, error)
	UpdateJob(db *gorm.DB, jobID, recruiterID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	CloseJob(db *gorm.DB, jobID, recruiterID string) error
	ListOpenJobs(db *gorm.DB, viewerID string, query *dto.JobListQuery) (*dto.JobListResponse, error)
	ListMyJobs(db *gorm.DB, recruiterID string) (*dto.JobListResponse, error)
}

type JobServiceImpl struct {
	jobRepo      repositories.JobRepository
	favoriteRepo repositories.FavoriteRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	favoriteRepo repositories.FavoriteRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, recruiterID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	job := &models.Job{
		RecruiterID:  recruiterID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Status:       models.JobStatusOpen,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildJobResponse(db, job, ""), nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID, viewerID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildJobResponse(db, job, viewerID), nil
}

func (s *JobServiceImpl) UpdateJob(db *gorm.DB, jobID, recruiterID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if job.RecruiterID != recruiterID {
		return nil, apperrors.ErrNotJobOwner
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Salary != nil {
		job.Salary = req.Salary
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildJobResponse(db, job, ""), nil
}

// CloseJob is idempotent and one way. Closing an already closed job is a
// no-op; there is no reopen.
func (s *JobServiceImpl) CloseJob(db *gorm.DB, jobID, recruiterID string) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if job.RecruiterID != recruiterID {
		return apperrors.ErrNotJobOwner
	}

	if job.Status == models.JobStatusClosed {
		return nil
	}

	if err := s.jobRepo.UpdateStatus(db, jobID, models.JobStatusClosed); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) ListOpenJobs(db *gorm.DB, viewerID string, query *dto.JobListQuery) (*dto.JobListResponse, error) {
	page, pageSize := normalizePage(query.Page, query.Size)

	jobs, total, err := s.jobRepo.FindWithFilter(db, repositories.JobFilter{
		Status:   models.JobStatusOpen,
		Search:   query.Search,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *s.buildJobResponse(db, &jobs[i], viewerID))
	}

	return &dto.JobListResponse{
		Jobs:       out,
		Pagination: dto.NewPagination(page, pageSize, total),
	}, nil
}

func (s *JobServiceImpl) ListMyJobs(db *gorm.DB, recruiterID string) (*dto.JobListResponse, error) {
	jobs, err := s.jobRepo.FindByRecruiter(db, recruiterID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, *s.buildJobResponse(db, &jobs[i], ""))
	}

	pageSize := len(out)
	if pageSize == 0 {
		pageSize = 1
	}
	return &dto.JobListResponse{
		Jobs:       out,
		Pagination: dto.NewPagination(1, pageSize, int64(len(out))),
	}, nil
}

func (s *JobServiceImpl) buildJobResponse(db *gorm.DB, job *models.Job, viewerID string) *dto.JobResponse {
	likeCount, _ := s.favoriteRepo.CountLikesByJob(db, job.ID)

	resp := &dto.JobResponse{
		ID:           job.ID,
		RecruiterID:  job.RecruiterID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		Salary:       job.Salary,
		Status:       job.Status,
		LikeCount:    likeCount,
		CreatedAt:    job.CreatedAt,
	}

	if viewerID != "" {
		liked := s.viewerHasLike(db, viewerID, job.ID)
		favorited := s.viewerHasFavorite(db, viewerID, job.ID)
		resp.Liked = &liked
		resp.Favorited = &favorited
	}

	return resp
}

func (s *JobServiceImpl) viewerHasLike(db *gorm.DB, userID, jobID string) bool {
	var count int64
	db.Model(&models.Like{}).Where("user_id = ? AND job_id = ?", userID, jobID).Count(&count)
	return count > 0
}

func (s *JobServiceImpl) viewerHasFavorite(db *gorm.DB, userID, jobID string) bool {
	var count int64
	db.Model(&models.Favorite{}).Where("user_id = ? AND job_id = ?", userID, jobID).Count(&count)
	return count > 0
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
