package services

import (
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type DashboardService interface {
	GetDashboard(db *gorm.DB, userID string) (*dto.DashboardResponse, error)
}

type DashboardServiceImpl struct {
	userRepo           repositories.UserRepository
	jobService         JobService
	applicationService ApplicationService
	favoriteService    FavoriteService
	requestService     RequestService
	taskService        TaskService
	newsService        NewsService
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	jobService JobService,
	applicationService ApplicationService,
	favoriteService FavoriteService,
	requestService RequestService,
	taskService TaskService,
	newsService NewsService,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:           userRepo,
		jobService:         jobService,
		applicationService: applicationService,
		favoriteService:    favoriteService,
		requestService:     requestService,
		taskService:        taskService,
		newsService:        newsService,
	}
}

// GetDashboard assembles the landing view for the caller's role. Each
// section is a bounded first page; the client follows up with the list
// endpoints for more.
func (s *DashboardServiceImpl) GetDashboard(db *gorm.DB, userID string) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.DashboardResponse{
		Role: string(user.Role),
		User: buildUserDTO(user),
	}

	news, err := s.newsService.ListForRole(db, user.Role, 1, 5)
	if err != nil {
		return nil, err
	}
	resp.News = news

	switch user.Role {
	case models.UserRoleCandidate:
		openJobs, err := s.jobService.ListOpenJobs(db, userID, &dto.JobListQuery{Page: 1, Size: 10})
		if err != nil {
			return nil, err
		}
		applications, err := s.applicationService.ListMine(db, userID)
		if err != nil {
			return nil, err
		}
		favorites, err := s.favoriteService.ListFavoriteJobs(db, userID)
		if err != nil {
			return nil, err
		}
		resp.OpenJobs = openJobs
		resp.Applications = applications
		resp.Favorites = favorites

	case models.UserRoleClient:
		requests, err := s.requestService.ListByEmployer(db, userID, &dto.RequestListQuery{Page: 1, Size: 10})
		if err != nil {
			return nil, err
		}
		resp.Requests = requests

	case models.UserRoleRecruiter:
		myJobs, err := s.jobService.ListMyJobs(db, userID)
		if err != nil {
			return nil, err
		}
		assigned, err := s.requestService.ListForRecruiter(db, userID, &dto.RequestListQuery{Page: 1, Size: 10})
		if err != nil {
			return nil, err
		}
		resp.MyJobs = myJobs
		resp.AssignedRequests = assigned

		// Tasks require the recruiter profile row; a recruiter account
		// without one simply gets no task section.
		tasks, err := s.taskService.ListMyTasks(db, userID, &dto.TaskListQuery{Page: 1, Size: 10})
		if err == nil {
			resp.Tasks = tasks
		} else if !apperrors.Is(err, apperrors.ErrNotARecruiter) {
			return nil, err
		}
	}

	return resp, nil
}
