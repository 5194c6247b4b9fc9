package services

import (
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, jobID string, applicantID *string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	UpdateStatus(db *gorm.DB, applicationID, recruiterID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	ListByJob(db *gorm.DB, jobID, recruiterID string) (*dto.ApplicationListResponse, error)
	ListMine(db *gorm.DB, applicantID string) (*dto.ApplicationListResponse, error)
	ListForRecruiter(db *gorm.DB, recruiterID, titleSearch string) (*dto.ApplicationListResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply submits an application to an open job. The applicant id is nil
// for anonymous submissions. Duplicate applications are allowed; the
// recruiter sees every submission.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, jobID string, applicantID *string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !job.IsOpen() {
		return nil, apperrors.ErrJobNotOpen
	}

	application := &models.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusSubmitted,
	}

	if err := s.applicationRepo.Create(db, application); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildApplicationResponse(application, job.Title), nil
}

func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, applicationID, recruiterID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if !models.ValidApplicationStatus(req.Status) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if application.Job == nil || application.Job.RecruiterID != recruiterID {
		return nil, apperrors.ErrNotJobOwner
	}

	if err := s.applicationRepo.UpdateStatus(db, applicationID, req.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	application.Status = req.Status
	return buildApplicationResponse(application, application.Job.Title), nil
}

func (s *ApplicationServiceImpl) ListByJob(db *gorm.DB, jobID, recruiterID string) (*dto.ApplicationListResponse, error) {
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

	applications, err := s.applicationRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		out = append(out, *buildApplicationResponse(&applications[i], job.Title))
	}

	return &dto.ApplicationListResponse{Applications: out}, nil
}

func (s *ApplicationServiceImpl) ListMine(db *gorm.DB, applicantID string) (*dto.ApplicationListResponse, error) {
	applications, err := s.applicationRepo.FindByApplicant(db, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		title := ""
		if applications[i].Job != nil {
			title = applications[i].Job.Title
		}
		out = append(out, *buildApplicationResponse(&applications[i], title))
	}

	return &dto.ApplicationListResponse{Applications: out}, nil
}

// ListForRecruiter aggregates applications over every job the caller
// owns. An optional title search narrows the jobs considered.
func (s *ApplicationServiceImpl) ListForRecruiter(db *gorm.DB, recruiterID, titleSearch string) (*dto.ApplicationListResponse, error) {
	applications, err := s.applicationRepo.FindByRecruiter(db, recruiterID, titleSearch)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		title := ""
		if applications[i].Job != nil {
			title = applications[i].Job.Title
		}
		out = append(out, *buildApplicationResponse(&applications[i], title))
	}

	return &dto.ApplicationListResponse{Applications: out}, nil
}

func buildApplicationResponse(a *models.Application, jobTitle string) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		JobTitle:    jobTitle,
		ApplicantID: a.ApplicantID,
		CoverLetter: a.CoverLetter,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}
