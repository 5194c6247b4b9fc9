package services

import (
	"context"
	"time"

	"kirismor_backend/internal/auth"
	"kirismor_backend/internal/config"
	"kirismor_backend/internal/email"
	"kirismor_backend/internal/logger"
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type FeedbackService interface {
	Submit(db *gorm.DB, jobID string, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error)
	Verify(db *gorm.DB, token string) (*dto.FeedbackResponse, error)
	ListByJob(db *gorm.DB, jobID, recruiterID string) (*dto.FeedbackListResponse, error)
	ListForRecruiter(db *gorm.DB, recruiterID, titleSearch string) (*dto.FeedbackListResponse, error)
}

type FeedbackServiceImpl struct {
	feedbackRepo  repositories.FeedbackRepository
	jobRepo       repositories.JobRepository
	emailProvider email.Provider
	cfg           *config.Config
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	jobRepo repositories.JobRepository,
	emailProvider email.Provider,
	cfg *config.Config,
) FeedbackService {
	return &FeedbackServiceImpl{
		feedbackRepo:  feedbackRepo,
		jobRepo:       jobRepo,
		emailProvider: emailProvider,
		cfg:           cfg,
	}
}

// Submit handles a guest comment. An address that already verified a
// comment on this job posts immediately; everyone else gets a staged row
// and a confirmation email.
func (s *FeedbackServiceImpl) Submit(db *gorm.DB, jobID string, req *dto.SubmitFeedbackRequest) (*dto.SubmitFeedbackResponse, error) {
	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	emailAddr := normalizeEmail(req.Email)

	// Fast path: the address already proved ownership somewhere on the
	// board, so a new comment posts without another round trip.
	if _, err := s.feedbackRepo.FindVerifiedByEmail(db, emailAddr); err == nil {
		feedback := &models.GuestFeedback{
			JobID:       jobID,
			Email:       emailAddr,
			Message:     req.Message,
			PhoneNumber: req.PhoneNumber,
			IsVerified:  true,
		}
		if err := s.feedbackRepo.CreateFeedback(db, feedback); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.SubmitFeedbackResponse{
			Posted:  true,
			Message: "Your comment has been posted.",
		}, nil
	} else if !apperrors.Is(err, repositories.ErrFeedbackNotFound) {
		return nil, apperrors.InternalError(err)
	}

	token := auth.GenerateVerificationToken(emailAddr)
	temp := &models.TempGuestFeedback{
		JobID:             jobID,
		Email:             emailAddr,
		Message:           req.Message,
		PhoneNumber:       req.PhoneNumber,
		VerificationToken: token,
		ExpiresAt:         time.Now().Add(time.Duration(s.cfg.Tokens.VerificationTTLHours) * time.Hour),
	}

	if err := s.feedbackRepo.UpsertTempFeedback(db, temp); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.sendVerificationEmail(emailAddr, token)

	return &dto.SubmitFeedbackResponse{
		VerificationRequired: true,
		Message:              "Check your inbox to confirm your comment.",
	}, nil
}

// Verify promotes a staged comment to the permanent table and deletes
// the staged row, both in one transaction.
func (s *FeedbackServiceImpl) Verify(db *gorm.DB, token string) (*dto.FeedbackResponse, error) {
	temp, err := s.feedbackRepo.FindTempByToken(db, token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(temp.ExpiresAt) {
		_ = s.feedbackRepo.DeleteTemp(db, temp.ID)
		return nil, apperrors.ErrInvalidToken
	}

	feedback := &models.GuestFeedback{
		JobID:       temp.JobID,
		Email:       temp.Email,
		Message:     temp.Message,
		PhoneNumber: temp.PhoneNumber,
		IsVerified:  true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.feedbackRepo.CreateFeedback(tx, feedback); err != nil {
			return err
		}
		return s.feedbackRepo.DeleteTemp(tx, temp.ID)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildFeedbackResponse(feedback), nil
}

// ListByJob shows a job's feedback to its owning recruiter only.
func (s *FeedbackServiceImpl) ListByJob(db *gorm.DB, jobID, recruiterID string) (*dto.FeedbackListResponse, error) {
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

	feedbacks, err := s.feedbackRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, *buildFeedbackResponse(&feedbacks[i]))
	}

	return &dto.FeedbackListResponse{Feedbacks: out}, nil
}

// ListForRecruiter aggregates feedback over every job the caller owns,
// optionally narrowed by a job-title search.
func (s *FeedbackServiceImpl) ListForRecruiter(db *gorm.DB, recruiterID, titleSearch string) (*dto.FeedbackListResponse, error) {
	feedbacks, err := s.feedbackRepo.FindByRecruiter(db, recruiterID, titleSearch)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, *buildFeedbackResponse(&feedbacks[i]))
	}

	return &dto.FeedbackListResponse{Feedbacks: out}, nil
}

func (s *FeedbackServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	go func() {
		if err := s.emailProvider.SendFeedbackVerification(to, token); err != nil {
			logger.CtxWithError(context.Background(), "Failed to send feedback verification email", err, "to", to)
		}
	}()
}

func buildFeedbackResponse(f *models.GuestFeedback) *dto.FeedbackResponse {
	out := &dto.FeedbackResponse{
		ID:        f.ID,
		JobID:     f.JobID,
		Email:     f.Email,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
	if f.Job != nil {
		out.JobTitle = f.Job.Title
	}
	return out
}
