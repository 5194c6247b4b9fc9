package services

import (
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type RequestService interface {
	CreateRequest(db *gorm.DB, employerID string, req *dto.CreateJobRequestRequest) (*dto.JobRequestResponse, error)
	GetRequest(db *gorm.DB, requestID, viewerID string) (*dto.RequestHistoryResponse, error)
	UpdateRequest(db *gorm.DB, requestID, employerID string, req *dto.UpdateJobRequestRequest) (*dto.JobRequestResponse, error)
	UpdateStatus(db *gorm.DB, requestID, recruiterID string, req *dto.UpdateRequestStatusRequest) (*dto.JobRequestResponse, error)
	DeleteRequest(db *gorm.DB, requestID, employerID string) error
	ListByEmployer(db *gorm.DB, employerID string, query *dto.RequestListQuery) (*dto.JobRequestListResponse, error)
	ListForRecruiter(db *gorm.DB, recruiterID string, query *dto.RequestListQuery) (*dto.JobRequestListResponse, error)
}

type RequestServiceImpl struct {
	requestRepo repositories.RequestRepository
	profileRepo repositories.ProfileRepository
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	profileRepo repositories.ProfileRepository,
) RequestService {
	return &RequestServiceImpl{
		requestRepo: requestRepo,
		profileRepo: profileRepo,
	}
}

// CreateRequest opens a request in the pending state. The employer may
// address it to a specific recruiter up front; otherwise any recruiter
// can pick it up from the pool.
func (s *RequestServiceImpl) CreateRequest(db *gorm.DB, employerID string, req *dto.CreateJobRequestRequest) (*dto.JobRequestResponse, error) {
	request := &models.JobRequest{
		EmployerID:   employerID,
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       models.RequestStatusPending,
	}

	if req.RecruiterID != nil {
		if err := s.requireRecruiterProfile(db, *req.RecruiterID); err != nil {
			return nil, err
		}
		request.RecruiterID = req.RecruiterID
	}

	if err := s.requestRepo.Create(db, request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildRequestResponse(request), nil
}

// GetRequest returns the request with its full audit trail. Only the
// owning employer and the assigned recruiter may read it.
func (s *RequestServiceImpl) GetRequest(db *gorm.DB, requestID, viewerID string) (*dto.RequestHistoryResponse, error) {
	request, err := s.findRequest(db, requestID)
	if err != nil {
		return nil, err
	}

	if !canViewRequest(request, viewerID) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	updates, err := s.requestRepo.FindStatusUpdates(db, requestID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	history := make([]dto.StatusUpdateResponse, 0, len(updates))
	for _, u := range updates {
		history = append(history, dto.StatusUpdateResponse{
			ID:          u.ID,
			RequestID:   u.JobRequestID,
			NewStatus:   u.NewStatus,
			UpdatedByID: u.UpdatedByID,
			Message:     u.Message,
			CreatedAt:   u.CreatedAt,
		})
	}

	return &dto.RequestHistoryResponse{
		Request: *buildRequestResponse(request),
		History: history,
	}, nil
}

// UpdateRequest edits the content fields. Only the owning employer may
// edit, and only while the request is still pending.
func (s *RequestServiceImpl) UpdateRequest(db *gorm.DB, requestID, employerID string, req *dto.UpdateJobRequestRequest) (*dto.JobRequestResponse, error) {
	request, err := s.findRequest(db, requestID)
	if err != nil {
		return nil, err
	}

	if request.EmployerID != employerID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if request.Status != models.RequestStatusPending {
		return nil, apperrors.ErrInvalidStatus("job_request", "Only pending requests can be edited")
	}

	if req.Title != nil {
		request.Title = *req.Title
	}
	if req.Description != nil {
		request.Description = *req.Description
	}
	if req.Requirements != nil {
		request.Requirements = *req.Requirements
	}
	if req.RecruiterID != nil {
		// Once a recruiter is bound the binding is permanent.
		if request.RecruiterID != nil && *request.RecruiterID != *req.RecruiterID {
			return nil, apperrors.ErrRecruiterReassignment
		}
		if request.RecruiterID == nil {
			if err := s.requireRecruiterProfile(db, *req.RecruiterID); err != nil {
				return nil, err
			}
			request.RecruiterID = req.RecruiterID
		}
	}

	if err := s.requestRepo.Update(db, request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildRequestResponse(request), nil
}

// UpdateStatus moves the request along its lifecycle and appends the
// audit row atomically. The first recruiter to act becomes the assigned
// recruiter; afterwards only they may update, and the binding is
// permanent.
func (s *RequestServiceImpl) UpdateStatus(db *gorm.DB, requestID, recruiterID string, req *dto.UpdateRequestStatusRequest) (*dto.JobRequestResponse, error) {
	if !models.ValidRequestStatus(req.Status) {
		return nil, apperrors.ErrInvalidRequestStatus
	}

	if err := s.requireRecruiterProfile(db, recruiterID); err != nil {
		return nil, err
	}

	request, err := s.findRequest(db, requestID)
	if err != nil {
		return nil, err
	}

	if request.RecruiterID != nil && *request.RecruiterID != recruiterID {
		return nil, apperrors.ErrNotAssignedRecruiter
	}

	if !validRequestTransition(request.Status, req.Status) {
		return nil, apperrors.ErrInvalidRequestStatus
	}

	if request.RecruiterID == nil {
		request.RecruiterID = &recruiterID
	}
	request.Status = req.Status

	update := &models.JobRequestStatusUpdate{
		JobRequestID: request.ID,
		NewStatus:    req.Status,
		UpdatedByID:  recruiterID,
		Message:      req.Comment,
	}

	if err := s.requestRepo.UpdateStatusWithAudit(db, request, update); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildRequestResponse(request), nil
}

func (s *RequestServiceImpl) DeleteRequest(db *gorm.DB, requestID, employerID string) error {
	request, err := s.findRequest(db, requestID)
	if err != nil {
		return err
	}

	if request.EmployerID != employerID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.requestRepo.Delete(db, requestID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *RequestServiceImpl) ListByEmployer(db *gorm.DB, employerID string, query *dto.RequestListQuery) (*dto.JobRequestListResponse, error) {
	return s.list(db, repositories.RequestFilter{
		EmployerID: employerID,
		Status:     models.RequestStatus(query.Status),
	}, query)
}

// ListForRecruiter shows unassigned pending requests plus everything
// assigned to the caller.
func (s *RequestServiceImpl) ListForRecruiter(db *gorm.DB, recruiterID string, query *dto.RequestListQuery) (*dto.JobRequestListResponse, error) {
	page, pageSize := normalizePage(query.Page, query.Size)

	var requests []models.JobRequest
	q := db.Model(&models.JobRequest{}).
		Where("recruiter_id = ? OR (recruiter_id IS NULL AND status = ?)", recruiterID, models.RequestStatusPending)

	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	err := q.Order("created_at DESC").Limit(pageSize).Offset((page - 1) * pageSize).Find(&requests).Error
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.JobRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *buildRequestResponse(&requests[i]))
	}

	return &dto.JobRequestListResponse{
		Requests:   out,
		Pagination: dto.NewPagination(page, pageSize, total),
	}, nil
}

// --- Helpers ---

func (s *RequestServiceImpl) requireRecruiterProfile(db *gorm.DB, recruiterID string) error {
	exists, err := s.profileRepo.RecruiterProfileExists(db, recruiterID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.ErrNotARecruiter
	}
	return nil
}

func (s *RequestServiceImpl) findRequest(db *gorm.DB, requestID string) (*models.JobRequest, error) {
	request, err := s.requestRepo.FindByID(db, requestID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return request, nil
}

func (s *RequestServiceImpl) list(db *gorm.DB, filter repositories.RequestFilter, query *dto.RequestListQuery) (*dto.JobRequestListResponse, error) {
	page, pageSize := normalizePage(query.Page, query.Size)
	filter.Page = page
	filter.PageSize = pageSize

	requests, total, err := s.requestRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.JobRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, *buildRequestResponse(&requests[i]))
	}

	return &dto.JobRequestListResponse{
		Requests:   out,
		Pagination: dto.NewPagination(page, pageSize, total),
	}, nil
}

func canViewRequest(request *models.JobRequest, viewerID string) bool {
	if request.EmployerID == viewerID {
		return true
	}
	if request.RecruiterID != nil && *request.RecruiterID == viewerID {
		return true
	}
	return false
}

// validRequestTransition encodes the forward-only lifecycle
// pending -> processing -> completed. Repeating the current status is
// allowed so a retried call stays idempotent.
func validRequestTransition(from, to models.RequestStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case models.RequestStatusPending:
		return to == models.RequestStatusProcessing || to == models.RequestStatusCompleted
	case models.RequestStatusProcessing:
		return to == models.RequestStatusCompleted
	}
	return false
}

func buildRequestResponse(r *models.JobRequest) *dto.JobRequestResponse {
	return &dto.JobRequestResponse{
		ID:           r.ID,
		EmployerID:   r.EmployerID,
		Title:        r.Title,
		Description:  r.Description,
		Requirements: r.Requirements,
		Status:       r.Status,
		RecruiterID:  r.RecruiterID,
		CreatedAt:    r.CreatedAt,
	}
}
