package services

import (
	"time"

	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type TaskService interface {
	CreateTask(db *gorm.DB, userID string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(db *gorm.DB, taskID, userID string) (*dto.TaskResponse, error)
	UpdateTask(db *gorm.DB, taskID, userID string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	ChangeStatus(db *gorm.DB, taskID, userID string, req *dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error)
	DeleteTask(db *gorm.DB, taskID, userID string) error
	ListMyTasks(db *gorm.DB, userID string, query *dto.TaskListQuery) (*dto.TaskListResponse, error)
}

type TaskServiceImpl struct {
	taskRepo    repositories.TaskRepository
	profileRepo repositories.ProfileRepository
}

func NewTaskService(
	taskRepo repositories.TaskRepository,
	profileRepo repositories.ProfileRepository,
) TaskService {
	return &TaskServiceImpl{
		taskRepo:    taskRepo,
		profileRepo: profileRepo,
	}
}

func (s *TaskServiceImpl) CreateTask(db *gorm.DB, userID string, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := s.requireRecruiter(db, userID); err != nil {
		return nil, err
	}

	if !models.ValidTaskPriority(req.Priority) {
		return nil, apperrors.ErrInvalidStatus("task", "Invalid task priority")
	}

	task := &models.Task{
		CreatedByID: userID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Status:      models.TaskStatusOpen,
	}

	if task.DueDate == nil {
		// A task with no explicit deadline is due the day it is created.
		now := time.Now()
		due := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		task.DueDate = &due
	}

	if err := s.taskRepo.Create(db, task); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildTaskResponse(task), nil
}

func (s *TaskServiceImpl) GetTask(db *gorm.DB, taskID, userID string) (*dto.TaskResponse, error) {
	task, err := s.findOwnedTask(db, taskID, userID)
	if err != nil {
		return nil, err
	}
	return buildTaskResponse(task), nil
}

func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, taskID, userID string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.findOwnedTask(db, taskID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Priority != nil {
		if !models.ValidTaskPriority(*req.Priority) {
			return nil, apperrors.ErrInvalidStatus("task", "Invalid task priority")
		}
		task.Priority = *req.Priority
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	if err := s.taskRepo.Update(db, task); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildTaskResponse(task), nil
}

func (s *TaskServiceImpl) ChangeStatus(db *gorm.DB, taskID, userID string, req *dto.UpdateTaskStatusRequest) (*dto.TaskResponse, error) {
	if !models.ValidTaskStatus(req.Status) {
		return nil, apperrors.ErrInvalidTaskStatus
	}

	task, err := s.findOwnedTask(db, taskID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.UpdateStatus(db, taskID, req.Status); err != nil {
		return nil, apperrors.InternalError(err)
	}

	task.Status = req.Status
	return buildTaskResponse(task), nil
}

func (s *TaskServiceImpl) DeleteTask(db *gorm.DB, taskID, userID string) error {
	if _, err := s.findOwnedTask(db, taskID, userID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(db, taskID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TaskServiceImpl) ListMyTasks(db *gorm.DB, userID string, query *dto.TaskListQuery) (*dto.TaskListResponse, error) {
	if err := s.requireRecruiter(db, userID); err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(query.Page, query.Size)

	tasks, total, err := s.taskRepo.FindWithFilter(db, repositories.TaskFilter{
		CreatedByID: userID,
		Status:      models.TaskStatus(query.Status),
		Priority:    models.TaskPriority(query.Priority),
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *buildTaskResponse(&tasks[i]))
	}

	return &dto.TaskListResponse{
		Tasks:      out,
		Pagination: dto.NewPagination(page, pageSize, total),
	}, nil
}

// requireRecruiter is the capability check for task management: the
// caller must own a recruiter profile row, not just carry the role.
func (s *TaskServiceImpl) requireRecruiter(db *gorm.DB, userID string) error {
	exists, err := s.profileRepo.RecruiterProfileExists(db, userID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if !exists {
		return apperrors.ErrNotARecruiter
	}
	return nil
}

// Tasks are private to their creator.
func (s *TaskServiceImpl) findOwnedTask(db *gorm.DB, taskID, userID string) (*models.Task, error) {
	if err := s.requireRecruiter(db, userID); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByID(db, taskID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if task.CreatedByID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	return task, nil
}

func buildTaskResponse(t *models.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}
