package services

import (
	"kirismor_backend/internal/auth"
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService covers the back-office operations on accounts.
type UserService interface {
	AdminCreateUser(db *gorm.DB, req *dto.AdminCreateUserRequest) (*dto.UserDTO, error)
	UpdateStatus(db *gorm.DB, userID string, req *dto.UpdateUserStatusRequest) error
	DeleteUser(db *gorm.DB, userID string) error
	ListUsers(db *gorm.DB, filter repositories.UserFilter) (*dto.UserListResponse, error)
	GetUser(db *gorm.DB, userID string) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// AdminCreateUser provisions an account that skips email verification.
func (s *UserServiceImpl) AdminCreateUser(db *gorm.DB, req *dto.AdminCreateUserRequest) (*dto.UserDTO, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}
	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        normalizeEmail(req.Email),
		PasswordHash: hashedPassword,
		Role:         req.Role,
		Status:       models.UserStatusActive,
		IsVerified:   true,
		IsStaff:      req.IsStaff,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}

		return createProfileForRole(tx, s.profileRepo, user, &dto.RegisterRequest{Role: req.Role})
	})
	if err != nil {
		return nil, err
	}

	out := buildUserDTO(user)
	return &out, nil
}

func (s *UserServiceImpl) UpdateStatus(db *gorm.DB, userID string, req *dto.UpdateUserStatusRequest) error {
	err := s.userRepo.UpdateStatus(db, userID, req.Status)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) DeleteUser(db *gorm.DB, userID string) error {
	err := s.userRepo.Delete(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UserServiceImpl) ListUsers(db *gorm.DB, filter repositories.UserFilter) (*dto.UserListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	users, total, err := s.userRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, buildUserDTO(&users[i]))
	}

	return &dto.UserListResponse{
		Users:      out,
		Pagination: dto.NewPagination(filter.Page, filter.PageSize, total),
	}, nil
}

func (s *UserServiceImpl) GetUser(db *gorm.DB, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	out := buildUserDTO(user)
	return &out, nil
}
