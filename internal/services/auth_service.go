package services

import (
	"context"
	"strings"
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

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) error
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	VerifyEmail(db *gorm.DB, token string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
	cfg              *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
		cfg:              cfg,
	}
}

// Register creates the account and its role profile in one transaction.
// A failed profile insert rolls the user back too.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	if !models.ValidRole(req.Role) {
		return apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	emailAddr := normalizeEmail(req.Email)
	verificationToken := auth.GenerateVerificationToken(emailAddr)
	tokenExp := time.Now().Add(time.Duration(s.cfg.Tokens.VerificationTTLHours) * time.Hour)

	user := &models.User{
		Email:                emailAddr,
		PasswordHash:         hashedPassword,
		Role:                 req.Role,
		Status:               models.UserStatusPending,
		IsVerified:           false,
		VerificationToken:    verificationToken,
		VerificationTokenExp: &tokenExp,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}

		if err := createProfileForRole(tx, s.profileRepo, user, req); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.sendVerificationEmail(user.Email, verificationToken)

	return nil
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := checkUserStatus(user); err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role), user.IsStaff)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         buildUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) RefreshToken(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := checkUserStatus(user); err != nil {
		return nil, err
	}

	accessToken, err := auth.GenerateToken(user.ID, string(user.Role), user.IsStaff)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Rotate: the presented refresh token is single use.
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	newRefreshToken, err := s.createRefreshToken(db, user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         buildUserDTO(user),
	}, nil
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	err := s.refreshTokenRepo.DeleteByToken(db, refreshToken)
	if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
		// Logout is idempotent.
		return nil
	}
	return err
}

// VerifyEmail activates the account behind the token. Expired tokens are
// rejected even if the reaper has not cleared them yet.
func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.VerificationTokenExp != nil && time.Now().After(*user.VerificationTokenExp) {
		return apperrors.ErrInvalidToken
	}

	if err := s.userRepo.VerifyUser(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helpers ---

func (s *AuthServiceImpl) createRefreshToken(db *gorm.DB, userID string) (string, error) {
	refreshToken := auth.GenerateVerificationToken(userID)
	token := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}

	if err := s.refreshTokenRepo.Create(db, token); err != nil {
		return "", err
	}
	return refreshToken, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(to, token string) {
	if s.emailProvider == nil {
		return
	}

	// Delivery is best effort and never blocks the request.
	go func() {
		if err := s.emailProvider.SendAccountVerification(to, token); err != nil {
			logger.CtxWithError(context.Background(), "Failed to send verification email", err, "to", to)
		}
	}()
}

// normalizeEmail lowercases and trims the address so lookups and the
// unique index agree regardless of how it was typed.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkUserStatus(user *models.User) error {
	switch user.Status {
	case models.UserStatusSuspended:
		return apperrors.ErrUserSuspended
	case models.UserStatusBanned:
		return apperrors.ErrUserBanned
	case models.UserStatusPending:
		if !user.IsVerified {
			return apperrors.ErrUserNotVerified
		}
	}
	return nil
}

func buildUserDTO(user *models.User) dto.UserDTO {
	out := dto.UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		Status:     user.Status,
		IsVerified: user.IsVerified,
		IsStaff:    user.IsStaff,
		CreatedAt:  user.CreatedAt,
	}

	switch user.Role {
	case models.UserRoleCandidate:
		if user.CandidateProfile != nil {
			out.Profile = user.CandidateProfile
		}
	case models.UserRoleClient:
		if user.ClientProfile != nil {
			out.Profile = user.ClientProfile
		}
	case models.UserRoleRecruiter:
		if user.RecruiterProfile != nil {
			out.Profile = user.RecruiterProfile
		}
	}

	return out
}
