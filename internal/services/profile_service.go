package services

import (
	"time"

	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"
	"kirismor_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetMyProfile(db *gorm.DB, userID string) (interface{}, error)
	UpdateCandidateProfile(db *gorm.DB, userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error)
	UpdateClientProfile(db *gorm.DB, userID string, req *dto.UpdateClientProfileRequest) (*models.ClientProfile, error)
	UpdateRecruiterProfile(db *gorm.DB, userID string, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterProfile, error)
	ListRecruiters(db *gorm.DB, viewerID, search string, page, pageSize int) (*dto.RecruiterListResponse, error)
}

type ProfileServiceImpl struct {
	userRepo     repositories.UserRepository
	profileRepo  repositories.ProfileRepository
	favoriteRepo repositories.FavoriteRepository
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	favoriteRepo repositories.FavoriteRepository,
) ProfileService {
	return &ProfileServiceImpl{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *ProfileServiceImpl) GetMyProfile(db *gorm.DB, userID string) (interface{}, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := findProfileForRole(db, s.profileRepo, user)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if candidate, ok := profile.(*models.CandidateProfile); ok {
		return buildCandidateProfileResponse(candidate), nil
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateCandidateProfile(db *gorm.DB, userID string, req *dto.UpdateCandidateProfileRequest) (*dto.CandidateProfileResponse, error) {
	profile, err := s.profileRepo.FindCandidateProfileByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.PhotoURL != nil {
		profile.PhotoURL = *req.PhotoURL
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.DateOfBirth != nil {
		profile.DateOfBirth = req.DateOfBirth
	}
	if req.Skills != nil {
		skills, err := skillsToJSON(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.Skills = skills
	}

	if err := s.profileRepo.UpdateCandidateProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return buildCandidateProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) UpdateClientProfile(db *gorm.DB, userID string, req *dto.UpdateClientProfileRequest) (*models.ClientProfile, error) {
	profile, err := s.profileRepo.FindClientProfileByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.Industry != nil {
		profile.Industry = *req.Industry
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.PhotoURL != nil {
		profile.PhotoURL = *req.PhotoURL
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}

	if err := s.profileRepo.UpdateClientProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateRecruiterProfile(db *gorm.DB, userID string, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterProfile, error) {
	profile, err := s.profileRepo.FindRecruiterProfileByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FirstName != nil {
		profile.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		profile.LastName = *req.LastName
	}
	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}
	if req.PhoneNumber != nil {
		profile.PhoneNumber = *req.PhoneNumber
	}
	if req.PhotoURL != nil {
		profile.PhotoURL = *req.PhotoURL
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}

	if err := s.profileRepo.UpdateRecruiterProfile(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// ListRecruiters returns the recruiter directory, optionally filtered
// by name. When viewerID is set, each entry is flagged if the viewer
// favorited that recruiter.
func (s *ProfileServiceImpl) ListRecruiters(db *gorm.DB, viewerID, search string, page, pageSize int) (*dto.RecruiterListResponse, error) {
	limit := pageSize
	offset := (page - 1) * pageSize

	profiles, total, err := s.profileRepo.FindRecruiterProfiles(db, search, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	favorited := make(map[string]bool)
	if viewerID != "" {
		favs, err := s.favoriteRepo.FindFavoriteRecruitersByUser(db, viewerID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		for _, f := range favs {
			favorited[f.RecruiterID] = true
		}
	}

	recruiters := make([]dto.RecruiterDTO, 0, len(profiles))
	for _, p := range profiles {
		recruiters = append(recruiters, dto.RecruiterDTO{
			UserID:      p.UserID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			CompanyName: p.CompanyName,
			Location:    p.Location,
			IsFavorite:  favorited[p.UserID],
		})
	}

	return &dto.RecruiterListResponse{
		Recruiters: recruiters,
		Pagination: dto.NewPagination(page, pageSize, total),
	}, nil
}

func buildCandidateProfileResponse(p *models.CandidateProfile) *dto.CandidateProfileResponse {
	return &dto.CandidateProfileResponse{
		UserID:      p.UserID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PhoneNumber: p.PhoneNumber,
		PhotoURL:    p.PhotoURL,
		Location:    p.Location,
		Bio:         p.Bio,
		DateOfBirth: p.DateOfBirth,
		Age:         p.Age(time.Now()),
		Skills:      skillsFromJSON(p.Skills),
	}
}
