package services

import (
	"encoding/json"

	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/services/dto"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// createProfileForRole is the single place that maps a role onto its
// profile table. Every registration path goes through it so a role
// added here is picked up everywhere.
func createProfileForRole(db *gorm.DB, profileRepo repositories.ProfileRepository, user *models.User, req *dto.RegisterRequest) error {
	switch user.Role {
	case models.UserRoleCandidate:
		return profileRepo.CreateCandidateProfile(db, &models.CandidateProfile{
			UserID:      user.ID,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: req.PhoneNumber,
			Location:    req.Location,
		})
	case models.UserRoleClient:
		return profileRepo.CreateClientProfile(db, &models.ClientProfile{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
			PhoneNumber: req.PhoneNumber,
			Location:    req.Location,
		})
	case models.UserRoleRecruiter:
		return profileRepo.CreateRecruiterProfile(db, &models.RecruiterProfile{
			UserID:      user.ID,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			CompanyName: req.CompanyName,
			PhoneNumber: req.PhoneNumber,
			Location:    req.Location,
		})
	}
	return nil
}

// findProfileForRole fetches the profile row matching the user's role.
func findProfileForRole(db *gorm.DB, profileRepo repositories.ProfileRepository, user *models.User) (interface{}, error) {
	switch user.Role {
	case models.UserRoleCandidate:
		return profileRepo.FindCandidateProfileByUserID(db, user.ID)
	case models.UserRoleClient:
		return profileRepo.FindClientProfileByUserID(db, user.ID)
	case models.UserRoleRecruiter:
		return profileRepo.FindRecruiterProfileByUserID(db, user.ID)
	}
	return nil, repositories.ErrProfileNotFound
}

func skillsToJSON(skills []string) (datatypes.JSON, error) {
	if skills == nil {
		return nil, nil
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func skillsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil
	}
	return skills
}
