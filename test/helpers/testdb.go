package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"kirismor_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a user, hashing the password when it arrives raw.
// Unless the caller says otherwise the account is active and verified so
// it can log in straight away.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash password: %v", err)
		}
		user.PasswordHash = string(hashed)
	}

	if user.Status == "" {
		user.Status = models.UserStatusActive
		user.IsVerified = true
	}

	return db.Create(user).Error
}

// CreateAndLoginUser creates an active user and logs it in via the API,
// returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, tx *gorm.DB, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, tx, user)
	require.NoError(t, err, "creating test user must succeed")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err)
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginCandidate creates a candidate with a unique email.
func CreateAndLoginCandidate(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("candidate_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, tx, email, "password123", models.UserRoleCandidate)

	profile := &models.CandidateProfile{
		UserID:    user.ID,
		FirstName: "Test",
		LastName:  "Candidate",
		Location:  "Almaty",
	}
	require.NoError(t, tx.Create(profile).Error)

	return token, user
}

// CreateAndLoginClient creates an employer account with a unique email.
func CreateAndLoginClient(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("client_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, tx, email, "password123", models.UserRoleClient)

	profile := &models.ClientProfile{
		UserID:      user.ID,
		CompanyName: "Test Company Inc.",
		Location:    "Almaty",
	}
	require.NoError(t, tx.Create(profile).Error)

	return token, user
}

// CreateAndLoginRecruiter creates a recruiter with its profile row, which
// is what grants access to tasks and request updates.
func CreateAndLoginRecruiter(t *testing.T, ts *TestServer, tx *gorm.DB) (string, *models.User) {
	email := fmt.Sprintf("recruiter_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, tx, email, "password123", models.UserRoleRecruiter)

	profile := &models.RecruiterProfile{
		UserID:      user.ID,
		FirstName:   "Test",
		LastName:    "Recruiter",
		CompanyName: "Test Agency",
	}
	require.NoError(t, tx.Create(profile).Error)

	return token, user
}

// CreateTestJob inserts an open job owned by the recruiter.
func CreateTestJob(t *testing.T, tx *gorm.DB, recruiterID, title string) models.Job {
	job := models.Job{
		RecruiterID: recruiterID,
		Title:       title,
		Description: "Test description",
		Status:      models.JobStatusOpen,
	}
	require.NoError(t, tx.Create(&job).Error)
	return job
}

// CreateTestRequest inserts a pending job request from the employer.
func CreateTestRequest(t *testing.T, tx *gorm.DB, employerID, title string) models.JobRequest {
	request := models.JobRequest{
		EmployerID:  employerID,
		Title:       title,
		Description: "Test description",
		Status:      models.RequestStatusPending,
	}
	require.NoError(t, tx.Create(&request).Error)
	return request
}
