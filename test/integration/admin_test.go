package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"kirismor_backend/internal/models"
	"kirismor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createAndLoginStaff(t *testing.T, ts *helpers.TestServer, tx *gorm.DB) string {
	email := fmt.Sprintf("staff_%d@test.com", time.Now().UnixNano())
	user := &models.User{
		Email:        email,
		PasswordHash: "password123",
		Role:         models.UserRoleClient,
		IsStaff:      true,
	}
	require.NoError(t, helpers.CreateUser(t, tx, user))

	loginBody := map[string]interface{}{"email": email, "password": "password123"}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	return loginResponse.Token
}

func TestAdminEndpointsRequireStaff(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	res, _ := ts.SendRequest(t, "GET", "/api/admin/users", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestAdminCreateUserSkipsVerification(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken := createAndLoginStaff(t, ts, tx)

	createBody := map[string]interface{}{
		"email":    "seeded@test.com",
		"password": "password123",
		"role":     "recruiter",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/admin/users", staffToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var user models.User
	require.NoError(t, tx.Where("email = ?", "seeded@test.com").First(&user).Error)
	assert.True(t, user.IsVerified)
	assert.Equal(t, models.UserStatusActive, user.Status)

	// The seeded account can log in immediately.
	loginBody := map[string]interface{}{"email": "seeded@test.com", "password": "password123"}
	res, _ = ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestAdminSuspendUserBlocksLogin(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken := createAndLoginStaff(t, ts, tx)
	_, user := helpers.CreateAndLoginCandidate(t, ts, tx)

	statusBody := map[string]interface{}{"status": "suspended"}
	res, _ := ts.SendRequest(t, "PATCH", "/api/admin/users/"+user.ID+"/status", staffToken, statusBody)
	require.Equal(t, http.StatusOK, res.StatusCode)

	loginBody := map[string]interface{}{"email": user.Email, "password": "password123"}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "suspended")
}

func TestAdminUserListFilters(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken := createAndLoginStaff(t, ts, tx)
	_, candidate := helpers.CreateAndLoginCandidate(t, ts, tx)
	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/admin/users?role=candidate", staffToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, candidate.Email)
	assert.NotContains(t, bodyStr, recruiter.Email)
}

func TestNewsRoleTargeting(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	staffToken := createAndLoginStaff(t, ts, tx)
	candidateToken, _ := helpers.CreateAndLoginCandidate(t, ts, tx)
	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	createBody := map[string]interface{}{
		"title":   "Candidate Update",
		"content": "New resume builder is live",
		"role":    "candidate",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/admin/news", staffToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// The feed only shows items targeted at the caller's role.
	res, bodyStr := ts.SendRequest(t, "GET", "/api/news", candidateToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Candidate Update")

	res, bodyStr = ts.SendRequest(t, "GET", "/api/news", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "Candidate Update")
}
