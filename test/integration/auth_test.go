package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"kirismor_backend/internal/models"
	"kirismor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndVerifyFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"email":      "newcandidate@test.com",
		"password":   "super_password123",
		"role":       "candidate",
		"first_name": "Aruzhan",
		"last_name":  "Bekova",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Registration successful")

	// Unverified accounts cannot log in yet.
	loginBody := map[string]interface{}{
		"email":    "newcandidate@test.com",
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "verify your email")

	// Fetch the token the email would have carried and follow the link.
	var user models.User
	require.NoError(t, tx.Where("email = ?", "newcandidate@test.com").First(&user).Error)
	require.NotEmpty(t, user.VerificationToken)

	// Registration created exactly one profile row of the matching kind.
	var profileCount int64
	require.NoError(t, tx.Model(&models.CandidateProfile{}).Where("user_id = ?", user.ID).Count(&profileCount).Error)
	assert.Equal(t, int64(1), profileCount)

	verRes, _ := ts.SendRequest(t, "GET", "/api/auth/verify?token="+user.VerificationToken, "", nil)
	assert.Equal(t, http.StatusOK, verRes.StatusCode)

	logRes, logBodyStr = ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "access_token")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Email:        "duplicate@test.com",
		PasswordHash: "pass12345",
		Role:         models.UserRoleCandidate,
	})
	require.NoError(t, err)

	duplicateBody := map[string]interface{}{
		"email":    "duplicate@test.com",
		"password": "password_is_long_enough",
		"role":     "client",
	}
	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/auth/register", "", duplicateBody)
	assert.Equal(t, http.StatusConflict, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Email already in use")
}

func TestEmailIsCaseInsensitive(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Email:        "casefold@test.com",
		PasswordHash: "password123",
		Role:         models.UserRoleCandidate,
	})
	require.NoError(t, err)

	// Login ignores the case of the typed address.
	loginBody := map[string]interface{}{
		"email":    "CaseFold@Test.com",
		"password": "password123",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// The same address in a different case is still a duplicate.
	registerBody := map[string]interface{}{
		"email":    "CASEFOLD@TEST.COM",
		"password": "another_long_password",
		"role":     "client",
	}
	res, bodyStr = ts.SendRequest(t, "POST", "/api/auth/register", "", registerBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already in use")

	var count int64
	require.NoError(t, tx.Model(&models.User{}).
		Where("LOWER(email) = ?", "casefold@test.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterStoresLowercasedEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	registerBody := map[string]interface{}{
		"email":    "Mixed@Case-Register.com",
		"password": "password_is_long_enough",
		"role":     "candidate",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var user models.User
	require.NoError(t, tx.Where("email = ?", "mixed@case-register.com").First(&user).Error)
}

func TestLoginBadPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Email:        "user@test.com",
		PasswordHash: "correct-password",
		Role:         models.UserRoleCandidate,
	})
	require.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    "user@test.com",
		"password": "WRONG-password",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "Invalid email or password")
}

func TestLoginSuspendedAccount(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Email:        "suspended@test.com",
		PasswordHash: "correct-password",
		Role:         models.UserRoleCandidate,
		Status:       models.UserStatusSuspended,
		IsVerified:   true,
	})
	require.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    "suspended@test.com",
		"password": "correct-password",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	assert.Equal(t, http.StatusForbidden, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "suspended")
}

func TestRefreshTokenRotation(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	err := helpers.CreateUser(t, tx, &models.User{
		Email:        "rotation@test.com",
		PasswordHash: "correct-password",
		Role:         models.UserRoleCandidate,
	})
	require.NoError(t, err)

	loginBody := map[string]interface{}{
		"email":    "rotation@test.com",
		"password": "correct-password",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, logRes.StatusCode)

	var authResponse struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(logBodyStr), &authResponse))
	require.NotEmpty(t, authResponse.RefreshToken)

	// Refreshing issues a new pair and consumes the old token.
	refreshBody := map[string]interface{}{"refresh_token": authResponse.RefreshToken}
	refRes, refBodyStr := ts.SendRequest(t, "POST", "/api/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusOK, refRes.StatusCode)
	assert.Contains(t, refBodyStr, "access_token")

	refRes, _ = ts.SendRequest(t, "POST", "/api/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, refRes.StatusCode)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	logoutBody := map[string]interface{}{"refresh_token": "never-issued"}
	res, _ := ts.SendRequest(t, "POST", "/api/auth/logout", "", logoutBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
