package integration_test

import (
	"net/http"
	"testing"
	"time"

	"kirismor_backend/internal/models"
	"kirismor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAndUpdateCandidateProfile(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	candidateToken, _ := helpers.CreateAndLoginCandidate(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/profile/me", candidateToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Test")

	dob := time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC)
	updateBody := map[string]interface{}{
		"bio":           "Go developer",
		"skills":        []string{"go", "postgres", "docker"},
		"date_of_birth": dob.Format(time.RFC3339),
	}
	res, bodyStr = ts.SendRequest(t, "PUT", "/api/profile/candidate", candidateToken, updateBody)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "Go developer")
	assert.Contains(t, bodyStr, "postgres")
	// Age is derived from the date of birth.
	assert.Contains(t, bodyStr, `"age":`)
}

func TestProfileUpdateRoleMismatch(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	candidateToken, _ := helpers.CreateAndLoginCandidate(t, ts, tx)

	updateBody := map[string]interface{}{"company_name": "Not A Company"}
	res, _ := ts.SendRequest(t, "PUT", "/api/profile/client", candidateToken, updateBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRecruiterDirectoryWithFavorites(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/recruiters", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, recruiter.ID)
	assert.NotContains(t, bodyStr, `"is_favorite":true`)

	res, _ = ts.SendRequest(t, "POST", "/api/recruiters/"+recruiter.ID+"/favorite", clientToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/recruiters", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"is_favorite":true`)
}

func TestRecruiterDirectorySearchByName(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, first := helpers.CreateAndLoginRecruiter(t, ts, tx)
	_, second := helpers.CreateAndLoginRecruiter(t, ts, tx)
	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	require.NoError(t, tx.Model(&models.RecruiterProfile{}).Where("user_id = ?", first.ID).
		Updates(map[string]interface{}{"first_name": "Aigerim", "last_name": "Satybaldina"}).Error)
	require.NoError(t, tx.Model(&models.RecruiterProfile{}).Where("user_id = ?", second.ID).
		Updates(map[string]interface{}{"first_name": "Daniyar", "last_name": "Omarov"}).Error)

	// First-name match ignores case.
	res, bodyStr := ts.SendRequest(t, "GET", "/api/recruiters?q=AIGERIM", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, first.ID)
	assert.NotContains(t, bodyStr, second.ID)

	// Last names are searched too.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/recruiters?q=omarov", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, second.ID)
	assert.NotContains(t, bodyStr, first.ID)
}

func TestFavoriteUnknownRecruiterFails(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	res, _ := ts.SendRequest(t, "POST", "/api/recruiters/00000000-0000-0000-0000-000000000000/favorite", clientToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestDashboardPerRole(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	candidateToken, _ := helpers.CreateAndLoginCandidate(t, ts, tx)
	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)
	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)

	helpers.CreateTestJob(t, tx, recruiter.ID, "Dashboard Job")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/dashboard", candidateToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"role":"candidate"`)
	assert.Contains(t, bodyStr, "Dashboard Job")

	res, bodyStr = ts.SendRequest(t, "GET", "/api/dashboard", clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"role":"client"`)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/dashboard", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, `"role":"recruiter"`)
	assert.Contains(t, bodyStr, "Dashboard Job")
}
