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

func TestJobLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	createBody := map[string]interface{}{
		"title":       "Senior Go Developer",
		"description": "Backend role",
		"salary":      850000,
	}
	createRes, createBodyStr := ts.SendRequest(t, "POST", "/api/jobs", recruiterToken, createBody)
	require.Equal(t, http.StatusCreated, createRes.StatusCode, createBodyStr)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(createBodyStr), &created))
	assert.Equal(t, "open", created.Status)

	// Anyone can browse open jobs.
	listRes, listBodyStr := ts.SendRequest(t, "GET", "/api/jobs", "", nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.Contains(t, listBodyStr, "Senior Go Developer")

	// Closing is owner-only and idempotent.
	closeRes, _ := ts.SendRequest(t, "POST", "/api/jobs/"+created.ID+"/close", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, closeRes.StatusCode)

	closeRes, _ = ts.SendRequest(t, "POST", "/api/jobs/"+created.ID+"/close", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, closeRes.StatusCode)

	var job models.Job
	require.NoError(t, tx.First(&job, "id = ?", created.ID).Error)
	assert.Equal(t, models.JobStatusClosed, job.Status)

	// Closed jobs drop out of the public listing.
	listRes, listBodyStr = ts.SendRequest(t, "GET", "/api/jobs", "", nil)
	assert.Equal(t, http.StatusOK, listRes.StatusCode)
	assert.NotContains(t, listBodyStr, created.ID)
}

func TestJobSearchIsCaseInsensitive(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	createBody := map[string]interface{}{
		"title":        "Platform Engineer",
		"description":  "Infrastructure team",
		"requirements": "Kubernetes and Terraform experience",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs", recruiterToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// Title match regardless of case.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/jobs?q=PLATFORM", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Platform Engineer")

	// Requirements are searched too.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/jobs?q=kubernetes", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Platform Engineer")

	res, bodyStr = ts.SendRequest(t, "GET", "/api/jobs?q=haskell", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "Platform Engineer")
}

func TestCloseJobForeignRecruiterForbidden(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, owner := helpers.CreateAndLoginRecruiter(t, ts, tx)
	otherToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	job := helpers.CreateTestJob(t, tx, owner.ID, "Owned Job")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/close", otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "recruiter")
}

func TestApplyToJob(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	candidateToken, _ := helpers.CreateAndLoginCandidate(t, ts, tx)

	job := helpers.CreateTestJob(t, tx, recruiter.ID, "Open Position")

	applyBody := map[string]interface{}{"cover_letter": "I am interested."}

	// Authenticated application.
	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/apply", candidateToken, applyBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// A repeat application from the same candidate is accepted too.
	res, _ = ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/apply", candidateToken, applyBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// Guests may apply without an account.
	res, _ = ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/apply", "", applyBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// The owner sees all three.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/jobs/"+job.ID+"/applications", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var list struct {
		Applications []struct {
			ID string `json:"id"`
		} `json:"applications"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Len(t, list.Applications, 3)
}

func TestRecruiterApplicationsAcrossOwnJobs(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	goJob := helpers.CreateTestJob(t, tx, recruiter.ID, "Go Backend Role")
	opsJob := helpers.CreateTestJob(t, tx, recruiter.ID, "SRE Role")

	// A job owned by somebody else must not leak into the view.
	_, other := helpers.CreateAndLoginRecruiter(t, ts, tx)
	foreignJob := helpers.CreateTestJob(t, tx, other.ID, "Foreign Role")

	for _, target := range []struct{ id, letter string }{
		{goJob.ID, "About the backend role"},
		{opsJob.ID, "About the SRE role"},
		{foreignJob.ID, "About the foreign role"},
	} {
		res, _ := ts.SendRequest(t, "POST", "/api/jobs/"+target.id+"/apply", "",
			map[string]interface{}{"cover_letter": target.letter})
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res, bodyStr := ts.SendRequest(t, "GET", "/api/my/job-applications", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "About the backend role")
	assert.Contains(t, bodyStr, "About the SRE role")
	assert.NotContains(t, bodyStr, "About the foreign role")

	// Title search narrows to one job's applications.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/my/job-applications?q=sre", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "About the SRE role")
	assert.NotContains(t, bodyStr, "About the backend role")
}

func TestApplyToClosedJobRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)

	job := helpers.CreateTestJob(t, tx, recruiter.ID, "Closed Position")
	require.NoError(t, tx.Model(&job).Update("status", models.JobStatusClosed).Error)

	applyBody := map[string]interface{}{"cover_letter": "Too late."}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/apply", "", applyBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "not open")
}

func TestLikeJobIsIdempotent(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	candidateToken, _ := helpers.CreateAndLoginCandidate(t, ts, tx)

	job := helpers.CreateTestJob(t, tx, recruiter.ID, "Likeable Job")

	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/like", candidateToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// Liking twice changes nothing.
	res, _ = ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/like", candidateToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	require.NoError(t, tx.Model(&models.Like{}).Where("job_id = ?", job.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Unlike twice is fine too.
	res, _ = ts.SendRequest(t, "DELETE", "/api/jobs/"+job.ID+"/like", candidateToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, "DELETE", "/api/jobs/"+job.ID+"/like", candidateToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestFavoriteJobsListing(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	candidateToken, _ := helpers.CreateAndLoginCandidate(t, ts, tx)

	job := helpers.CreateTestJob(t, tx, recruiter.ID, "Bookmarked Job")

	res, _ := ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/favorite", candidateToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/my/favorites", candidateToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Bookmarked Job")
}
