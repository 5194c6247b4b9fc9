package integration_test

import (
	"net/http"
	"testing"

	"kirismor_backend/internal/models"
	"kirismor_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestFeedbackTwoPhaseFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	job := helpers.CreateTestJob(t, tx, recruiter.ID, "Job With Feedback")

	submitBody := map[string]interface{}{
		"email":   "guest@test.com",
		"message": "Is this role remote friendly?",
	}

	// First contact from this address: feedback is staged, not posted.
	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/feedback", "", submitBody)
	assert.Equal(t, http.StatusAccepted, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"verification_required":true`)

	// The owning recruiter sees nothing yet.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/jobs/"+job.ID+"/feedback", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotContains(t, bodyStr, "remote friendly")

	// Follow the emailed link.
	var staged models.TempGuestFeedback
	require.NoError(t, tx.Where("email = ?", "guest@test.com").First(&staged).Error)
	require.NotEmpty(t, staged.VerificationToken)

	res, _ = ts.SendRequest(t, "GET", "/api/feedback/verify?token="+staged.VerificationToken, "", nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	// Now the feedback is visible and the staged row is gone.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/jobs/"+job.ID+"/feedback", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "remote friendly")

	err := tx.Where("email = ?", "guest@test.com").First(&models.TempGuestFeedback{}).Error
	assert.ErrorContains(t, err, "record not found")
}

func TestVerifiedEmailFastPath(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	job := helpers.CreateTestJob(t, tx, recruiter.ID, "Popular Job")

	// An earlier verified feedback from this address on the same job.
	earlier := models.GuestFeedback{
		JobID:      job.ID,
		Email:      "regular@test.com",
		Message:    "First question",
		IsVerified: true,
	}
	require.NoError(t, tx.Create(&earlier).Error)

	submitBody := map[string]interface{}{
		"email":   "regular@test.com",
		"message": "Second question",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/feedback", "", submitBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"posted":true`)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/jobs/"+job.ID+"/feedback", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Second question")
}

func TestVerifiedEmailTrustedAcrossJobs(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	firstJob := helpers.CreateTestJob(t, tx, recruiter.ID, "First Posting")
	secondJob := helpers.CreateTestJob(t, tx, recruiter.ID, "Second Posting")

	// The address completed verification on the first job.
	earlier := models.GuestFeedback{
		JobID:      firstJob.ID,
		Email:      "trusted@test.com",
		Message:    "Question on the first posting",
		IsVerified: true,
	}
	require.NoError(t, tx.Create(&earlier).Error)

	// A comment on a different job posts without another round trip.
	submitBody := map[string]interface{}{
		"email":   "trusted@test.com",
		"message": "Question on the second posting",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/jobs/"+secondJob.ID+"/feedback", "", submitBody)
	assert.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"posted":true`)
}

func TestFeedbackListingIsOwnerOnly(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, owner := helpers.CreateAndLoginRecruiter(t, ts, tx)
	job := helpers.CreateTestJob(t, tx, owner.ID, "Private Feedback Job")

	strangerToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	res, _ := ts.SendRequest(t, "GET", "/api/jobs/"+job.ID+"/feedback", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Guests cannot read it at all.
	res, _ = ts.SendRequest(t, "GET", "/api/jobs/"+job.ID+"/feedback", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestRecruiterFeedbackAcrossOwnJobs(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	goJob := helpers.CreateTestJob(t, tx, recruiter.ID, "Go Developer")
	opsJob := helpers.CreateTestJob(t, tx, recruiter.ID, "Ops Engineer")

	for _, f := range []models.GuestFeedback{
		{JobID: goJob.ID, Email: "a@test.com", Message: "About the Go role", IsVerified: true},
		{JobID: opsJob.ID, Email: "b@test.com", Message: "About the Ops role", IsVerified: true},
	} {
		require.NoError(t, tx.Create(&f).Error)
	}

	// Everything across the recruiter's jobs, newest first.
	res, bodyStr := ts.SendRequest(t, "GET", "/api/my/feedback", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "About the Go role")
	assert.Contains(t, bodyStr, "About the Ops role")

	// Title search narrows to one job.
	res, bodyStr = ts.SendRequest(t, "GET", "/api/my/feedback?q=ops", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "About the Ops role")
	assert.NotContains(t, bodyStr, "About the Go role")
}

func TestResubmitReplacesStagedFeedback(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)
	job := helpers.CreateTestJob(t, tx, recruiter.ID, "Job With Retries")

	first := map[string]interface{}{
		"email":   "retry@test.com",
		"message": "First draft",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/feedback", "", first)
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	second := map[string]interface{}{
		"email":   "retry@test.com",
		"message": "Second draft",
	}
	res, _ = ts.SendRequest(t, "POST", "/api/jobs/"+job.ID+"/feedback", "", second)
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	// Only one staged row survives and it carries the latest message.
	var staged []models.TempGuestFeedback
	require.NoError(t, tx.Where("email = ?", "retry@test.com").Find(&staged).Error)
	require.Len(t, staged, 1)
	assert.Equal(t, "Second draft", staged[0].Message)
}

func TestFeedbackVerifyBadToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/feedback/verify?token=no-such-token", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid or expired token")
}
