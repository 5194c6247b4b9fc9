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

func TestJobRequestLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)
	recruiterToken, recruiter := helpers.CreateAndLoginRecruiter(t, ts, tx)

	createBody := map[string]interface{}{
		"title":       "Need three Go engineers",
		"description": "Fintech team expansion",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/requests", clientToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.Equal(t, "pending", created.Status)

	// The first recruiter to act becomes the assigned recruiter.
	statusBody := map[string]interface{}{
		"status":  "processing",
		"comment": "Taking this one",
	}
	res, bodyStr = ts.SendRequest(t, "PATCH", "/api/requests/"+created.ID+"/status", recruiterToken, statusBody)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var request models.JobRequest
	require.NoError(t, tx.First(&request, "id = ?", created.ID).Error)
	require.NotNil(t, request.RecruiterID)
	assert.Equal(t, recruiter.ID, *request.RecruiterID)
	assert.Equal(t, models.RequestStatusProcessing, request.Status)

	// Complete it and check the audit trail the employer sees.
	statusBody = map[string]interface{}{"status": "completed", "comment": "All hired"}
	res, _ = ts.SendRequest(t, "PATCH", "/api/requests/"+created.ID+"/status", recruiterToken, statusBody)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr = ts.SendRequest(t, "GET", "/api/requests/"+created.ID, clientToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var history struct {
		History []struct {
			NewStatus string `json:"new_status"`
			Message   string `json:"message"`
		} `json:"history"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &history))
	require.Len(t, history.History, 2)
	assert.Equal(t, "processing", history.History[0].NewStatus)
	assert.Equal(t, "completed", history.History[1].NewStatus)
}

func TestCreateRequestWithPreassignedRecruiter(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)
	_, chosen := helpers.CreateAndLoginRecruiter(t, ts, tx)
	otherToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	createBody := map[string]interface{}{
		"title":        "Addressed Request",
		"description":  "For a specific recruiter",
		"recruiter_id": chosen.ID,
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/requests", clientToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID          string  `json:"id"`
		RecruiterID *string `json:"recruiter_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	require.NotNil(t, created.RecruiterID)
	assert.Equal(t, chosen.ID, *created.RecruiterID)

	// Other recruiters cannot touch an addressed request.
	statusBody := map[string]interface{}{"status": "processing"}
	res, bodyStr = ts.SendRequest(t, "PATCH", "/api/requests/"+created.ID+"/status", otherToken, statusBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "assigned recruiter")
}

func TestCreateRequestUnknownRecruiterRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)

	createBody := map[string]interface{}{
		"title":        "Badly Addressed Request",
		"description":  "Points at a non-recruiter",
		"recruiter_id": client.ID,
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/requests", clientToken, createBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "recruiter profile")
}

func TestRequestRecruiterReassignmentRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, _ := helpers.CreateAndLoginClient(t, ts, tx)
	_, first := helpers.CreateAndLoginRecruiter(t, ts, tx)
	_, second := helpers.CreateAndLoginRecruiter(t, ts, tx)

	createBody := map[string]interface{}{
		"title":        "Bound Request",
		"description":  "Assigned at creation",
		"recruiter_id": first.ID,
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/requests", clientToken, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	// Pointing the pending request at a different recruiter is a conflict.
	updateBody := map[string]interface{}{"recruiter_id": second.ID}
	res, bodyStr = ts.SendRequest(t, "PUT", "/api/requests/"+created.ID, clientToken, updateBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "cannot be changed")

	// Repeating the current assignment is a no-op, not an error.
	updateBody = map[string]interface{}{"recruiter_id": first.ID}
	res, _ = ts.SendRequest(t, "PUT", "/api/requests/"+created.ID, clientToken, updateBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestRequestRecruiterBindingIsPermanent(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, client := helpers.CreateAndLoginClient(t, ts, tx)
	firstToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)
	secondToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	request := helpers.CreateTestRequest(t, tx, client.ID, "Contested Request")

	statusBody := map[string]interface{}{"status": "processing"}
	res, _ := ts.SendRequest(t, "PATCH", "/api/requests/"+request.ID+"/status", firstToken, statusBody)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// A different recruiter cannot touch it anymore.
	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/requests/"+request.ID+"/status", secondToken, statusBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, bodyStr, "assigned recruiter")
}

func TestRequestStatusIsForwardOnly(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, client := helpers.CreateAndLoginClient(t, ts, tx)
	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	request := helpers.CreateTestRequest(t, tx, client.ID, "One Way Request")

	res, _ := ts.SendRequest(t, "PATCH", "/api/requests/"+request.ID+"/status",
		recruiterToken, map[string]interface{}{"status": "processing"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Repeating the current status is an allowed no-op.
	res, _ = ts.SendRequest(t, "PATCH", "/api/requests/"+request.ID+"/status",
		recruiterToken, map[string]interface{}{"status": "processing"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Going backwards is not.
	res, bodyStr := ts.SendRequest(t, "PATCH", "/api/requests/"+request.ID+"/status",
		recruiterToken, map[string]interface{}{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid job request status")
}

func TestRequestEditLockedOnceProcessing(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	clientToken, client := helpers.CreateAndLoginClient(t, ts, tx)
	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	request := helpers.CreateTestRequest(t, tx, client.ID, "Editable Request")

	updateBody := map[string]interface{}{"title": "Edited Title"}
	res, _ := ts.SendRequest(t, "PUT", "/api/requests/"+request.ID, clientToken, updateBody)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "PATCH", "/api/requests/"+request.ID+"/status",
		recruiterToken, map[string]interface{}{"status": "processing"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, "PUT", "/api/requests/"+request.ID, clientToken, updateBody)
	assert.NotEqual(t, http.StatusOK, res.StatusCode)
}

func TestRequestVisibility(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, owner := helpers.CreateAndLoginClient(t, ts, tx)
	strangerToken, _ := helpers.CreateAndLoginClient(t, ts, tx)

	request := helpers.CreateTestRequest(t, tx, owner.ID, "Private Request")

	res, _ := ts.SendRequest(t, "GET", "/api/requests/"+request.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestUnassignedPendingRequestsVisibleToRecruiters(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, client := helpers.CreateAndLoginClient(t, ts, tx)
	recruiterToken, _ := helpers.CreateAndLoginRecruiter(t, ts, tx)

	helpers.CreateTestRequest(t, tx, client.ID, "Open Pool Request")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/my/assigned-requests", recruiterToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Open Pool Request")
}
