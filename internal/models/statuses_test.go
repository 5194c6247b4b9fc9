package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(UserRoleCandidate))
	assert.True(t, ValidRole(UserRoleClient))
	assert.True(t, ValidRole(UserRoleRecruiter))

	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("CANDIDATE"))
}

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range []ApplicationStatus{
		ApplicationStatusSubmitted,
		ApplicationStatusReviewed,
		ApplicationStatusAccepted,
		ApplicationStatusRejected,
	} {
		assert.True(t, ValidApplicationStatus(s), string(s))
	}
	assert.False(t, ValidApplicationStatus("withdrawn"))
}

func TestValidRequestStatus(t *testing.T) {
	assert.True(t, ValidRequestStatus(RequestStatusPending))
	assert.True(t, ValidRequestStatus(RequestStatusProcessing))
	assert.True(t, ValidRequestStatus(RequestStatusCompleted))
	assert.False(t, ValidRequestStatus("cancelled"))
}

func TestValidTaskStatusAndPriority(t *testing.T) {
	assert.True(t, ValidTaskStatus(TaskStatusOpen))
	assert.True(t, ValidTaskStatus(TaskStatusInProgress))
	assert.True(t, ValidTaskStatus(TaskStatusCompleted))
	assert.False(t, ValidTaskStatus("done"))

	assert.True(t, ValidTaskPriority(TaskPriorityLow))
	assert.True(t, ValidTaskPriority(TaskPriorityMedium))
	assert.True(t, ValidTaskPriority(TaskPriorityHigh))
	assert.False(t, ValidTaskPriority("urgent"))
}

func TestJobIsOpen(t *testing.T) {
	job := Job{Status: JobStatusOpen}
	assert.True(t, job.IsOpen())

	job.Status = JobStatusClosed
	assert.False(t, job.IsOpen())
}
