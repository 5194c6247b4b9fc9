package validator

import (
	"testing"

	"kirismor_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleInput struct {
	Role models.UserRole `json:"role" validate:"user_role"`
}

type taskInput struct {
	Status   models.TaskStatus   `json:"status" validate:"task_status"`
	Priority models.TaskPriority `json:"priority" validate:"task_priority"`
}

func TestCustomRoleRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(roleInput{Role: models.UserRoleCandidate}))
	assert.NoError(t, v.Validate(roleInput{Role: models.UserRoleRecruiter}))

	err := v.Validate(roleInput{Role: "superuser"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, verr.Errors["role"], "candidate, client, recruiter")
}

func TestCustomTaskRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(taskInput{
		Status:   models.TaskStatusInProgress,
		Priority: models.TaskPriorityHigh,
	}))

	err := v.Validate(taskInput{Status: "done", Priority: "urgent"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, verr.Errors, 2)
}

func TestFieldNamesComeFromJSONTags(t *testing.T) {
	v := New()

	type input struct {
		EmailAddress string `json:"email_address" validate:"required,email"`
	}

	err := v.Validate(input{})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	_, usesWireName := verr.Errors["email_address"]
	assert.True(t, usesWireName)
}
