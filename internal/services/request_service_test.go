package services

import (
	"testing"

	"kirismor_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRequestTransitionsAreForwardOnly(t *testing.T) {
	cases := []struct {
		from, to models.RequestStatus
		allowed  bool
	}{
		{models.RequestStatusPending, models.RequestStatusProcessing, true},
		{models.RequestStatusPending, models.RequestStatusCompleted, true},
		{models.RequestStatusProcessing, models.RequestStatusCompleted, true},

		{models.RequestStatusProcessing, models.RequestStatusPending, false},
		{models.RequestStatusCompleted, models.RequestStatusProcessing, false},
		{models.RequestStatusCompleted, models.RequestStatusPending, false},
	}

	for _, tc := range cases {
		got := validRequestTransition(tc.from, tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestRequestTransitionRepeatIsIdempotent(t *testing.T) {
	for _, s := range []models.RequestStatus{
		models.RequestStatusPending,
		models.RequestStatusProcessing,
		models.RequestStatusCompleted,
	} {
		assert.True(t, validRequestTransition(s, s), string(s))
	}
}
