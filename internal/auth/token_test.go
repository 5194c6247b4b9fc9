package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	Configure("unit-test-secret", 60)

	tokenStr, err := GenerateToken("user-123", "recruiter", true)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := ParseToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "recruiter", claims.Role)
	assert.True(t, claims.IsStaff)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	Configure("unit-test-secret", 60)

	tokenStr, err := GenerateToken("user-123", "candidate", false)
	require.NoError(t, err)

	_, err = ParseToken(tokenStr + "x")
	assert.Error(t, err)

	_, err = ParseToken("not-a-jwt")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	Configure("first-secret", 60)
	tokenStr, err := GenerateToken("user-123", "candidate", false)
	require.NoError(t, err)

	Configure("second-secret", 60)
	_, err = ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	Configure("unit-test-secret", 0)

	tokenStr, err := GenerateToken("user-123", "candidate", false)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestGenerateTokenRequiresConfiguration(t *testing.T) {
	Configure("", 60)
	defer Configure("unit-test-secret", 60)

	_, err := GenerateToken("user-123", "candidate", false)
	assert.Error(t, err)
}

func TestVerificationTokensAreUnique(t *testing.T) {
	first := GenerateVerificationToken("a@test.com")
	second := GenerateVerificationToken("a@test.com")

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
