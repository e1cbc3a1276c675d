package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventory/apperrors"
	"inventory/models"
)

var testAdmin = models.Credential{Username: "admin1", Password: "secret", IsAdmin: true}

func TestIssueAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Issue(testAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin1", claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestVerifyExpiredToken(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)

	token, err := ts.Issue(testAdmin)
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(testAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestVerifyGarbageToken(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := ts.Verify(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	}
}
