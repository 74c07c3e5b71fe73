package auth

import (
	"testing"
	"time"

	"elgrace_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *models.User {
	u := &models.User{
		Email: "model@example.com",
		Role:  models.UserRoleModel,
	}
	u.ID = "11111111-2222-3333-4444-555555555555"
	return u
}

func TestAccessTokenRoundTrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := NewAccessToken(testUser(), time.Minute)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", claims.UserID)
	assert.Equal(t, models.UserRoleModel, claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestParseTokenRejectsRefreshToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := NewRefreshToken(testUser(), time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrNotAccessToken)

	claims, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.Type)
}

func TestParseTokenExpired(t *testing.T) {
	SetSecret("test-secret")

	token, err := NewAccessToken(testUser(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseTokenWrongSecret(t *testing.T) {
	SetSecret("test-secret")
	token, err := NewAccessToken(testUser(), time.Minute)
	require.NoError(t, err)

	SetSecret("another-secret")
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
