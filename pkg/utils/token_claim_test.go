package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestExtractUserIDFromHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := uuid.New()
	token := signTestToken(t, "test-secret", jwt.MapClaims{
		"user_id":   userID.String(),
		"user_role": RoleUser,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	got, err := ExtractUserIDFromHeader("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestExtractUserIDFromHeaderMissing(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ExtractUserIDFromHeader("")
	assert.Error(t, err)

	_, err = ExtractUserIDFromHeader("Basic abc123")
	assert.Error(t, err)
}

func TestExtractUserIDFromHeaderExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signTestToken(t, "test-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	_, err := ExtractUserIDFromHeader("Bearer " + token)
	assert.Error(t, err)
}

func TestExtractUserIDFromHeaderWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signTestToken(t, "other-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	_, err := ExtractUserIDFromHeader("Bearer " + token)
	assert.Error(t, err)
}

func TestExtractUserAndRoleFromHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := uuid.New()
	token := signTestToken(t, "test-secret", jwt.MapClaims{
		"user_id":   userID.String(),
		"user_role": RoleAdmin,
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	gotID, role, err := ExtractUserAndRoleFromHeader("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, RoleAdmin, role)
}

func TestExtractUserAndRoleFromHeaderMissingRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token := signTestToken(t, "test-secret", jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	_, _, err := ExtractUserAndRoleFromHeader("Bearer " + token)
	assert.Error(t, err)
}
