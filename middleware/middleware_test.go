package middleware

import (
	"testing"
	"time"

	"civilregistry/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyJWT(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-signing-key")

	token, err := GenerateJWT(42, "citizen@x.com", domain.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "citizen@x.com", claims.Email)
	assert.Equal(t, domain.RoleUser, claims.Role)

	// 30 day validity window
	require.NotNil(t, claims.ExpiresAt)
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 29*24*time.Hour)
	assert.LessOrEqual(t, remaining, 30*24*time.Hour)
}

func TestVerifyJWTRejectsTamperedToken(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-signing-key")

	token, err := GenerateJWT(42, "citizen@x.com", domain.RoleUser)
	require.NoError(t, err)

	_, err = VerifyJWT(token + "x")
	assert.Error(t, err)

	_, err = VerifyJWT("not-a-token")
	assert.Error(t, err)
}

func TestVerifyJWTRejectsWrongKey(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-signing-key")
	token, err := GenerateJWT(42, "citizen@x.com", domain.RoleUser)
	require.NoError(t, err)

	t.Setenv("BYTE_KEY", "a-different-key")
	_, err = VerifyJWT(token)
	assert.Error(t, err)
}

func TestVerifyJWTRejectsExpiredToken(t *testing.T) {
	t.Setenv("BYTE_KEY", "test-signing-key")

	claims := &domain.Claims{
		UserID: 42,
		Email:  "citizen@x.com",
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = VerifyJWT(expired)
	assert.Error(t, err)
}
