package helpers_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joshua-takyi/orange/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := helpers.GenerateToken(secret, "user-1", "priya@example.com", "creator")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := helpers.ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "priya@example.com", claims.Email)
	assert.Equal(t, "creator", claims.Role)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.InDelta(t, helpers.TokenTTL.Seconds(), remaining.Seconds(), 60)
}

func TestValidateTokenRejections(t *testing.T) {
	good, err := helpers.GenerateToken(secret, "user-1", "priya@example.com", "creator")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.jwt"},
		{name: "empty", token: ""},
		{name: "tampered payload", token: good[:len(good)-2] + "xx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := helpers.ValidateToken(secret, tt.token)
			assert.Error(t, err)
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		_, err := helpers.ValidateToken("other-secret", good)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := &helpers.CustomClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		_, err = helpers.ValidateToken(secret, expired)
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := &helpers.CustomClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		_, err = helpers.ValidateToken(secret, noSub)
		assert.Error(t, err)
	})

	t.Run("unsigned algorithm", func(t *testing.T) {
		claims := &helpers.CustomClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = helpers.ValidateToken(secret, unsigned)
		assert.Error(t, err)
	})
}
