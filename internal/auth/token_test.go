package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "b8a3c2267dc85f855dea9b46b452bf20"

func signClaims(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestNewTokenGenerator(t *testing.T) {
	tg := NewTokenGenerator("test-secret-key", time.Hour)

	assert.NotNil(t, tg)
	assert.Equal(t, "test-secret-key", tg.secret)
	assert.Equal(t, time.Hour, tg.accessTokenExpiry)
}

func TestTokenGenerator_GenerateAndValidate(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Hour)

	token, err := tg.GenerateAccessToken(123)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	viewerID, err := tg.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, 123, viewerID)
}

func TestTokenGenerator_ValidateAccessToken(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Hour)
	now := time.Now()

	tests := []struct {
		name          string
		token         func(t *testing.T) string
		expectedID    int
		expectedError bool
	}{
		{
			name: "valid token",
			token: func(t *testing.T) string {
				return signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"user_id": 42, "type": "access", "exp": now.Add(time.Hour).Unix(),
				})
			},
			expectedID: 42,
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"user_id": 42, "type": "access", "exp": now.Add(-time.Hour).Unix(),
				})
			},
			expectedError: true,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signClaims(t, jwt.SigningMethodHS256, []byte("other-secret"), jwt.MapClaims{
					"user_id": 42, "type": "access", "exp": now.Add(time.Hour).Unix(),
				})
			},
			expectedError: true,
		},
		{
			name: "refresh token",
			token: func(t *testing.T) string {
				return signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"type": "refresh", "exp": now.Add(time.Hour).Unix(),
				})
			},
			expectedError: true,
		},
		{
			name: "missing user id",
			token: func(t *testing.T) string {
				return signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"type": "access", "exp": now.Add(time.Hour).Unix(),
				})
			},
			expectedError: true,
		},
		{
			name: "zero user id",
			token: func(t *testing.T) string {
				return signClaims(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"user_id": 0, "type": "access", "exp": now.Add(time.Hour).Unix(),
				})
			},
			expectedError: true,
		},
		{
			name: "unsigned token",
			token: func(t *testing.T) string {
				return signClaims(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{
					"user_id": 42, "type": "access", "exp": now.Add(time.Hour).Unix(),
				})
			},
			expectedError: true,
		},
		{
			name:          "malformed token",
			token:         func(t *testing.T) string { return "not-a-jwt" },
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewerID, err := tg.ValidateAccessToken(tt.token(t))

			if tt.expectedError {
				assert.Error(t, err)
				assert.Equal(t, 0, viewerID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, viewerID)
		})
	}
}
