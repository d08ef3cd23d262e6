package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewAuthService("test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID, "tester")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "tester", claims.Username)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewAuthService("secret-a").GenerateToken(uuid.New(), "tester")
	require.NoError(t, err)

	_, err = NewAuthService("secret-b").ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewAuthService("test-secret")
	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewAuthService("test-secret")
	svc.tokenTTL = -time.Hour

	token, err := svc.GenerateToken(uuid.New(), "tester")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
