package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	service := NewJWTService("secret")

	token, err := service.GenerateJWT("kiran")
	require.NoError(t, err)

	parsed, err := service.ValidateToken(token)
	require.NoError(t, err)

	subject, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "kiran", subject)
}

func TestJWTExpired(t *testing.T) {
	service := NewJWTService("secret")
	service.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }

	token, err := service.GenerateJWT("kiran")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestJWTInvalid(t *testing.T) {
	token, err := NewJWTService("secret").GenerateJWT("kiran")
	require.NoError(t, err)

	_, err = NewJWTService("other").ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)

	_, err = NewJWTService("secret").ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}
