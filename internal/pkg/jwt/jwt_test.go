package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "emp-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	employeeID, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", employeeID)
}

func TestValidateAccessToken_Rejects(t *testing.T) {
	svc := NewJWTService("test-secret-key-for-jwt", "1h")
	other := NewJWTService("another-secret", "1h")

	token, _, err := other.GenerateAccessToken("user-1", "emp-1")
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err, "signature from another key")

	expired := NewJWTService("test-secret-key-for-jwt", "-2h")
	token, _, err = expired.GenerateAccessToken("user-1", "emp-1")
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err, "expired token")

	noEmployee, _, err := svc.GenerateAccessToken("user-1", "")
	require.NoError(t, err)
	_, err = svc.ValidateAccessToken(noEmployee)
	assert.Error(t, err)
}

func TestGenerateAccessToken_InvalidDuration(t *testing.T) {
	svc := NewJWTService("secret", "forever")
	_, _, err := svc.GenerateAccessToken("user-1", "emp-1")
	assert.Error(t, err)
}
