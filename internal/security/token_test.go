package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough-123"

func TestTokenRoundTrip(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	token, err := manager.GenerateAccessToken(42, "user@example.com", []string{"user"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.False(t, claims.IsAdmin())
}

func TestValidateToken_WrongSecret(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)
	other := NewTokenManager("a-completely-different-secret-key-456", 60)

	token, err := manager.GenerateAccessToken(42, "user@example.com", nil)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	manager := NewTokenManager(testSecret, 60)

	_, err := manager.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIsAdmin(t *testing.T) {
	claims := &UserClaims{Roles: []string{"user", RoleAdmin}}
	assert.True(t, claims.IsAdmin())

	claims = &UserClaims{Roles: []string{"user"}}
	assert.False(t, claims.IsAdmin())

	claims = &UserClaims{}
	assert.False(t, claims.IsAdmin())
}
