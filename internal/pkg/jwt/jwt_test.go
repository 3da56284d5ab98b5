package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key"

func TestGenerateAndValidateAccessToken(t *testing.T) {
	token, err := GenerateAccessToken(42, "john", "ROLE_USER", testSecret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "john", claims.Username)
	assert.Equal(t, "ROLE_USER", claims.Role)
	assert.Equal(t, "john", claims.Subject)
	assert.NotEmpty(t, claims.ID, "every token carries a unique jti")
}

func TestValidateExpiredToken(t *testing.T) {
	token, err := GenerateAccessToken(1, "john", "ROLE_USER", testSecret, -5)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "john", "ROLE_ADMIN", testSecret, 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "some_other_secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateGarbageToken(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
