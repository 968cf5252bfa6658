// File: internal/auth/jwt_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJWT(42, secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestGenerateJWTZeroUser(t *testing.T) {
	_, err := GenerateJWT(0, []byte("test-secret"))
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, []byte("right-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(token, []byte("wrong-secret"))
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", []byte("test-secret"))
	assert.Error(t, err)
}
