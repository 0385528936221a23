package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokenPair(t *testing.T) {
	require.NoError(t, Init())

	access, refresh, expiresIn, err := GenerateTokenPair("ada")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Greater(t, expiresIn, 0)

	username, err := ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "ada", username)
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	require.NoError(t, Init())

	access, _, _, err := GenerateTokenPair("ada")
	require.NoError(t, err)

	// access token 没有 refresh 类型标记，不能用于换发
	_, err = ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsGarbage(t *testing.T) {
	require.NoError(t, Init())

	_, err := ValidateRefreshToken("not-a-jwt")
	assert.Error(t, err)
}

func TestGenerateBeforeInit(t *testing.T) {
	saved := sharedGenerator
	sharedGenerator = nil
	defer func() { sharedGenerator = saved }()

	_, _, _, err := GenerateTokenPair("ada")
	assert.Error(t, err)
}
