package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shev-k/mikes-cut/config"
	"github.com/shev-k/mikes-cut/utils"
)

func TestMain(m *testing.M) {
	config.Load()
	m.Run()
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("changeme123")
	require.NoError(t, err)
	assert.NotEqual(t, "changeme123", hash)

	assert.True(t, utils.CheckPasswordHash("changeme123", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken(7, "admin")
	require.NoError(t, err)

	claims, err := utils.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := utils.VerifyToken("not.a.token")
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateRefreshToken(3, "barber")
	require.NoError(t, err)

	claims, err := utils.VerifyRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "barber", claims.Role)
}
