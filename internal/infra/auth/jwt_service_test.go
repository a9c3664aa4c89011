package auth

import (
	"testing"
	"time"

	"mirathi/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Secret:   "test_secret_key_very_long_for_testing",
			TokenTTL: 15 * time.Minute,
		},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{"registrar", "admin"}

	token, err := jwtService.GenerateToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{
		Auth: config.AuthConfig{Secret: "a_completely_different_secret_key"},
	})
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TokenDurationDefault(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{
		Auth: config.AuthConfig{Secret: "test_secret_key_very_long_for_testing"},
	})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, jwtService.GetTokenDuration())

	configured, err := NewJWTService(testConfig())
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, configured.GetTokenDuration())
}
