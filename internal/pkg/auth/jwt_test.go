// internal/pkg/auth/jwt_test.go
package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/restaurant-storefront/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "storefront-test"},
		JWT: config.JWTConfig{
			Secret:            "test-secret-key-for-jwt-signing",
			AccessTokenExpiry: time.Hour,
		},
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken(42, "a@example.com", false)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.False(t, claims.IsAdmin)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())
	token, err := manager.GenerateAccessToken(42, "a@example.com", false)
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "a-different-secret"
	_, err = NewJWTManager(other).ValidateAccessToken(token)

	assert.Error(t, err)
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessTokenExpiry = -time.Minute
	manager := NewJWTManager(cfg)

	token, err := manager.GenerateAccessToken(42, "a@example.com", false)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsZeroUserID(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken(0, "a@example.com", false)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_RejectsGarbage(t *testing.T) {
	manager := NewJWTManager(testConfig())

	_, err := manager.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc123", ExtractTokenFromHeader("Bearer abc123"))
	assert.Empty(t, ExtractTokenFromHeader("abc123"))
	assert.Empty(t, ExtractTokenFromHeader("Bearer"))
	assert.Empty(t, ExtractTokenFromHeader(""))
}
