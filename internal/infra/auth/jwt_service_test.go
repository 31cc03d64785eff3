package auth

import (
	"testing"
	"time"

	"burgerqueen/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = secret
	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.Generate("64f0c7e2a1b2c3d4e5f60718", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c7e2a1b2c3d4e5f60718", claims.UserID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.Generate("64f0c7e2a1b2c3d4e5f60718", -time.Minute)
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("different_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := issuer.Generate("64f0c7e2a1b2c3d4e5f60718", time.Hour)
	require.NoError(t, err)

	claims, err := verifier.Validate(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecret(t *testing.T) {
	svc, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}
