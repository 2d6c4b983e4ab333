package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_NAME", "antar-test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("OTP_TTL_SECONDS", "120")
	t.Setenv("PRICING_BASE_FARE", "7.5")
	t.Setenv("PRICING_CURRENCY", "IDR")
	t.Setenv("RATE_LIMIT_ENABLED", "true")

	cfg := loadConfigFromEnv()

	assert.Equal(t, "antar-test", cfg.App.Name)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "super-secret", cfg.JWT.Secret)
	assert.Equal(t, 120, cfg.OTP.TTLSeconds)
	assert.Equal(t, 7.5, cfg.Pricing.BaseFare)
	assert.Equal(t, "IDR", cfg.Pricing.Currency)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := loadConfigFromEnv()

	assert.Equal(t, 5.0, cfg.Pricing.BaseFare)
	assert.Equal(t, 2.0, cfg.Pricing.RatePerKm)
	assert.Equal(t, 300, cfg.OTP.TTLSeconds)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "not-a-number")
	t.Setenv("TEST_BOOL", "not-a-bool")
	t.Setenv("TEST_FLOAT", "not-a-float")

	// Invalid values fall back to defaults with a warning.
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 42))
	assert.Equal(t, true, GetEnvAsBool("TEST_BOOL", true))
	assert.Equal(t, 1.5, GetEnvAsFloat("TEST_FLOAT", 1.5))

	assert.Equal(t, "fallback", GetEnv("TEST_UNSET_KEY", "fallback"))
}
