package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WHATSAPP_TOKEN", "token")
	t.Setenv("PHONE_NUMBER_ID", "111222333")
	t.Setenv("VERIFY_TOKEN", "verify")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("DATABASE_URL", "postgres://localhost/smilecare")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModelID)
	assert.Equal(t, 24*time.Hour, cfg.DedupeTTL)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_MODEL_ID", "gemini-2.5-pro")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DEDUPE_TTL", "1h")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModelID)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.DedupeTTL)
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEDUPE_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.DedupeTTL)
}

func TestValidateAllPresent(t *testing.T) {
	setRequiredEnv(t)

	require.NoError(t, Load().Validate())
}

func TestValidateReportsEveryMissingVariable(t *testing.T) {
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("PHONE_NUMBER_ID", "")
	t.Setenv("VERIFY_TOKEN", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	err := Load().Validate()
	require.Error(t, err)

	for _, name := range []string{
		"WHATSAPP_TOKEN",
		"PHONE_NUMBER_ID",
		"VERIFY_TOKEN",
		"GEMINI_API_KEY",
		"DATABASE_URL",
	} {
		assert.Contains(t, err.Error(), name)
	}
}

func TestValidateSingleMissing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_API_KEY", "")

	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	assert.NotContains(t, err.Error(), "DATABASE_URL")
}
