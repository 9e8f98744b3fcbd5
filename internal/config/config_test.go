package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("INTAKE_MAX_UPLOAD_MB", "5")
	t.Setenv("SWAGGER_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, "key-123", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 5*1024*1024, cfg.Intake.MaxUploadBytes())
	assert.Equal(t, 5*1024*1024*4/3+1024*1024, cfg.Intake.BodyLimit())
	assert.False(t, cfg.Swagger)
}

func TestLoad_APIKeyFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "legacy-key")

	assert.Equal(t, "legacy-key", Load().Gemini.APIKey)

	t.Setenv("GEMINI_API_KEY", "new-key")
	assert.Equal(t, "new-key", Load().Gemini.APIKey)
}

func TestValidate(t *testing.T) {
	valid := func() *AppConfig {
		return &AppConfig{
			Timezone: "UTC",
			Gemini:   GeminiConfig{APIKey: "k", Model: "m"},
			Intake:   IntakeConfig{MaxUploadMB: 1},
		}
	}

	t.Run("ok", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing credential", func(t *testing.T) {
		cfg := valid()
		cfg.Gemini.APIKey = ""
		assert.ErrorIs(t, cfg.Validate(), ErrMissingCredential)
	})

	t.Run("bad upload limit", func(t *testing.T) {
		cfg := valid()
		cfg.Intake.MaxUploadMB = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad timezone", func(t *testing.T) {
		cfg := valid()
		cfg.Timezone = "Mars/Olympus"
		assert.Error(t, cfg.Validate())
		assert.Equal(t, time.UTC, cfg.Location())
	})
}

func TestGeminiTimeout(t *testing.T) {
	assert.Equal(t, time.Duration(0), GeminiConfig{}.Timeout())
	assert.Equal(t, 30*time.Second, GeminiConfig{TimeoutSec: 30}.Timeout())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
