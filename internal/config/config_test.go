package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_PORT", "GO_ENV", "DB_DRIVER", "JWT_TTL_MINUTES", "OTEL_ENABLED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := FromEnv()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Tracing.Enabled)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("DB_LOG_SQL", "true")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("OTEL_ENABLED", "1")
	t.Setenv("OTEL_SERVICE_NAME", "chat-test")

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.True(t, cfg.Database.LogSQL)
	assert.Equal(t, "s3cret", cfg.Auth.JwtSecret)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "chat-test", cfg.Tracing.ServiceName)
}

func TestGetEnvAsIntAndBool_FallBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "ten")
	t.Setenv("SOME_BOOL", "maybe")

	assert.Equal(t, 10, getEnvAsInt("SOME_INT", 10))
	assert.True(t, getEnvAsBool("SOME_BOOL", true))
	assert.Equal(t, "fallback", getEnv("CONFIG_TEST_UNSET_KEY", "fallback"))
}
