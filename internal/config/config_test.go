package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads defaults when only the token is set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvDiscordToken, "token")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "token", cfg.DiscordToken)
		assert.Empty(t, cfg.DiscordGuildID)
		assert.Empty(t, cfg.DiscordAppID)
		assert.False(t, cfg.ForceCommandUpdate)
		assert.Equal(t, DefaultRecNetAPIURL, cfg.RecNetAPIURL)
		assert.Equal(t, DefaultRecNetSiteURL, cfg.RecNetSiteURL)
		assert.Equal(t, 15*time.Second, cfg.PrimaryTimeout)
		assert.Equal(t, 20*time.Second, cfg.FallbackTimeout)
		assert.Equal(t, DefaultHealthPort, cfg.HealthPort)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvDiscordToken, "token")
		t.Setenv(EnvDiscordAppID, "1111")
		t.Setenv(EnvDiscordGuildID, "2222")
		t.Setenv(EnvForceCommandUpdate, "true")
		t.Setenv(EnvRecNetAPIURL, "http://localhost:9000/api")
		t.Setenv(EnvRecNetSiteURL, "http://localhost:9001")
		t.Setenv(EnvPrimaryTimeout, "3s")
		t.Setenv(EnvFallbackTimeout, "1m")
		t.Setenv(EnvHealthPort, "")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "1111", cfg.DiscordAppID)
		assert.Equal(t, "2222", cfg.DiscordGuildID)
		assert.True(t, cfg.ForceCommandUpdate)
		assert.Equal(t, "http://localhost:9000/api", cfg.RecNetAPIURL)
		assert.Equal(t, "http://localhost:9001", cfg.RecNetSiteURL)
		assert.Equal(t, 3*time.Second, cfg.PrimaryTimeout)
		assert.Equal(t, time.Minute, cfg.FallbackTimeout)
		assert.Empty(t, cfg.HealthPort, "empty port disables the health server")
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
	})

	t.Run("refuses to start without a token", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), EnvDiscordToken)
	})

	t.Run("rejects a non numeric guild id", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvDiscordToken, "token")
		t.Setenv(EnvDiscordGuildID, "my-guild")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvDiscordGuildID)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DiscordToken:    "token",
			RecNetAPIURL:    DefaultRecNetAPIURL,
			RecNetSiteURL:   DefaultRecNetSiteURL,
			PrimaryTimeout:  time.Second,
			FallbackTimeout: time.Second,
			LogLevel:        "info",
			LogFormat:       "text",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantKey string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad api url", func(c *Config) { c.RecNetAPIURL = "not a url" }, EnvRecNetAPIURL},
		{"zero timeout", func(c *Config) { c.FallbackTimeout = 0 }, EnvFallbackTimeout},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, EnvLogFormat},
		{"bad port", func(c *Config) { c.HealthPort = "http" }, EnvHealthPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))

	err := validate.Struct(&Config{})
	require.Error(t, err)

	errs := FormatValidationError(err)
	assert.Equal(t, "is required", errs[EnvDiscordToken])
	assert.Equal(t, "must be positive", errs[EnvPrimaryTimeout])
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default when unset", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "")
		os.Unsetenv("TEST_DURATION_VAR")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("parses valid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1m30s")
		assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("returns default for invalid duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "soon")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL_VAR", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false))

	t.Setenv("TEST_BOOL_VAR", "nope")
	assert.True(t, getEnvAsBool("TEST_BOOL_VAR", true))

	t.Setenv("TEST_BOOL_VAR", "")
	assert.False(t, getEnvAsBool("TEST_BOOL_VAR", false))
}

// clearEnvVars unsets every config variable for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvDiscordToken, EnvDiscordAppID, EnvDiscordGuildID, EnvForceCommandUpdate,
		EnvRecNetAPIURL, EnvRecNetSiteURL, EnvPrimaryTimeout, EnvFallbackTimeout,
		EnvHealthPort, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvVersion,
	}

	for _, key := range envVars {
		// t.Setenv registers the restore, Unsetenv makes it absent
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
