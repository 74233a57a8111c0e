package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the bot configuration
type Config struct {
	DiscordToken       string `validate:"required"`
	DiscordAppID       string `validate:"omitempty,numeric"`
	DiscordGuildID     string `validate:"omitempty,numeric"`
	ForceCommandUpdate bool

	RecNetAPIURL    string        `validate:"required,url"`
	RecNetSiteURL   string        `validate:"required,url"`
	PrimaryTimeout  time.Duration `validate:"gt=0"`
	FallbackTimeout time.Duration `validate:"gt=0"`

	// HealthPort is empty when the internal HTTP server is disabled
	HealthPort string `validate:"omitempty,numeric"`

	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string
	Version     string
}

// Load loads the configuration from environment variables.
// A .env file in the working directory is read first if present.
func Load() (*Config, error) {
	// Real environment variables win over .env
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken:       getEnv(EnvDiscordToken, ""),
		DiscordAppID:       getEnv(EnvDiscordAppID, ""),
		DiscordGuildID:     getEnv(EnvDiscordGuildID, ""),
		ForceCommandUpdate: getEnvAsBool(EnvForceCommandUpdate, false),
		RecNetAPIURL:       getEnv(EnvRecNetAPIURL, DefaultRecNetAPIURL),
		RecNetSiteURL:      getEnv(EnvRecNetSiteURL, DefaultRecNetSiteURL),
		PrimaryTimeout:     getEnvAsDuration(EnvPrimaryTimeout, DefaultPrimaryTimeout),
		FallbackTimeout:    getEnvAsDuration(EnvFallbackTimeout, DefaultFallbackTimeout),
		HealthPort:         getEnv(EnvHealthPort, DefaultHealthPort),
		LogLevel:           strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:          strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:        getEnv(EnvEnvironment, DefaultEnvironment),
		Version:            getEnv(EnvVersion, DefaultVersion),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBool parses a boolean environment variable, falling back to the
// default when unset or unparseable
func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// getEnvAsDuration parses a Go duration string ("15s", "1m30s"), falling back
// to the default when unset or unparseable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
