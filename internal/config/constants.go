package config

import "time"

// Environment variable names
const (
	EnvDiscordToken       = "DISCORD_TOKEN"
	EnvDiscordAppID       = "DISCORD_APP_ID"
	EnvDiscordGuildID     = "DISCORD_GUILD_ID"
	EnvForceCommandUpdate = "DISCORD_FORCE_COMMAND_UPDATE"
	EnvRecNetAPIURL       = "RECNET_API_URL"
	EnvRecNetSiteURL      = "RECNET_SITE_URL"
	EnvPrimaryTimeout     = "RECNET_PRIMARY_TIMEOUT"
	EnvFallbackTimeout    = "RECNET_FALLBACK_TIMEOUT"
	EnvHealthPort         = "HEALTH_PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvVersion            = "VERSION"
)

// Defaults for optional settings
const (
	DefaultRecNetAPIURL    = "https://api.rec.net/api/players"
	DefaultRecNetSiteURL   = "https://rec.net"
	DefaultPrimaryTimeout  = 15 * time.Second
	DefaultFallbackTimeout = 20 * time.Second
	DefaultHealthPort      = "8082"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultVersion         = "dev"
)
