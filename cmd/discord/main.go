package main

import (
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RecCross_Go/internal/config"
	"github.com/osse101/RecCross_Go/internal/discord"
	"github.com/osse101/RecCross_Go/internal/logger"
	"github.com/osse101/RecCross_Go/internal/recnet"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	// Load configuration (.env is read inside config.Load)
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet; the default handler still reaches stderr
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	resolver := recnet.NewResolver(recnet.Config{
		APIBaseURL:      cfg.RecNetAPIURL,
		SiteBaseURL:     cfg.RecNetSiteURL,
		PrimaryTimeout:  cfg.PrimaryTimeout,
		FallbackTimeout: cfg.FallbackTimeout,
	})

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, resolver)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	if cfg.HealthPort != "" {
		httpServer := discord.NewHTTPServer(cfg.HealthPort, bot)
		httpServer.Start()
		defer httpServer.Stop()
	}

	registerCommands(bot, getCommandFactories())

	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.Run(cfg.ForceCommandUpdate); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// initLogger configures structured logging from the app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == logger.EnvironmentDev

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}

// getCommandFactories returns a list of all available Discord command factories.
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.RecCommand,
	}
}

// registerCommands registers all provided command factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
