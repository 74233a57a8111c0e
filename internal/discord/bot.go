package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RecCross_Go/internal/recnet"
)

// ProfileResolver resolves a Rec Room username. *recnet.Resolver satisfies it.
type ProfileResolver interface {
	Resolve(ctx context.Context, username string) (recnet.Result, error)
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Resolver ProfileResolver
	AppID    string
	GuildID  string
	Registry *CommandRegistry
}

// Config holds the bot configuration
type Config struct {
	Token string
	// AppID defaults to the bot user's ID once the session is open
	AppID string
	// GuildID scopes command registration to one guild; empty means global
	GuildID string
}

// New creates a new Discord bot
func New(cfg Config, resolver ProfileResolver) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:  s,
		Resolver: resolver,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	if b.AppID == "" && b.Session.State != nil && b.Session.State.User != nil {
		b.AppID = b.Session.State.User.ID
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Error("Failed to close Discord session", "error", err)
	}
}

// Run starts the bot, syncs slash commands and blocks until a signal is received
func (b *Bot) Run(forceUpdate bool) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	if err := b.RegisterCommands(b.Registry, forceUpdate); err != nil {
		// Previously registered commands keep working
		slog.Error("Failed to register commands", "error", err)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if b.Registry != nil {
		b.Registry.Handle(s, i, b.Resolver)
	}
}
