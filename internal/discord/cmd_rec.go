package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RecCross_Go/internal/logger"
	"github.com/osse101/RecCross_Go/internal/metrics"
	"github.com/osse101/RecCross_Go/internal/recnet"
)

// Option names for the rec command
const (
	OptionUsername = "username"
)

// RecCommand returns the rec command definition and handler
func RecCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rec",
		Description: "Get Rec Room player profile (resilient)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptionUsername,
				Description: "Rec Room username (example: oy.r)",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, resolver ProfileResolver) {
		if !deferResponse(s, i) {
			return
		}

		raw := strings.TrimSpace(getStringOption(i, OptionUsername))
		if raw == "" {
			respondError(s, i, MsgInvalidUsername)
			return
		}

		ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
		log := logger.FromContext(ctx)
		if user := getInteractionUser(i); user != nil {
			log = log.With("discord_user", user.ID)
		}

		res, err := resolver.Resolve(ctx, raw)
		if err != nil {
			log.Error("Profile lookup failed", "username", raw, "error", err)
			res = recnet.Transient(err)
		}
		metrics.ResolutionsTotal.WithLabelValues(res.Kind.String()).Inc()
		log.Info("Profile lookup finished", "username", raw, "outcome", res.Kind.String())

		respondResult(s, i, raw, res)
	}

	return cmd, handler
}

// respondResult edits the deferred reply according to the result kind
func respondResult(s *discordgo.Session, i *discordgo.InteractionCreate, raw string, res recnet.Result) {
	switch res.Kind {
	case recnet.KindResolved:
		if err := sendEmbed(s, i, profileEmbed(raw, res)); err != nil {
			respondError(s, i, fmt.Sprintf(MsgErrorFormat, err))
		}
	case recnet.KindAccessDenied:
		respondError(s, i, MsgAccessDenied)
	case recnet.KindNotFound:
		respondError(s, i, MsgPlayerNotFound)
	default:
		respondError(s, i, fmt.Sprintf(MsgErrorFormat, res.Reason))
	}
}

// profileEmbed renders a resolved result. raw is the username the user typed
// and stands in when the page did not expose one.
func profileEmbed(raw string, res recnet.Result) *discordgo.MessageEmbed {
	var acct recnet.AccountData
	if res.Account != nil {
		acct = *res.Account
	}

	shownUsername := acct.Username
	if shownUsername == "" {
		shownUsername = raw
	}
	titleName := acct.DisplayName
	if titleName == "" {
		titleName = shownUsername
	}

	embed := createEmbed(fmt.Sprintf("%s's Rec Room Profile", titleName), ColorRecRoom, FooterFallbackOnly)

	if acct.ProfileImage != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: acct.ProfileImage}
	}

	embed.Fields = append(embed.Fields, inlineField("Username", shownUsername))
	if acct.AccountID != nil {
		embed.Fields = append(embed.Fields, inlineField("Account ID", strconv.FormatInt(*acct.AccountID, 10)))
	}

	if prof := res.Profile; prof != nil {
		level := recnet.NotAvailable
		if prof.Level != nil {
			level = strconv.Itoa(*prof.Level)
		}
		platform := prof.Platform
		if platform == "" {
			platform = "Unknown"
		}
		status := "Offline 🔴"
		if prof.IsOnline {
			status = "Online 🟢"
		}

		embed.Fields = append(embed.Fields,
			inlineField("Level", level),
			inlineField("Platform", platform),
			inlineField("Status", status),
		)
		if prof.LastOnlineAt != "" {
			embed.Fields = append(embed.Fields, inlineField("Last Online", recnet.Humanize(prof.LastOnlineAt)))
		}
		embed.Footer.Text = FooterAPIAndFallback
	}

	return embed
}

func inlineField(name, value string) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true}
}
