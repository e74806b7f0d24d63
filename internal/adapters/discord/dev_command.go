package discord

import (
	"context"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"fightnight/internal/ports/input"
	pkgdiscord "fightnight/pkg/discord"
)

// HandleDevTest runs a scheduler on demand for the current guild. Gates are
// bypassed and nothing is marked, so the periodic run is unaffected.
func (h *Handler) HandleDevTest(s interactionResponder, i *discordgo.InteractionCreate) {
	locale := interactionLocale(i)
	if i.GuildID == "" {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "common.guild_only", nil))
		return
	}
	sub, ok := pkgdiscord.Subcommand(i.ApplicationCommandData())
	if !ok {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "dev.pick_action", nil))
		return
	}
	if sub.Name != "create-event" && sub.Name != "create-announcement" {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "dev.unknown_action", nil))
		return
	}
	if !deferEphemeral(s, i.Interaction) {
		return
	}

	ctx := context.Background()
	now := time.Now()
	var content string
	switch sub.Name {
	case "create-event":
		result, err := h.notifier.CreateScheduledEvent(ctx, i.GuildID, input.ScheduledEventOptions{
			Force:    true,
			Now:      now,
			SkipMark: true,
		})
		switch {
		case err != nil:
			log.Printf("❌ dev-test create-event (guild=%s): %v", i.GuildID, err)
			content = h.t.T(locale, "dev.failed", map[string]any{"Error": err.Error()})
		case result.Created:
			content = h.t.T(locale, "dev.event_created", map[string]any{"EventID": result.EventID})
		default:
			content = h.t.T(locale, "dev.not_done", map[string]any{"Reason": result.Reason})
		}
	case "create-announcement":
		result, err := h.notifier.NotifyGuild(ctx, i.GuildID, input.NotifyOptions{
			Force:           true,
			ChannelOverride: i.ChannelID,
			Now:             now,
			SkipMark:        true,
		})
		switch {
		case err != nil:
			log.Printf("❌ dev-test create-announcement (guild=%s): %v", i.GuildID, err)
			content = h.t.T(locale, "dev.failed", map[string]any{"Error": err.Error()})
		case result.Sent:
			content = h.t.T(locale, "dev.announcement_sent", map[string]any{"ChannelID": result.ChannelID})
			for _, w := range result.Warnings {
				content += "\n⚠️ " + w.Op + ": " + w.Err.Error()
			}
		default:
			content = h.t.T(locale, "dev.not_done", map[string]any{"Reason": result.Reason})
		}
	}
	editResponse(s, i.Interaction, content)
}
