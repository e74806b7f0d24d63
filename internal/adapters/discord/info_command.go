package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"fightnight/internal/application"
	"fightnight/internal/domain"
	pkgdiscord "fightnight/pkg/discord"
)

func (h *Handler) HandlePing(s interactionResponder, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i.Interaction, h.t.T(interactionLocale(i), "ping.reply", nil))
}

func (h *Handler) HandleHelp(s interactionResponder, i *discordgo.InteractionCreate) {
	respondEphemeral(s, i.Interaction, h.t.T(interactionLocale(i), "help.reply", nil))
}

func (h *Handler) HandleStatus(s interactionResponder, i *discordgo.InteractionCreate) {
	locale := interactionLocale(i)
	if i.GuildID == "" {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "common.guild_only", nil))
		return
	}
	settings := h.settings.Get(context.Background(), i.GuildID)
	respondEphemeral(s, i.Interaction, h.snapshot(locale, settings))
}

// HandleNextEvent shows the next event of the configured organization in
// the guild timezone.
func (h *Handler) HandleNextEvent(s interactionResponder, i *discordgo.InteractionCreate) {
	locale := interactionLocale(i)
	if i.GuildID == "" {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "common.guild_only", nil))
		return
	}
	ctx := context.Background()
	guild, ok := h.settings.Get(ctx, i.GuildID).Configure(i.GuildID)
	if !ok {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "next_event.no_org", nil))
		return
	}
	if !deferEphemeral(s, i.Interaction) {
		return
	}

	data, err := h.events.NextEvent(ctx, guild.Org, time.Now())
	if errors.Is(err, domain.ErrNoUpcomingEvent) || errors.Is(err, domain.ErrUnsupportedOrg) {
		editResponse(s, i.Interaction, h.t.T(locale, "next_event.none", nil))
		return
	}
	if err != nil {
		log.Printf("❌ Prochain événement (guild=%s, org=%s): %v", i.GuildID, guild.Org, err)
		editResponse(s, i.Interaction, h.t.T(locale, "next_event.unreachable", nil))
		return
	}

	ev := data.Event
	content := h.t.T(locale, "next_event.details", map[string]any{
		"Name":      ev.Name,
		"MainEvent": ev.MainEvent,
		"Date":      pkgdiscord.FormatEventDate(ev.StartTime, guild.Location),
		"Timezone":  guild.TimezoneName,
		"Venue":     ev.Venue,
		"City":      ev.City,
		"Broadcast": ev.Broadcast,
		"URL":       ev.URL,
	})
	if preview := application.CardPreview(data.Card); len(preview) > 0 {
		lines := []string{content, "", h.t.T(locale, "next_event.card_header", nil)}
		for _, b := range preview {
			lines = append(lines, fmt.Sprintf("- %s: %s vs %s", b.WeightClass, b.RedName, b.BlueName))
		}
		content = strings.Join(lines, "\n")
	}
	editResponse(s, i.Interaction, content)
}
