package discord

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
	pkgdiscord "fightnight/pkg/discord"
)

// HandleSettings applies one /settings subcommand and answers with the
// resulting configuration.
func (h *Handler) HandleSettings(s interactionResponder, i *discordgo.InteractionCreate) {
	locale := interactionLocale(i)
	if i.GuildID == "" {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "common.guild_only", nil))
		return
	}
	sub, ok := pkgdiscord.Subcommand(i.ApplicationCommandData())
	if !ok {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "settings.pick_subcommand", nil))
		return
	}
	patch, ok := settingsPatch(sub, i.ChannelID)
	if !ok {
		respondEphemeral(s, i.Interaction, h.t.T(locale, "settings.pick_subcommand", nil))
		return
	}

	ctx := context.Background()
	updated, err := h.settings.Update(ctx, i.GuildID, patch)
	if err != nil {
		if domain.Code(err) == "" {
			log.Printf("❌ Mise à jour des paramètres (guild=%s): %v", i.GuildID, err)
		}
		var data map[string]any
		if patch.Timezone != nil {
			data = map[string]any{"Timezone": *patch.Timezone}
		}
		respondEphemeral(s, i.Interaction, h.t.T(locale, pkgdiscord.DomainErrorKey(err), data))
		return
	}

	key, data := settingsReply(sub.Name, updated)
	respondEphemeral(s, i.Interaction, h.t.T(locale, key, data)+"\n\n"+h.snapshot(locale, updated))
}

// settingsPatch builds the patch of a subcommand. A missing channel option
// falls back to the channel the command was run in.
func settingsPatch(sub *discordgo.ApplicationCommandInteractionDataOption, currentChannelID string) (entities.SettingsPatch, bool) {
	var patch entities.SettingsPatch
	switch sub.Name {
	case "org":
		v, _ := pkgdiscord.StringOption(sub.Options, "org")
		org := domain.OrgID(v)
		patch.Org = &org
	case "channel":
		channelID, ok := pkgdiscord.ChannelOption(sub.Options, "channel")
		if !ok {
			channelID = currentChannelID
		}
		patch.ChannelID = &channelID
	case "delivery":
		v, _ := pkgdiscord.StringOption(sub.Options, "mode")
		mode := domain.DeliveryMode(v)
		patch.DeliveryMode = &mode
	case "hour":
		hour, ok := pkgdiscord.IntOption(sub.Options, "hour")
		if !ok {
			hour = -1
		}
		patch.NotificationHour = &hour
	case "timezone":
		v, _ := pkgdiscord.StringOption(sub.Options, "tz")
		patch.Timezone = &v
	case "notifications":
		on := stateOption(sub)
		patch.NotificationsEnabled = &on
	case "events":
		on := stateOption(sub)
		patch.ScheduledEventsEnabled = &on
	default:
		return patch, false
	}
	return patch, true
}

func stateOption(sub *discordgo.ApplicationCommandInteractionDataOption) bool {
	v, _ := pkgdiscord.StringOption(sub.Options, "state")
	return v == "on"
}

func settingsReply(subcommand string, s entities.GuildSettings) (string, map[string]any) {
	switch subcommand {
	case "org":
		return "settings.org_set", map[string]any{"Org": s.Org.DisplayName(), "State": pkgdiscord.OnOff(s.NotificationsEnabled)}
	case "channel":
		return "settings.channel_set", map[string]any{"ChannelID": s.ChannelID}
	case "delivery":
		return "settings.delivery_set", map[string]any{"Mode": string(s.DeliveryMode)}
	case "hour":
		return "settings.hour_set", map[string]any{"Hour": pkgdiscord.FormatHour(s.NotificationHour)}
	case "timezone":
		return "settings.timezone_set", map[string]any{"Timezone": s.Timezone}
	case "notifications":
		return "settings.notifications_set", map[string]any{"State": pkgdiscord.OnOff(s.NotificationsEnabled)}
	default:
		return "settings.events_set", map[string]any{"State": pkgdiscord.OnOff(s.ScheduledEventsEnabled)}
	}
}

func (h *Handler) snapshot(locale string, s entities.GuildSettings) string {
	data := pkgdiscord.SettingsSnapshotData(s, h.t.T(locale, "settings.not_set", nil))
	return h.t.T(locale, "settings.current", nil) + "\n" + h.t.T(locale, "settings.snapshot", data)
}
