package discord

import (
	"github.com/bwmarrin/discordgo"

	"fightnight/internal/domain"
)

const (
	cmdSettings  = "settings"
	cmdStatus    = "status"
	cmdNextEvent = "next-event"
	cmdHelp      = "help"
	cmdPing      = "ping"
	cmdDevTest   = "dev-test"
)

var stateChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "On", Value: "on"},
	{Name: "Off", Value: "off"},
}

var deliveryChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Message", Value: string(domain.DeliveryMessage)},
	{Name: "Announcement", Value: string(domain.DeliveryAnnouncement)},
}

func orgChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.SupportedOrgs))
	for _, org := range domain.SupportedOrgs {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: org.DisplayName(), Value: string(org)})
	}
	return choices
}

func subcommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// globalCommands are registered for every guild.
func globalCommands() []*discordgo.ApplicationCommand {
	minHour := float64(0)
	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdSettings,
			Description: "Configure fight-night notifications for this server.",
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("org", "Select the organization to track.", &discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionString, Name: "org", Description: "Fight organization (currently UFC only).",
					Required: true, Choices: orgChoices(),
				}),
				subcommand("channel", "Choose the channel for notifications.", &discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionChannel, Name: "channel", Description: "Defaults to the current channel if left blank.",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews},
				}),
				subcommand("delivery", "Set the delivery mode for posts.", &discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionString, Name: "mode", Description: "Choose regular messages or Announcement crossposting.",
					Required: true, Choices: deliveryChoices,
				}),
				subcommand("hour", "Set the daily notification hour (0-23).", &discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionInteger, Name: "hour", Description: "24-hour formatted hour for scheduled posts.",
					Required: true, MinValue: &minHour, MaxValue: 23,
				}),
				subcommand("timezone", "Set the guild timezone (IANA identifier).", &discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionString, Name: "tz", Description: "Example: America/Los_Angeles",
					Required: true,
				}),
				subcommand("notifications", "Enable or disable fight-night notifications.", &discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionString, Name: "state", Description: "Turn notifications on or off.",
					Required: true, Choices: stateChoices,
				}),
				subcommand("events", "Toggle creating scheduled Discord events.", &discordgo.ApplicationCommandOption{
					Type: discordgo.ApplicationCommandOptionString, Name: "state", Description: "Turn scheduled events on or off.",
					Required: true, Choices: stateChoices,
				}),
			},
		},
		{Name: cmdStatus, Description: "Show the fight-night configuration of this server."},
		{Name: cmdNextEvent, Description: "Show the next event for your configured organization."},
		{Name: cmdHelp, Description: "List the Fight Night Bot commands."},
		{Name: cmdPing, Description: "Check that the bot is alive."},
	}
}

// devCommands run the schedulers on demand for the current guild.
func devCommands() []*discordgo.ApplicationCommand {
	perms := int64(discordgo.PermissionManageEvents | discordgo.PermissionManageChannels)
	return []*discordgo.ApplicationCommand{
		{
			Name:                     cmdDevTest,
			Description:              "Developer testing helpers for Fight Night Bot.",
			DefaultMemberPermissions: &perms,
			Options: []*discordgo.ApplicationCommandOption{
				subcommand("create-event", "Create a scheduled event for the next fight night (dev only)."),
				subcommand("create-announcement", "Post the next fight-night announcement immediately (dev only)."),
			},
		},
	}
}
