package discord

import "github.com/bwmarrin/discordgo"

// Subcommand returns the first option when it is a subcommand.
func Subcommand(data discordgo.ApplicationCommandInteractionData) (*discordgo.ApplicationCommandInteractionDataOption, bool) {
	if len(data.Options) == 0 {
		return nil, false
	}
	sub := data.Options[0]
	if sub.Type != discordgo.ApplicationCommandOptionSubCommand {
		return nil, false
	}
	return sub, true
}

func findOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, o := range opts {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// StringOption returns the string option name, if present.
func StringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	o := findOption(opts, name)
	if o == nil || o.Type != discordgo.ApplicationCommandOptionString {
		return "", false
	}
	v, ok := o.Value.(string)
	return v, ok
}

// IntOption returns the integer option name, if present. Discord sends
// numbers as JSON floats.
func IntOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (int, bool) {
	o := findOption(opts, name)
	if o == nil || o.Type != discordgo.ApplicationCommandOptionInteger {
		return 0, false
	}
	v, ok := o.Value.(float64)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// ChannelOption returns the ID of the channel option name, if present.
func ChannelOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	o := findOption(opts, name)
	if o == nil || o.Type != discordgo.ApplicationCommandOptionChannel {
		return "", false
	}
	v, ok := o.Value.(string)
	return v, ok && v != ""
}
