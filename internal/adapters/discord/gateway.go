package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"fightnight/internal/domain"
	"fightnight/internal/ports/output"
)

// restSession is the subset of *discordgo.Session used by the gateway.
type restSession interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageCrosspost(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildScheduledEventCreate(guildID string, event *discordgo.GuildScheduledEventParams, options ...discordgo.RequestOption) (*discordgo.GuildScheduledEvent, error)
}

var _ output.Gateway = (*Gateway)(nil)

// Gateway implements output.Gateway over the Discord REST API.
type Gateway struct {
	session restSession
}

func NewGateway(session *discordgo.Session) *Gateway {
	return &Gateway{session: session}
}

func (g *Gateway) SendMessage(ctx context.Context, channelID, content string) (output.SentMessage, error) {
	msg, err := g.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return output.SentMessage{}, restError("send message", err)
	}
	return output.SentMessage{ID: msg.ID, ChannelID: msg.ChannelID}, nil
}

func (g *Gateway) Crosspost(ctx context.Context, channelID, messageID string) error {
	if _, err := g.session.ChannelMessageCrosspost(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		return restError("crosspost", err)
	}
	return nil
}

func (g *Gateway) CreateScheduledEvent(ctx context.Context, guildID string, params output.ScheduledEventParams) (output.CreatedScheduledEvent, error) {
	start, end := params.Start, params.End
	ev, err := g.session.GuildScheduledEventCreate(guildID, &discordgo.GuildScheduledEventParams{
		Name:               params.Name,
		Description:        params.Description,
		ScheduledStartTime: &start,
		ScheduledEndTime:   &end,
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata:     &discordgo.GuildScheduledEventEntityMetadata{Location: params.Location},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return output.CreatedScheduledEvent{}, restError("create scheduled event", err)
	}
	created := output.CreatedScheduledEvent{
		ID:    ev.ID,
		Name:  ev.Name,
		Start: ev.ScheduledStartTime,
	}
	if ev.ScheduledEndTime != nil {
		created.End = *ev.ScheduledEndTime
	}
	return created, nil
}

// restError turns a discordgo REST failure into a domain.GatewayError
// carrying the status, reason phrase and response body.
func restError(op string, err error) error {
	var rest *discordgo.RESTError
	if !errors.As(err, &rest) || rest.Response == nil {
		return fmt.Errorf("discord %s: %w", op, err)
	}
	return &domain.GatewayError{
		Op:     op,
		Status: rest.Response.StatusCode,
		Reason: http.StatusText(rest.Response.StatusCode),
		Body:   string(rest.ResponseBody),
	}
}
