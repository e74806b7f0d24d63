package output

import (
	"context"
	"time"
)

// SentMessage identifies a message created by the gateway.
type SentMessage struct {
	ID        string
	ChannelID string
}

// ScheduledEventParams describes an external, guild-only scheduled event.
type ScheduledEventParams struct {
	Name        string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
}

type CreatedScheduledEvent struct {
	ID    string
	Name  string
	Start time.Time
	End   time.Time
}

// Gateway is the Discord REST surface used by the schedulers. Mentions are
// never parsed in sent messages.
type Gateway interface {
	SendMessage(ctx context.Context, channelID, content string) (SentMessage, error)
	Crosspost(ctx context.Context, channelID, messageID string) error
	CreateScheduledEvent(ctx context.Context, guildID string, params ScheduledEventParams) (CreatedScheduledEvent, error)
}
