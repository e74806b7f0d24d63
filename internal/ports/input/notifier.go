package input

import (
	"context"
	"time"

	"fightnight/internal/domain/entities"
)

// NotifyOptions tune a single guild evaluation. The zero value is the
// periodic behavior: gates enforced, posted mark persisted, now = time.Now.
type NotifyOptions struct {
	Force           bool
	ChannelOverride string
	Now             time.Time
	SkipMark        bool
}

// Warning records a best-effort sub-operation that failed without
// affecting the primary outcome.
type Warning struct {
	Op  string
	Err error
}

type NotifyResult struct {
	Sent           bool
	Reason         string
	MessageID      string
	ChannelID      string
	ScheduledEvent *ScheduledEventResult
	Warnings       []Warning
}

type ScheduledEventOptions struct {
	Force    bool
	Now      time.Time
	SkipMark bool
}

type ScheduledEventResult struct {
	Created bool
	Reason  string
	EventID string
}

// RunSummary is the outcome of one periodic pass over every guild.
type RunSummary struct {
	Evaluated int
	Sent      int
	Failed    int
}

type NotifierUseCase interface {
	NotifyGuild(ctx context.Context, guildID string, opts NotifyOptions) (NotifyResult, error)
	CreateScheduledEvent(ctx context.Context, guildID string, opts ScheduledEventOptions) (ScheduledEventResult, error)
	RunAll(ctx context.Context, now time.Time) RunSummary
}

type SettingsUseCase interface {
	Get(ctx context.Context, guildID string) entities.GuildSettings
	Update(ctx context.Context, guildID string, patch entities.SettingsPatch) (entities.GuildSettings, error)
	Delete(ctx context.Context, guildID string) error
}
