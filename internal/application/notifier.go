package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
	"fightnight/internal/ports/input"
	"fightnight/internal/ports/output"
	"fightnight/pkg/tz"
)

var _ input.NotifierUseCase = (*NotifierService)(nil)

// NotifierService decides, per guild, whether the fight-night notification
// and the scheduled event should be produced now.
type NotifierService struct {
	settings *SettingsService
	events   input.EventUseCase
	gateway  output.Gateway
	timeout  time.Duration
}

// NewNotifierService wires the notifier. A nil gateway means no Discord
// credential is configured; every evaluation then reports it.
func NewNotifierService(
	settings *SettingsService,
	events input.EventUseCase,
	gateway output.Gateway,
	timeout time.Duration,
) *NotifierService {
	return &NotifierService{
		settings: settings,
		events:   events,
		gateway:  gateway,
		timeout:  timeout,
	}
}

// RunAll evaluates every known guild once, sequentially. A failing guild
// never prevents the evaluation of the next one.
func (s *NotifierService) RunAll(ctx context.Context, now time.Time) input.RunSummary {
	var summary input.RunSummary
	if s.gateway == nil {
		log.Println("⚠️ DISCORD_TOKEN absent, notifications ignorées.")
		return summary
	}
	guildIDs, err := s.settings.ListGuildIDs(ctx)
	if err != nil {
		log.Printf("❌ Liste des serveurs: %v", err)
		return summary
	}
	for _, guildID := range guildIDs {
		summary.Evaluated++
		result, err := s.notifyWithTimeout(ctx, guildID, input.NotifyOptions{Now: now})
		if err != nil {
			summary.Failed++
			log.Printf("❌ Notification (guild=%s): %v", guildID, err)
			continue
		}
		if result.Sent {
			summary.Sent++
			log.Printf("✅ Notification envoyée (guild=%s, at=%s)", guildID, now.UTC().Format(time.RFC3339))
		}
	}
	return summary
}

func (s *NotifierService) notifyWithTimeout(ctx context.Context, guildID string, opts input.NotifyOptions) (input.NotifyResult, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.NotifyGuild(ctx, guildID, opts)
}

// NotifyGuild runs the notification pipeline for one guild. Configuration
// problems are reported through the result reason; only a failed message
// send is returned as an error.
func (s *NotifierService) NotifyGuild(ctx context.Context, guildID string, opts input.NotifyOptions) (input.NotifyResult, error) {
	if s.gateway == nil {
		return input.NotifyResult{Reason: domain.ReasonTokenMissing}, nil
	}
	guild, ok := s.settings.Get(ctx, guildID).Configure(guildID)
	if !ok {
		return input.NotifyResult{Reason: domain.ReasonOrgNotSet}, nil
	}
	channelID := firstNonEmpty(opts.ChannelOverride, guild.ChannelID)
	if channelID == "" {
		return input.NotifyResult{Reason: domain.ReasonNoChannel}, nil
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	force := opts.Force

	if !force && !guild.NotificationsEnabled {
		return input.NotifyResult{Reason: domain.ReasonNotificationsOff}, nil
	}
	if !force && (!guild.TimezoneValid || !tz.IsHour(now, guild.Location, guild.NotificationHour)) {
		return input.NotifyResult{Reason: domain.ReasonOutsideHour}, nil
	}

	data, err := s.resolve(ctx, guild.Org, now)
	if err != nil {
		return input.NotifyResult{}, err
	}
	if data == nil {
		return input.NotifyResult{Reason: domain.ReasonNoUpcomingEvent}, nil
	}

	today := tz.DayKey(now, guild.Location)
	if !force && tz.DayKey(data.Event.StartTime, guild.Location) != today {
		return input.NotifyResult{Reason: domain.ReasonNotEventDay}, nil
	}
	if !force && guild.LastPosted == today {
		return input.NotifyResult{Reason: domain.ReasonAlreadyPosted}, nil
	}

	content := BuildNotificationMessage(guild.Org, data, guild.Location, guild.TimezoneName)
	msg, err := s.gateway.SendMessage(ctx, channelID, content)
	if err != nil {
		return input.NotifyResult{ChannelID: channelID}, fmt.Errorf("send notification: %w", err)
	}

	result := input.NotifyResult{
		Sent:      true,
		Reason:    domain.ReasonPosted,
		MessageID: msg.ID,
		ChannelID: channelID,
	}

	if guild.ScheduledEventsEnabled {
		scheduled, err := s.createScheduledEvent(ctx, guild, data, input.ScheduledEventOptions{
			Force:    force,
			Now:      now,
			SkipMark: opts.SkipMark,
		})
		if err != nil {
			log.Printf("⚠️ Création de l'événement planifié (guild=%s): %v", guildID, err)
			result.Warnings = append(result.Warnings, input.Warning{Op: "scheduled_event", Err: err})
		} else {
			result.ScheduledEvent = &scheduled
			if scheduled.Created {
				log.Printf("✅ Événement planifié créé (guild=%s, event=%s)", guildID, scheduled.EventID)
			}
		}
	}

	if guild.DeliveryMode == domain.DeliveryAnnouncement {
		if err := s.gateway.Crosspost(ctx, channelID, msg.ID); err != nil {
			log.Printf("⚠️ Crosspost (guild=%s, message=%s): %v", guildID, msg.ID, err)
			result.Warnings = append(result.Warnings, input.Warning{Op: "crosspost", Err: err})
		}
	}

	// Marked last: a crash before this point re-sends rather than skips.
	if !opts.SkipMark {
		if err := s.settings.MarkPosted(ctx, guildID, guild.Org, today); err != nil {
			result.Warnings = append(result.Warnings, input.Warning{Op: "mark_posted", Err: err})
		}
	}
	return result, nil
}

// CreateScheduledEvent creates the Discord scheduled event of the current
// event when today is the event day or the day before.
func (s *NotifierService) CreateScheduledEvent(ctx context.Context, guildID string, opts input.ScheduledEventOptions) (input.ScheduledEventResult, error) {
	if s.gateway == nil {
		return input.ScheduledEventResult{Reason: domain.ReasonTokenMissing}, nil
	}
	guild, ok := s.settings.Get(ctx, guildID).Configure(guildID)
	if !ok {
		return input.ScheduledEventResult{Reason: domain.ReasonOrgNotSet}, nil
	}
	if !opts.Force && !guild.ScheduledEventsEnabled {
		return input.ScheduledEventResult{Reason: domain.ReasonScheduledEventsOff}, nil
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
		opts.Now = now
	}
	data, err := s.resolve(ctx, guild.Org, now)
	if err != nil {
		return input.ScheduledEventResult{}, err
	}
	if data == nil {
		return input.ScheduledEventResult{Reason: domain.ReasonNoUpcomingEvent}, nil
	}
	return s.createScheduledEvent(ctx, guild, data, opts)
}

func (s *NotifierService) createScheduledEvent(
	ctx context.Context,
	guild entities.ConfiguredGuild,
	data *entities.EventWithCard,
	opts input.ScheduledEventOptions,
) (input.ScheduledEventResult, error) {
	start := data.Event.StartTime
	eventDay := tz.DayKey(start, guild.Location)
	creationDay := tz.PreviousDayKey(start, guild.Location)
	today := tz.DayKey(opts.Now, guild.Location)

	if !opts.Force && today != creationDay && today != eventDay {
		return input.ScheduledEventResult{Reason: domain.ReasonOutsideWindow}, nil
	}
	if !opts.Force && guild.ScheduledEventCreated == eventDay {
		return input.ScheduledEventResult{Reason: domain.ReasonAlreadyCreated}, nil
	}

	params := NewScheduledEventParams(guild.Org, data.Event)
	log.Printf("📅 Création de l'événement planifié (guild=%s, start=%s, end=%s)",
		guild.GuildID, params.Start.UTC().Format(time.RFC3339), params.End.UTC().Format(time.RFC3339))

	created, err := s.gateway.CreateScheduledEvent(ctx, guild.GuildID, params)
	if err != nil {
		return input.ScheduledEventResult{}, fmt.Errorf("create scheduled event: %w", err)
	}

	if !opts.SkipMark {
		if err := s.settings.MarkScheduledEventCreated(ctx, guild.GuildID, guild.Org, eventDay); err != nil {
			log.Printf("⚠️ Marquage de l'événement planifié (guild=%s): %v", guild.GuildID, err)
		}
	}
	return input.ScheduledEventResult{
		Created: true,
		Reason:  domain.ReasonCreated,
		EventID: created.ID,
	}, nil
}

// resolve returns nil data when the organization has nothing to show.
func (s *NotifierService) resolve(ctx context.Context, org domain.OrgID, now time.Time) (*entities.EventWithCard, error) {
	data, err := s.events.NextEvent(ctx, org, now)
	if errors.Is(err, domain.ErrNoUpcomingEvent) || errors.Is(err, domain.ErrUnsupportedOrg) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve next event: %w", err)
	}
	return data, nil
}
