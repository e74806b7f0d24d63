package entities

import (
	"time"

	"fightnight/internal/domain"
	"fightnight/pkg/tz"
)

// GuildSettings is the persisted per-guild configuration. It may be
// unconfigured (no organization); schedulers use Configure to obtain a view
// that is only valid when an organization is set.
type GuildSettings struct {
	Org                    domain.OrgID        `json:"org,omitempty"`
	ChannelID              string              `json:"channelId,omitempty"`
	DeliveryMode           domain.DeliveryMode `json:"deliveryMode"`
	NotificationHour       int                 `json:"notificationHour"`
	Timezone               string              `json:"timezone"`
	NotificationsEnabled   bool                `json:"notificationsEnabled"`
	ScheduledEventsEnabled bool                `json:"scheduledEventsEnabled"`
	// LastPosted maps an organization to the day key of its last notification.
	LastPosted map[domain.OrgID]string `json:"lastPosted,omitempty"`
	// ScheduledEvents maps an organization to the event day key of its last
	// created scheduled event.
	ScheduledEvents map[domain.OrgID]string `json:"scheduledEvents,omitempty"`
}

// Clone returns a deep copy, so cached values are never shared.
func (s GuildSettings) Clone() GuildSettings {
	out := s
	out.LastPosted = cloneDayKeys(s.LastPosted)
	out.ScheduledEvents = cloneDayKeys(s.ScheduledEvents)
	return out
}

func cloneDayKeys(m map[domain.OrgID]string) map[domain.OrgID]string {
	out := make(map[domain.OrgID]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ConfiguredGuild is the read-only view of a guild that tracks an
// organization.
type ConfiguredGuild struct {
	GuildID                string
	Org                    domain.OrgID
	ChannelID              string
	DeliveryMode           domain.DeliveryMode
	NotificationHour       int
	TimezoneName           string
	Location               *time.Location
	TimezoneValid          bool
	NotificationsEnabled   bool
	ScheduledEventsEnabled bool
	LastPosted             string
	ScheduledEventCreated  string
}

// Configure returns the configured view of s, or false when no
// organization is set.
func (s GuildSettings) Configure(guildID string) (ConfiguredGuild, bool) {
	if s.Org == "" {
		return ConfiguredGuild{}, false
	}
	loc, err := tz.Load(s.Timezone)
	valid := err == nil
	if !valid {
		loc = time.UTC
	}
	return ConfiguredGuild{
		GuildID:                guildID,
		Org:                    s.Org,
		ChannelID:              s.ChannelID,
		DeliveryMode:           s.DeliveryMode,
		NotificationHour:       s.NotificationHour,
		TimezoneName:           s.Timezone,
		Location:               loc,
		TimezoneValid:          valid,
		NotificationsEnabled:   s.NotificationsEnabled,
		ScheduledEventsEnabled: s.ScheduledEventsEnabled,
		LastPosted:             s.LastPosted[s.Org],
		ScheduledEventCreated:  s.ScheduledEvents[s.Org],
	}, true
}

// SettingsPatch is a whole-field update; nil fields are left untouched.
type SettingsPatch struct {
	Org                    *domain.OrgID
	ChannelID              *string
	DeliveryMode           *domain.DeliveryMode
	NotificationHour       *int
	Timezone               *string
	NotificationsEnabled   *bool
	ScheduledEventsEnabled *bool
	LastPosted             map[domain.OrgID]string
	ScheduledEvents        map[domain.OrgID]string
}

// Validate checks the patch against the current settings. Enabling
// notifications requires an organization, either already set or set by the
// same patch.
func (p SettingsPatch) Validate(current GuildSettings) error {
	if p.Org != nil {
		if _, err := domain.ParseOrg(string(*p.Org)); err != nil {
			return err
		}
	}
	if p.DeliveryMode != nil {
		if _, err := domain.ParseDeliveryMode(string(*p.DeliveryMode)); err != nil {
			return err
		}
	}
	if p.NotificationHour != nil && (*p.NotificationHour < 0 || *p.NotificationHour > 23) {
		return domain.ErrInvalidHour
	}
	if p.Timezone != nil {
		if !tz.Valid(*p.Timezone) {
			return domain.ErrInvalidTimezone
		}
	}
	if p.ChannelID != nil && *p.ChannelID == "" {
		return domain.ErrChannelRequired
	}
	if p.NotificationsEnabled != nil && *p.NotificationsEnabled {
		org := current.Org
		if p.Org != nil {
			org = *p.Org
		}
		if org == "" {
			return domain.ErrOrgRequired
		}
	}
	return nil
}

// Apply returns current with the patch applied. Validate must be called first.
func (p SettingsPatch) Apply(current GuildSettings) GuildSettings {
	out := current.Clone()
	if p.Org != nil {
		out.Org = *p.Org
	}
	if p.ChannelID != nil {
		out.ChannelID = *p.ChannelID
	}
	if p.DeliveryMode != nil {
		out.DeliveryMode = *p.DeliveryMode
	}
	if p.NotificationHour != nil {
		out.NotificationHour = *p.NotificationHour
	}
	if p.Timezone != nil {
		out.Timezone = *p.Timezone
	}
	if p.NotificationsEnabled != nil {
		out.NotificationsEnabled = *p.NotificationsEnabled
	}
	if p.ScheduledEventsEnabled != nil {
		out.ScheduledEventsEnabled = *p.ScheduledEventsEnabled
	}
	if p.LastPosted != nil {
		out.LastPosted = cloneDayKeys(p.LastPosted)
	}
	if p.ScheduledEvents != nil {
		out.ScheduledEvents = cloneDayKeys(p.ScheduledEvents)
	}
	return out
}
