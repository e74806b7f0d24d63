package discord

import (
	"fmt"

	"fightnight/internal/domain/entities"
)

// SettingsSnapshotData is the template data of the "settings.snapshot"
// message. notSet is the localized label for missing values.
func SettingsSnapshotData(s entities.GuildSettings, notSet string) map[string]any {
	org := notSet
	if s.Org != "" {
		org = s.Org.DisplayName()
	}
	channel := notSet
	if s.ChannelID != "" {
		channel = fmt.Sprintf("<#%s>", s.ChannelID)
	}
	return map[string]any{
		"Org":             org,
		"Channel":         channel,
		"DeliveryMode":    string(s.DeliveryMode),
		"Hour":            FormatHour(s.NotificationHour),
		"Timezone":        s.Timezone,
		"Notifications":   OnOff(s.NotificationsEnabled),
		"ScheduledEvents": OnOff(s.ScheduledEventsEnabled),
	}
}
