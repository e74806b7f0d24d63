package discord

import (
	"fmt"
	"time"
)

// FormatEventDate renders t in loc as "Saturday, May 11, 2024 at 2:00 AM".
func FormatEventDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "TBA"
	}
	return t.In(loc).Format("Monday, January 2, 2006 at 3:04 PM")
}

// FormatHour zero-pads an hour of day ("07").
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d", hour)
}

// OnOff renders a toggle the way the settings replies show it.
func OnOff(enabled bool) string {
	if enabled {
		return "ON"
	}
	return "OFF"
}
