// Package tz holds the civil-time helpers used for per-guild scheduling.
package tz

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey returns the civil date of t in loc, formatted YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyLayout)
}

// PreviousDayKey returns the civil date one calendar day before the civil
// date of t in loc.
func PreviousDayKey(t time.Time, loc *time.Location) string {
	local := t.In(loc)
	prev := time.Date(local.Year(), local.Month(), local.Day()-1, 12, 0, 0, 0, loc)
	return prev.Format(dayKeyLayout)
}

// Hour returns the zero-padded 24-hour hour of t in loc ("00".."23").
func Hour(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15")
}

// IsHour reports whether t falls in the given hour of day in loc.
func IsHour(t time.Time, loc *time.Location, hour int) bool {
	h, err := strconv.Atoi(Hour(t, loc))
	if err != nil {
		return false
	}
	return h == hour
}

// ErrInvalidZone is returned by Load for names that are not IANA zones.
var ErrInvalidZone = errors.New("invalid IANA zone")

// Load returns the IANA zone called name. The empty name and "Local" are
// rejected: both resolve to the host zone instead of a named one.
func Load(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidZone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidZone, name, err)
	}
	return loc, nil
}

// Valid reports whether name is a loadable IANA zone.
func Valid(name string) bool {
	_, err := Load(name)
	return err == nil
}
