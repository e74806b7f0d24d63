package tz

import (
	"errors"
	"testing"
	"time"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	return loc
}

func TestDayKey(t *testing.T) {
	instant := time.Date(2024, 5, 11, 2, 0, 0, 0, time.UTC)
	tests := []struct {
		zone string
		want string
	}{
		{"Etc/UTC", "2024-05-11"},
		{"America/New_York", "2024-05-10"},
		{"Asia/Tokyo", "2024-05-11"},
	}
	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			if got := DayKey(instant, mustLoad(t, tt.zone)); got != tt.want {
				t.Errorf("DayKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreviousDayKey(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		zone    string
		want    string
	}{
		{"mid month", time.Date(2024, 5, 11, 2, 0, 0, 0, time.UTC), "Etc/UTC", "2024-05-10"},
		{"month boundary", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), "Etc/UTC", "2024-02-29"},
		{"year boundary", time.Date(2025, 1, 1, 5, 0, 0, 0, time.UTC), "Etc/UTC", "2024-12-31"},
		{"zone shifts civil day", time.Date(2024, 5, 11, 2, 0, 0, 0, time.UTC), "America/New_York", "2024-05-09"},
		// Day after the spring-forward switch in New York is only 23h long.
		{"dst switch", time.Date(2024, 3, 11, 4, 30, 0, 0, time.UTC), "America/New_York", "2024-03-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreviousDayKey(tt.instant, mustLoad(t, tt.zone)); got != tt.want {
				t.Errorf("PreviousDayKey = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsHour(t *testing.T) {
	instant := time.Date(2024, 5, 11, 19, 30, 0, 0, time.UTC)
	if !IsHour(instant, time.UTC, 19) {
		t.Error("expected hour 19 in UTC")
	}
	if IsHour(instant, time.UTC, 15) {
		t.Error("did not expect hour 15 in UTC")
	}
	if !IsHour(instant, mustLoad(t, "America/New_York"), 15) {
		t.Error("expected hour 15 in New York")
	}
	if got := Hour(time.Date(2024, 5, 11, 7, 0, 0, 0, time.UTC), time.UTC); got != "07" {
		t.Errorf("Hour = %q, want zero padded", got)
	}
}

func TestValid(t *testing.T) {
	if !Valid("Europe/Paris") {
		t.Error("Europe/Paris should be valid")
	}
	if Valid("Mars/Olympus_Mons") {
		t.Error("unknown zone should be invalid")
	}
	if Valid("") {
		t.Error("empty zone should be invalid")
	}
	if Valid("Local") {
		t.Error("the host zone should be invalid")
	}
	if !Valid("UTC") {
		t.Error("UTC should be valid")
	}
}

func TestLoad(t *testing.T) {
	for _, name := range []string{"", "Local", "Nowhere/Land"} {
		if _, err := Load(name); !errors.Is(err, ErrInvalidZone) {
			t.Errorf("Load(%q) err = %v, want ErrInvalidZone", name, err)
		}
	}
	loc, err := Load("Asia/Tokyo")
	if err != nil || loc.String() != "Asia/Tokyo" {
		t.Errorf("Load(Asia/Tokyo) = %v, %v", loc, err)
	}
}
