package config

import (
	"strings"
	"testing"
	"time"
)

var configKeys = []string{
	"DISCORD_TOKEN", "DATABASE_URL", "MIGRATIONS_PATH", "DEV_GUILD_ID", "DEFAULT_LOCALE",
	"ESPN_SCOREBOARD_URL", "ESPN_USER_AGENT", "ESPN_REQUESTS_PER_MINUTE",
	"TZ", "RUN_AT", "NOTIFY_CRON", "NOTIFY_TIMEOUT",
}

// clearEnv blanks every variable read by Load so the host environment does
// not leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultTimezone != "Etc/UTC" {
		t.Errorf("DefaultTimezone = %q, want Etc/UTC", cfg.DefaultTimezone)
	}
	if cfg.DefaultNotificationHour != 15 {
		t.Errorf("DefaultNotificationHour = %d, want 15", cfg.DefaultNotificationHour)
	}
	if cfg.NotifyCron != "0 * * * *" {
		t.Errorf("NotifyCron = %q", cfg.NotifyCron)
	}
	if cfg.NotifyTimeout != 30*time.Second {
		t.Errorf("NotifyTimeout = %v", cfg.NotifyTimeout)
	}
	if !strings.HasPrefix(cfg.DatabaseURL, "postgres://localhost") {
		t.Errorf("DatabaseURL = %q, want local default", cfg.DatabaseURL)
	}
	if cfg.Token != "" {
		t.Errorf("Token = %q, want empty", cfg.Token)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "  secret  ")
	t.Setenv("TZ", "America/New_York")
	t.Setenv("RUN_AT", "9")
	t.Setenv("NOTIFY_TIMEOUT", "5s")
	t.Setenv("DEV_GUILD_ID", "123456")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Token != "secret" {
		t.Errorf("Token = %q, want trimmed value", cfg.Token)
	}
	if cfg.DefaultTimezone != "America/New_York" || cfg.DefaultNotificationHour != 9 {
		t.Errorf("defaults not overridden: %+v", cfg)
	}
	if cfg.NotifyTimeout != 5*time.Second {
		t.Errorf("NotifyTimeout = %v", cfg.NotifyTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"RUN_AT", "24"},
		{"RUN_AT", "noon"},
		{"TZ", "Mars/Base"},
		{"TZ", "Local"},
		{"NOTIFY_CRON", "every hour"},
		{"NOTIFY_TIMEOUT", "soon"},
		{"DEV_GUILD_ID", "abc"},
		{"ESPN_REQUESTS_PER_MINUTE", "0"},
		{"DATABASE_URL", "not a url"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}
