package i18n

import (
	"strings"
	"testing"
)

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator("en")
	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{"english", "en-US", "ping.reply", nil, "Pong!"},
		{"french", "fr", "ping.reply", nil, "Pong !"},
		{"unknown locale falls back", "pt-BR", "settings.not_set", nil, "Not set"},
		{"template data", "en-US", "settings.hour_set", map[string]any{"Hour": "07"}, "Notification hour set to 07:00."},
		{"unknown key", "en-US", "does.not.exist", nil, "does.not.exist"},
		{"empty key", "en-US", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.T(tt.locale, tt.key, tt.data); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

func TestTranslator_MultilineMessages(t *testing.T) {
	tr := NewTranslator("en")
	got := tr.T("en-US", "help.reply", nil)
	if !strings.HasPrefix(got, "Fight Night Bot commands:") {
		t.Errorf("help should start with the title line, got %q", got)
	}
	if strings.Count(got, "\n") < 9 {
		t.Errorf("help should list every command on its own line, got %q", got)
	}
}
