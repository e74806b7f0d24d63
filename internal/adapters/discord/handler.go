package discord

import (
	"fightnight/internal/ports/input"
	"fightnight/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	settings input.SettingsUseCase
	events   input.EventUseCase
	notifier input.NotifierUseCase
	t        output.T
}

// NewHandler creates a Handler.
func NewHandler(
	settings input.SettingsUseCase,
	events input.EventUseCase,
	notifier input.NotifierUseCase,
	t output.T,
) *Handler {
	return &Handler{
		settings: settings,
		events:   events,
		notifier: notifier,
		t:        t,
	}
}
