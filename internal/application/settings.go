package application

import (
	"context"
	"fmt"
	"log"
	"sync"

	"fightnight/internal/domain"
	"fightnight/internal/domain/entities"
	"fightnight/internal/ports/input"
	"fightnight/internal/ports/output"
)

var _ input.SettingsUseCase = (*SettingsService)(nil)

// SettingsDefaults are applied to guilds without stored settings.
type SettingsDefaults struct {
	NotificationHour int
	Timezone         string
}

// SettingsService is a read-through cache over the settings repository.
// It is built once per process and shared by every use case. The cache is
// last-writer-wins; mu only guards the map itself, never a store call.
type SettingsService struct {
	repo     output.GuildSettingsRepository
	defaults SettingsDefaults

	mu    sync.Mutex
	cache map[string]entities.GuildSettings
}

func NewSettingsService(repo output.GuildSettingsRepository, defaults SettingsDefaults) *SettingsService {
	return &SettingsService{
		repo:     repo,
		defaults: defaults,
		cache:    make(map[string]entities.GuildSettings),
	}
}

func (s *SettingsService) defaultSettings() entities.GuildSettings {
	return entities.GuildSettings{
		DeliveryMode:     domain.DeliveryMessage,
		NotificationHour: s.defaults.NotificationHour,
		Timezone:         s.defaults.Timezone,
		LastPosted:       map[domain.OrgID]string{},
		ScheduledEvents:  map[domain.OrgID]string{},
	}
}

// Get never fails: a missing entry or a store failure yields defaults.
// Defaults served after a store failure are neither cached nor written.
func (s *SettingsService) Get(ctx context.Context, guildID string) entities.GuildSettings {
	settings, err := s.load(ctx, guildID)
	if err != nil {
		log.Printf("❌ Lecture des paramètres (guild=%s): %v", guildID, err)
		return s.defaultSettings()
	}
	return settings
}

// load returns the cached or stored settings of guildID, defaults when
// nothing is stored, and an error when the store cannot be read.
func (s *SettingsService) load(ctx context.Context, guildID string) (entities.GuildSettings, error) {
	if cached, ok := s.cached(guildID); ok {
		return cached, nil
	}

	stored, found, err := s.repo.Get(ctx, guildID)
	if err != nil {
		return entities.GuildSettings{}, fmt.Errorf("read settings: %w", err)
	}
	settings := s.defaultSettings()
	if found {
		settings = s.withDefaults(stored)
	}
	s.store(guildID, settings)
	return settings.Clone(), nil
}

func (s *SettingsService) cached(guildID string) (entities.GuildSettings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache[guildID]
	if !ok {
		return entities.GuildSettings{}, false
	}
	return v.Clone(), true
}

func (s *SettingsService) store(guildID string, settings entities.GuildSettings) {
	s.mu.Lock()
	s.cache[guildID] = settings.Clone()
	s.mu.Unlock()
}

// withDefaults fills the fields an older stored value may lack.
func (s *SettingsService) withDefaults(stored entities.GuildSettings) entities.GuildSettings {
	if stored.DeliveryMode == "" {
		stored.DeliveryMode = domain.DeliveryMessage
	}
	if stored.Timezone == "" {
		stored.Timezone = s.defaults.Timezone
	}
	return stored.Clone()
}

// Update validates and applies patch, then persists the result. It fails
// without writing anything when the current settings cannot be read, so a
// store outage never replaces stored settings with defaults. A persistence
// failure is logged; the cached value is updated regardless.
func (s *SettingsService) Update(ctx context.Context, guildID string, patch entities.SettingsPatch) (entities.GuildSettings, error) {
	current, err := s.load(ctx, guildID)
	if err != nil {
		log.Printf("❌ Lecture des paramètres (guild=%s): %v", guildID, err)
		return s.defaultSettings(), err
	}
	if err := patch.Validate(current); err != nil {
		return current, err
	}
	updated := patch.Apply(current)
	s.store(guildID, updated)
	if err := s.repo.Put(ctx, guildID, updated); err != nil {
		log.Printf("❌ Enregistrement des paramètres (guild=%s): %v", guildID, err)
	}
	return updated.Clone(), nil
}

func (s *SettingsService) Delete(ctx context.Context, guildID string) error {
	s.mu.Lock()
	delete(s.cache, guildID)
	s.mu.Unlock()
	if err := s.repo.Delete(ctx, guildID); err != nil {
		log.Printf("❌ Suppression des paramètres (guild=%s): %v", guildID, err)
		return err
	}
	return nil
}

func (s *SettingsService) ListGuildIDs(ctx context.Context) ([]string, error) {
	return s.repo.ListGuildIDs(ctx)
}

// MarkPosted records dayKey as the last notification day of org.
func (s *SettingsService) MarkPosted(ctx context.Context, guildID string, org domain.OrgID, dayKey string) error {
	current, err := s.load(ctx, guildID)
	if err != nil {
		return err
	}
	current.LastPosted[org] = dayKey
	_, err = s.Update(ctx, guildID, entities.SettingsPatch{LastPosted: current.LastPosted})
	return err
}

// MarkScheduledEventCreated records eventDayKey as the day of the last
// scheduled event created for org.
func (s *SettingsService) MarkScheduledEventCreated(ctx context.Context, guildID string, org domain.OrgID, eventDayKey string) error {
	current, err := s.load(ctx, guildID)
	if err != nil {
		return err
	}
	current.ScheduledEvents[org] = eventDayKey
	_, err = s.Update(ctx, guildID, entities.SettingsPatch{ScheduledEvents: current.ScheduledEvents})
	return err
}
