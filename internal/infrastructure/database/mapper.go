package database

import (
	"encoding/json"
	"fmt"

	"fightnight/internal/domain/entities"
)

// settingsToJSON serializes the settings stored in the JSONB column.
func settingsToJSON(s entities.GuildSettings) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode guild settings: %w", err)
	}
	return raw, nil
}

// settingsFromJSON decodes a stored value. Fields missing from older rows
// are left zero and filled in by the settings service.
func settingsFromJSON(raw []byte) (entities.GuildSettings, error) {
	var s entities.GuildSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.GuildSettings{}, fmt.Errorf("decode guild settings: %w", err)
	}
	return s, nil
}
