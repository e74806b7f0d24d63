package output

import (
	"context"

	"fightnight/internal/domain/entities"
)

// GuildSettingsRepository persists one GuildSettings value per guild.
// Get reports found=false for an absent entry, which is not an error.
type GuildSettingsRepository interface {
	Get(ctx context.Context, guildID string) (settings entities.GuildSettings, found bool, err error)
	Put(ctx context.Context, guildID string, settings entities.GuildSettings) error
	Delete(ctx context.Context, guildID string) error
	ListGuildIDs(ctx context.Context) ([]string, error)
}
