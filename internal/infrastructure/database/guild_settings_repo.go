package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fightnight/internal/domain/entities"
	"fightnight/internal/ports/output"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	getGuildSettings = `SELECT settings FROM guild_settings WHERE guild_id = $1`

	upsertGuildSettings = `INSERT INTO guild_settings (guild_id, settings)
VALUES ($1, $2)
ON CONFLICT (guild_id) DO UPDATE SET settings = EXCLUDED.settings, updated_at = now()`

	deleteGuildSettings = `DELETE FROM guild_settings WHERE guild_id = $1`

	listGuildIDs = `SELECT guild_id FROM guild_settings ORDER BY guild_id`
)

var _ output.GuildSettingsRepository = (*GuildSettingsRepository)(nil)

// GuildSettingsRepository stores one JSONB document per guild.
type GuildSettingsRepository struct {
	db DBTX
}

func NewGuildSettingsRepository(db DBTX) *GuildSettingsRepository {
	return &GuildSettingsRepository{db: db}
}

func (r *GuildSettingsRepository) Get(ctx context.Context, guildID string) (entities.GuildSettings, bool, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, getGuildSettings, guildID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.GuildSettings{}, false, nil
	}
	if err != nil {
		return entities.GuildSettings{}, false, fmt.Errorf("get guild settings: %w", err)
	}
	s, err := settingsFromJSON(raw)
	if err != nil {
		return entities.GuildSettings{}, false, err
	}
	return s, true, nil
}

func (r *GuildSettingsRepository) Put(ctx context.Context, guildID string, settings entities.GuildSettings) error {
	raw, err := settingsToJSON(settings)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, upsertGuildSettings, guildID, raw); err != nil {
		return fmt.Errorf("upsert guild settings: %w", err)
	}
	return nil
}

func (r *GuildSettingsRepository) Delete(ctx context.Context, guildID string) error {
	if _, err := r.db.Exec(ctx, deleteGuildSettings, guildID); err != nil {
		return fmt.Errorf("delete guild settings: %w", err)
	}
	return nil
}

func (r *GuildSettingsRepository) ListGuildIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, listGuildIDs)
	if err != nil {
		return nil, fmt.Errorf("list guild ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan guild ids: %w", err)
	}
	return ids, nil
}
