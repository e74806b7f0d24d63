package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns    = 4
	pingTimeout = 10 * time.Second
)

// NewPool opens the guild settings store and checks that it answers.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DATABASE_URL invalide: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("PostgreSQL injoignable (%s/%s): %w", cfg.ConnConfig.Host, cfg.ConnConfig.Database, err)
	}
	log.Printf("✅ Base de données PostgreSQL connectée (%s/%s).", cfg.ConnConfig.Host, cfg.ConnConfig.Database)
	return pool, nil
}
