package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"fightnight/pkg/tz"
)

type Config struct {
	Token          string
	DatabaseURL    string
	MigrationsPath string
	DevGuildID     string
	DefaultLocale  string

	ESPNScoreboardURL     string
	ESPNUserAgent         string
	ESPNRequestsPerMinute int

	// Defaults applied to guilds without stored settings.
	DefaultTimezone         string
	DefaultNotificationHour int

	NotifyCron    string
	NotifyTimeout time.Duration
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:             strings.TrimSpace(os.Getenv("DISCORD_TOKEN")),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsPath:    envOr("MIGRATIONS_PATH", "migrations"),
		DevGuildID:        os.Getenv("DEV_GUILD_ID"),
		DefaultLocale:     envOr("DEFAULT_LOCALE", "en"),
		ESPNScoreboardURL: os.Getenv("ESPN_SCOREBOARD_URL"),
		ESPNUserAgent:     os.Getenv("ESPN_USER_AGENT"),
		DefaultTimezone:   envOr("TZ", "Etc/UTC"),
		NotifyCron:        envOr("NOTIFY_CRON", "0 * * * *"),
	}

	var err error
	if cfg.ESPNRequestsPerMinute, err = envInt("ESPN_REQUESTS_PER_MINUTE", 60); err != nil {
		return nil, err
	}
	if cfg.DefaultNotificationHour, err = envInt("RUN_AT", 15); err != nil {
		return nil, err
	}
	if cfg.NotifyTimeout, err = envDuration("NOTIFY_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
// DISCORD_TOKEN n'est pas exigé ici : le notifier signale son absence.
func (c *Config) validate() error {
	for _, r := range c.DevGuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: DEV_GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
		}
	}

	if c.DefaultNotificationHour < 0 || c.DefaultNotificationHour > 23 {
		return fmt.Errorf("config: RUN_AT doit être compris entre 0 et 23 (reçu %d)", c.DefaultNotificationHour)
	}

	if _, err := tz.Load(c.DefaultTimezone); err != nil {
		return fmt.Errorf("config: TZ invalide (%q): %w", c.DefaultTimezone, err)
	}

	if _, err := cron.ParseStandard(c.NotifyCron); err != nil {
		return fmt.Errorf("config: NOTIFY_CRON invalide (%q): %w", c.NotifyCron, err)
	}

	if c.ESPNRequestsPerMinute <= 0 {
		return fmt.Errorf("config: ESPN_REQUESTS_PER_MINUTE doit être positif")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valeur par défaut utile en local lorsque DATABASE_URL n'est pas fournie.
		c.DatabaseURL = "postgres://localhost:5432/fightnight?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s doit être un entier (%q): %w", key, v, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s doit être une durée (%q): %w", key, v, err)
	}
	return d, nil
}
