// Command bot runs the Fight Night Discord bot.
//
// Usage:
//
//	bot serve
//	bot notify --guild 123456789012345678 --force
//	bot create-event --guild 123456789012345678
//	bot next-event --org ufc --tz Europe/Paris --ics next.ics
//	bot migrate [--down]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"fightnight/internal/adapters/discord"
	"fightnight/internal/application"
	"fightnight/internal/config"
	"fightnight/internal/domain"
	"fightnight/internal/infrastructure/calendar"
	"fightnight/internal/infrastructure/database"
	"fightnight/internal/infrastructure/espn"
	"fightnight/internal/infrastructure/i18n"
	"fightnight/internal/ports/input"
	"fightnight/internal/ports/output"
	pkgdiscord "fightnight/pkg/discord"
	"fightnight/pkg/tz"
)

func main() {
	root := &cobra.Command{
		Use:           "bot",
		Short:         "Fight Night Discord bot",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCmd(), notifyCmd(), createEventCmd(), nextEventCmd(), migrateCmd())

	if err := root.Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

// services holds everything wired from the configuration.
type services struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	session  *discordgo.Session
	settings *application.SettingsService
	events   *application.EventService
	notifier *application.NotifierService
}

func newEventService(cfg *config.Config) *application.EventService {
	feed := espn.NewClient(cfg.ESPNScoreboardURL, cfg.ESPNUserAgent, cfg.ESPNRequestsPerMinute)
	return application.NewEventService(map[domain.OrgID]output.ScheduleFeed{
		domain.OrgUFC: feed,
	})
}

func setup(ctx context.Context, cfg *config.Config) (*services, error) {
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de l'initialisation de la base de données: %w", err)
	}

	settings := application.NewSettingsService(database.NewGuildSettingsRepository(pool), application.SettingsDefaults{
		NotificationHour: cfg.DefaultNotificationHour,
		Timezone:         cfg.DefaultTimezone,
	})
	events := newEventService(cfg)

	svc := &services{cfg: cfg, pool: pool, settings: settings, events: events}

	var gateway output.Gateway
	if cfg.Token != "" {
		svc.session, err = discord.NewSession(cfg.Token)
		if err != nil {
			pool.Close()
			return nil, err
		}
		gateway = discord.NewGateway(svc.session)
	}
	svc.notifier = application.NewNotifierService(settings, events, gateway, cfg.NotifyTimeout)
	return svc, nil
}

func (s *services) Close() {
	s.pool.Close()
}

// run loads the configuration, wires the services and calls fn with a
// context cancelled on SIGINT or SIGTERM.
func run(fn func(ctx context.Context, svc *services) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	svc, err := setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Close()
	return fn(ctx, svc)
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord, answer slash commands and run the periodic notifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *services) error {
				if svc.session == nil {
					return fmt.Errorf("DISCORD_TOKEN est requis")
				}
				if err := database.RunMigrations(svc.cfg.DatabaseURL, svc.cfg.MigrationsPath, false); err != nil {
					return err
				}
				scheduler, err := discord.NewScheduler(svc.cfg.NotifyCron, svc.notifier)
				if err != nil {
					return err
				}
				handler := discord.NewHandler(svc.settings, svc.events, svc.notifier, i18n.NewTranslator(svc.cfg.DefaultLocale))
				bot := discord.NewBot(svc.cfg, svc.session, handler, scheduler)
				if err := bot.Start(); err != nil {
					return fmt.Errorf("erreur lors du démarrage du bot: %w", err)
				}
				return nil
			})
		},
	}
}

func notifyCmd() *cobra.Command {
	var guildID, channelID string
	var force bool
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Evaluate the notification of one guild, or of every guild when --guild is omitted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *services) error {
				now := time.Now()
				if guildID == "" {
					summary := svc.notifier.RunAll(ctx, now)
					fmt.Printf("evaluated=%d sent=%d failed=%d\n", summary.Evaluated, summary.Sent, summary.Failed)
					return nil
				}
				result, err := svc.notifier.NotifyGuild(ctx, guildID, input.NotifyOptions{
					Force:           force,
					ChannelOverride: channelID,
					Now:             now,
					SkipMark:        force,
				})
				if err != nil {
					return err
				}
				fmt.Printf("sent=%t reason=%q channel=%s message=%s\n", result.Sent, result.Reason, result.ChannelID, result.MessageID)
				for _, w := range result.Warnings {
					fmt.Printf("warning %s: %v\n", w.Op, w.Err)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&guildID, "guild", "", "Guild ID")
	cmd.Flags().StringVar(&channelID, "channel", "", "Override the configured channel")
	cmd.Flags().BoolVar(&force, "force", false, "Bypass the schedule gates and do not mark the post")
	return cmd
}

func createEventCmd() *cobra.Command {
	var guildID string
	var force bool
	cmd := &cobra.Command{
		Use:   "create-event",
		Short: "Create the Discord scheduled event of the next fight night for one guild",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, svc *services) error {
				result, err := svc.notifier.CreateScheduledEvent(ctx, guildID, input.ScheduledEventOptions{
					Force:    force,
					Now:      time.Now(),
					SkipMark: force,
				})
				if err != nil {
					return err
				}
				fmt.Printf("created=%t reason=%q event=%s\n", result.Created, result.Reason, result.EventID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&guildID, "guild", "", "Guild ID")
	cmd.Flags().BoolVar(&force, "force", false, "Bypass the window gates and do not mark the creation")
	_ = cmd.MarkFlagRequired("guild")
	return cmd
}

func nextEventCmd() *cobra.Command {
	var org, zone, icsPath string
	cmd := &cobra.Command{
		Use:   "next-event",
		Short: "Print the next event of an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("configuration: %w", err)
			}
			orgID, err := domain.ParseOrg(org)
			if err != nil {
				return err
			}
			if zone == "" {
				zone = cfg.DefaultTimezone
			}
			loc, err := tz.Load(zone)
			if err != nil {
				return fmt.Errorf("%w: %s", domain.ErrInvalidTimezone, zone)
			}

			data, err := newEventService(cfg).NextEvent(cmd.Context(), orgID, time.Now())
			if err != nil {
				return err
			}
			ev := data.Event
			lines := []string{
				ev.Name,
				"Main event: " + ev.MainEvent,
				fmt.Sprintf("Date: %s (%s)", pkgdiscord.FormatEventDate(ev.StartTime, loc), zone),
				fmt.Sprintf("Venue: %s - %s", ev.Venue, ev.City),
				"Broadcast: " + ev.Broadcast,
				"More info: " + ev.URL,
			}
			for _, b := range application.CardPreview(data.Card) {
				lines = append(lines, fmt.Sprintf("- %s: %s vs %s", b.WeightClass, b.RedName, b.BlueName))
			}
			fmt.Println(strings.Join(lines, "\n"))

			if icsPath != "" {
				doc := calendar.Export(orgID, ev, application.NewScheduledEventParams(orgID, ev), time.Now())
				if err := os.WriteFile(icsPath, []byte(doc), 0o644); err != nil {
					return fmt.Errorf("écriture de %s: %w", icsPath, err)
				}
				log.Printf("📅 Calendrier écrit dans %s", icsPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&org, "org", string(domain.OrgUFC), "Organization")
	cmd.Flags().StringVar(&zone, "tz", "", "Display timezone (defaults to TZ)")
	cmd.Flags().StringVar(&icsPath, "ics", "", "Also write the event as an iCalendar file")
	return cmd
}

func migrateCmd() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or roll back) the database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("configuration: %w", err)
			}
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, down)
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "Roll back every migration")
	return cmd
}
