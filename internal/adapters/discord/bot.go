package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"fightnight/internal/config"
)

// NewSession creates the Discord session shared by the bot and the
// REST gateway.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	return s, nil
}

// Bot is the Discord adapter.
type Bot struct {
	session   *discordgo.Session
	config    *config.Config
	handler   *Handler
	scheduler *Scheduler
}

// NewBot wires the interaction handler and the periodic scheduler on an
// existing session.
func NewBot(cfg *config.Config, session *discordgo.Session, handler *Handler, scheduler *Scheduler) *Bot {
	bot := &Bot{
		session:   session,
		config:    cfg,
		handler:   handler,
		scheduler: scheduler,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.handler.Route(s, i)
}

// Route dispatches an application command to its handler.
func (h *Handler) Route(s interactionResponder, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case cmdSettings:
		h.HandleSettings(s, i)
	case cmdStatus:
		h.HandleStatus(s, i)
	case cmdNextEvent:
		h.HandleNextEvent(s, i)
	case cmdHelp:
		h.HandleHelp(s, i)
	case cmdPing:
		h.HandlePing(s, i)
	case cmdDevTest:
		h.HandleDevTest(s, i)
	}
}

func (b *Bot) registerCommands() {
	appID := b.session.State.User.ID
	global := globalCommands()
	if b.config.DevGuildID == "" {
		global = append(global, devCommands()...)
	} else if _, err := b.session.ApplicationCommandBulkOverwrite(appID, b.config.DevGuildID, devCommands()); err != nil {
		log.Printf("⚠️ Erreur lors de l'enregistrement des commandes de test (guild=%s): %v", b.config.DevGuildID, err)
	}
	if _, err := b.session.ApplicationCommandBulkOverwrite(appID, "", global); err != nil {
		log.Printf("⚠️ Erreur lors de l'enregistrement des commandes: %v", err)
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	b.registerCommands()
	b.scheduler.Start()
	defer b.scheduler.Stop()

	fmt.Println("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
