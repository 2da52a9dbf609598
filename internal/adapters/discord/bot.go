package discord

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"eventbot/internal/application"
	"eventbot/internal/config"
	"eventbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	handler  *Handler
	notifier *application.NotifierService
}

// NewBot creates a Bot and wires ports: output adapters -> application (use
// cases) -> handler. The gateway doubles as the Messenger and Announcer ports.
func NewBot(cfg *config.Config, eventRepo output.EventRepository, interestRepo output.InterestRepository, translator output.T) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	gateway := NewGateway(s, cfg.AnnounceChannelID, cfg.NotifierRoleName, cfg.GuildID)
	eventUC := application.NewEventService(eventRepo, interestRepo, gateway, gateway)
	interestUC := application.NewInterestService(interestRepo, eventRepo, gateway)
	notifier := application.NewNotifierService(eventRepo, interestRepo, gateway, gateway)
	handler := NewHandler(eventUC, interestUC, translator, cfg.Locale, cfg.NotifierRoleName)

	bot := &Bot{
		session:  s,
		config:   cfg,
		handler:  handler,
		notifier: notifier,
	}
	s.AddHandler(bot.handleInteraction)
	return bot, nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "addevent":
			b.handler.HandleAddEvent(s, i)
		case "editevent":
			b.handler.HandleEditEvent(s, i)
		case "cancelevent":
			b.handler.HandleCancelEvent(s, i)
		case "listevents":
			b.handler.HandleListEvents(s, i)
		case "notifyme":
			b.handler.HandleNotifyMe(s, i)
		}
	case discordgo.InteractionMessageComponent:
		if strings.HasPrefix(i.MessageComponentData().CustomID, InterestButtonPrefix) {
			b.handler.HandleInterestButton(s, i)
		}
	}
}

// Start runs the bot until interrupted: opens the session, registers the
// guild commands, and launches the notification sweep.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Failed to register command %s: %v", cmd.Name, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go b.notifier.Run(ctx, application.SweepInterval)

	fmt.Println("🤖 Bot online! Press CTRL+C to quit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
