package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/giveaway-bot/internal/common/clock"
	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
	"github.com/KirkDiggler/giveaway-bot/internal/endtime"
	"github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
	"github.com/KirkDiggler/giveaway-bot/internal/services/item"
)

// eventTimeout bounds the work done for a single gateway event
const eventTimeout = 30 * time.Second

// Bot represents the Discord bot instance
type Bot struct {
	session *discordgo.Session
	handler *Handler
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// CommandPrefix starts every text command; defaults to "."
	CommandPrefix string

	// AdminIDs are the Discord user IDs allowed to run commands
	AdminIDs []string

	// Services
	GiveawayService giveaway.Service
	ItemService     item.Service

	// TimeParser reads and displays end times in the configured region
	TimeParser *endtime.Parser
	Clock      clock.Clock
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	handler, err := newHandler(session, cfg)
	if err != nil {
		return nil, err
	}

	// events are handled one at a time, in gateway order
	session.SyncEvents = true
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	bot := &Bot{
		session: session,
		handler: handler,
	}

	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onInteractionCreate)

	return bot, nil
}

// Start opens the Discord gateway connection
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	logger.Info().Msg("Bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	return b.session.Close()
}

// PublishEnded updates Discord after the sweeper ended a giveaway
func (b *Bot) PublishEnded(ctx context.Context, output *giveaway.EndGiveawayOutput) error {
	return b.handler.PublishEnded(ctx, output)
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	logger.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("Connected to Discord")
}

func (b *Bot) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	b.handler.HandleMessage(ctx, m.Message)
}

func (b *Bot) onInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	b.handler.HandleInteraction(ctx, i.Interaction)
}
