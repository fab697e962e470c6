package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/giveaway-bot/internal/common/clock"
	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
	"github.com/KirkDiggler/giveaway-bot/internal/endtime"
	"github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
	"github.com/KirkDiggler/giveaway-bot/internal/services/item"
)

// DefaultPrefix starts every text command
const DefaultPrefix = "."

// Handler routes Discord events to the giveaway and item services
type Handler struct {
	messenger       Messenger
	giveawayService giveaway.Service
	itemService     item.Service
	parser          *endtime.Parser
	clock           clock.Clock
	render          *renderer
	prefix          string
	admins          map[string]bool
	commands        map[string]CommandHandler
}

func newHandler(messenger Messenger, cfg *Config) (*Handler, error) {
	if messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	if cfg.GiveawayService == nil {
		return nil, errors.New("giveaway service cannot be nil")
	}

	if cfg.ItemService == nil {
		return nil, errors.New("item service cannot be nil")
	}

	if cfg.TimeParser == nil {
		return nil, errors.New("time parser cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	prefix := cfg.CommandPrefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	admins := make(map[string]bool, len(cfg.AdminIDs))
	for _, id := range cfg.AdminIDs {
		if id = strings.TrimSpace(id); id != "" {
			admins[id] = true
		}
	}

	h := &Handler{
		messenger:       messenger,
		giveawayService: cfg.GiveawayService,
		itemService:     cfg.ItemService,
		parser:          cfg.TimeParser,
		clock:           cfg.Clock,
		render:          &renderer{parser: cfg.TimeParser, clock: cfg.Clock},
		prefix:          prefix,
		admins:          admins,
		commands:        make(map[string]CommandHandler),
	}

	h.register(newAddItemCommand(h))
	h.register(newItemsCommand(h))
	h.register(newGiveawayCommand(h))
	h.register(newCancelCommand(h))

	return h, nil
}

func (h *Handler) register(cmd CommandHandler) {
	h.commands[cmd.GetName()] = cmd
}

// IsAdmin reports whether the user may run admin commands
func (h *Handler) IsAdmin(userID string) bool {
	return h.admins[userID]
}

// HandleMessage processes one inbound chat message
func (h *Handler) HandleMessage(ctx context.Context, msg *discordgo.Message) {
	if msg == nil || msg.Author == nil || msg.Author.Bot {
		return
	}

	isDM := msg.GuildID == ""

	// an open item draft swallows every DM from its author
	if isDM && h.continueDraft(ctx, msg) {
		return
	}

	if !strings.HasPrefix(msg.Content, h.prefix) {
		return
	}

	fields := strings.Fields(strings.TrimPrefix(msg.Content, h.prefix))
	if len(fields) == 0 {
		return
	}

	name := strings.ToLower(fields[0])
	cmd, ok := h.commands[name]
	if !ok {
		return
	}

	switch {
	case cmd.GetScope() == ScopeDM && !isDM:
		h.reply(msg, msgDMOnly)
		return
	case cmd.GetScope() == ScopeGuild && isDM:
		h.reply(msg, msgGuildOnly)
		return
	}

	if cmd.IsAdminOnly() && !h.IsAdmin(msg.Author.ID) {
		logger.Warn().
			Str("command", name).
			Str("user_id", msg.Author.ID).
			Msg("Unauthorized command attempt")
		h.reply(msg, msgUnauthorized)
		return
	}

	err := cmd.Handle(ctx, &CommandRequest{
		Message: msg,
		Args:    fields[1:],
	})
	if err != nil {
		logger.Error().
			Err(err).
			Str("command", name).
			Str("user_id", msg.Author.ID).
			Str("channel_id", msg.ChannelID).
			Msg("Command failed")
		h.reply(msg, msgCommandError)
	}
}

// continueDraft feeds msg into the author's item draft; false when there is none
func (h *Handler) continueDraft(ctx context.Context, msg *discordgo.Message) bool {
	has, err := h.itemService.HasDraft(ctx, &item.HasDraftInput{UserID: msg.Author.ID})
	if err != nil {
		logger.Error().Err(err).Str("user_id", msg.Author.ID).Msg("Failed to look up item draft")
		return false
	}
	if !has.HasDraft {
		return false
	}

	output, err := h.itemService.ContinueDraft(ctx, &item.ContinueDraftInput{
		UserID:  msg.Author.ID,
		Content: draftAnswer(msg),
	})
	switch {
	case errors.Is(err, item.ErrDraftNotFound):
		// expired between the two calls
		return false
	case errors.Is(err, item.ErrCreateItemFailed):
		logger.Error().Err(err).Str("user_id", msg.Author.ID).Msg("Failed to create item")
		h.reply(msg, "❌ Failed to create item. Please try again.")
		return true
	case err != nil:
		logger.Error().Err(err).Str("user_id", msg.Author.ID).Msg("Failed to continue item draft")
		h.reply(msg, msgCommandError)
		return true
	}

	switch {
	case output.Cancelled:
		h.reply(msg, "🚫 Item creation cancelled.")
	case output.Rejected:
		h.reply(msg, draftRetry(output.Step))
	case output.Item != nil:
		h.reply(msg, itemCreated(output.Item))
	default:
		h.reply(msg, draftPrompt(output.Step))
	}

	return true
}

// reply answers msg and logs delivery failures
func (h *Handler) reply(msg *discordgo.Message, content string) {
	for _, chunk := range splitMessage(content) {
		if err := ReplyTo(h.messenger, msg, chunk); err != nil {
			logger.Error().Err(err).Str("message_id", msg.ID).Msg("Failed to send reply")
			return
		}
	}
}

// draftAnswer is the message text, or the first attachment URL when an image was uploaded without text
func draftAnswer(msg *discordgo.Message) string {
	if strings.TrimSpace(msg.Content) == "" && len(msg.Attachments) > 0 {
		return msg.Attachments[0].URL
	}
	return msg.Content
}
