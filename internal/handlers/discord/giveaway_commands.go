package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
	"github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
)

// GiveawayCommand posts a new giveaway in the current channel
type GiveawayCommand struct {
	BaseCommand
	handler *Handler
}

func newGiveawayCommand(h *Handler) *GiveawayCommand {
	return &GiveawayCommand{
		BaseCommand: BaseCommand{
			Name:      "giveaway",
			Usage:     "giveaway <item_id> <end_time> <winners_count>",
			Scope:     ScopeGuild,
			AdminOnly: true,
		},
		handler: h,
	}
}

// Handle validates the arguments, posts the giveaway message and records it.
// The message is posted before the giveaway is stored so the stored record can
// reference it; a failed insert removes the message again.
func (c *GiveawayCommand) Handle(ctx context.Context, req *CommandRequest) error {
	h := c.handler
	msg := req.Message

	if len(req.Args) != 3 {
		h.reply(msg, fmt.Sprintf("❌ **Usage:** `%s%s`\n**Example:** `%sgiveaway 1 9:00AM 2`", h.prefix, c.Usage, h.prefix))
		return nil
	}

	itemID, err := strconv.ParseUint(req.Args[0], 10, 64)
	if err != nil {
		h.reply(msg, "❌ Invalid item ID. It must be a number.")
		return nil
	}

	winnersCount, err := strconv.Atoi(req.Args[2])
	if err != nil || winnersCount < 1 {
		h.reply(msg, "❌ Winners count must be a positive number.")
		return nil
	}

	endTime, err := h.parser.Parse(req.Args[1], h.clock.Now())
	if err != nil {
		h.reply(msg, "❌ "+err.Error())
		return nil
	}

	itemOutput, err := h.giveawayService.GetItem(ctx, &giveaway.GetItemInput{ItemID: uint(itemID)})
	if err != nil {
		if errors.Is(err, giveaway.ErrItemNotFound) {
			h.reply(msg, fmt.Sprintf("❌ Item not found. Use `%sitems` to see available items.", h.prefix))
			return nil
		}
		return fmt.Errorf("failed to get item %d: %w", itemID, err)
	}

	view := &openView{
		Item:         itemOutput.Item,
		EndTime:      endTime,
		WinnersCount: winnersCount,
	}
	components := participateButton(0, false)

	posted, err := h.messenger.ChannelMessageSendComplex(msg.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{h.render.openEmbed(view)},
		Components: components,
	})
	if err != nil {
		return fmt.Errorf("failed to post giveaway message: %w", err)
	}

	created, err := h.giveawayService.CreateGiveaway(ctx, &giveaway.CreateGiveawayInput{
		ItemID:       uint(itemID),
		GuildID:      msg.GuildID,
		ChannelID:    msg.ChannelID,
		MessageID:    posted.ID,
		EndTime:      endTime,
		WinnersCount: winnersCount,
		CreatedBy:    msg.Author.ID,
	})
	if err != nil {
		if delErr := h.messenger.ChannelMessageDelete(msg.ChannelID, posted.ID); delErr != nil {
			logger.Warn().Err(delErr).Str("message_id", posted.ID).Msg("Failed to remove orphaned giveaway message")
		}

		var giveawayErr giveaway.GiveawayError
		if errors.As(err, &giveawayErr) {
			h.reply(msg, "❌ "+giveawayErr.Error())
			return nil
		}
		return fmt.Errorf("failed to create giveaway: %w", err)
	}

	view.GiveawayID = created.Giveaway.ID
	embeds := []*discordgo.MessageEmbed{h.render.openEmbed(view)}
	_, err = h.messenger.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         posted.ID,
		Channel:    msg.ChannelID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		logger.Warn().
			Err(err).
			Uint("giveaway_id", created.Giveaway.ID).
			Str("message_id", posted.ID).
			Msg("Failed to add giveaway ID to message")
	}

	logger.Info().
		Uint("giveaway_id", created.Giveaway.ID).
		Uint64("item_id", itemID).
		Str("channel_id", msg.ChannelID).
		Time("end_time", endTime).
		Int("winners_count", winnersCount).
		Msg("Giveaway started")

	h.reply(msg, fmt.Sprintf("✅ Giveaway started successfully! **Giveaway ID:** %d", created.Giveaway.ID))
	return nil
}

// CancelCommand stops a running giveaway without drawing winners
type CancelCommand struct {
	BaseCommand
	handler *Handler
}

func newCancelCommand(h *Handler) *CancelCommand {
	return &CancelCommand{
		BaseCommand: BaseCommand{
			Name:      "cancel",
			Usage:     "cancel <giveaway_id>",
			Scope:     ScopeGuild,
			AdminOnly: true,
		},
		handler: h,
	}
}

// Handle cancels the giveaway and greys out its message
func (c *CancelCommand) Handle(ctx context.Context, req *CommandRequest) error {
	h := c.handler
	msg := req.Message

	if len(req.Args) != 1 {
		h.reply(msg, fmt.Sprintf("❌ **Usage:** `%s%s`\n**Example:** `%scancel 5`", h.prefix, c.Usage, h.prefix))
		return nil
	}

	giveawayID, err := strconv.ParseUint(req.Args[0], 10, 64)
	if err != nil {
		h.reply(msg, "❌ Invalid giveaway ID. It must be a number.")
		return nil
	}

	output, err := h.giveawayService.CancelGiveaway(ctx, &giveaway.CancelGiveawayInput{
		GiveawayID: uint(giveawayID),
	})
	if err != nil {
		if errors.Is(err, giveaway.ErrGiveawayNotActive) {
			h.reply(msg, "❌ Giveaway not found or already ended/cancelled.")
			return nil
		}
		return fmt.Errorf("failed to cancel giveaway %d: %w", giveawayID, err)
	}

	g := output.Giveaway
	embeds := []*discordgo.MessageEmbed{h.render.cancelledEmbed(g.ID, output.Item, output.ParticipantCount)}
	components := participateButton(output.ParticipantCount, true)
	_, err = h.messenger.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         g.MessageID,
		Channel:    g.ChannelID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		logger.Warn().
			Err(err).
			Uint("giveaway_id", g.ID).
			Str("message_id", g.MessageID).
			Msg("Failed to update cancelled giveaway message")
	}

	logger.Info().
		Uint("giveaway_id", g.ID).
		Str("user_id", msg.Author.ID).
		Msg("Giveaway cancelled")

	h.reply(msg, fmt.Sprintf("✅ Giveaway #%d has been cancelled.", g.ID))
	return nil
}
