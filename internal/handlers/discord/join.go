package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/giveaway-bot/internal/common/logger"
	"github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
)

// Join replies
const (
	msgJoined         = "✅ You have successfully joined the giveaway!"
	msgAlreadyJoined  = "❌ You are already participating in this giveaway!"
	msgNoLongerActive = "❌ This giveaway is no longer active."
	msgAlreadyEnded   = "❌ This giveaway has already ended."
	msgJoinFailed     = "❌ Failed to join giveaway. Please try again."
)

// HandleInteraction processes a component interaction such as a button press
func (h *Handler) HandleInteraction(ctx context.Context, i *discordgo.Interaction) {
	if i == nil || i.Type != discordgo.InteractionMessageComponent {
		return
	}

	customID := i.MessageComponentData().CustomID
	switch customID {
	case ButtonParticipate:
		if err := h.handleParticipate(ctx, i); err != nil {
			logger.Error().Err(err).Str("interaction_id", i.ID).Msg("Failed to handle participate button")
		}
	default:
		logger.Debug().Str("custom_id", customID).Msg("Ignoring unknown component")
	}
}

// interactionUserID returns the presser; Member is set in guilds, User in DMs
func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (h *Handler) handleParticipate(ctx context.Context, i *discordgo.Interaction) error {
	if i.Message == nil {
		return RespondWithEphemeralMessage(h.messenger, i, msgNoLongerActive)
	}

	userID := interactionUserID(i)
	output, err := h.giveawayService.JoinGiveaway(ctx, &giveaway.JoinGiveawayInput{
		MessageID: i.Message.ID,
		UserID:    userID,
	})
	switch {
	case errors.Is(err, giveaway.ErrGiveawayNotActive):
		return RespondWithEphemeralMessage(h.messenger, i, msgNoLongerActive)
	case errors.Is(err, giveaway.ErrGiveawayExpired):
		return RespondWithEphemeralMessage(h.messenger, i, msgAlreadyEnded)
	case err != nil:
		logger.Error().
			Err(err).
			Str("message_id", i.Message.ID).
			Str("user_id", userID).
			Msg("Failed to join giveaway")
		return RespondWithEphemeralMessage(h.messenger, i, msgJoinFailed)
	}

	if output.AlreadyJoined {
		return RespondWithEphemeralMessage(h.messenger, i, msgAlreadyJoined)
	}

	g := output.Giveaway
	err = h.messenger.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{h.render.openEmbed(&openView{
				GiveawayID:       g.ID,
				Item:             output.Item,
				EndTime:          g.EndTime,
				WinnersCount:     g.WinnersCount,
				ParticipantCount: output.ParticipantCount,
			})},
			Components: participateButton(output.ParticipantCount, false),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update giveaway message: %w", err)
	}

	logger.Debug().
		Uint("giveaway_id", g.ID).
		Str("user_id", userID).
		Int("participants", output.ParticipantCount).
		Msg("User joined giveaway")

	return FollowupEphemeral(h.messenger, i, msgJoined)
}
