package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
)

// maxAllowedMentionUsers is Discord's cap on allowed_mentions.users
const maxAllowedMentionUsers = 100

// winnerMentions pings exactly the winners, falling back to parsing user
// mentions from the content once the explicit list would exceed the cap.
func winnerMentions(winnerIDs []string) *discordgo.MessageAllowedMentions {
	if len(winnerIDs) > maxAllowedMentionUsers {
		return &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
		}
	}

	return &discordgo.MessageAllowedMentions{
		Users: winnerIDs,
	}
}

// PublishEnded greys out the giveaway message and announces the winners under it.
// Both are attempted; the joined error reports whichever failed.
func (h *Handler) PublishEnded(ctx context.Context, output *giveaway.EndGiveawayOutput) error {
	if output == nil || output.Giveaway == nil || output.Item == nil {
		return errors.New("ended giveaway cannot be nil")
	}

	g := output.Giveaway
	embeds := []*discordgo.MessageEmbed{h.render.endedEmbed(g.ID, output.Item, output.WinnerIDs, output.ParticipantCount)}
	components := participateButton(output.ParticipantCount, true)

	var editErr error
	if _, err := h.messenger.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:         g.MessageID,
		Channel:    g.ChannelID,
		Embeds:     &embeds,
		Components: &components,
	}); err != nil {
		editErr = fmt.Errorf("failed to update ended giveaway %d: %w", g.ID, err)
	}

	var announceErr error
	if _, err := h.messenger.ChannelMessageSendComplex(g.ChannelID, &discordgo.MessageSend{
		Content: winnerAnnouncement(output.Item, output.WinnerIDs),
		Reference: &discordgo.MessageReference{
			MessageID: g.MessageID,
			ChannelID: g.ChannelID,
			GuildID:   g.GuildID,
		},
		AllowedMentions: winnerMentions(output.WinnerIDs),
	}); err != nil {
		announceErr = fmt.Errorf("failed to announce winners of giveaway %d: %w", g.ID, err)
	}

	return errors.Join(editErr, announceErr)
}
