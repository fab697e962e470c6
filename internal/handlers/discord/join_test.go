package discord

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
	"github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
)

func (s *HandlerTestSuite) participateInteraction(userID string) *discordgo.Interaction {
	return &discordgo.Interaction{
		ID:        "interaction-1",
		Type:      discordgo.InteractionMessageComponent,
		ChannelID: testChannelID,
		GuildID:   testGuildID,
		Message:   &discordgo.Message{ID: "giveaway-msg", ChannelID: testChannelID},
		Member:    &discordgo.Member{User: &discordgo.User{ID: userID}},
		Data:      discordgo.MessageComponentInteractionData{CustomID: ButtonParticipate},
	}
}

// expectEphemeral expects one ephemeral interaction response with content
func (s *HandlerTestSuite) expectEphemeral(content string) {
	s.mockMessenger.EXPECT().
		InteractionRespond(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
			s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
			s.Equal(content, resp.Data.Content)
			s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
			return nil
		})
}

func (s *HandlerTestSuite) TestJoin() {
	i := s.participateInteraction(testUserID)
	joined := &models.Giveaway{
		ID:           3,
		MessageID:    "giveaway-msg",
		EndTime:      s.expectedEndTime(),
		WinnersCount: 2,
		Status:       models.GiveawayStatusActive,
	}

	s.mockGiveawayService.EXPECT().
		JoinGiveaway(s.ctx, &giveaway.JoinGiveawayInput{MessageID: "giveaway-msg", UserID: testUserID}).
		Return(&giveaway.JoinGiveawayOutput{Giveaway: joined, Item: s.testItem, ParticipantCount: 5}, nil)

	gomock.InOrder(
		s.mockMessenger.EXPECT().
			InteractionRespond(i, gomock.Any()).
			DoAndReturn(func(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
				s.Equal(discordgo.InteractionResponseUpdateMessage, resp.Type)
				s.Require().Len(resp.Data.Embeds, 1)
				s.Equal("5", resp.Data.Embeds[0].Fields[2].Value)
				s.Equal("Giveaway ID: 3", resp.Data.Embeds[0].Footer.Text)

				button := resp.Data.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
				s.Equal("🎁 Participate (5)", button.Label)
				s.False(button.Disabled)
				return nil
			}),
		s.mockMessenger.EXPECT().
			FollowupMessageCreate(i, false, &discordgo.WebhookParams{
				Content: msgJoined,
				Flags:   discordgo.MessageFlagsEphemeral,
			}).
			Return(&discordgo.Message{}, nil),
	)

	s.handler.HandleInteraction(s.ctx, i)
}

func (s *HandlerTestSuite) TestJoinFromDM() {
	i := s.participateInteraction("")
	i.Member = nil
	i.User = &discordgo.User{ID: testUserID}

	s.mockGiveawayService.EXPECT().
		JoinGiveaway(s.ctx, &giveaway.JoinGiveawayInput{MessageID: "giveaway-msg", UserID: testUserID}).
		Return(&giveaway.JoinGiveawayOutput{AlreadyJoined: true}, nil)
	s.expectEphemeral(msgAlreadyJoined)

	s.handler.HandleInteraction(s.ctx, i)
}

func (s *HandlerTestSuite) TestJoinAlreadyParticipating() {
	s.mockGiveawayService.EXPECT().
		JoinGiveaway(s.ctx, gomock.Any()).
		Return(&giveaway.JoinGiveawayOutput{
			Giveaway:         &models.Giveaway{ID: 3},
			Item:             s.testItem,
			ParticipantCount: 5,
			AlreadyJoined:    true,
		}, nil)
	s.expectEphemeral(msgAlreadyJoined)

	s.handler.HandleInteraction(s.ctx, s.participateInteraction(testUserID))
}

func (s *HandlerTestSuite) TestJoinNotActive() {
	s.mockGiveawayService.EXPECT().
		JoinGiveaway(s.ctx, gomock.Any()).
		Return(nil, giveaway.ErrGiveawayNotActive)
	s.expectEphemeral(msgNoLongerActive)

	s.handler.HandleInteraction(s.ctx, s.participateInteraction(testUserID))
}

func (s *HandlerTestSuite) TestJoinExpired() {
	s.mockGiveawayService.EXPECT().
		JoinGiveaway(s.ctx, gomock.Any()).
		Return(nil, giveaway.ErrGiveawayExpired)
	s.expectEphemeral(msgAlreadyEnded)

	s.handler.HandleInteraction(s.ctx, s.participateInteraction(testUserID))
}

func (s *HandlerTestSuite) TestJoinFailure() {
	s.mockGiveawayService.EXPECT().
		JoinGiveaway(s.ctx, gomock.Any()).
		Return(nil, errors.New("connection reset"))
	s.expectEphemeral(msgJoinFailed)

	s.handler.HandleInteraction(s.ctx, s.participateInteraction(testUserID))
}

func (s *HandlerTestSuite) TestIgnoresOtherInteractions() {
	s.handler.HandleInteraction(s.ctx, nil)
	s.handler.HandleInteraction(s.ctx, &discordgo.Interaction{Type: discordgo.InteractionApplicationCommand})

	i := s.participateInteraction(testUserID)
	i.Data = discordgo.MessageComponentInteractionData{CustomID: "something_else"}
	s.handler.HandleInteraction(s.ctx, i)
}
