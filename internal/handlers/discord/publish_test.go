package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
	"github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
)

func (s *HandlerTestSuite) endedOutput(winnerIDs []string, participants int) *giveaway.EndGiveawayOutput {
	return &giveaway.EndGiveawayOutput{
		Giveaway: &models.Giveaway{
			ID:        3,
			GuildID:   testGuildID,
			ChannelID: testChannelID,
			MessageID: "giveaway-msg",
			Status:    models.GiveawayStatusEnded,
		},
		Item:             s.testItem,
		WinnerIDs:        winnerIDs,
		ParticipantCount: participants,
	}
}

func (s *HandlerTestSuite) TestPublishEnded() {
	output := s.endedOutput([]string{"user-1", "user-2"}, 6)

	s.mockMessenger.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			embed := (*edit.Embeds)[0]
			s.Equal("giveaway-msg", edit.ID)
			s.Equal("🎁 Free Nitro - ENDED", embed.Title)
			s.Equal(colorEnded, embed.Color)
			s.Equal("<@user-1>\n<@user-2>", embed.Fields[0].Value)
			s.Equal("6", embed.Fields[1].Value)

			button := (*edit.Components)[0].(discordgo.ActionsRow).Components[0].(discordgo.Button)
			s.True(button.Disabled)
			return &discordgo.Message{}, nil
		})

	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		DoAndReturn(func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("🎉 Congratulations <@user-1>, <@user-2>! You won **Free Nitro**!", data.Content)
			s.Equal("giveaway-msg", data.Reference.MessageID)
			s.Equal([]string{"user-1", "user-2"}, data.AllowedMentions.Users)
			return &discordgo.Message{}, nil
		})

	s.NoError(s.handler.PublishEnded(s.ctx, output))
}

func (s *HandlerTestSuite) TestPublishEndedMentionsAtCap() {
	winnerIDs := make([]string, maxAllowedMentionUsers)
	for i := range winnerIDs {
		winnerIDs[i] = fmt.Sprintf("user-%d", i)
	}

	s.mockMessenger.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		Return(&discordgo.Message{}, nil)
	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		DoAndReturn(func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal(winnerIDs, data.AllowedMentions.Users)
			s.Empty(data.AllowedMentions.Parse)
			return &discordgo.Message{}, nil
		})

	s.NoError(s.handler.PublishEnded(s.ctx, s.endedOutput(winnerIDs, len(winnerIDs))))
}

func (s *HandlerTestSuite) TestPublishEndedMentionsOverCap() {
	winnerIDs := make([]string, maxAllowedMentionUsers+1)
	for i := range winnerIDs {
		winnerIDs[i] = fmt.Sprintf("user-%d", i)
	}

	s.mockMessenger.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		Return(&discordgo.Message{}, nil)
	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		DoAndReturn(func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Empty(data.AllowedMentions.Users)
			s.Equal([]discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers}, data.AllowedMentions.Parse)
			return &discordgo.Message{}, nil
		})

	s.NoError(s.handler.PublishEnded(s.ctx, s.endedOutput(winnerIDs, len(winnerIDs))))
}

func (s *HandlerTestSuite) TestPublishEndedNoParticipants() {
	s.mockMessenger.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("No winners selected", (*edit.Embeds)[0].Fields[0].Value)
			return &discordgo.Message{}, nil
		})
	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		DoAndReturn(func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("😢 The giveaway for **Free Nitro** has ended with no participants.", data.Content)
			return &discordgo.Message{}, nil
		})

	s.NoError(s.handler.PublishEnded(s.ctx, s.endedOutput(nil, 0)))
}

func (s *HandlerTestSuite) TestPublishEndedAnnouncesWhenEditFails() {
	editErr := errors.New("unknown message")

	s.mockMessenger.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		Return(nil, editErr)
	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		Return(&discordgo.Message{}, nil)

	err := s.handler.PublishEnded(s.ctx, s.endedOutput([]string{"user-1"}, 1))
	s.Error(err)
	s.ErrorIs(err, editErr)
}

func (s *HandlerTestSuite) TestPublishEndedBothFail() {
	editErr := errors.New("unknown message")
	sendErr := errors.New("missing access")

	s.mockMessenger.EXPECT().ChannelMessageEditComplex(gomock.Any()).Return(nil, editErr)
	s.mockMessenger.EXPECT().ChannelMessageSendComplex(testChannelID, gomock.Any()).Return(nil, sendErr)

	err := s.handler.PublishEnded(s.ctx, s.endedOutput(nil, 0))
	s.ErrorIs(err, editErr)
	s.ErrorIs(err, sendErr)
}

func (s *HandlerTestSuite) TestPublishEndedNil() {
	s.Error(s.handler.PublishEnded(s.ctx, nil))
	s.Error(s.handler.PublishEnded(s.ctx, &giveaway.EndGiveawayOutput{}))
}
