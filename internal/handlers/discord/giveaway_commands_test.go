package discord

import (
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/giveaway-bot/internal/endtime"
	"github.com/KirkDiggler/giveaway-bot/internal/models"
	"github.com/KirkDiggler/giveaway-bot/internal/services/giveaway"
)

const giveawayUsage = "❌ **Usage:** `.giveaway <item_id> <end_time> <winners_count>`\n**Example:** `.giveaway 1 9:00AM 2`"

// 9:00AM at UTC+1 has passed at 13:00 local, so it rolls to the next morning
func (s *HandlerTestSuite) expectedEndTime() time.Time {
	return time.Date(2025, 4, 20, 8, 0, 0, 0, time.UTC)
}

func (s *HandlerTestSuite) TestGiveawayUsage() {
	s.expectReply(testChannelID, giveawayUsage)
	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7"))

	s.expectReply(testChannelID, giveawayUsage)
	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 9:00AM 1 extra"))
}

func (s *HandlerTestSuite) TestGiveawayInvalidArguments() {
	s.expectReply(testChannelID, "❌ Invalid item ID. It must be a number.")
	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway nitro 9:00AM 1"))

	s.expectReply(testChannelID, "❌ Winners count must be a positive number.")
	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 9:00AM 0"))

	s.expectReply(testChannelID, "❌ Winners count must be a positive number.")
	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 9:00AM two"))

	s.expectReply(testChannelID, "❌ "+endtime.ErrInvalidFormat.Error())
	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 noon 1"))

	s.expectReply(testChannelID, "❌ "+endtime.ErrInvalidRange.Error())
	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 13:00PM 1"))
}

func (s *HandlerTestSuite) TestGiveawayItemNotFound() {
	s.mockGiveawayService.EXPECT().
		GetItem(s.ctx, &giveaway.GetItemInput{ItemID: 99}).
		Return(nil, giveaway.ErrItemNotFound)
	s.expectReply(testChannelID, "❌ Item not found. Use `.items` to see available items.")

	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 99 9:00AM 1"))
}

func (s *HandlerTestSuite) TestGiveawayStarted() {
	s.mockGiveawayService.EXPECT().
		GetItem(s.ctx, &giveaway.GetItemInput{ItemID: 7}).
		Return(&giveaway.GetItemOutput{Item: s.testItem}, nil)

	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		DoAndReturn(func(_ string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Require().Len(data.Embeds, 1)
			s.Equal("Loading...", data.Embeds[0].Footer.Text)
			s.Equal("🎁 Free Nitro", data.Embeds[0].Title)
			s.Equal("Apr 20, 2025, 09:00 AM", data.Embeds[0].Fields[0].Value)
			s.Equal("2", data.Embeds[0].Fields[1].Value)
			s.Equal("0", data.Embeds[0].Fields[2].Value)
			return &discordgo.Message{ID: "giveaway-msg", ChannelID: testChannelID}, nil
		})

	s.mockGiveawayService.EXPECT().
		CreateGiveaway(s.ctx, &giveaway.CreateGiveawayInput{
			ItemID:       7,
			GuildID:      testGuildID,
			ChannelID:    testChannelID,
			MessageID:    "giveaway-msg",
			EndTime:      s.expectedEndTime(),
			WinnersCount: 2,
			CreatedBy:    testAdminID,
		}).
		Return(&giveaway.CreateGiveawayOutput{
			Giveaway: &models.Giveaway{ID: 3, MessageID: "giveaway-msg", ChannelID: testChannelID},
			Item:     s.testItem,
		}, nil)

	s.mockMessenger.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("giveaway-msg", edit.ID)
			s.Equal(testChannelID, edit.Channel)
			s.Equal("Giveaway ID: 3", (*edit.Embeds)[0].Footer.Text)
			return &discordgo.Message{}, nil
		})

	s.expectReply(testChannelID, "✅ Giveaway started successfully! **Giveaway ID:** 3")

	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 9:00am 2"))
}

func (s *HandlerTestSuite) TestGiveawayEditFailureStillSucceeds() {
	s.mockGiveawayService.EXPECT().
		GetItem(s.ctx, gomock.Any()).
		Return(&giveaway.GetItemOutput{Item: s.testItem}, nil)
	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		Return(&discordgo.Message{ID: "giveaway-msg"}, nil)
	s.mockGiveawayService.EXPECT().
		CreateGiveaway(s.ctx, gomock.Any()).
		Return(&giveaway.CreateGiveawayOutput{Giveaway: &models.Giveaway{ID: 3}, Item: s.testItem}, nil)
	s.mockMessenger.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		Return(nil, errors.New("missing access"))
	s.expectReply(testChannelID, "✅ Giveaway started successfully! **Giveaway ID:** 3")

	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 9:00AM 1"))
}

func (s *HandlerTestSuite) TestGiveawayCreateFailureRemovesMessage() {
	s.mockGiveawayService.EXPECT().
		GetItem(s.ctx, gomock.Any()).
		Return(&giveaway.GetItemOutput{Item: s.testItem}, nil)
	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		Return(&discordgo.Message{ID: "giveaway-msg"}, nil)
	s.mockGiveawayService.EXPECT().
		CreateGiveaway(s.ctx, gomock.Any()).
		Return(nil, errors.New("insert failed"))
	s.mockMessenger.EXPECT().
		ChannelMessageDelete(testChannelID, "giveaway-msg").
		Return(nil)
	s.expectReply(testChannelID, msgCommandError)

	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 9:00AM 1"))
}

func (s *HandlerTestSuite) TestGiveawayRejectedByService() {
	s.mockGiveawayService.EXPECT().
		GetItem(s.ctx, gomock.Any()).
		Return(&giveaway.GetItemOutput{Item: s.testItem}, nil)
	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		Return(&discordgo.Message{ID: "giveaway-msg"}, nil)
	s.mockGiveawayService.EXPECT().
		CreateGiveaway(s.ctx, gomock.Any()).
		Return(nil, giveaway.ErrEndTimeInPast)
	s.mockMessenger.EXPECT().
		ChannelMessageDelete(testChannelID, "giveaway-msg").
		Return(errors.New("unknown message"))
	s.expectReply(testChannelID, "❌ end time must be in the future")

	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 9:00AM 1"))
}

func (s *HandlerTestSuite) TestGiveawayPostFailure() {
	s.mockGiveawayService.EXPECT().
		GetItem(s.ctx, gomock.Any()).
		Return(&giveaway.GetItemOutput{Item: s.testItem}, nil)
	s.mockMessenger.EXPECT().
		ChannelMessageSendComplex(testChannelID, gomock.Any()).
		Return(nil, errors.New("missing permissions"))
	s.expectReply(testChannelID, msgCommandError)

	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".giveaway 7 9:00AM 1"))
}

func (s *HandlerTestSuite) TestCancelUsage() {
	s.expectReply(testChannelID, "❌ **Usage:** `.cancel <giveaway_id>`\n**Example:** `.cancel 5`")
	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".cancel"))

	s.expectReply(testChannelID, "❌ Invalid giveaway ID. It must be a number.")
	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".cancel five"))
}

func (s *HandlerTestSuite) TestCancelNotActive() {
	s.mockGiveawayService.EXPECT().
		CancelGiveaway(s.ctx, &giveaway.CancelGiveawayInput{GiveawayID: 3}).
		Return(nil, giveaway.ErrGiveawayNotActive)
	s.expectReply(testChannelID, "❌ Giveaway not found or already ended/cancelled.")

	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".cancel 3"))
}

func (s *HandlerTestSuite) TestCancel() {
	cancelled := &models.Giveaway{
		ID:        3,
		ChannelID: "channel-2",
		MessageID: "giveaway-msg",
		Status:    models.GiveawayStatusCancelled,
	}

	s.mockGiveawayService.EXPECT().
		CancelGiveaway(s.ctx, &giveaway.CancelGiveawayInput{GiveawayID: 3}).
		Return(&giveaway.CancelGiveawayOutput{Giveaway: cancelled, Item: s.testItem, ParticipantCount: 4}, nil)

	s.mockMessenger.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		DoAndReturn(func(edit *discordgo.MessageEdit, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("giveaway-msg", edit.ID)
			s.Equal("channel-2", edit.Channel)
			s.Equal("🎁 Free Nitro - CANCELLED", (*edit.Embeds)[0].Title)
			s.Equal(colorCancelled, (*edit.Embeds)[0].Color)

			row := (*edit.Components)[0].(discordgo.ActionsRow)
			button := row.Components[0].(discordgo.Button)
			s.True(button.Disabled)
			s.Equal("🎁 Participate (4)", button.Label)
			return &discordgo.Message{}, nil
		})

	s.expectReply(testChannelID, "✅ Giveaway #3 has been cancelled.")

	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".cancel 3"))
}

func (s *HandlerTestSuite) TestCancelEditFailureStillSucceeds() {
	s.mockGiveawayService.EXPECT().
		CancelGiveaway(s.ctx, gomock.Any()).
		Return(&giveaway.CancelGiveawayOutput{Giveaway: &models.Giveaway{ID: 3}, Item: s.testItem}, nil)
	s.mockMessenger.EXPECT().
		ChannelMessageEditComplex(gomock.Any()).
		Return(nil, errors.New("unknown message"))
	s.expectReply(testChannelID, "✅ Giveaway #3 has been cancelled.")

	s.handler.HandleMessage(s.ctx, s.guildMessage(testAdminID, ".cancel 3"))
}
