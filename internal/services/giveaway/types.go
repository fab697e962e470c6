package giveaway

import (
	"time"

	"github.com/KirkDiggler/giveaway-bot/internal/common/clock"
	"github.com/KirkDiggler/giveaway-bot/internal/draw"
	"github.com/KirkDiggler/giveaway-bot/internal/models"
	giveawayRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/giveaway"
	itemRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/item"
)

// Config holds configuration for the giveaway service
type Config struct {
	// Repository dependencies
	GiveawayRepo giveawayRepo.Repository
	ItemRepo     itemRepo.Repository

	// Service dependencies
	Selector draw.Selector
	Clock    clock.Clock
}

type GetItemInput struct {
	ItemID uint
}

type GetItemOutput struct {
	Item *models.Item
}

type CreateGiveawayInput struct {
	ItemID       uint
	GuildID      string
	ChannelID    string
	MessageID    string
	EndTime      time.Time
	WinnersCount int
	CreatedBy    string
}

type CreateGiveawayOutput struct {
	Giveaway *models.Giveaway
	Item     *models.Item
}

type JoinGiveawayInput struct {
	MessageID string
	UserID    string
}

type JoinGiveawayOutput struct {
	Giveaway         *models.Giveaway
	Item             *models.Item
	ParticipantCount int

	// AlreadyJoined is set when the user had entered before; nothing was written
	AlreadyJoined bool
}

type CancelGiveawayInput struct {
	GiveawayID uint
}

type CancelGiveawayOutput struct {
	Giveaway         *models.Giveaway
	Item             *models.Item
	ParticipantCount int
}

type ListExpiredGiveawaysInput struct {
}

type ListExpiredGiveawaysOutput struct {
	Giveaways []*models.Giveaway
}

type EndGiveawayInput struct {
	GiveawayID uint
}

type EndGiveawayOutput struct {
	Giveaway         *models.Giveaway
	Item             *models.Item
	WinnerIDs        []string
	ParticipantCount int
}
