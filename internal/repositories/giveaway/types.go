package giveaway

import (
	"time"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

type CreateGiveawayInput struct {
	Giveaway *models.Giveaway
}

type GetGiveawayInput struct {
	GiveawayID uint
}

type GetGiveawayByMessageInput struct {
	MessageID string
}

type ListExpiredInput struct {
	Now time.Time
}

type ListExpiredOutput struct {
	Giveaways []*models.Giveaway
}

type AddParticipantInput struct {
	GiveawayID uint
	UserID     string
	JoinedAt   time.Time
}

type CountParticipantsInput struct {
	GiveawayID uint
}

type ListParticipantsInput struct {
	GiveawayID uint
}

type ListParticipantsOutput struct {
	UserIDs []string
}

type CancelGiveawayInput struct {
	GiveawayID  uint
	CancelledAt time.Time
}

type FinalizeGiveawayInput struct {
	GiveawayID uint
	WinnerIDs  []string
	EndedAt    time.Time
}
