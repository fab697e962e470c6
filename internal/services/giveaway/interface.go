package giveaway

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/giveaway-bot/internal/services/giveaway Service

import "context"

// Service defines the interface for giveaway operations
type Service interface {
	// GetItem looks up the item an admin wants to give away
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)

	// CreateGiveaway records a new active giveaway for an already posted message
	CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*CreateGiveawayOutput, error)

	// JoinGiveaway enters a user into the giveaway behind a public message
	JoinGiveaway(ctx context.Context, input *JoinGiveawayInput) (*JoinGiveawayOutput, error)

	// CancelGiveaway stops an active giveaway without drawing winners
	CancelGiveaway(ctx context.Context, input *CancelGiveawayInput) (*CancelGiveawayOutput, error)

	// ListExpiredGiveaways returns active giveaways whose deadline has passed
	ListExpiredGiveaways(ctx context.Context, input *ListExpiredGiveawaysInput) (*ListExpiredGiveawaysOutput, error)

	// EndGiveaway draws winners and ends an active giveaway
	EndGiveaway(ctx context.Context, input *EndGiveawayInput) (*EndGiveawayOutput, error)
}
