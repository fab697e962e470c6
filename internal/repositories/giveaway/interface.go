package giveaway

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/giveaway-bot/internal/repositories/giveaway Repository

import (
	"context"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

// Repository defines the interface for giveaway persistence
type Repository interface {
	// CreateGiveaway persists a new giveaway and fills in its ID
	CreateGiveaway(ctx context.Context, input *CreateGiveawayInput) (*models.Giveaway, error)

	// GetGiveaway retrieves a giveaway by ID
	GetGiveaway(ctx context.Context, input *GetGiveawayInput) (*models.Giveaway, error)

	// GetGiveawayByMessage retrieves a giveaway by its public message ID
	GetGiveawayByMessage(ctx context.Context, input *GetGiveawayByMessageInput) (*models.Giveaway, error)

	// ListExpired returns active giveaways whose end time is at or before Now
	ListExpired(ctx context.Context, input *ListExpiredInput) (*ListExpiredOutput, error)

	// AddParticipant records an entry; a second entry for the same user fails with ErrAlreadyParticipating
	AddParticipant(ctx context.Context, input *AddParticipantInput) error

	// CountParticipants returns the number of entries in a giveaway
	CountParticipants(ctx context.Context, input *CountParticipantsInput) (int, error)

	// ListParticipants returns the entrants of a giveaway in join order
	ListParticipants(ctx context.Context, input *ListParticipantsInput) (*ListParticipantsOutput, error)

	// CancelGiveaway moves an active giveaway to cancelled
	CancelGiveaway(ctx context.Context, input *CancelGiveawayInput) error

	// FinalizeGiveaway stores the winners and moves an active giveaway to ended atomically
	FinalizeGiveaway(ctx context.Context, input *FinalizeGiveawayInput) error
}
