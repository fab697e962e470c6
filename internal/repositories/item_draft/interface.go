package item_draft

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/giveaway-bot/internal/repositories/item_draft Repository

import (
	"context"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

// Repository stores in-progress item creation conversations, one per user
type Repository interface {
	// SaveDraft stores the draft, replacing any existing one, and restarts its expiry
	SaveDraft(ctx context.Context, input *SaveDraftInput) error

	// GetDraft retrieves the user's draft
	GetDraft(ctx context.Context, input *GetDraftInput) (*models.ItemDraft, error)

	// DeleteDraft removes the user's draft; deleting a missing draft is not an error
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) error
}
