package item

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/giveaway-bot/internal/services/item Service

import "context"

// Service defines the item catalog and the guided item creation conversation
type Service interface {
	// BeginDraft starts (or restarts) an item creation conversation for an admin
	BeginDraft(ctx context.Context, input *BeginDraftInput) (*BeginDraftOutput, error)

	// HasDraft reports whether the user is in the middle of creating an item
	HasDraft(ctx context.Context, input *HasDraftInput) (*HasDraftOutput, error)

	// ContinueDraft feeds the user's next message into their conversation
	ContinueDraft(ctx context.Context, input *ContinueDraftInput) (*ContinueDraftOutput, error)

	// ListItems returns every item ordered by ID
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
}
