package item

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/giveaway-bot/internal/repositories/item Repository

import (
	"context"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

// Repository defines the interface for item persistence
type Repository interface {
	// CreateItem persists a new item and fills in its ID
	CreateItem(ctx context.Context, input *CreateItemInput) (*models.Item, error)

	// GetItem retrieves an item by ID
	GetItem(ctx context.Context, input *GetItemInput) (*models.Item, error)

	// ListItems returns every item ordered by ID
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
}
