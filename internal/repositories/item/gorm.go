package item

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

// ErrItemNotFound is returned when an item is not found
var ErrItemNotFound = errors.New("item not found")

// Config holds configuration for the GORM item repository
type Config struct {
	DB *gorm.DB
}

// gormRepository implements the Repository interface using GORM
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new GORM-backed item repository
func NewGorm(cfg *Config) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &gormRepository{
		db: cfg.DB,
	}, nil
}

// CreateItem inserts the item
func (r *gormRepository) CreateItem(ctx context.Context, input *CreateItemInput) (*models.Item, error) {
	if input == nil || input.Item == nil {
		return nil, errors.New("input and item cannot be nil")
	}
	if input.Item.Name == "" {
		return nil, errors.New("item name cannot be empty")
	}

	if err := r.db.WithContext(ctx).Create(input.Item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return input.Item, nil
}

// GetItem retrieves an item by ID
func (r *gormRepository) GetItem(ctx context.Context, input *GetItemInput) (*models.Item, error) {
	if input == nil || input.ItemID == 0 {
		return nil, errors.New("input and item ID cannot be empty")
	}

	var item models.Item
	err := r.db.WithContext(ctx).First(&item, input.ItemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item %d: %w", input.ItemID, err)
	}

	return &item, nil
}

// ListItems returns all items ordered by ID
func (r *gormRepository) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	var items []*models.Item
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return &ListItemsOutput{
		Items: items,
	}, nil
}
