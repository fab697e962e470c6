package item

import "github.com/KirkDiggler/giveaway-bot/internal/models"

type CreateItemInput struct {
	Item *models.Item
}

type GetItemInput struct {
	ItemID uint
}

type ListItemsInput struct {
}

type ListItemsOutput struct {
	Items []*models.Item
}
