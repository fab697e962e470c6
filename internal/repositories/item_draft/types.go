package item_draft

import (
	"time"

	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

type SaveDraftInput struct {
	Draft *models.ItemDraft
	TTL   time.Duration
}

type GetDraftInput struct {
	UserID string
}

type DeleteDraftInput struct {
	UserID string
}
