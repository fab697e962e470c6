package item

import (
	"time"

	"github.com/KirkDiggler/giveaway-bot/internal/common/clock"
	"github.com/KirkDiggler/giveaway-bot/internal/models"
	itemRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/item"
	draftRepo "github.com/KirkDiggler/giveaway-bot/internal/repositories/item_draft"
)

// SkipImage is the answer that creates the item without an image
const SkipImage = "skip"

// CancelDraft is the answer that abandons the conversation at any step
const CancelDraft = "cancel"

// Config holds configuration for the item service
type Config struct {
	// PromptTTL is how long a draft waits for the next answer
	PromptTTL time.Duration

	// Repository dependencies
	ItemRepo  itemRepo.Repository
	DraftRepo draftRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

type BeginDraftInput struct {
	UserID string
}

type BeginDraftOutput struct {
	Step models.DraftStep
}

type HasDraftInput struct {
	UserID string
}

type HasDraftOutput struct {
	HasDraft bool
}

type ContinueDraftInput struct {
	UserID  string
	Content string
}

type ContinueDraftOutput struct {
	// Step is the question now awaiting an answer; empty once the draft finished or was cancelled
	Step models.DraftStep

	// Item is set when the answer completed the draft
	Item *models.Item

	// Cancelled is set when the user abandoned the draft
	Cancelled bool

	// Rejected is set for an empty answer; the draft is unchanged
	Rejected bool
}

type ListItemsInput struct {
}

type ListItemsOutput struct {
	Items []*models.Item
}
