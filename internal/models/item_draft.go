package models

import (
	"time"
)

// DraftStep is the question an item draft is waiting on
type DraftStep string

const (
	// DraftStepName waits for the item name
	DraftStepName DraftStep = "name"

	// DraftStepDescription waits for the item description
	DraftStepDescription DraftStep = "description"

	// DraftStepImage waits for an image URL or "skip"
	DraftStepImage DraftStep = "image"
)

// ItemDraft is an admin's in-progress item creation conversation
type ItemDraft struct {
	UserID      string    `json:"user_id"`
	Step        DraftStep `json:"step"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	StartedAt   time.Time `json:"started_at"`
}
