package models

import (
	"time"
)

// GiveawayStatus represents the current state of a giveaway
type GiveawayStatus string

const (
	// GiveawayStatusActive indicates a giveaway is accepting participants
	GiveawayStatusActive GiveawayStatus = "active"

	// GiveawayStatusEnded indicates winners have been drawn
	GiveawayStatusEnded GiveawayStatus = "ended"

	// GiveawayStatusCancelled indicates an admin cancelled the giveaway
	GiveawayStatusCancelled GiveawayStatus = "cancelled"
)

// Giveaway is a time-boxed raffle of one item in a guild channel
type Giveaway struct {
	// ID is the unique identifier for the giveaway
	ID uint `gorm:"primaryKey"`

	// ItemID is the item being given away
	ItemID uint `gorm:"not null;index"`

	// GuildID is the Discord server the giveaway runs in
	GuildID string `gorm:"type:varchar(32);not null"`

	// ChannelID is the channel holding the public message
	ChannelID string `gorm:"type:varchar(32);not null"`

	// MessageID is the public giveaway message
	MessageID string `gorm:"type:varchar(32);not null;index"`

	// EndTime is the deadline, always stored in UTC
	EndTime time.Time `gorm:"not null;index:idx_giveaway_status_end,priority:2"`

	// WinnersCount is how many winners to draw
	WinnersCount int `gorm:"not null"`

	// Status is the lifecycle state
	Status GiveawayStatus `gorm:"type:varchar(16);not null;default:active;index:idx_giveaway_status_end,priority:1"`

	// CreatedBy is the Discord ID of the admin who started it
	CreatedBy string `gorm:"type:varchar(32);not null"`

	// CreatedAt is when the giveaway was created
	CreatedAt time.Time

	// UpdatedAt is when the giveaway was last updated
	UpdatedAt time.Time
}

// TableName pins the table name
func (Giveaway) TableName() string {
	return "giveaways"
}

// IsActive reports whether the giveaway still accepts participants
func (g *Giveaway) IsActive() bool {
	return g.Status == GiveawayStatusActive
}

// HasExpired reports whether the deadline has been reached at now
func (g *Giveaway) HasExpired(now time.Time) bool {
	return !now.Before(g.EndTime)
}
