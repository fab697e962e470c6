package models

import (
	"time"
)

// Participant is one user's entry in a giveaway
type Participant struct {
	ID uint `gorm:"primaryKey"`

	GiveawayID uint `gorm:"not null;uniqueIndex:idx_giveaway_user,priority:1"`

	// UserID is the Discord ID of the entrant
	UserID string `gorm:"type:varchar(32);not null;uniqueIndex:idx_giveaway_user,priority:2"`

	JoinedAt time.Time `gorm:"not null"`
}

// TableName pins the table name
func (Participant) TableName() string {
	return "giveaway_participants"
}
