package models

import (
	"time"
)

// Winner is a participant drawn when a giveaway ended
type Winner struct {
	ID         uint      `gorm:"primaryKey"`
	GiveawayID uint      `gorm:"not null;index"`
	UserID     string    `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName pins the table name
func (Winner) TableName() string {
	return "giveaway_winners"
}
