package models

import (
	"time"
)

// Item is a prize that can be given away. Items are never edited or deleted.
type Item struct {
	// ID is the unique identifier for the item
	ID uint `gorm:"primaryKey"`

	// Name is shown as the giveaway title
	Name string `gorm:"type:varchar(255);not null"`

	// Description is shown in the giveaway body
	Description string `gorm:"type:text;not null"`

	// ImageURL is optional; empty means no image
	ImageURL string `gorm:"type:text"`

	// CreatedBy is the Discord ID of the admin who added the item
	CreatedBy string `gorm:"type:varchar(32)"`

	// CreatedAt is when the item was created
	CreatedAt time.Time `gorm:"not null"`
}

// TableName pins the table name
func (Item) TableName() string {
	return "items"
}

// HasImage reports whether the item carries an image
func (i *Item) HasImage() bool {
	return i.ImageURL != ""
}
