package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest represents a customer of the venue
type Guest struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VenueID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"venue_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Furigana      *string        `gorm:"size:255" json:"furigana,omitempty"`
	Phone         *string        `gorm:"size:50" json:"phone,omitempty"`
	Birthday      *time.Time     `gorm:"type:date" json:"birthday,omitempty"`
	FavoriteDrink *string        `gorm:"size:255" json:"favorite_drink,omitempty"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Venue Venue `gorm:"foreignKey:VenueID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new guest
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Guest model
func (Guest) TableName() string {
	return "guests"
}
