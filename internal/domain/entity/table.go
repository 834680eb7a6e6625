package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueTable represents a physical table/booth on the floor
type VenueTable struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VenueID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"venue_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Capacity  int            `gorm:"default:4" json:"capacity"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Venue Venue `gorm:"foreignKey:VenueID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new table
func (t *VenueTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VenueTable model
func (VenueTable) TableName() string {
	return "venue_tables"
}
