package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cast represents a cast member (hostess/host) working at a venue
type Cast struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VenueID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"venue_id"`
	StageName  string         `gorm:"size:255;not null" json:"stage_name"`
	RealName   *string        `gorm:"size:255" json:"real_name,omitempty"`
	Phone      *string        `gorm:"size:50" json:"phone,omitempty"`
	Photo      *string        `gorm:"size:255" json:"photo,omitempty"`
	HourlyWage int64          `gorm:"default:0" json:"hourly_wage"` // Yen per hour
	BackRate   int            `gorm:"default:0" json:"back_rate"`   // Percent of attributed sales
	Active     bool           `gorm:"default:true" json:"active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Venue  Venue   `gorm:"foreignKey:VenueID" json:"-"`
	Orders []Order `gorm:"foreignKey:CastID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new cast member
func (c *Cast) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Cast model
func (Cast) TableName() string {
	return "casts"
}
