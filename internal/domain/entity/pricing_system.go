package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PricingSystem is a venue-configured schedule of fee amounts and block
// durations per charge category. Sessions reference one pricing system; the
// charge deriver reads it and never writes it.
type PricingSystem struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VenueID               uuid.UUID      `gorm:"type:uuid;not null;index" json:"venue_id"`
	Name                  string         `gorm:"size:255;not null" json:"name"`
	SetFee                int64          `gorm:"default:0" json:"set_fee"` // Yen
	SetDurationMinutes    int            `gorm:"default:60" json:"set_duration_minutes"`
	ExtensionFee          int64          `gorm:"default:0" json:"extension_fee"`
	ExtensionDurationMins int            `gorm:"column:extension_duration_minutes;default:30" json:"extension_duration_minutes"`
	NominationFee         int64          `gorm:"default:0" json:"nomination_fee"`
	NominationSetMinutes  int            `gorm:"column:nomination_set_duration_minutes;default:60" json:"nomination_set_duration_minutes"`
	HouseFee              int64          `gorm:"default:0" json:"house_fee"`
	HouseSetMinutes       int            `gorm:"column:house_set_duration_minutes;default:60" json:"house_set_duration_minutes"`
	DouhanFee             int64          `gorm:"default:0" json:"douhan_fee"` // Billed on the nomination duration unit
	IsDefault             bool           `gorm:"default:false" json:"is_default"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Venue Venue `gorm:"foreignKey:VenueID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new pricing system
func (p *PricingSystem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PricingSystem model
func (PricingSystem) TableName() string {
	return "pricing_systems"
}
