package entity

import (
	"time"

	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueSettings holds per-venue billing configuration: service charge, tax
// and the slip rounding policy applied by the totals calculator.
type VenueSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VenueID   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"venue_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Billing settings
	ServiceChargeRate int `gorm:"default:20" json:"service_charge_rate"` // Percent
	TaxRate           int `gorm:"default:10" json:"tax_rate"`            // Percent

	// Slip rounding policy
	SlipRoundingEnabled bool                `gorm:"default:true" json:"slip_rounding_enabled"`
	SlipRoundingMethod  enum.RoundingMethod `gorm:"default:0" json:"slip_rounding_method"`
	SlipRoundingUnit    int64               `gorm:"default:10" json:"slip_rounding_unit"`

	// Business day settings
	OpeningTime string `gorm:"size:10;default:'20:00'" json:"opening_time"`
	ClosingTime string `gorm:"size:10;default:'01:00'" json:"closing_time"`

	// Relationships
	Venue Venue `gorm:"foreignKey:VenueID" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *VenueSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the VenueSettings model
func (VenueSettings) TableName() string {
	return "venue_settings"
}
