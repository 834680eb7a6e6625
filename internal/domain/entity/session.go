package entity

import (
	"time"

	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableSession represents one guest visit occupying one table, bounded by
// start and end time. The slip (伝票) is the session plus its orders.
type TableSession struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	VenueID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"venue_id"`
	TableID         uuid.UUID          `gorm:"type:uuid;not null;index" json:"table_id"`
	GuestCount      int                `gorm:"default:1" json:"guest_count"`
	StartTime       time.Time          `gorm:"not null" json:"start_time"`
	EndTime         *time.Time         `json:"end_time,omitempty"` // Nil while the session is open
	PricingSystemID *uuid.UUID         `gorm:"type:uuid;index" json:"pricing_system_id,omitempty"`
	MainGuestID     *uuid.UUID         `gorm:"type:uuid" json:"main_guest_id,omitempty"`
	Status          enum.SessionStatus `gorm:"default:0" json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Venue         Venue          `gorm:"foreignKey:VenueID" json:"-"`
	Table         *VenueTable    `gorm:"foreignKey:TableID" json:"table,omitempty"`
	PricingSystem *PricingSystem `gorm:"foreignKey:PricingSystemID" json:"pricing_system,omitempty"`
	Guests        []SessionGuest `gorm:"foreignKey:SessionID" json:"guests,omitempty"`
	Orders        []Order        `gorm:"foreignKey:SessionID" json:"orders,omitempty"`
}

// BeforeCreate generates a UUID before creating a new session
func (s *TableSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the TableSession model
func (TableSession) TableName() string {
	return "table_sessions"
}

// IsOpen reports whether the session is still active
func (s *TableSession) IsOpen() bool {
	return s.Status == enum.SessionStatusActive
}

// DurationMinutes returns the elapsed whole minutes between start and end
// time, or 0 when the end time is not set.
func (s *TableSession) DurationMinutes() int {
	if s.EndTime == nil {
		return 0
	}
	d := s.EndTime.Sub(s.StartTime)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}

// SessionGuest is one roster row: a guest seated at a session. A guest
// appears at most once per session; Position preserves seating order.
type SessionGuest struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_session_guest" json:"session_id"`
	GuestID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_guest" json:"guest_id"`
	Position  int       `gorm:"default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Session TableSession `gorm:"foreignKey:SessionID" json:"-"`
	Guest   *Guest       `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

// BeforeCreate generates a UUID before creating a new roster row
func (sg *SessionGuest) BeforeCreate(tx *gorm.DB) error {
	if sg.ID == uuid.Nil {
		sg.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SessionGuest model
func (SessionGuest) TableName() string {
	return "session_guests"
}
