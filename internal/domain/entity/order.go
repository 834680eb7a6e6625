package entity

import (
	"time"

	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is one line item on a session's slip: a menu item, a derived
// time-based charge, or a free-form adjustment. UnitPrice is yen and may be
// negative only for adjustments (discounts). CastID attributes a cast fee to
// a cast; GuestID attributes the charge to a specific guest — the two are
// independent fields, never overloaded.
type Order struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	VenueID   uuid.UUID           `gorm:"type:uuid;not null;index" json:"venue_id"`
	SessionID uuid.UUID           `gorm:"type:uuid;not null;index" json:"session_id"`
	MenuID    *uuid.UUID          `gorm:"type:uuid;index" json:"menu_id,omitempty"`
	Category  enum.ChargeCategory `gorm:"default:0;index" json:"category"`
	Name      string              `gorm:"size:255;not null" json:"name"`
	UnitPrice int64               `gorm:"default:0" json:"unit_price"`
	Quantity  int                 `gorm:"not null" json:"quantity"` // 0 is meaningful: an unsettled cast fee window
	CastID    *uuid.UUID          `gorm:"type:uuid;index" json:"cast_id,omitempty"`
	GuestID   *uuid.UUID          `gorm:"type:uuid;index" json:"guest_id,omitempty"`
	StartTime *time.Time          `json:"start_time,omitempty"` // Billing window for time-based fees
	EndTime   *time.Time          `json:"end_time,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
	DeletedAt gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Session TableSession `gorm:"foreignKey:SessionID" json:"-"`
	Menu    *MenuItem    `gorm:"foreignKey:MenuID" json:"menu,omitempty"`
	Cast    *Cast        `gorm:"foreignKey:CastID" json:"cast,omitempty"`
	Guest   *Guest       `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// LineTotal returns unit price times quantity in yen
func (o *Order) LineTotal() int64 {
	return o.UnitPrice * int64(o.Quantity)
}

// WindowMinutes returns the whole minutes of the order's billing window,
// or 0 when either bound is missing.
func (o *Order) WindowMinutes() int {
	if o.StartTime == nil || o.EndTime == nil {
		return 0
	}
	d := o.EndTime.Sub(*o.StartTime)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
