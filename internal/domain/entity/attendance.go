package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance is one clock-in/clock-out record for a staff user or a cast.
// Exactly one of UserID/CastID is set.
type Attendance struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VenueID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"venue_id"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CastID    *uuid.UUID     `gorm:"type:uuid;index" json:"cast_id,omitempty"`
	WorkDate  time.Time      `gorm:"type:date;not null;index" json:"work_date"`
	ClockIn   time.Time      `gorm:"not null" json:"clock_in"`
	ClockOut  *time.Time     `json:"clock_out,omitempty"` // Nil while still working
	Note      *string        `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Venue Venue `gorm:"foreignKey:VenueID" json:"-"`
	User  *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Cast  *Cast `gorm:"foreignKey:CastID" json:"cast,omitempty"`
}

// BeforeCreate generates a UUID before creating a new attendance record
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Attendance model
func (Attendance) TableName() string {
	return "attendances"
}

// WorkedMinutes returns the whole minutes between clock-in and clock-out,
// or 0 when the shift is still open.
func (a *Attendance) WorkedMinutes() int {
	if a.ClockOut == nil {
		return 0
	}
	d := a.ClockOut.Sub(a.ClockIn)
	if d < 0 {
		return 0
	}
	return int(d / time.Minute)
}
