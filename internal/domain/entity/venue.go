package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Venue represents one club/bar in the multi-venue system. All operational
// data (tables, sessions, orders, casts, guests) is scoped to a venue.
type Venue struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Owner   User              `gorm:"foreignKey:OwnerID" json:"-"`
	Members []VenueMembership `gorm:"foreignKey:VenueID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new venue
func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Venue model
func (Venue) TableName() string {
	return "venues"
}

// MemberUser represents a subset of user fields for membership responses
type MemberUser struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// VenueMembership represents a staff member's membership in a venue
type VenueMembership struct {
	VenueID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"venue_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Role      string    `gorm:"size:50;default:'member'" json:"role"` // owner, manager, member
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Venue Venue `gorm:"foreignKey:VenueID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`

	// Computed field for JSON response
	MemberUser *MemberUser `gorm:"-" json:"user,omitempty"`
}

// PopulateUserDetails populates the MemberUser field from the User relationship
func (vm *VenueMembership) PopulateUserDetails() {
	if vm.User.ID != uuid.Nil {
		vm.MemberUser = &MemberUser{
			ID:        vm.User.ID,
			FirstName: vm.User.FirstName,
			LastName:  vm.User.LastName,
			Email:     vm.User.Email,
		}
	}
}

// TableName returns the table name for the VenueMembership model
func (VenueMembership) TableName() string {
	return "venue_memberships"
}
