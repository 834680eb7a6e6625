package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardPost is an internal bulletin board entry (notices, manuals)
type BoardPost struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VenueID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"venue_id"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Body        string         `gorm:"type:text;not null" json:"body"`
	Pinned      bool           `gorm:"default:false" json:"pinned"`
	AIGenerated bool           `gorm:"default:false" json:"ai_generated"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Venue  Venue `gorm:"foreignKey:VenueID" json:"-"`
	Author User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// BeforeCreate generates a UUID before creating a new post
func (p *BoardPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BoardPost model
func (BoardPost) TableName() string {
	return "board_posts"
}
