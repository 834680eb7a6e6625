package request

import "time"

// OpenSessionRequest represents a request to open a table session
type OpenSessionRequest struct {
	TableID         string     `json:"table_id" binding:"required,uuid"`
	GuestCount      int        `json:"guest_count" binding:"omitempty,min=1"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	PricingSystemID *string    `json:"pricing_system_id,omitempty" binding:"omitempty,uuid"`
	GuestIDs        []string   `json:"guest_ids,omitempty" binding:"omitempty,dive,uuid"`
}

// UpdateSessionRequest represents a partial slip header update
type UpdateSessionRequest struct {
	TableID         *string    `json:"table_id,omitempty" binding:"omitempty,uuid"`
	GuestCount      *int       `json:"guest_count,omitempty" binding:"omitempty,min=1"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	PricingSystemID *string    `json:"pricing_system_id,omitempty" binding:"omitempty,uuid"`
	MainGuestID     *string    `json:"main_guest_id,omitempty" binding:"omitempty,uuid"`
}

// UpdateSessionTimesRequest represents a session time window change
type UpdateSessionTimesRequest struct {
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}

// AddSessionGuestRequest seats a guest on a session
type AddSessionGuestRequest struct {
	GuestID string `json:"guest_id" binding:"required,uuid"`
}

// ListSessionsRequest holds session list filters
type ListSessionsRequest struct {
	Status    *string `form:"status"`
	TableID   *string `form:"table_id" binding:"omitempty,uuid"`
	StartDate *string `form:"start_date"`
	EndDate   *string `form:"end_date"`
	Page      int     `form:"page"`
	PerPage   int     `form:"per_page"`
}
