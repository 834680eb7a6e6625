package request

import "time"

// ClockInRequest opens a shift for a cast or staff user. Exactly one of
// user_id/cast_id must be set.
type ClockInRequest struct {
	UserID  *string    `json:"user_id,omitempty" binding:"omitempty,uuid"`
	CastID  *string    `json:"cast_id,omitempty" binding:"omitempty,uuid"`
	ClockIn *time.Time `json:"clock_in,omitempty"`
	Note    *string    `json:"note,omitempty"`
}

// ClockOutRequest closes an open shift
type ClockOutRequest struct {
	ClockOut *time.Time `json:"clock_out,omitempty"`
}
