package request

import (
	"time"

	"github.com/clubops/clubops-api/internal/domain/enum"
)

// MenuOrderItem is one menu line in an add-orders request
type MenuOrderItem struct {
	MenuID   string `json:"menu_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// AddMenuOrdersRequest appends menu item orders to a slip
type AddMenuOrdersRequest struct {
	Items   []MenuOrderItem `json:"items" binding:"required,min=1,dive"`
	GuestID *string         `json:"guest_id,omitempty" binding:"omitempty,uuid"`
	CastID  *string         `json:"cast_id,omitempty" binding:"omitempty,uuid"`
}

// AddChargeRequest appends a manual set-fee or extension line
type AddChargeRequest struct {
	Category enum.ChargeCategory `json:"category" binding:"required"`
	Quantity int                 `json:"quantity" binding:"omitempty,min=1"`
}

// AddCastFeeRequest appends a nomination, douhan or house fee
type AddCastFeeRequest struct {
	Category enum.ChargeCategory `json:"category" binding:"required"`
	CastID   string              `json:"cast_id" binding:"required,uuid"`
	GuestID  *string             `json:"guest_id,omitempty" binding:"omitempty,uuid"`
}

// GuestSetFeeRequest overrides one guest's set fee amount
type GuestSetFeeRequest struct {
	GuestID string `json:"guest_id" binding:"required,uuid"`
	Amount  int64  `json:"amount" binding:"required,min=0"`
}

// AddAdjustmentRequest appends a named surcharge or discount
type AddAdjustmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,min=1"`
	Subtractive bool   `json:"subtractive"`
}

// UpdateOrderRequest represents a partial inline order edit
type UpdateOrderRequest struct {
	Name      *string    `json:"name,omitempty"`
	UnitPrice *int64     `json:"unit_price,omitempty"`
	Quantity  *int       `json:"quantity,omitempty" binding:"omitempty,min=1"`
	CastID    *string    `json:"cast_id,omitempty" binding:"omitempty,uuid"`
	GuestID   *string    `json:"guest_id,omitempty" binding:"omitempty,uuid"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
}
