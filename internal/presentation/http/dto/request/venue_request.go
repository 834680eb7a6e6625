package request

import "github.com/clubops/clubops-api/internal/domain/enum"

// CreateVenueRequest represents a create venue request
type CreateVenueRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Slug    string  `json:"slug" binding:"omitempty,max=255"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// UpdateVenueRequest represents a partial venue update
type UpdateVenueRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

// InviteMemberRequest represents a venue member invitation
type InviteMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"omitempty,oneof=owner manager staff member"`
}

// UpdateMemberRoleRequest represents a member role change
type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=owner manager staff member"`
}

// UpdateSettingsRequest represents a venue billing settings update
type UpdateSettingsRequest struct {
	ServiceChargeRate   int                 `json:"service_charge_rate" binding:"min=0,max=100"`
	TaxRate             int                 `json:"tax_rate" binding:"min=0,max=100"`
	SlipRoundingEnabled bool                `json:"slip_rounding_enabled"`
	SlipRoundingMethod  enum.RoundingMethod `json:"slip_rounding_method"`
	SlipRoundingUnit    int64               `json:"slip_rounding_unit" binding:"min=1"`
	OpeningTime         string              `json:"opening_time" binding:"omitempty,len=5"`
	ClosingTime         string              `json:"closing_time" binding:"omitempty,len=5"`
}
