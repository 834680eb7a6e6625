package request

import "time"

// CreateTableRequest represents a create table request
type CreateTableRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Capacity  int    `json:"capacity" binding:"omitempty,min=1"`
	SortOrder int    `json:"sort_order"`
}

// UpdateTableRequest represents a partial table update
type UpdateTableRequest struct {
	Name      *string `json:"name,omitempty"`
	Capacity  *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

// PricingSystemRequest represents a create/update pricing system request
type PricingSystemRequest struct {
	Name                  string `json:"name" binding:"required,max=255"`
	SetFee                int64  `json:"set_fee" binding:"min=0"`
	SetDurationMinutes    int    `json:"set_duration_minutes" binding:"required,min=1"`
	ExtensionFee          int64  `json:"extension_fee" binding:"min=0"`
	ExtensionDurationMins int    `json:"extension_duration_minutes" binding:"required,min=1"`
	NominationFee         int64  `json:"nomination_fee" binding:"min=0"`
	NominationSetMinutes  int    `json:"nomination_set_duration_minutes" binding:"required,min=1"`
	HouseFee              int64  `json:"house_fee" binding:"min=0"`
	HouseSetMinutes       int    `json:"house_set_duration_minutes" binding:"required,min=1"`
	DouhanFee             int64  `json:"douhan_fee" binding:"min=0"`
	IsDefault             bool   `json:"is_default"`
}

// CastRequest represents a create/update cast request
type CastRequest struct {
	StageName  string  `json:"stage_name" binding:"required,max=255"`
	RealName   *string `json:"real_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Photo      *string `json:"photo,omitempty"`
	HourlyWage int64   `json:"hourly_wage" binding:"min=0"`
	BackRate   int     `json:"back_rate" binding:"min=0,max=100"`
	Active     bool    `json:"active"`
}

// GuestRequest represents a create/update guest request
type GuestRequest struct {
	Name          string     `json:"name" binding:"required,max=255"`
	Furigana      *string    `json:"furigana,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	Birthday      *time.Time `json:"birthday,omitempty"`
	FavoriteDrink *string    `json:"favorite_drink,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}

// MenuItemRequest represents a create/update menu item request
type MenuItemRequest struct {
	CategoryID *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Name       string  `json:"name" binding:"required,max=255"`
	Price      int64   `json:"price" binding:"min=0"`
	Active     bool    `json:"active"`
}

// MenuCategoryRequest represents a create menu category request
type MenuCategoryRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	SortOrder int    `json:"sort_order"`
}
