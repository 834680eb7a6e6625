package repository

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
)

// TableRepository defines the interface for floor table data operations
type TableRepository interface {
	Create(ctx context.Context, table *entity.VenueTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.VenueTable, error)
	Update(ctx context.Context, table *entity.VenueTable) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.VenueTable, error)
}

// PricingSystemRepository defines the interface for pricing system data operations
type PricingSystemRepository interface {
	Create(ctx context.Context, ps *entity.PricingSystem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PricingSystem, error)
	Update(ctx context.Context, ps *entity.PricingSystem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.PricingSystem, error)
	GetDefault(ctx context.Context) (*entity.PricingSystem, error)
}

// CastRepository defines the interface for cast member data operations
type CastRepository interface {
	Create(ctx context.Context, cast *entity.Cast) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cast, error)
	Update(ctx context.Context, cast *entity.Cast) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Cast, int64, error)
}

// GuestRepository defines the interface for guest data operations
type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	Update(ctx context.Context, guest *entity.Guest) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Guest, int64, error)
}

// MenuRepository defines the interface for menu item/category data operations
type MenuRepository interface {
	CreateItem(ctx context.Context, item *entity.MenuItem) error
	GetItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	UpdateItem(ctx context.Context, item *entity.MenuItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	ListItems(ctx context.Context, categoryID *uuid.UUID) ([]entity.MenuItem, error)
	CreateCategory(ctx context.Context, category *entity.MenuCategory) error
	ListCategories(ctx context.Context) ([]entity.MenuCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
