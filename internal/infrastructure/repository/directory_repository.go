package repository

import (
	"context"
	"errors"

	"github.com/clubops/clubops-api/internal/domain/entity"
	domainRepo "github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type tableRepository struct {
	db *gorm.DB
}

// NewTableRepository creates a new table repository
func NewTableRepository(db *gorm.DB) domainRepo.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(ctx context.Context, table *entity.VenueTable) error {
	return r.db.WithContext(ctx).Create(table).Error
}

func (r *tableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.VenueTable, error) {
	var table entity.VenueTable
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *tableRepository) Update(ctx context.Context, table *entity.VenueTable) error {
	return r.db.WithContext(ctx).Save(table).Error
}

func (r *tableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Delete(&entity.VenueTable{}, "id = ?", id).Error
}

func (r *tableRepository) List(ctx context.Context) ([]entity.VenueTable, error) {
	var tables []entity.VenueTable
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Order("sort_order ASC, name ASC").
		Find(&tables).Error
	return tables, err
}

type pricingSystemRepository struct {
	db *gorm.DB
}

// NewPricingSystemRepository creates a new pricing system repository
func NewPricingSystemRepository(db *gorm.DB) domainRepo.PricingSystemRepository {
	return &pricingSystemRepository{db: db}
}

func (r *pricingSystemRepository) Create(ctx context.Context, ps *entity.PricingSystem) error {
	return r.db.WithContext(ctx).Create(ps).Error
}

func (r *pricingSystemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PricingSystem, error) {
	var ps entity.PricingSystem
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).First(&ps, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ps, err
}

func (r *pricingSystemRepository) Update(ctx context.Context, ps *entity.PricingSystem) error {
	return r.db.WithContext(ctx).Save(ps).Error
}

func (r *pricingSystemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Delete(&entity.PricingSystem{}, "id = ?", id).Error
}

func (r *pricingSystemRepository) List(ctx context.Context) ([]entity.PricingSystem, error) {
	var systems []entity.PricingSystem
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Order("created_at ASC").
		Find(&systems).Error
	return systems, err
}

func (r *pricingSystemRepository) GetDefault(ctx context.Context) (*entity.PricingSystem, error) {
	var ps entity.PricingSystem
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Where("is_default = ?", true).
		First(&ps).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ps, err
}

type castRepository struct {
	db *gorm.DB
}

// NewCastRepository creates a new cast repository
func NewCastRepository(db *gorm.DB) domainRepo.CastRepository {
	return &castRepository{db: db}
}

func (r *castRepository) Create(ctx context.Context, cast *entity.Cast) error {
	return r.db.WithContext(ctx).Create(cast).Error
}

func (r *castRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cast, error) {
	var cast entity.Cast
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).First(&cast, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cast, err
}

func (r *castRepository) Update(ctx context.Context, cast *entity.Cast) error {
	return r.db.WithContext(ctx).Save(cast).Error
}

func (r *castRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Delete(&entity.Cast{}, "id = ?", id).Error
}

func (r *castRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Cast, int64, error) {
	var casts []entity.Cast
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Cast{}).Scopes(VenueScope(ctx))

	if search != "" {
		query = query.Where("stage_name ILIKE ? OR real_name ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("stage_name ASC").
		Find(&casts).Error

	return casts, total, err
}

type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *gorm.DB) domainRepo.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guest entity.Guest
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).First(&guest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guest, err
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

func (r *guestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Delete(&entity.Guest{}, "id = ?", id).Error
}

func (r *guestRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Guest, int64, error) {
	var guests []entity.Guest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Guest{}).Scopes(VenueScope(ctx))

	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&guests).Error

	return guests, total, err
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) domainRepo.MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuRepository) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Preload("Category").
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuRepository) GetItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *menuRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Delete(&entity.MenuItem{}, "id = ?", id).Error
}

func (r *menuRepository) ListItems(ctx context.Context, categoryID *uuid.UUID) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	query := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Preload("Category")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *menuRepository) CreateCategory(ctx context.Context, category *entity.MenuCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]entity.MenuCategory, error) {
	var categories []entity.MenuCategory
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *menuRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Delete(&entity.MenuCategory{}, "id = ?", id).Error
}
