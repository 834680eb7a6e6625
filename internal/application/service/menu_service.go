package service

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/google/uuid"
)

// MenuService handles menu categories and items
type MenuService struct {
	menuRepo repository.MenuRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo}
}

// MenuItemInput represents the create/update menu item input
type MenuItemInput struct {
	CategoryID *uuid.UUID
	Name       string
	Price      int64
	Active     bool
}

// CreateItem creates a new menu item
func (s *MenuService) CreateItem(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Menu item name must not be empty")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}

	item := &entity.MenuItem{
		VenueID:    venueID,
		CategoryID: input.CategoryID,
		Name:       input.Name,
		Price:      input.Price,
		Active:     input.Active,
	}
	if err := s.menuRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves a menu item by ID
func (s *MenuService) GetItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// UpdateItem updates a menu item
func (s *MenuService) UpdateItem(ctx context.Context, id uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Menu item name must not be empty")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}

	item.CategoryID = input.CategoryID
	item.Name = input.Name
	item.Price = input.Price
	item.Active = input.Active

	if err := s.menuRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem deletes a menu item
func (s *MenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.DeleteItem(ctx, id)
}

// ListItems returns menu items, optionally filtered by category
func (s *MenuService) ListItems(ctx context.Context, categoryID *uuid.UUID) ([]entity.MenuItem, error) {
	return s.menuRepo.ListItems(ctx, categoryID)
}

// CreateCategory creates a new menu category
func (s *MenuService) CreateCategory(ctx context.Context, name string, sortOrder int) (*entity.MenuCategory, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name must not be empty")
	}

	category := &entity.MenuCategory{
		VenueID:   venueID,
		Name:      name,
		SortOrder: sortOrder,
	}
	if err := s.menuRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns every menu category
func (s *MenuService) ListCategories(ctx context.Context) ([]entity.MenuCategory, error) {
	return s.menuRepo.ListCategories(ctx)
}

// DeleteCategory deletes a menu category
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.menuRepo.DeleteCategory(ctx, id)
}
