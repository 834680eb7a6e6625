package service

import (
	"context"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
)

// GuestService handles the guest directory
type GuestService struct {
	guestRepo repository.GuestRepository
}

// NewGuestService creates a new guest service
func NewGuestService(guestRepo repository.GuestRepository) *GuestService {
	return &GuestService{guestRepo: guestRepo}
}

// GuestInput represents the create/update guest input
type GuestInput struct {
	Name          string
	Furigana      *string
	Phone         *string
	Birthday      *time.Time
	FavoriteDrink *string
	Notes         *string
}

// CreateGuest creates a new guest
func (s *GuestService) CreateGuest(ctx context.Context, input *GuestInput) (*entity.Guest, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Guest name must not be empty")
	}

	guest := &entity.Guest{
		VenueID:       venueID,
		Name:          input.Name,
		Furigana:      input.Furigana,
		Phone:         input.Phone,
		Birthday:      input.Birthday,
		FavoriteDrink: input.FavoriteDrink,
		Notes:         input.Notes,
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// GetGuest retrieves a guest by ID
func (s *GuestService) GetGuest(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	return guest, nil
}

// UpdateGuest updates a guest
func (s *GuestService) UpdateGuest(ctx context.Context, id uuid.UUID, input *GuestInput) (*entity.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Guest name must not be empty")
	}

	guest.Name = input.Name
	guest.Furigana = input.Furigana
	guest.Phone = input.Phone
	guest.Birthday = input.Birthday
	guest.FavoriteDrink = input.FavoriteDrink
	guest.Notes = input.Notes

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// DeleteGuest deletes a guest
func (s *GuestService) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if guest == nil {
		return apperror.NewNotFoundError("Guest")
	}
	return s.guestRepo.Delete(ctx, id)
}

// ListGuests returns guests matching the search
func (s *GuestService) ListGuests(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Guest], error) {
	guests, total, err := s.guestRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(guests, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
