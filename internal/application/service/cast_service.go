package service

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
)

// CastService handles cast member management
type CastService struct {
	castRepo repository.CastRepository
}

// NewCastService creates a new cast service
func NewCastService(castRepo repository.CastRepository) *CastService {
	return &CastService{castRepo: castRepo}
}

// CastInput represents the create/update cast input
type CastInput struct {
	StageName  string
	RealName   *string
	Phone      *string
	Photo      *string
	HourlyWage int64
	BackRate   int
	Active     bool
}

func (in *CastInput) validate() error {
	if in.StageName == "" {
		return apperror.NewBadRequestError("Stage name must not be empty")
	}
	if in.HourlyWage < 0 {
		return apperror.NewBadRequestError("Hourly wage must not be negative")
	}
	if in.BackRate < 0 || in.BackRate > 100 {
		return apperror.NewBadRequestError("Back rate must be between 0 and 100")
	}
	return nil
}

// CreateCast creates a new cast member
func (s *CastService) CreateCast(ctx context.Context, input *CastInput) (*entity.Cast, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	cast := &entity.Cast{
		VenueID:    venueID,
		StageName:  input.StageName,
		RealName:   input.RealName,
		Phone:      input.Phone,
		Photo:      input.Photo,
		HourlyWage: input.HourlyWage,
		BackRate:   input.BackRate,
		Active:     input.Active,
	}
	if err := s.castRepo.Create(ctx, cast); err != nil {
		return nil, err
	}
	return cast, nil
}

// GetCast retrieves a cast member by ID
func (s *CastService) GetCast(ctx context.Context, id uuid.UUID) (*entity.Cast, error) {
	cast, err := s.castRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cast == nil {
		return nil, apperror.NewNotFoundError("Cast")
	}
	return cast, nil
}

// UpdateCast updates a cast member
func (s *CastService) UpdateCast(ctx context.Context, id uuid.UUID, input *CastInput) (*entity.Cast, error) {
	cast, err := s.castRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cast == nil {
		return nil, apperror.NewNotFoundError("Cast")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	cast.StageName = input.StageName
	cast.RealName = input.RealName
	cast.Phone = input.Phone
	cast.Photo = input.Photo
	cast.HourlyWage = input.HourlyWage
	cast.BackRate = input.BackRate
	cast.Active = input.Active

	if err := s.castRepo.Update(ctx, cast); err != nil {
		return nil, err
	}
	return cast, nil
}

// DeleteCast deletes a cast member
func (s *CastService) DeleteCast(ctx context.Context, id uuid.UUID) error {
	cast, err := s.castRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cast == nil {
		return apperror.NewNotFoundError("Cast")
	}
	return s.castRepo.Delete(ctx, id)
}

// ListCasts returns cast members matching the search
func (s *CastService) ListCasts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Cast], error) {
	casts, total, err := s.castRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(casts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
