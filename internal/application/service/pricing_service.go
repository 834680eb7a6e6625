package service

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/google/uuid"
)

// PricingService handles pricing system configuration
type PricingService struct {
	pricingRepo repository.PricingSystemRepository
}

// NewPricingService creates a new pricing service
func NewPricingService(pricingRepo repository.PricingSystemRepository) *PricingService {
	return &PricingService{pricingRepo: pricingRepo}
}

// PricingSystemInput represents the create/update pricing system input
type PricingSystemInput struct {
	Name                  string
	SetFee                int64
	SetDurationMinutes    int
	ExtensionFee          int64
	ExtensionDurationMins int
	NominationFee         int64
	NominationSetMinutes  int
	HouseFee              int64
	HouseSetMinutes       int
	DouhanFee             int64
	IsDefault             bool
}

func (in *PricingSystemInput) validate() error {
	if in.Name == "" {
		return apperror.NewBadRequestError("Pricing system name must not be empty")
	}
	// Every duration divides billing windows later; zero would divide by zero.
	if in.SetDurationMinutes <= 0 || in.ExtensionDurationMins <= 0 ||
		in.NominationSetMinutes <= 0 || in.HouseSetMinutes <= 0 {
		return apperror.NewBadRequestError("All durations must be positive")
	}
	if in.SetFee < 0 || in.ExtensionFee < 0 || in.NominationFee < 0 ||
		in.HouseFee < 0 || in.DouhanFee < 0 {
		return apperror.NewBadRequestError("Fees must not be negative")
	}
	return nil
}

// CreatePricingSystem creates a new pricing system
func (s *PricingService) CreatePricingSystem(ctx context.Context, input *PricingSystemInput) (*entity.PricingSystem, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	if input.IsDefault {
		if err := s.clearDefault(ctx); err != nil {
			return nil, err
		}
	}

	ps := &entity.PricingSystem{
		VenueID:               venueID,
		Name:                  input.Name,
		SetFee:                input.SetFee,
		SetDurationMinutes:    input.SetDurationMinutes,
		ExtensionFee:          input.ExtensionFee,
		ExtensionDurationMins: input.ExtensionDurationMins,
		NominationFee:         input.NominationFee,
		NominationSetMinutes:  input.NominationSetMinutes,
		HouseFee:              input.HouseFee,
		HouseSetMinutes:       input.HouseSetMinutes,
		DouhanFee:             input.DouhanFee,
		IsDefault:             input.IsDefault,
	}
	if err := s.pricingRepo.Create(ctx, ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// GetPricingSystem retrieves a pricing system by ID
func (s *PricingService) GetPricingSystem(ctx context.Context, id uuid.UUID) (*entity.PricingSystem, error) {
	ps, err := s.pricingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, apperror.NewNotFoundError("Pricing system")
	}
	return ps, nil
}

// UpdatePricingSystem updates a pricing system
func (s *PricingService) UpdatePricingSystem(ctx context.Context, id uuid.UUID, input *PricingSystemInput) (*entity.PricingSystem, error) {
	ps, err := s.pricingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, apperror.NewNotFoundError("Pricing system")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	if input.IsDefault && !ps.IsDefault {
		if err := s.clearDefault(ctx); err != nil {
			return nil, err
		}
	}

	ps.Name = input.Name
	ps.SetFee = input.SetFee
	ps.SetDurationMinutes = input.SetDurationMinutes
	ps.ExtensionFee = input.ExtensionFee
	ps.ExtensionDurationMins = input.ExtensionDurationMins
	ps.NominationFee = input.NominationFee
	ps.NominationSetMinutes = input.NominationSetMinutes
	ps.HouseFee = input.HouseFee
	ps.HouseSetMinutes = input.HouseSetMinutes
	ps.DouhanFee = input.DouhanFee
	ps.IsDefault = input.IsDefault

	if err := s.pricingRepo.Update(ctx, ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// DeletePricingSystem deletes a pricing system
func (s *PricingService) DeletePricingSystem(ctx context.Context, id uuid.UUID) error {
	ps, err := s.pricingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ps == nil {
		return apperror.NewNotFoundError("Pricing system")
	}
	return s.pricingRepo.Delete(ctx, id)
}

// ListPricingSystems returns every pricing system of the venue
func (s *PricingService) ListPricingSystems(ctx context.Context) ([]entity.PricingSystem, error) {
	return s.pricingRepo.List(ctx)
}

func (s *PricingService) clearDefault(ctx context.Context) error {
	current, err := s.pricingRepo.GetDefault(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return nil
	}
	current.IsDefault = false
	return s.pricingRepo.Update(ctx, current)
}
