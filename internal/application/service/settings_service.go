package service

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/google/uuid"
)

// SettingsService handles venue billing and business day settings
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves venue settings, creating defaults if not exists
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.VenueSettings, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}

	settings, err := s.settingsRepo.GetByVenueID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create default settings
	if settings == nil {
		settings = &entity.VenueSettings{
			VenueID:             venueID,
			ServiceChargeRate:   20,
			TaxRate:             10,
			SlipRoundingEnabled: true,
			SlipRoundingMethod:  enum.RoundingMethodRound,
			SlipRoundingUnit:    10,
			OpeningTime:         "20:00",
			ClosingTime:         "01:00",
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating venue settings
type UpdateSettingsInput struct {
	ServiceChargeRate   int
	TaxRate             int
	SlipRoundingEnabled bool
	SlipRoundingMethod  enum.RoundingMethod
	SlipRoundingUnit    int64
	OpeningTime         string
	ClosingTime         string
}

// UpdateSettings updates venue settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.VenueSettings, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}

	if input.ServiceChargeRate < 0 || input.ServiceChargeRate > 100 {
		return nil, apperror.NewBadRequestError("Service charge rate must be between 0 and 100")
	}
	if input.TaxRate < 0 || input.TaxRate > 100 {
		return nil, apperror.NewBadRequestError("Tax rate must be between 0 and 100")
	}
	if input.SlipRoundingUnit < 1 {
		return nil, apperror.NewBadRequestError("Rounding unit must be at least 1")
	}

	settings, err := s.settingsRepo.GetByVenueID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	// If no settings exist, create new
	if settings == nil {
		settings = &entity.VenueSettings{
			VenueID: venueID,
		}
	}

	// Update fields
	settings.ServiceChargeRate = input.ServiceChargeRate
	settings.TaxRate = input.TaxRate
	settings.SlipRoundingEnabled = input.SlipRoundingEnabled
	settings.SlipRoundingMethod = input.SlipRoundingMethod
	settings.SlipRoundingUnit = input.SlipRoundingUnit
	settings.OpeningTime = input.OpeningTime
	settings.ClosingTime = input.ClosingTime

	if settings.ID == uuid.Nil {
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	} else {
		if err := s.settingsRepo.Update(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}
