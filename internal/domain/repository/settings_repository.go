package repository

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/google/uuid"
)

// SettingsRepository defines the interface for venue settings data access
type SettingsRepository interface {
	GetByVenueID(ctx context.Context, venueID uuid.UUID) (*entity.VenueSettings, error)
	Create(ctx context.Context, settings *entity.VenueSettings) error
	Update(ctx context.Context, settings *entity.VenueSettings) error
}
