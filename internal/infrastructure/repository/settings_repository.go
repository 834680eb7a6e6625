package repository

import (
	"context"
	"errors"

	"github.com/clubops/clubops-api/internal/domain/entity"
	domainRepo "github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByVenueID(ctx context.Context, venueID uuid.UUID) (*entity.VenueSettings, error) {
	var settings entity.VenueSettings
	err := r.db.WithContext(ctx).First(&settings, "venue_id = ?", venueID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Create(ctx context.Context, settings *entity.VenueSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

func (r *settingsRepository) Update(ctx context.Context, settings *entity.VenueSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
