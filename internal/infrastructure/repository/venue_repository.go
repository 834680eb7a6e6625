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

type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *gorm.DB) domainRepo.VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	var venue entity.Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &venue, err
}

func (r *venueRepository) GetBySlug(ctx context.Context, slug string) (*entity.Venue, error) {
	var venue entity.Venue
	err := r.db.WithContext(ctx).First(&venue, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &venue, err
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

func (r *venueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Venue{}, "id = ?", id).Error
}

func (r *venueRepository) GetUserVenues(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Venue, int64, error) {
	var venues []entity.Venue
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Venue{}).
		Joins("JOIN venue_memberships ON venue_memberships.venue_id = venues.id").
		Where("venue_memberships.user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("venues.name ASC").
		Find(&venues).Error

	return venues, total, err
}

func (r *venueRepository) AddMember(ctx context.Context, membership *entity.VenueMembership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *venueRepository) RemoveMember(ctx context.Context, venueID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.VenueMembership{}, "venue_id = ? AND user_id = ?", venueID, userID).Error
}

func (r *venueRepository) GetMembers(ctx context.Context, venueID uuid.UUID) ([]entity.VenueMembership, error) {
	var members []entity.VenueMembership
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("venue_id = ?", venueID).
		Find(&members).Error
	return members, err
}

func (r *venueRepository) IsMember(ctx context.Context, venueID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.VenueMembership{}).
		Where("venue_id = ? AND user_id = ?", venueID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *venueRepository) UpdateMemberRole(ctx context.Context, venueID, userID uuid.UUID, role string) error {
	return r.db.WithContext(ctx).
		Model(&entity.VenueMembership{}).
		Where("venue_id = ? AND user_id = ?", venueID, userID).
		Update("role", role).Error
}

func (r *venueRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Venue{}).
		Where("slug = ?", slug).
		Count(&count).Error
	return count > 0, err
}
