package repository

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
)

// VenueRepository defines the interface for venue data operations
type VenueRepository interface {
	// Create creates a new venue
	Create(ctx context.Context, venue *entity.Venue) error

	// GetByID retrieves a venue by ID
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error)

	// GetBySlug retrieves a venue by slug
	GetBySlug(ctx context.Context, slug string) (*entity.Venue, error)

	// Update updates an existing venue
	Update(ctx context.Context, venue *entity.Venue) error

	// Delete soft-deletes a venue
	Delete(ctx context.Context, id uuid.UUID) error

	// GetUserVenues retrieves all venues a user belongs to with pagination
	GetUserVenues(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) ([]entity.Venue, int64, error)

	// AddMember adds a user as a member of a venue
	AddMember(ctx context.Context, membership *entity.VenueMembership) error

	// RemoveMember removes a user from a venue
	RemoveMember(ctx context.Context, venueID, userID uuid.UUID) error

	// GetMembers retrieves all members of a venue
	GetMembers(ctx context.Context, venueID uuid.UUID) ([]entity.VenueMembership, error)

	// IsMember checks if a user is a member of a venue
	IsMember(ctx context.Context, venueID, userID uuid.UUID) (bool, error)

	// UpdateMemberRole updates a member's role in a venue
	UpdateMemberRole(ctx context.Context, venueID, userID uuid.UUID, role string) error

	// SlugExists checks if a slug is already taken
	SlugExists(ctx context.Context, slug string) (bool, error)
}
