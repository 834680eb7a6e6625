package service

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/clubops/clubops-api/pkg/utils"
	"github.com/google/uuid"
)

// VenueService handles venue and membership operations
type VenueService struct {
	venueRepo repository.VenueRepository
}

// NewVenueService creates a new venue service
func NewVenueService(venueRepo repository.VenueRepository) *VenueService {
	return &VenueService{venueRepo: venueRepo}
}

// CreateVenueInput represents input for creating a venue
type CreateVenueInput struct {
	Name    string
	Slug    string
	OwnerID uuid.UUID
	Address *string
	Phone   *string
}

// CreateVenue creates a new venue and seats the owner as its first member
func (s *VenueService) CreateVenue(ctx context.Context, input *CreateVenueInput) (*entity.Venue, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Venue name must not be empty")
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Name)
	}
	exists, err := s.venueRepo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.NewConflictError("Venue slug already exists")
	}

	venue := &entity.Venue{
		Name:    input.Name,
		Slug:    slug,
		OwnerID: input.OwnerID,
		Address: input.Address,
		Phone:   input.Phone,
	}
	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, err
	}

	membership := &entity.VenueMembership{
		VenueID: venue.ID,
		UserID:  input.OwnerID,
		Role:    "owner",
	}
	_ = s.venueRepo.AddMember(ctx, membership)

	return venue, nil
}

// GetVenue retrieves a venue by ID
func (s *VenueService) GetVenue(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperror.ErrNotFound
	}
	return venue, nil
}

// GetUserVenues retrieves the venues a user belongs to
func (s *VenueService) GetUserVenues(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Venue], error) {
	venues, total, err := s.venueRepo.GetUserVenues(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(venues, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateVenueInput represents input for updating a venue
type UpdateVenueInput struct {
	Name    *string
	Address *string
	Phone   *string
}

// UpdateVenue updates a venue
func (s *VenueService) UpdateVenue(ctx context.Context, id uuid.UUID, input *UpdateVenueInput) (*entity.Venue, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venue == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Name != nil && *input.Name != "" {
		venue.Name = *input.Name
	}
	if input.Address != nil {
		venue.Address = input.Address
	}
	if input.Phone != nil {
		venue.Phone = input.Phone
	}

	if err := s.venueRepo.Update(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

// DeleteVenue soft-deletes a venue
func (s *VenueService) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if venue == nil {
		return apperror.ErrNotFound
	}
	return s.venueRepo.Delete(ctx, id)
}

// InviteMemberInput represents input for inviting a user to a venue
type InviteMemberInput struct {
	VenueID uuid.UUID
	UserID  uuid.UUID
	Role    string
}

// InviteMember adds a user to a venue
func (s *VenueService) InviteMember(ctx context.Context, input *InviteMemberInput) error {
	isMember, _ := s.venueRepo.IsMember(ctx, input.VenueID, input.UserID)
	if isMember {
		return apperror.NewConflictError("User is already a member of this venue")
	}

	role := input.Role
	if role == "" {
		role = "member"
	}

	membership := &entity.VenueMembership{
		VenueID: input.VenueID,
		UserID:  input.UserID,
		Role:    role,
	}
	return s.venueRepo.AddMember(ctx, membership)
}

// RemoveMember removes a user from a venue
func (s *VenueService) RemoveMember(ctx context.Context, venueID, userID uuid.UUID) error {
	return s.venueRepo.RemoveMember(ctx, venueID, userID)
}

// GetVenueMembers retrieves all members of a venue
func (s *VenueService) GetVenueMembers(ctx context.Context, venueID uuid.UUID) ([]entity.VenueMembership, error) {
	members, err := s.venueRepo.GetMembers(ctx, venueID)
	if err != nil {
		return nil, err
	}

	// Populate user details for JSON response
	for i := range members {
		members[i].PopulateUserDetails()
	}

	return members, nil
}

// UpdateMemberRole updates a member's role in a venue
func (s *VenueService) UpdateMemberRole(ctx context.Context, venueID, userID uuid.UUID, role string) error {
	return s.venueRepo.UpdateMemberRole(ctx, venueID, userID, role)
}

// IsMember checks whether a user belongs to a venue
func (s *VenueService) IsMember(ctx context.Context, venueID, userID uuid.UUID) (bool, error) {
	return s.venueRepo.IsMember(ctx, venueID, userID)
}
