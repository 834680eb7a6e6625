package service

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/google/uuid"
)

// TableService handles floor table management
type TableService struct {
	tableRepo   repository.TableRepository
	sessionRepo repository.SessionRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository, sessionRepo repository.SessionRepository) *TableService {
	return &TableService{tableRepo: tableRepo, sessionRepo: sessionRepo}
}

// CreateTableInput represents the create table input
type CreateTableInput struct {
	Name      string
	Capacity  int
	SortOrder int
}

// CreateTable creates a new floor table
func (s *TableService) CreateTable(ctx context.Context, input *CreateTableInput) (*entity.VenueTable, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}

	capacity := input.Capacity
	if capacity < 1 {
		capacity = 4
	}

	table := &entity.VenueTable{
		VenueID:   venueID,
		Name:      input.Name,
		Capacity:  capacity,
		SortOrder: input.SortOrder,
	}
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// GetTable retrieves a table by ID
func (s *TableService) GetTable(ctx context.Context, id uuid.UUID) (*entity.VenueTable, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	return table, nil
}

// UpdateTableInput represents the update table input
type UpdateTableInput struct {
	Name      *string
	Capacity  *int
	SortOrder *int
}

// UpdateTable updates a table
func (s *TableService) UpdateTable(ctx context.Context, id uuid.UUID, input *UpdateTableInput) (*entity.VenueTable, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	if input.Name != nil {
		table.Name = *input.Name
	}
	if input.Capacity != nil {
		if *input.Capacity < 1 {
			return nil, apperror.NewBadRequestError("Capacity must be at least 1")
		}
		table.Capacity = *input.Capacity
	}
	if input.SortOrder != nil {
		table.SortOrder = *input.SortOrder
	}

	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// DeleteTable deletes a table unless a session is currently occupying it
func (s *TableService) DeleteTable(ctx context.Context, id uuid.UUID) error {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if table == nil {
		return apperror.NewNotFoundError("Table")
	}

	active, err := s.sessionRepo.GetActiveByTable(ctx, id)
	if err != nil {
		return err
	}
	if active != nil {
		return apperror.NewConflictError("Table has an active session")
	}

	return s.tableRepo.Delete(ctx, id)
}

// ListTables returns every table in floor order
func (s *TableService) ListTables(ctx context.Context) ([]entity.VenueTable, error) {
	return s.tableRepo.List(ctx)
}
