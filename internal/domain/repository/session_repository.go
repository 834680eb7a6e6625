package repository

import (
	"context"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
)

// SessionRepository defines the interface for table session data operations
type SessionRepository interface {
	Create(ctx context.Context, session *entity.TableSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TableSession, error)
	// GetWithSlip loads the session with its orders, roster, table and
	// pricing system — the full slip document.
	GetWithSlip(ctx context.Context, id uuid.UUID) (*entity.TableSession, error)
	Update(ctx context.Context, session *entity.TableSession) error
	UpdateTimes(ctx context.Context, id uuid.UUID, startTime time.Time, endTime *time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SessionStatus, endTime *time.Time) error
	// Delete removes the session together with its orders and roster rows.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *SessionFilterParams) ([]entity.TableSession, int64, error)
	// GetActiveByTable returns the open session occupying a table, or nil.
	GetActiveByTable(ctx context.Context, tableID uuid.UUID) (*entity.TableSession, error)

	// Roster operations
	AddGuest(ctx context.Context, row *entity.SessionGuest) error
	RemoveGuest(ctx context.Context, sessionGuestID uuid.UUID) error
	GetGuestRow(ctx context.Context, sessionGuestID uuid.UUID) (*entity.SessionGuest, error)
	ListGuests(ctx context.Context, sessionID uuid.UUID) ([]entity.SessionGuest, error)
}

// SessionFilterParams contains filtering parameters for session queries
type SessionFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.SessionStatus
	TableID    *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}
