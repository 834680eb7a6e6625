package repository

import (
	"context"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for slip line item data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateBatch(ctx context.Context, orders []entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Order, error)
	// DeleteByCategory removes every order of the given category on a session.
	DeleteByCategory(ctx context.Context, sessionID uuid.UUID, category enum.ChargeCategory) error
	// ReplaceDerivedCharges atomically deletes all deriver-owned charge orders
	// of a session and creates the replacement set, preserving slice order.
	// Either everything is applied or nothing is.
	ReplaceDerivedCharges(ctx context.Context, sessionID uuid.UUID, orders []entity.Order) error
	// SumByCast sums line totals of cast-attributed orders in a period,
	// grouped by cast. Used by the payroll and ranking reports.
	SumByCast(ctx context.Context, from, to time.Time) ([]CastSalesResult, error)
}

// CastSalesResult aggregates a cast's attributed sales
type CastSalesResult struct {
	CastID     uuid.UUID
	StageName  string
	Total      int64
	OrderCount int
}
