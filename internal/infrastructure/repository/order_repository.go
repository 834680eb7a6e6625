package repository

import (
	"context"
	"errors"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	domainRepo "github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) CreateBatch(ctx context.Context, orders []entity.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&orders).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Delete(&entity.Order{}, "id = ?", id).Error
}

func (r *orderRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Where("session_id = ?", sessionID).
		Preload("Cast").
		Preload("Guest").
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) DeleteByCategory(ctx context.Context, sessionID uuid.UUID, category enum.ChargeCategory) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Where("session_id = ? AND category = ?", sessionID, category).
		Delete(&entity.Order{}).Error
}

// ReplaceDerivedCharges swaps the deriver-owned rows of a session inside one
// transaction so a recalculation can never leave the slip half-updated.
func (r *orderRepository) ReplaceDerivedCharges(ctx context.Context, sessionID uuid.UUID, orders []entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(VenueScope(ctx)).
			Where("session_id = ? AND category IN ?", sessionID, enum.DerivedChargeCategories()).
			Delete(&entity.Order{}).Error; err != nil {
			return err
		}
		if len(orders) == 0 {
			return nil
		}
		return tx.Create(&orders).Error
	})
}

func (r *orderRepository) SumByCast(ctx context.Context, from, to time.Time) ([]domainRepo.CastSalesResult, error) {
	var results []domainRepo.CastSalesResult
	query := r.db.WithContext(ctx).Model(&entity.Order{})
	// The join makes venue_id ambiguous, so the scope is applied by hand.
	if venueID, ok := GetVenueID(ctx); ok {
		query = query.Where("orders.venue_id = ?", venueID)
	} else {
		query = query.Where("1 = 0")
	}
	err := query.
		Select("orders.cast_id AS cast_id, casts.stage_name AS stage_name, SUM(orders.unit_price * orders.quantity) AS total, COUNT(*) AS order_count").
		Joins("JOIN casts ON casts.id = orders.cast_id").
		Where("orders.cast_id IS NOT NULL").
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to).
		Where("orders.deleted_at IS NULL").
		Group("orders.cast_id, casts.stage_name").
		Order("total DESC").
		Scan(&results).Error
	return results, err
}
