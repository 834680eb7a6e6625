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

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) domainRepo.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.TableSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TableSession, error) {
	var session entity.TableSession
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *sessionRepository) GetWithSlip(ctx context.Context, id uuid.UUID) (*entity.TableSession, error) {
	var session entity.TableSession
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Preload("Table").
		Preload("PricingSystem").
		Preload("Guests", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Guests.Guest").
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Orders.Cast").
		Preload("Orders.Guest").
		First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *sessionRepository) Update(ctx context.Context, session *entity.TableSession) error {
	return r.db.WithContext(ctx).Save(session).Error
}

func (r *sessionRepository) UpdateTimes(ctx context.Context, id uuid.UUID, startTime time.Time, endTime *time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.TableSession{}).
		Scopes(VenueScope(ctx)).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"start_time": startTime,
			"end_time":   endTime,
		}).Error
}

func (r *sessionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.SessionStatus, endTime *time.Time) error {
	return r.db.WithContext(ctx).Model(&entity.TableSession{}).
		Scopes(VenueScope(ctx)).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   status,
			"end_time": endTime,
		}).Error
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", id).Delete(&entity.Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", id).Delete(&entity.SessionGuest{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.TableSession{}, "id = ?", id).Error
	})
}

func (r *sessionRepository) List(ctx context.Context, params *domainRepo.SessionFilterParams) ([]entity.TableSession, int64, error) {
	var sessions []entity.TableSession
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TableSession{}).Scopes(VenueScope(ctx))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.TableID != nil {
		query = query.Where("table_id = ?", *params.TableID)
	}
	if params.StartDate != nil {
		query = query.Where("start_time >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("start_time < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Table").
		Order("start_time DESC").
		Find(&sessions).Error

	return sessions, total, err
}

func (r *sessionRepository) GetActiveByTable(ctx context.Context, tableID uuid.UUID) (*entity.TableSession, error) {
	var session entity.TableSession
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Where("table_id = ? AND status = ?", tableID, enum.SessionStatusActive).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &session, err
}

func (r *sessionRepository) AddGuest(ctx context.Context, row *entity.SessionGuest) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *sessionRepository) RemoveGuest(ctx context.Context, sessionGuestID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SessionGuest{}, "id = ?", sessionGuestID).Error
}

func (r *sessionRepository) GetGuestRow(ctx context.Context, sessionGuestID uuid.UUID) (*entity.SessionGuest, error) {
	var row entity.SessionGuest
	err := r.db.WithContext(ctx).Preload("Guest").First(&row, "id = ?", sessionGuestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &row, err
}

func (r *sessionRepository) ListGuests(ctx context.Context, sessionID uuid.UUID) ([]entity.SessionGuest, error) {
	var rows []entity.SessionGuest
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Preload("Guest").
		Order("position ASC").
		Find(&rows).Error
	return rows, err
}
