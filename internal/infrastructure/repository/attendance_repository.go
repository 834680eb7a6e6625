package repository

import (
	"context"
	"errors"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	domainRepo "github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domainRepo.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *entity.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error) {
	var attendance entity.Attendance
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).First(&attendance, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &attendance, err
}

func (r *attendanceRepository) Update(ctx context.Context, attendance *entity.Attendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

func (r *attendanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(VenueScope(ctx)).Delete(&entity.Attendance{}, "id = ?", id).Error
}

func (r *attendanceRepository) ListByDate(ctx context.Context, workDate time.Time) ([]entity.Attendance, error) {
	var records []entity.Attendance
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Where("work_date = ?", workDate.Format("2006-01-02")).
		Preload("User").
		Preload("Cast").
		Order("clock_in ASC").
		Find(&records).Error
	return records, err
}

func (r *attendanceRepository) GetOpenForCast(ctx context.Context, castID uuid.UUID, workDate time.Time) (*entity.Attendance, error) {
	var attendance entity.Attendance
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Where("cast_id = ? AND work_date = ? AND clock_out IS NULL", castID, workDate.Format("2006-01-02")).
		First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &attendance, err
}

func (r *attendanceRepository) GetOpenForUser(ctx context.Context, userID uuid.UUID, workDate time.Time) (*entity.Attendance, error) {
	var attendance entity.Attendance
	err := r.db.WithContext(ctx).Scopes(VenueScope(ctx)).
		Where("user_id = ? AND work_date = ? AND clock_out IS NULL", userID, workDate.Format("2006-01-02")).
		First(&attendance).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &attendance, err
}

func (r *attendanceRepository) SumCastMinutes(ctx context.Context, from, to time.Time) ([]domainRepo.CastMinutesResult, error) {
	var results []domainRepo.CastMinutesResult
	query := r.db.WithContext(ctx).Model(&entity.Attendance{})
	// The join makes venue_id ambiguous, so the scope is applied by hand.
	if venueID, ok := GetVenueID(ctx); ok {
		query = query.Where("attendances.venue_id = ?", venueID)
	} else {
		query = query.Where("1 = 0")
	}
	err := query.
		Select("attendances.cast_id AS cast_id, casts.stage_name AS stage_name, SUM(EXTRACT(EPOCH FROM (attendances.clock_out - attendances.clock_in)) / 60)::int AS minutes, COUNT(*) AS shifts").
		Joins("JOIN casts ON casts.id = attendances.cast_id").
		Where("attendances.cast_id IS NOT NULL AND attendances.clock_out IS NOT NULL").
		Where("attendances.work_date >= ? AND attendances.work_date < ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Where("attendances.deleted_at IS NULL").
		Group("attendances.cast_id, casts.stage_name").
		Scan(&results).Error
	return results, err
}
