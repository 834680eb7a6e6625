package repository

import (
	"context"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/google/uuid"
)

// AttendanceRepository defines the interface for attendance data operations
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *entity.Attendance) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error)
	Update(ctx context.Context, attendance *entity.Attendance) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByDate(ctx context.Context, workDate time.Time) ([]entity.Attendance, error)
	// GetOpenForCast returns the cast's attendance record without a clock-out
	// on the given work date, or nil.
	GetOpenForCast(ctx context.Context, castID uuid.UUID, workDate time.Time) (*entity.Attendance, error)
	// GetOpenForUser is GetOpenForCast for staff users.
	GetOpenForUser(ctx context.Context, userID uuid.UUID, workDate time.Time) (*entity.Attendance, error)
	// SumCastMinutes sums closed-shift minutes per cast over a period.
	SumCastMinutes(ctx context.Context, from, to time.Time) ([]CastMinutesResult, error)
}

// CastMinutesResult aggregates a cast's worked minutes
type CastMinutesResult struct {
	CastID    uuid.UUID
	StageName string
	Minutes   int
	Shifts    int
}
