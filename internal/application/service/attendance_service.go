package service

import (
	"context"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/google/uuid"
)

// AttendanceService handles clock-in/clock-out for staff and casts
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	castRepo       repository.CastRepository
	userRepo       repository.UserRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	castRepo repository.CastRepository,
	userRepo repository.UserRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		castRepo:       castRepo,
		userRepo:       userRepo,
	}
}

// ClockInInput represents a clock-in request. Exactly one of UserID/CastID
// must be set.
type ClockInInput struct {
	UserID  *uuid.UUID
	CastID  *uuid.UUID
	ClockIn *time.Time
	Note    *string
}

// ClockIn opens a shift for a cast or staff user on the current work date
func (s *AttendanceService) ClockIn(ctx context.Context, input *ClockInInput) (*entity.Attendance, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}
	if (input.UserID == nil) == (input.CastID == nil) {
		return nil, apperror.NewBadRequestError("Exactly one of user_id or cast_id must be set")
	}

	clockIn := time.Now()
	if input.ClockIn != nil {
		clockIn = *input.ClockIn
	}
	workDate := clockIn.Truncate(24 * time.Hour)

	if input.CastID != nil {
		cast, err := s.castRepo.GetByID(ctx, *input.CastID)
		if err != nil {
			return nil, err
		}
		if cast == nil {
			return nil, apperror.NewNotFoundError("Cast")
		}
		open, err := s.attendanceRepo.GetOpenForCast(ctx, *input.CastID, workDate)
		if err != nil {
			return nil, err
		}
		if open != nil {
			return nil, apperror.NewConflictError("Cast already has an open shift today")
		}
	} else {
		user, err := s.userRepo.GetByID(ctx, *input.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperror.NewNotFoundError("User")
		}
		open, err := s.attendanceRepo.GetOpenForUser(ctx, *input.UserID, workDate)
		if err != nil {
			return nil, err
		}
		if open != nil {
			return nil, apperror.NewConflictError("User already has an open shift today")
		}
	}

	attendance := &entity.Attendance{
		VenueID:  venueID,
		UserID:   input.UserID,
		CastID:   input.CastID,
		WorkDate: workDate,
		ClockIn:  clockIn,
		Note:     input.Note,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// ClockOut closes an open shift
func (s *AttendanceService) ClockOut(ctx context.Context, id uuid.UUID, clockOut *time.Time) (*entity.Attendance, error) {
	attendance, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attendance == nil {
		return nil, apperror.NewNotFoundError("Attendance record")
	}
	if attendance.ClockOut != nil {
		return nil, apperror.NewConflictError("Shift is already closed")
	}

	out := time.Now()
	if clockOut != nil {
		out = *clockOut
	}
	if !out.After(attendance.ClockIn) {
		return nil, apperror.NewBadRequestError("Clock-out must be after clock-in")
	}

	attendance.ClockOut = &out
	if err := s.attendanceRepo.Update(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// ListByDate returns the attendance sheet for one work date
func (s *AttendanceService) ListByDate(ctx context.Context, workDate time.Time) ([]entity.Attendance, error) {
	return s.attendanceRepo.ListByDate(ctx, workDate)
}

// DeleteAttendance removes an attendance record
func (s *AttendanceService) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	attendance, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if attendance == nil {
		return apperror.NewNotFoundError("Attendance record")
	}
	return s.attendanceRepo.Delete(ctx, id)
}
