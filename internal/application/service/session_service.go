package service

import (
	"context"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
)

// SessionService handles table session lifecycle and the guest roster
type SessionService struct {
	sessionRepo  repository.SessionRepository
	orderRepo    repository.OrderRepository
	tableRepo    repository.TableRepository
	pricingRepo  repository.PricingSystemRepository
	guestRepo    repository.GuestRepository
	settingsRepo repository.SettingsRepository
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo repository.SessionRepository,
	orderRepo repository.OrderRepository,
	tableRepo repository.TableRepository,
	pricingRepo repository.PricingSystemRepository,
	guestRepo repository.GuestRepository,
	settingsRepo repository.SettingsRepository,
) *SessionService {
	return &SessionService{
		sessionRepo:  sessionRepo,
		orderRepo:    orderRepo,
		tableRepo:    tableRepo,
		pricingRepo:  pricingRepo,
		guestRepo:    guestRepo,
		settingsRepo: settingsRepo,
	}
}

// OpenSessionInput represents the open session input
type OpenSessionInput struct {
	TableID         uuid.UUID
	GuestCount      int
	StartTime       *time.Time
	PricingSystemID *uuid.UUID
	GuestIDs        []uuid.UUID
}

// SlipView is one session's full bill: the session document plus its computed
// totals under the venue's current billing settings.
type SlipView struct {
	Session *entity.TableSession `json:"session"`
	Totals  SlipTotals           `json:"totals"`
}

// OpenSession starts a new session on a free table. When no pricing system is
// given the venue default applies. Initial roster guests each get a set-fee
// order at the pricing system rate.
func (s *SessionService) OpenSession(ctx context.Context, input *OpenSessionInput) (*entity.TableSession, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}

	table, err := s.tableRepo.GetByID(ctx, input.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	active, err := s.sessionRepo.GetActiveByTable(ctx, input.TableID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, apperror.ErrTableOccupied
	}

	pricingSystemID := input.PricingSystemID
	var ps *entity.PricingSystem
	if pricingSystemID != nil {
		ps, err = s.pricingRepo.GetByID(ctx, *pricingSystemID)
		if err != nil {
			return nil, err
		}
		if ps == nil {
			return nil, apperror.NewNotFoundError("Pricing system")
		}
	} else {
		ps, err = s.pricingRepo.GetDefault(ctx)
		if err != nil {
			return nil, err
		}
		if ps != nil {
			pricingSystemID = &ps.ID
		}
	}

	startTime := time.Now()
	if input.StartTime != nil {
		startTime = *input.StartTime
	}

	guestCount := input.GuestCount
	if guestCount < 1 {
		guestCount = 1
	}
	if len(input.GuestIDs) > guestCount {
		guestCount = len(input.GuestIDs)
	}

	session := &entity.TableSession{
		VenueID:         venueID,
		TableID:         input.TableID,
		GuestCount:      guestCount,
		StartTime:       startTime,
		PricingSystemID: pricingSystemID,
		Status:          enum.SessionStatusActive,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	for i, guestID := range input.GuestIDs {
		if err := s.seatGuest(ctx, session, guestID, i, ps); err != nil {
			return nil, err
		}
	}

	return s.sessionRepo.GetWithSlip(ctx, session.ID)
}

// GetSlip loads the session with orders and roster plus computed totals
func (s *SessionService) GetSlip(ctx context.Context, id uuid.UUID) (*SlipView, error) {
	session, err := s.sessionRepo.GetWithSlip(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	settings, err := s.venueSettings(ctx, session.VenueID)
	if err != nil {
		return nil, err
	}

	return &SlipView{
		Session: session,
		Totals:  CalculateSlipTotals(session.Orders, settings),
	}, nil
}

// UpdateHeaderInput represents the slip header update input. Nil fields are
// left untouched. Orders are never modified here.
type UpdateHeaderInput struct {
	TableID         *uuid.UUID
	GuestCount      *int
	StartTime       *time.Time
	EndTime         *time.Time
	PricingSystemID *uuid.UUID
	MainGuestID     *uuid.UUID
}

// UpdateHeader persists the slip header fields
func (s *SessionService) UpdateHeader(ctx context.Context, id uuid.UUID, input *UpdateHeaderInput) (*entity.TableSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	if input.TableID != nil {
		table, err := s.tableRepo.GetByID(ctx, *input.TableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, apperror.NewNotFoundError("Table")
		}
		session.TableID = *input.TableID
	}
	if input.GuestCount != nil {
		if *input.GuestCount < 1 {
			return nil, apperror.NewBadRequestError("Guest count must be at least 1")
		}
		session.GuestCount = *input.GuestCount
	}
	if input.PricingSystemID != nil {
		ps, err := s.pricingRepo.GetByID(ctx, *input.PricingSystemID)
		if err != nil {
			return nil, err
		}
		if ps == nil {
			return nil, apperror.NewNotFoundError("Pricing system")
		}
		session.PricingSystemID = input.PricingSystemID
	}
	if input.MainGuestID != nil {
		session.MainGuestID = input.MainGuestID
	}
	if input.StartTime != nil {
		session.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		end := normalizeEndTime(session.StartTime, *input.EndTime)
		session.EndTime = &end
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// UpdateTimes sets the session's billing window. An end clock time at or
// before the start is read as past midnight and rolled to the next day.
func (s *SessionService) UpdateTimes(ctx context.Context, id uuid.UUID, startTime time.Time, endTime *time.Time) (*entity.TableSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	if endTime != nil {
		end := normalizeEndTime(startTime, *endTime)
		endTime = &end
	}

	if err := s.sessionRepo.UpdateTimes(ctx, id, startTime, endTime); err != nil {
		return nil, err
	}

	session.StartTime = startTime
	session.EndTime = endTime
	return session, nil
}

// Checkout completes the session, stamping the end time if it is not set
func (s *SessionService) Checkout(ctx context.Context, id uuid.UUID) (*entity.TableSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}
	if !session.IsOpen() {
		return nil, apperror.ErrSessionClosed
	}

	endTime := session.EndTime
	if endTime == nil {
		now := time.Now()
		endTime = &now
	}

	if err := s.sessionRepo.UpdateStatus(ctx, id, enum.SessionStatusCompleted, endTime); err != nil {
		return nil, err
	}

	session.Status = enum.SessionStatusCompleted
	session.EndTime = endTime
	return session, nil
}

// Reopen reverts a completed session to active. The end time and every order
// are kept as they were.
func (s *SessionService) Reopen(ctx context.Context, id uuid.UUID) (*entity.TableSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}
	if session.IsOpen() {
		return nil, apperror.NewConflictError("Session is already open")
	}

	if err := s.sessionRepo.UpdateStatus(ctx, id, enum.SessionStatusActive, session.EndTime); err != nil {
		return nil, err
	}

	session.Status = enum.SessionStatusActive
	return session, nil
}

// DeleteSession removes the session with its orders and roster
func (s *SessionService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NewNotFoundError("Session")
	}
	return s.sessionRepo.Delete(ctx, id)
}

// ListSessions returns sessions matching the filters
func (s *SessionService) ListSessions(ctx context.Context, params *repository.SessionFilterParams) ([]entity.TableSession, int64, error) {
	return s.sessionRepo.List(ctx, params)
}

// FloorTable is one table on the floor view with its occupying session, if any
type FloorTable struct {
	Table   entity.VenueTable    `json:"table"`
	Session *entity.TableSession `json:"session,omitempty"`
}

// FloorView returns every table with its active session
func (s *SessionService) FloorView(ctx context.Context) ([]FloorTable, error) {
	tables, err := s.tableRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	active := enum.SessionStatusActive
	sessions, _, err := s.sessionRepo.List(ctx, &repository.SessionFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 100},
		Status:     &active,
	})
	if err != nil {
		return nil, err
	}

	byTable := make(map[uuid.UUID]*entity.TableSession, len(sessions))
	for i := range sessions {
		byTable[sessions[i].TableID] = &sessions[i]
	}

	floor := make([]FloorTable, 0, len(tables))
	for _, table := range tables {
		floor = append(floor, FloorTable{
			Table:   table,
			Session: byTable[table.ID],
		})
	}
	return floor, nil
}

// AddGuest seats a guest on the session's roster, bumps the guest count and
// creates their default set-fee order at the current pricing system rate
func (s *SessionService) AddGuest(ctx context.Context, sessionID, guestID uuid.UUID) (*entity.TableSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}

	roster, err := s.sessionRepo.ListGuests(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range roster {
		if roster[i].GuestID == guestID {
			return nil, apperror.NewConflictError("Guest is already seated at this session")
		}
	}

	var ps *entity.PricingSystem
	if session.PricingSystemID != nil {
		ps, err = s.pricingRepo.GetByID(ctx, *session.PricingSystemID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.seatGuest(ctx, session, guestID, len(roster), ps); err != nil {
		return nil, err
	}

	session.GuestCount++
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return s.sessionRepo.GetWithSlip(ctx, sessionID)
}

// RemoveGuest unseats a guest, drops the guest count and deletes the guest's
// set-fee order. Cast fees attributed to the guest stay on the slip.
func (s *SessionService) RemoveGuest(ctx context.Context, sessionID, sessionGuestID uuid.UUID) (*entity.TableSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	row, err := s.sessionRepo.GetGuestRow(ctx, sessionGuestID)
	if err != nil {
		return nil, err
	}
	if row == nil || row.SessionID != sessionID {
		return nil, apperror.NewNotFoundError("Session guest")
	}

	if err := s.sessionRepo.RemoveGuest(ctx, sessionGuestID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		o := &orders[i]
		if o.Category == enum.ChargeCategorySetFee && o.GuestID != nil && *o.GuestID == row.GuestID {
			if err := s.orderRepo.Delete(ctx, o.ID); err != nil {
				return nil, err
			}
		}
	}

	if session.GuestCount > 0 {
		session.GuestCount--
	}
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}

	return s.sessionRepo.GetWithSlip(ctx, sessionID)
}

func (s *SessionService) seatGuest(ctx context.Context, session *entity.TableSession, guestID uuid.UUID, position int, ps *entity.PricingSystem) error {
	row := &entity.SessionGuest{
		SessionID: session.ID,
		GuestID:   guestID,
		Position:  position,
	}
	if err := s.sessionRepo.AddGuest(ctx, row); err != nil {
		return err
	}

	setFee := int64(0)
	if ps != nil {
		setFee = ps.SetFee
	}
	gid := guestID
	return s.orderRepo.Create(ctx, &entity.Order{
		VenueID:   session.VenueID,
		SessionID: session.ID,
		Category:  enum.ChargeCategorySetFee,
		Name:      enum.ChargeCategorySetFee.Label(),
		UnitPrice: setFee,
		Quantity:  1,
		GuestID:   &gid,
	})
}

func (s *SessionService) venueSettings(ctx context.Context, venueID uuid.UUID) (*entity.VenueSettings, error) {
	settings, err := s.settingsRepo.GetByVenueID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		// Venue has never saved settings; bill with the defaults.
		settings = &entity.VenueSettings{
			VenueID:             venueID,
			ServiceChargeRate:   20,
			TaxRate:             10,
			SlipRoundingEnabled: true,
			SlipRoundingMethod:  enum.RoundingMethodRound,
			SlipRoundingUnit:    10,
		}
	}
	return settings, nil
}

// normalizeEndTime rolls an end clock time at or before the start over to the
// next day, so a 20:00 start with a 01:00 end bills five hours, not minus
// nineteen.
func normalizeEndTime(start, end time.Time) time.Time {
	if !end.After(start) {
		return end.Add(24 * time.Hour)
	}
	return end
}
