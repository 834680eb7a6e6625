package service

import (
	"context"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/google/uuid"
)

// ChargeService derives the system-owned charge orders of a session from its
// time bounds, guest roster and pricing system. It owns the five time-based
// categories (set, extension, nomination, douhan, house) and never touches
// menu items or adjustments.
type ChargeService struct {
	sessionRepo repository.SessionRepository
	orderRepo   repository.OrderRepository
	pricingRepo repository.PricingSystemRepository
}

// NewChargeService creates a new charge service
func NewChargeService(
	sessionRepo repository.SessionRepository,
	orderRepo repository.OrderRepository,
	pricingRepo repository.PricingSystemRepository,
) *ChargeService {
	return &ChargeService{
		sessionRepo: sessionRepo,
		orderRepo:   orderRepo,
		pricingRepo: pricingRepo,
	}
}

// RecalculateSession regenerates every derived charge order on a session. The
// delete-and-recreate runs in one transaction, so a failure leaves the slip
// exactly as it was.
func (s *ChargeService) RecalculateSession(ctx context.Context, sessionID uuid.UUID) (*entity.TableSession, error) {
	session, err := s.sessionRepo.GetWithSlip(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}

	if session.PricingSystemID == nil {
		return nil, apperror.ErrNoPricingSystem
	}
	ps, err := s.pricingRepo.GetByID(ctx, *session.PricingSystemID)
	if err != nil {
		return nil, err
	}
	if ps == nil {
		return nil, apperror.ErrNoPricingSystem
	}

	replacement, err := DeriveCharges(session, ps, session.Guests, session.Orders)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.ReplaceDerivedCharges(ctx, sessionID, replacement); err != nil {
		return nil, err
	}

	// Reload so the caller sees authoritative state, row identities included.
	return s.sessionRepo.GetWithSlip(ctx, sessionID)
}

// DeriveCharges computes the full replacement set of derived charge orders for
// a session. Pure: no persistence, input orders are only read. Returned orders
// carry no IDs; the repository assigns them on insert.
func DeriveCharges(
	session *entity.TableSession,
	ps *entity.PricingSystem,
	roster []entity.SessionGuest,
	existing []entity.Order,
) ([]entity.Order, error) {
	if ps.SetDurationMinutes <= 0 || ps.ExtensionDurationMins <= 0 {
		return nil, apperror.NewBadRequestError("Pricing system has non-positive durations")
	}
	if session.EndTime == nil {
		return nil, apperror.NewBadRequestError("Session end time is required for recalculation")
	}
	if !session.EndTime.After(session.StartTime) {
		return nil, apperror.NewBadRequestError("Session end time must be after start time")
	}

	durationMinutes := session.DurationMinutes()
	orders := make([]entity.Order, 0, len(roster)+4)

	// Per-guest set fee overrides survive the regeneration.
	overrides := make(map[uuid.UUID]int64)
	for i := range existing {
		o := &existing[i]
		if o.Category == enum.ChargeCategorySetFee && o.GuestID != nil {
			overrides[*o.GuestID] = o.UnitPrice
		}
	}

	for i := range roster {
		guestID := roster[i].GuestID
		amount := ps.SetFee
		if override, ok := overrides[guestID]; ok {
			amount = override
		}
		gid := guestID
		orders = append(orders, entity.Order{
			VenueID:   session.VenueID,
			SessionID: session.ID,
			Category:  enum.ChargeCategorySetFee,
			Name:      enum.ChargeCategorySetFee.Label(),
			UnitPrice: amount,
			Quantity:  1,
			GuestID:   &gid,
		})
	}

	if durationMinutes > ps.SetDurationMinutes {
		excess := durationMinutes - ps.SetDurationMinutes
		extensionCount := ceilDiv(excess, ps.ExtensionDurationMins)
		quantity := len(roster)
		if quantity == 0 {
			quantity = session.GuestCount
		}
		for i := 0; i < extensionCount; i++ {
			orders = append(orders, entity.Order{
				VenueID:   session.VenueID,
				SessionID: session.ID,
				Category:  enum.ChargeCategoryExtension,
				Name:      enum.ChargeCategoryExtension.Label(),
				UnitPrice: ps.ExtensionFee,
				Quantity:  quantity,
			})
		}
	}

	for i := range existing {
		o := &existing[i]
		if !o.Category.IsCastFee() || o.CastID == nil {
			continue
		}

		fee, blockMinutes := castFeeRate(o.Category, ps)
		if blockMinutes <= 0 {
			return nil, apperror.NewBadRequestError("Pricing system has non-positive durations")
		}

		windowStart := session.StartTime
		if o.StartTime != nil {
			windowStart = *o.StartTime
		}
		windowEnd := *session.EndTime
		if o.EndTime != nil && o.EndTime.Before(windowEnd) {
			windowEnd = *o.EndTime
		}
		window := int(windowEnd.Sub(windowStart) / time.Minute)
		if window <= 0 {
			continue // dropped, not billable
		}

		count := ceilDiv(window, blockMinutes)
		if count < 1 {
			count = 1
		}
		ws, we := windowStart, windowEnd
		orders = append(orders, entity.Order{
			VenueID:   session.VenueID,
			SessionID: session.ID,
			Category:  o.Category,
			Name:      o.Category.Label(),
			UnitPrice: fee,
			Quantity:  count,
			CastID:    o.CastID,
			GuestID:   o.GuestID,
			StartTime: &ws,
			EndTime:   &we,
		})
	}

	return orders, nil
}

// CastFeeQuantity computes the billed block count for a cast fee window.
// Any started block is billed in full; a billable window is at least one block.
func CastFeeQuantity(category enum.ChargeCategory, ps *entity.PricingSystem, windowMinutes int) (int, error) {
	_, blockMinutes := castFeeRate(category, ps)
	if blockMinutes <= 0 {
		return 0, apperror.NewBadRequestError("Pricing system has non-positive durations")
	}
	if windowMinutes <= 0 {
		return 0, apperror.NewBadRequestError("Billing window must be positive")
	}
	count := ceilDiv(windowMinutes, blockMinutes)
	if count < 1 {
		count = 1
	}
	return count, nil
}

// castFeeRate returns the unit fee and block duration for a cast fee category.
// Douhan is billed on the nomination duration unit.
func castFeeRate(category enum.ChargeCategory, ps *entity.PricingSystem) (int64, int) {
	switch category {
	case enum.ChargeCategoryNomination:
		return ps.NominationFee, ps.NominationSetMinutes
	case enum.ChargeCategoryDouhan:
		return ps.DouhanFee, ps.NominationSetMinutes
	case enum.ChargeCategoryHouseFee:
		return ps.HouseFee, ps.HouseSetMinutes
	}
	return 0, 0
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
