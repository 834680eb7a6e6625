package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/google/uuid"
)

// OrderService handles slip line item operations: menu orders, manually added
// charges, per-order recalculation and free-form adjustments
type OrderService struct {
	orderRepo   repository.OrderRepository
	sessionRepo repository.SessionRepository
	menuRepo    repository.MenuRepository
	pricingRepo repository.PricingSystemRepository
	castRepo    repository.CastRepository
	guestRepo   repository.GuestRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	sessionRepo repository.SessionRepository,
	menuRepo repository.MenuRepository,
	pricingRepo repository.PricingSystemRepository,
	castRepo repository.CastRepository,
	guestRepo repository.GuestRepository,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		sessionRepo: sessionRepo,
		menuRepo:    menuRepo,
		pricingRepo: pricingRepo,
		castRepo:    castRepo,
		guestRepo:   guestRepo,
	}
}

// MenuOrderItemInput is one menu line in an add-orders request
type MenuOrderItemInput struct {
	MenuID   uuid.UUID
	Quantity int
}

// AddMenuOrdersInput represents the add menu orders input
type AddMenuOrdersInput struct {
	SessionID uuid.UUID
	Items     []MenuOrderItemInput
	GuestID   *uuid.UUID
	CastID    *uuid.UUID
}

// AddMenuOrders appends menu item orders to a session's slip
func (s *OrderService) AddMenuOrders(ctx context.Context, input *AddMenuOrdersInput) ([]entity.Order, error) {
	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	// Batch fetch all menu items in one query (prevents N+1)
	menuIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		menuIDs[i] = item.MenuID
	}
	items, err := s.menuRepo.GetItemsByIDs(ctx, menuIDs)
	if err != nil {
		return nil, err
	}
	itemMap := make(map[uuid.UUID]*entity.MenuItem, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}

	orders := make([]entity.Order, 0, len(input.Items))
	for _, item := range input.Items {
		menu, exists := itemMap[item.MenuID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Menu item %s", item.MenuID))
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		menuID := menu.ID
		orders = append(orders, entity.Order{
			VenueID:   session.VenueID,
			SessionID: session.ID,
			MenuID:    &menuID,
			Category:  enum.ChargeCategoryMenuItem,
			Name:      menu.Name,
			UnitPrice: menu.Price,
			Quantity:  quantity,
			GuestID:   input.GuestID,
			CastID:    input.CastID,
		})
	}

	if err := s.orderRepo.CreateBatch(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AddCharge appends one manually added set-fee or extension order at the
// session's pricing system rate
func (s *OrderService) AddCharge(ctx context.Context, sessionID uuid.UUID, category enum.ChargeCategory, quantity int) (*entity.Order, error) {
	if category != enum.ChargeCategorySetFee && category != enum.ChargeCategoryExtension {
		return nil, apperror.NewBadRequestError("Category must be a set fee or extension fee")
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	ps, err := s.sessionPricing(ctx, session)
	if err != nil {
		return nil, err
	}

	amount := ps.SetFee
	if category == enum.ChargeCategoryExtension {
		amount = ps.ExtensionFee
	}
	if quantity < 1 {
		quantity = session.GuestCount
	}
	if quantity < 1 {
		quantity = 1
	}

	order := &entity.Order{
		VenueID:   session.VenueID,
		SessionID: session.ID,
		Category:  category,
		Name:      category.Label(),
		UnitPrice: amount,
		Quantity:  quantity,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpsertGuestSetFee sets a guest's per-guest set fee amount, creating the
// order if the guest has none yet
func (s *OrderService) UpsertGuestSetFee(ctx context.Context, sessionID, guestID uuid.UUID, amount int64) (*entity.Order, error) {
	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		o := &orders[i]
		if o.Category == enum.ChargeCategorySetFee && o.GuestID != nil && *o.GuestID == guestID {
			o.UnitPrice = amount
			if err := s.orderRepo.Update(ctx, o); err != nil {
				return nil, err
			}
			return o, nil
		}
	}

	gid := guestID
	order := &entity.Order{
		VenueID:   session.VenueID,
		SessionID: session.ID,
		Category:  enum.ChargeCategorySetFee,
		Name:      enum.ChargeCategorySetFee.Label(),
		UnitPrice: amount,
		Quantity:  1,
		GuestID:   &gid,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// AddCastFeeInput represents the add cast fee input
type AddCastFeeInput struct {
	SessionID uuid.UUID
	Category  enum.ChargeCategory
	CastID    uuid.UUID
	GuestID   *uuid.UUID
}

// AddCastFee appends a nomination, douhan or house fee attributed to a cast.
// When the session has seated guests the charge must name one of them;
// auto-assignment would guess wrong too often.
func (s *OrderService) AddCastFee(ctx context.Context, input *AddCastFeeInput) (*entity.Order, error) {
	if !input.Category.IsCastFee() {
		return nil, apperror.NewBadRequestError("Category must be a cast fee")
	}

	session, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	ps, err := s.sessionPricing(ctx, session)
	if err != nil {
		return nil, err
	}

	cast, err := s.castRepo.GetByID(ctx, input.CastID)
	if err != nil {
		return nil, err
	}
	if cast == nil {
		return nil, apperror.NewNotFoundError("Cast")
	}

	roster, err := s.sessionRepo.ListGuests(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	if len(roster) > 0 {
		if input.GuestID == nil {
			return nil, apperror.NewBadRequestError("Guest selection is required when the session has seated guests")
		}
		seated := false
		for i := range roster {
			if roster[i].GuestID == *input.GuestID {
				seated = true
				break
			}
		}
		if !seated {
			return nil, apperror.NewBadRequestError("Selected guest is not seated at this session")
		}
	}

	castID := input.CastID
	order := &entity.Order{
		VenueID:   session.VenueID,
		SessionID: session.ID,
		Category:  input.Category,
		Name:      input.Category.Label(),
		Quantity:  0,
		CastID:    &castID,
		GuestID:   input.GuestID,
	}

	switch input.Category {
	case enum.ChargeCategoryNomination, enum.ChargeCategoryDouhan:
		// Window defaults to the session bounds; quantity is a floor estimate
		// refined by the next recalculation.
		start := session.StartTime
		order.StartTime = &start
		order.UnitPrice = ps.NominationFee
		if input.Category == enum.ChargeCategoryDouhan {
			order.UnitPrice = ps.DouhanFee
		}
		if session.EndTime != nil {
			end := *session.EndTime
			order.EndTime = &end
			if ps.NominationSetMinutes > 0 {
				elapsed := int(end.Sub(start) / time.Minute)
				if elapsed > 0 {
					order.Quantity = elapsed / ps.NominationSetMinutes
				}
			}
		}
	case enum.ChargeCategoryHouseFee:
		// Window and quantity are set later via edit + per-order recalculate.
		order.UnitPrice = ps.HouseFee
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// AddAdjustment appends a free-form discount or surcharge
func (s *OrderService) AddAdjustment(ctx context.Context, sessionID uuid.UUID, name string, amount int64, isSubtractive bool) (*entity.Order, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Adjustment name must not be empty")
	}
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Adjustment amount must be positive")
	}

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	unitPrice := amount
	if isSubtractive {
		unitPrice = -amount
	}

	order := &entity.Order{
		VenueID:   session.VenueID,
		SessionID: session.ID,
		Category:  enum.ChargeCategoryAdjustment,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderInput represents a partial order update. Nil fields are left
// untouched.
type UpdateOrderInput struct {
	Name      *string
	UnitPrice *int64
	Quantity  *int
	CastID    *uuid.UUID
	GuestID   *uuid.UUID
	StartTime *time.Time
	EndTime   *time.Time
}

// UpdateOrder applies an inline edit to one order
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, apperror.NewBadRequestError("Order name must not be empty")
		}
		order.Name = *input.Name
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 && order.Category != enum.ChargeCategoryAdjustment {
			return nil, apperror.NewBadRequestError("Only adjustments may have a negative amount")
		}
		order.UnitPrice = *input.UnitPrice
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewBadRequestError("Quantity must not be negative")
		}
		order.Quantity = *input.Quantity
	}
	if input.CastID != nil {
		cast, err := s.castRepo.GetByID(ctx, *input.CastID)
		if err != nil {
			return nil, err
		}
		if cast == nil {
			return nil, apperror.NewNotFoundError("Cast")
		}
		order.CastID = input.CastID
	}
	if input.GuestID != nil {
		guest, err := s.guestRepo.GetByID(ctx, *input.GuestID)
		if err != nil {
			return nil, err
		}
		if guest == nil {
			return nil, apperror.NewNotFoundError("Guest")
		}
		order.GuestID = input.GuestID
	}
	if input.StartTime != nil {
		order.StartTime = input.StartTime
	}
	if input.EndTime != nil {
		order.EndTime = input.EndTime
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// RecalculateOrder recomputes one cast fee order's quantity and rate from its
// edited time window. Other orders are untouched.
func (s *OrderService) RecalculateOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !order.Category.IsCastFee() {
		return nil, apperror.NewBadRequestError("Only cast fee orders can be recalculated individually")
	}
	if order.StartTime == nil || order.EndTime == nil {
		return nil, apperror.NewBadRequestError("Order time window is required for recalculation")
	}

	session, err := s.sessionRepo.GetByID(ctx, order.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}
	ps, err := s.sessionPricing(ctx, session)
	if err != nil {
		return nil, err
	}

	// An end clock time at or before the start reads as past midnight, same
	// as on the session header. Clamp the window so the fee never runs past
	// the session's end.
	windowEnd := normalizeEndTime(*order.StartTime, *order.EndTime)
	if session.EndTime != nil && session.EndTime.Before(windowEnd) {
		windowEnd = *session.EndTime
	}
	window := int(windowEnd.Sub(*order.StartTime) / time.Minute)

	quantity, err := CastFeeQuantity(order.Category, ps, window)
	if err != nil {
		return nil, err
	}

	fee, _ := castFeeRate(order.Category, ps)
	order.UnitPrice = fee
	order.Quantity = quantity
	order.EndTime = &windowEnd

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes one order from its slip
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// DeleteByCategory removes every order of one category from a session
func (s *OrderService) DeleteByCategory(ctx context.Context, sessionID uuid.UUID, category enum.ChargeCategory) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NewNotFoundError("Session")
	}
	return s.orderRepo.DeleteByCategory(ctx, sessionID, category)
}

// ListBySession returns a session's orders in creation order
func (s *OrderService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]entity.Order, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}
	return s.orderRepo.ListBySession(ctx, sessionID)
}

// getSession loads the session regardless of status; completed slips stay
// editable, reopening only flips the status back.
func (s *OrderService) getSession(ctx context.Context, sessionID uuid.UUID) (*entity.TableSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewNotFoundError("Session")
	}
	return session, nil
}

func (s *OrderService) sessionPricing(ctx context.Context, session *entity.TableSession) (*entity.PricingSystem, error) {
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
	return ps, nil
}
