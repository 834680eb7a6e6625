package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/clubops/clubops-api/pkg/apperror"
)

func testPricing() *entity.PricingSystem {
	return &entity.PricingSystem{
		SetFee:                5000,
		SetDurationMinutes:    60,
		ExtensionFee:          3000,
		ExtensionDurationMins: 30,
		NominationFee:         2000,
		NominationSetMinutes:  60,
		HouseFee:              1500,
		HouseSetMinutes:       30,
		DouhanFee:             4000,
	}
}

func sessionWithDuration(minutes int) *entity.TableSession {
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	end := start.Add(time.Duration(minutes) * time.Minute)
	return &entity.TableSession{
		ID:         uuid.New(),
		VenueID:    uuid.New(),
		GuestCount: 2,
		StartTime:  start,
		EndTime:    &end,
	}
}

func TestDeriveCharges_SetAndExtension(t *testing.T) {
	session := sessionWithDuration(100)
	roster := []entity.SessionGuest{
		{SessionID: session.ID, GuestID: uuid.New(), Position: 0},
		{SessionID: session.ID, GuestID: uuid.New(), Position: 1},
	}

	orders, err := DeriveCharges(session, testPricing(), roster, nil)
	require.NoError(t, err)

	setFees := ordersByCategory(orders, enum.ChargeCategorySetFee)
	require.Len(t, setFees, 2)
	for _, o := range setFees {
		assert.Equal(t, int64(5000), o.UnitPrice)
		assert.Equal(t, 1, o.Quantity)
		require.NotNil(t, o.GuestID)
	}

	// 100 minutes on a 60-minute set leaves 40 minutes: two started
	// 30-minute blocks, each billed per seated guest.
	extensions := ordersByCategory(orders, enum.ChargeCategoryExtension)
	require.Len(t, extensions, 2)
	for _, o := range extensions {
		assert.Equal(t, int64(3000), o.UnitPrice)
		assert.Equal(t, 2, o.Quantity)
	}
}

func TestDeriveCharges_NoExtensionWithinSet(t *testing.T) {
	session := sessionWithDuration(60)
	roster := []entity.SessionGuest{{SessionID: session.ID, GuestID: uuid.New()}}

	orders, err := DeriveCharges(session, testPricing(), roster, nil)
	require.NoError(t, err)

	assert.Empty(t, ordersByCategory(orders, enum.ChargeCategoryExtension))
}

func TestDeriveCharges_GuestOverrideSurvives(t *testing.T) {
	session := sessionWithDuration(60)
	regular := uuid.New()
	vip := uuid.New()
	roster := []entity.SessionGuest{
		{SessionID: session.ID, GuestID: regular, Position: 0},
		{SessionID: session.ID, GuestID: vip, Position: 1},
	}
	vipID := vip
	existing := []entity.Order{
		{Category: enum.ChargeCategorySetFee, UnitPrice: 8000, Quantity: 1, GuestID: &vipID},
	}

	orders, err := DeriveCharges(session, testPricing(), roster, existing)
	require.NoError(t, err)

	byGuest := make(map[uuid.UUID]int64)
	for _, o := range ordersByCategory(orders, enum.ChargeCategorySetFee) {
		require.NotNil(t, o.GuestID)
		byGuest[*o.GuestID] = o.UnitPrice
	}
	assert.Equal(t, int64(5000), byGuest[regular])
	assert.Equal(t, int64(8000), byGuest[vip])
}

func TestDeriveCharges_EmptyRosterUsesGuestCount(t *testing.T) {
	session := sessionWithDuration(100)
	session.GuestCount = 3

	orders, err := DeriveCharges(session, testPricing(), nil, nil)
	require.NoError(t, err)

	assert.Empty(t, ordersByCategory(orders, enum.ChargeCategorySetFee))
	extensions := ordersByCategory(orders, enum.ChargeCategoryExtension)
	require.Len(t, extensions, 2)
	assert.Equal(t, 3, extensions[0].Quantity)
}

func TestDeriveCharges_CastFeesRegenerated(t *testing.T) {
	session := sessionWithDuration(90)
	castID := uuid.New()
	existing := []entity.Order{
		// No window recorded: billed over the whole session.
		{Category: enum.ChargeCategoryNomination, UnitPrice: 1, Quantity: 1, CastID: &castID},
		{Category: enum.ChargeCategoryDouhan, UnitPrice: 1, Quantity: 1, CastID: &castID},
	}

	orders, err := DeriveCharges(session, testPricing(), nil, existing)
	require.NoError(t, err)

	nominations := ordersByCategory(orders, enum.ChargeCategoryNomination)
	require.Len(t, nominations, 1)
	assert.Equal(t, int64(2000), nominations[0].UnitPrice)
	// 90 minutes over a 60-minute block: the second block started.
	assert.Equal(t, 2, nominations[0].Quantity)
	require.NotNil(t, nominations[0].StartTime)
	require.NotNil(t, nominations[0].EndTime)

	// Douhan bills its own fee on the nomination duration unit.
	douhans := ordersByCategory(orders, enum.ChargeCategoryDouhan)
	require.Len(t, douhans, 1)
	assert.Equal(t, int64(4000), douhans[0].UnitPrice)
	assert.Equal(t, 2, douhans[0].Quantity)
}

func TestDeriveCharges_CastFeeWindowClampedToSessionEnd(t *testing.T) {
	session := sessionWithDuration(60)
	castID := uuid.New()
	start := session.StartTime.Add(40 * time.Minute)
	end := session.EndTime.Add(2 * time.Hour)
	existing := []entity.Order{
		{Category: enum.ChargeCategoryHouseFee, CastID: &castID, StartTime: &start, EndTime: &end},
	}

	orders, err := DeriveCharges(session, testPricing(), nil, existing)
	require.NoError(t, err)

	house := ordersByCategory(orders, enum.ChargeCategoryHouseFee)
	require.Len(t, house, 1)
	// Only the 20 minutes inside the session bill: one 30-minute block.
	assert.Equal(t, 1, house[0].Quantity)
	assert.Equal(t, int64(1500), house[0].UnitPrice)
	assert.True(t, house[0].EndTime.Equal(*session.EndTime))
}

func TestDeriveCharges_ZeroWindowDropped(t *testing.T) {
	session := sessionWithDuration(60)
	castID := uuid.New()
	start := *session.EndTime
	existing := []entity.Order{
		{Category: enum.ChargeCategoryNomination, CastID: &castID, StartTime: &start},
	}

	orders, err := DeriveCharges(session, testPricing(), nil, existing)
	require.NoError(t, err)

	assert.Empty(t, ordersByCategory(orders, enum.ChargeCategoryNomination))
}

func TestDeriveCharges_Idempotent(t *testing.T) {
	session := sessionWithDuration(100)
	castID := uuid.New()
	guestID := uuid.New()
	roster := []entity.SessionGuest{{SessionID: session.ID, GuestID: guestID}}
	existing := []entity.Order{
		{Category: enum.ChargeCategorySetFee, UnitPrice: 8000, Quantity: 1, GuestID: &guestID},
		{Category: enum.ChargeCategoryNomination, CastID: &castID},
	}

	first, err := DeriveCharges(session, testPricing(), roster, existing)
	require.NoError(t, err)
	second, err := DeriveCharges(session, testPricing(), roster, first)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Category, second[i].Category)
		assert.Equal(t, first[i].UnitPrice, second[i].UnitPrice)
		assert.Equal(t, first[i].Quantity, second[i].Quantity)
	}
}

func TestDeriveCharges_Validation(t *testing.T) {
	t.Run("missing end time", func(t *testing.T) {
		session := sessionWithDuration(60)
		session.EndTime = nil
		_, err := DeriveCharges(session, testPricing(), nil, nil)
		require.Error(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		session := sessionWithDuration(60)
		end := session.StartTime.Add(-time.Hour)
		session.EndTime = &end
		_, err := DeriveCharges(session, testPricing(), nil, nil)
		require.Error(t, err)
	})

	t.Run("non-positive durations", func(t *testing.T) {
		ps := testPricing()
		ps.SetDurationMinutes = 0
		_, err := DeriveCharges(sessionWithDuration(60), ps, nil, nil)
		require.Error(t, err)
	})
}

func TestCastFeeQuantity(t *testing.T) {
	ps := testPricing()

	qty, err := CastFeeQuantity(enum.ChargeCategoryNomination, ps, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	qty, err = CastFeeQuantity(enum.ChargeCategoryNomination, ps, 60)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)

	qty, err = CastFeeQuantity(enum.ChargeCategoryNomination, ps, 61)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	qty, err = CastFeeQuantity(enum.ChargeCategoryHouseFee, ps, 45)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	_, err = CastFeeQuantity(enum.ChargeCategoryNomination, ps, 0)
	require.Error(t, err)
}

func TestChargeService_RecalculateSession(t *testing.T) {
	f := newTestFixture(t)
	guest := f.seedGuest(t, "田中")
	cast := f.seedCast(t, "れい")

	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start, guest.ID)

	// Bump the seated guest's set fee, add a nomination and a menu order.
	_, err := f.orders.UpsertGuestSetFee(f.ctx, session.ID, guest.ID, 8000)
	require.NoError(t, err)
	_, err = f.orders.AddCastFee(f.ctx, &AddCastFeeInput{
		SessionID: session.ID,
		Category:  enum.ChargeCategoryNomination,
		CastID:    cast.ID,
		GuestID:   &guest.ID,
	})
	require.NoError(t, err)
	bottle := f.seedMenuItem(t, "シャンパン", 12000)
	_, err = f.orders.AddMenuOrders(f.ctx, &AddMenuOrdersInput{
		SessionID: session.ID,
		Items:     []MenuOrderItemInput{{MenuID: bottle.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	end := start.Add(100 * time.Minute)
	_, err = f.sessions.UpdateTimes(f.ctx, session.ID, start, &end)
	require.NoError(t, err)

	updated, err := f.charges.RecalculateSession(f.ctx, session.ID)
	require.NoError(t, err)

	setFees := ordersByCategory(updated.Orders, enum.ChargeCategorySetFee)
	require.Len(t, setFees, 1)
	assert.Equal(t, int64(8000), setFees[0].UnitPrice)

	extensions := ordersByCategory(updated.Orders, enum.ChargeCategoryExtension)
	require.Len(t, extensions, 2)
	assert.Equal(t, 1, extensions[0].Quantity)

	nominations := ordersByCategory(updated.Orders, enum.ChargeCategoryNomination)
	require.Len(t, nominations, 1)
	assert.Equal(t, 2, nominations[0].Quantity)

	// Menu orders are not deriver-owned and must survive untouched.
	menu := ordersByCategory(updated.Orders, enum.ChargeCategoryMenuItem)
	require.Len(t, menu, 1)
	assert.Equal(t, int64(12000), menu[0].UnitPrice)
}

func TestChargeService_RecalculateSession_NoPricingSystem(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	require.NoError(t, f.db.Model(&entity.TableSession{}).
		Where("id = ?", session.ID).
		Update("pricing_system_id", nil).Error)

	_, err := f.charges.RecalculateSession(f.ctx, session.ID)
	assert.ErrorIs(t, err, apperror.ErrNoPricingSystem)
}
