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

func TestAddMenuOrders(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)
	beer := f.seedMenuItem(t, "ビール", 800)
	bottle := f.seedMenuItem(t, "シャンパン", 12000)

	orders, err := f.orders.AddMenuOrders(f.ctx, &AddMenuOrdersInput{
		SessionID: session.ID,
		Items: []MenuOrderItemInput{
			{MenuID: beer.ID, Quantity: 3},
			{MenuID: bottle.ID, Quantity: 0},
		},
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "ビール", orders[0].Name)
	assert.Equal(t, int64(800), orders[0].UnitPrice)
	assert.Equal(t, 3, orders[0].Quantity)
	// Quantity below one snaps to one.
	assert.Equal(t, 1, orders[1].Quantity)
	assert.Equal(t, enum.ChargeCategoryMenuItem, orders[1].Category)
}

func TestAddMenuOrders_UnknownItem(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	_, err := f.orders.AddMenuOrders(f.ctx, &AddMenuOrdersInput{
		SessionID: session.ID,
		Items:     []MenuOrderItemInput{{MenuID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	// Nothing was written for the failed batch.
	assert.Empty(t, f.sessionOrders(t, session.ID))
}

func TestAddCharge(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)
	require.NoError(t, f.db.Model(&entity.TableSession{}).
		Where("id = ?", session.ID).
		Update("guest_count", 3).Error)

	order, err := f.orders.AddCharge(f.ctx, session.ID, enum.ChargeCategoryExtension, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(3000), order.UnitPrice)
	// Quantity defaults to the headcount.
	assert.Equal(t, 3, order.Quantity)
	assert.Equal(t, "延長料金", order.Name)
}

func TestAddCharge_RejectsNonChargeCategory(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	_, err := f.orders.AddCharge(f.ctx, session.ID, enum.ChargeCategoryNomination, 1)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpsertGuestSetFee(t *testing.T) {
	f := newTestFixture(t)
	guest := f.seedGuest(t, "佐藤")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start, guest.ID)

	order, err := f.orders.UpsertGuestSetFee(f.ctx, session.ID, guest.ID, 8000)
	require.NoError(t, err)
	assert.Equal(t, int64(8000), order.UnitPrice)

	// Upsert edits the existing seat fee instead of stacking a second one.
	setFees := ordersByCategory(f.sessionOrders(t, session.ID), enum.ChargeCategorySetFee)
	require.Len(t, setFees, 1)
	assert.Equal(t, int64(8000), setFees[0].UnitPrice)
}

func TestAddCastFee_GuestSelection(t *testing.T) {
	f := newTestFixture(t)
	guest := f.seedGuest(t, "佐藤")
	outsider := f.seedGuest(t, "高橋")
	cast := f.seedCast(t, "れい")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start, guest.ID)

	_, err := f.orders.AddCastFee(f.ctx, &AddCastFeeInput{
		SessionID: session.ID,
		Category:  enum.ChargeCategoryNomination,
		CastID:    cast.ID,
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = f.orders.AddCastFee(f.ctx, &AddCastFeeInput{
		SessionID: session.ID,
		Category:  enum.ChargeCategoryNomination,
		CastID:    cast.ID,
		GuestID:   &outsider.ID,
	})
	require.Error(t, err)

	order, err := f.orders.AddCastFee(f.ctx, &AddCastFeeInput{
		SessionID: session.ID,
		Category:  enum.ChargeCategoryNomination,
		CastID:    cast.ID,
		GuestID:   &guest.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2000), order.UnitPrice)
	require.NotNil(t, order.StartTime)
	// Open session: no window end yet, quantity settles at recalculation.
	assert.Equal(t, 0, order.Quantity)
}

func TestAddCastFee_DouhanOnClosedWindow(t *testing.T) {
	f := newTestFixture(t)
	cast := f.seedCast(t, "れい")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	end := start.Add(90 * time.Minute)
	_, err := f.sessions.UpdateTimes(f.ctx, session.ID, start, &end)
	require.NoError(t, err)

	order, err := f.orders.AddCastFee(f.ctx, &AddCastFeeInput{
		SessionID: session.ID,
		Category:  enum.ChargeCategoryDouhan,
		CastID:    cast.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4000), order.UnitPrice)
	// Whole 60-minute blocks elapsed within the window.
	assert.Equal(t, 1, order.Quantity)
	require.NotNil(t, order.EndTime)
}

func TestAddCastFee_HouseFeeStartsUnsettled(t *testing.T) {
	f := newTestFixture(t)
	cast := f.seedCast(t, "れい")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	order, err := f.orders.AddCastFee(f.ctx, &AddCastFeeInput{
		SessionID: session.ID,
		Category:  enum.ChargeCategoryHouseFee,
		CastID:    cast.ID,
	})
	require.NoError(t, err)

	// The window is set later by edit + recalculate; until then nothing
	// bills. The stored row must hold quantity 0, not a column default.
	var stored entity.Order
	require.NoError(t, f.db.First(&stored, "id = ?", order.ID).Error)
	assert.Equal(t, 0, stored.Quantity)
	assert.Equal(t, int64(1500), stored.UnitPrice)
	assert.Nil(t, stored.StartTime)
	assert.Nil(t, stored.EndTime)
}

func TestAddAdjustment(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	discount, err := f.orders.AddAdjustment(f.ctx, session.ID, "常連値引", 1000, true)
	require.NoError(t, err)
	assert.Equal(t, int64(-1000), discount.UnitPrice)
	assert.Equal(t, enum.ChargeCategoryAdjustment, discount.Category)

	surcharge, err := f.orders.AddAdjustment(f.ctx, session.ID, "深夜料金", 500, false)
	require.NoError(t, err)
	assert.Equal(t, int64(500), surcharge.UnitPrice)

	_, err = f.orders.AddAdjustment(f.ctx, session.ID, "", 500, false)
	require.Error(t, err)
	_, err = f.orders.AddAdjustment(f.ctx, session.ID, "ゼロ", 0, false)
	require.Error(t, err)
}

func TestUpdateOrder_NegativePriceOnlyForAdjustments(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)
	beer := f.seedMenuItem(t, "ビール", 800)

	created, err := f.orders.AddMenuOrders(f.ctx, &AddMenuOrdersInput{
		SessionID: session.ID,
		Items:     []MenuOrderItemInput{{MenuID: beer.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	negative := int64(-100)
	_, err = f.orders.UpdateOrder(f.ctx, created[0].ID, &UpdateOrderInput{UnitPrice: &negative})
	require.Error(t, err)

	adjustment, err := f.orders.AddAdjustment(f.ctx, session.ID, "値引", 100, true)
	require.NoError(t, err)
	deeper := int64(-300)
	updated, err := f.orders.UpdateOrder(f.ctx, adjustment.ID, &UpdateOrderInput{UnitPrice: &deeper})
	require.NoError(t, err)
	assert.Equal(t, int64(-300), updated.UnitPrice)
}

func TestRecalculateOrder(t *testing.T) {
	f := newTestFixture(t)
	guest := f.seedGuest(t, "佐藤")
	cast := f.seedCast(t, "れい")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start, guest.ID)

	end := start.Add(60 * time.Minute)
	_, err := f.sessions.UpdateTimes(f.ctx, session.ID, start, &end)
	require.NoError(t, err)

	order, err := f.orders.AddCastFee(f.ctx, &AddCastFeeInput{
		SessionID: session.ID,
		Category:  enum.ChargeCategoryHouseFee,
		CastID:    cast.ID,
		GuestID:   &guest.ID,
	})
	require.NoError(t, err)

	// Edit the window past the session end; the recalculation clamps it.
	windowStart := start.Add(20 * time.Minute)
	windowEnd := end.Add(time.Hour)
	_, err = f.orders.UpdateOrder(f.ctx, order.ID, &UpdateOrderInput{
		StartTime: &windowStart,
		EndTime:   &windowEnd,
	})
	require.NoError(t, err)

	recalced, err := f.orders.RecalculateOrder(f.ctx, order.ID)
	require.NoError(t, err)

	// 40 billable minutes on a 30-minute house block.
	assert.Equal(t, 2, recalced.Quantity)
	assert.Equal(t, int64(1500), recalced.UnitPrice)
	require.NotNil(t, recalced.EndTime)
	assert.True(t, recalced.EndTime.Equal(end))
}

func TestRecalculateOrder_CrossMidnightWindow(t *testing.T) {
	f := newTestFixture(t)
	cast := f.seedCast(t, "れい")
	start := time.Date(2025, 11, 14, 22, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	end := time.Date(2025, 11, 15, 2, 0, 0, 0, time.UTC)
	_, err := f.sessions.UpdateTimes(f.ctx, session.ID, start, &end)
	require.NoError(t, err)

	order, err := f.orders.AddCastFee(f.ctx, &AddCastFeeInput{
		SessionID: session.ID,
		Category:  enum.ChargeCategoryHouseFee,
		CastID:    cast.ID,
	})
	require.NoError(t, err)

	// The window is entered by clock time: 23:00 to 00:30 with both stamps
	// on the same date. The end reads as past midnight.
	windowStart := time.Date(2025, 11, 14, 23, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2025, 11, 14, 0, 30, 0, 0, time.UTC)
	_, err = f.orders.UpdateOrder(f.ctx, order.ID, &UpdateOrderInput{
		StartTime: &windowStart,
		EndTime:   &windowEnd,
	})
	require.NoError(t, err)

	recalced, err := f.orders.RecalculateOrder(f.ctx, order.ID)
	require.NoError(t, err)

	// 90 minutes on a 30-minute house block.
	assert.Equal(t, 3, recalced.Quantity)
	require.NotNil(t, recalced.EndTime)
	assert.True(t, recalced.EndTime.Equal(windowEnd.Add(24*time.Hour)))
}

func TestRecalculateOrder_RejectsNonCastFee(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	adjustment, err := f.orders.AddAdjustment(f.ctx, session.ID, "値引", 100, true)
	require.NoError(t, err)

	_, err = f.orders.RecalculateOrder(f.ctx, adjustment.ID)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestDeleteOrder(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)
	beer := f.seedMenuItem(t, "ビール", 800)

	created, err := f.orders.AddMenuOrders(f.ctx, &AddMenuOrdersInput{
		SessionID: session.ID,
		Items:     []MenuOrderItemInput{{MenuID: beer.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, f.orders.DeleteOrder(f.ctx, created[0].ID))

	err = f.orders.DeleteOrder(f.ctx, created[0].ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
