package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/clubops/clubops-api/pkg/apperror"
)

func TestOpenSession(t *testing.T) {
	f := newTestFixture(t)
	guestA := f.seedGuest(t, "佐藤")
	guestB := f.seedGuest(t, "鈴木")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)

	session := f.openSession(t, start, guestA.ID, guestB.ID)

	assert.Equal(t, enum.SessionStatusActive, session.Status)
	assert.Equal(t, 2, session.GuestCount)
	assert.Nil(t, session.EndTime)
	// No pricing system given: the venue default applies.
	require.NotNil(t, session.PricingSystemID)
	assert.Equal(t, f.pricing.ID, *session.PricingSystemID)

	require.Len(t, session.Guests, 2)
	assert.Equal(t, guestA.ID, session.Guests[0].GuestID)

	// Each seated guest opens with a set-fee order at the pricing rate.
	setFees := ordersByCategory(session.Orders, enum.ChargeCategorySetFee)
	require.Len(t, setFees, 2)
	for _, o := range setFees {
		assert.Equal(t, int64(5000), o.UnitPrice)
	}
}

func TestOpenSession_TableOccupied(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	f.openSession(t, start)

	_, err := f.sessions.OpenSession(f.ctx, &OpenSessionInput{
		TableID:   f.table.ID,
		StartTime: &start,
	})
	assert.ErrorIs(t, err, apperror.ErrTableOccupied)
}

func TestOpenSession_UnknownTable(t *testing.T) {
	f := newTestFixture(t)
	other := &entity.VenueTable{VenueID: f.venue.ID, Name: "B-1"}
	require.NoError(t, f.db.Create(other).Error)
	require.NoError(t, f.db.Delete(other).Error)

	_, err := f.sessions.OpenSession(f.ctx, &OpenSessionInput{TableID: other.ID})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCheckoutAndReopen(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	closed, err := f.sessions.Checkout(f.ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.SessionStatusCompleted, closed.Status)
	require.NotNil(t, closed.EndTime)

	_, err = f.sessions.Checkout(f.ctx, session.ID)
	assert.ErrorIs(t, err, apperror.ErrSessionClosed)

	reopened, err := f.sessions.Reopen(f.ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.SessionStatusActive, reopened.Status)
	// The stamped end time survives the reopen so totals stay stable.
	require.NotNil(t, reopened.EndTime)

	_, err = f.sessions.Reopen(f.ctx, session.ID)
	require.Error(t, err)
}

func TestCheckout_KeepsExplicitEndTime(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	end := start.Add(2 * time.Hour)
	_, err := f.sessions.UpdateTimes(f.ctx, session.ID, start, &end)
	require.NoError(t, err)

	closed, err := f.sessions.Checkout(f.ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.EndTime)
	assert.True(t, closed.EndTime.Equal(end))
}

func TestUpdateTimes_CrossMidnight(t *testing.T) {
	f := newTestFixture(t)
	start := time.Date(2025, 11, 14, 22, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	// An end clock time before the start reads as past midnight.
	end := time.Date(2025, 11, 14, 1, 0, 0, 0, time.UTC)
	updated, err := f.sessions.UpdateTimes(f.ctx, session.ID, start, &end)
	require.NoError(t, err)

	require.NotNil(t, updated.EndTime)
	assert.Equal(t, 180, updated.DurationMinutes())
}

func TestAddGuest(t *testing.T) {
	f := newTestFixture(t)
	guestA := f.seedGuest(t, "佐藤")
	guestB := f.seedGuest(t, "鈴木")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start, guestA.ID)

	updated, err := f.sessions.AddGuest(f.ctx, session.ID, guestB.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, updated.GuestCount)
	require.Len(t, updated.Guests, 2)
	assert.Len(t, ordersByCategory(updated.Orders, enum.ChargeCategorySetFee), 2)

	_, err = f.sessions.AddGuest(f.ctx, session.ID, guestB.ID)
	require.Error(t, err)
}

func TestRemoveGuest(t *testing.T) {
	f := newTestFixture(t)
	guestA := f.seedGuest(t, "佐藤")
	guestB := f.seedGuest(t, "鈴木")
	cast := f.seedCast(t, "れい")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start, guestA.ID, guestB.ID)

	_, err := f.orders.AddCastFee(f.ctx, &AddCastFeeInput{
		SessionID: session.ID,
		Category:  enum.ChargeCategoryNomination,
		CastID:    cast.ID,
		GuestID:   &guestB.ID,
	})
	require.NoError(t, err)

	slip, err := f.sessions.GetSlip(f.ctx, session.ID)
	require.NoError(t, err)
	rowID := slip.Session.Guests[1].ID
	require.Equal(t, guestB.ID, slip.Session.Guests[1].GuestID)

	updated, err := f.sessions.RemoveGuest(f.ctx, session.ID, rowID)
	require.NoError(t, err)

	assert.Equal(t, 1, updated.GuestCount)
	require.Len(t, updated.Guests, 1)
	assert.Equal(t, guestA.ID, updated.Guests[0].GuestID)

	// The unseated guest's set fee goes; cast fees attributed to them stay.
	setFees := ordersByCategory(updated.Orders, enum.ChargeCategorySetFee)
	require.Len(t, setFees, 1)
	assert.Equal(t, guestA.ID, *setFees[0].GuestID)
	assert.Len(t, ordersByCategory(updated.Orders, enum.ChargeCategoryNomination), 1)
}

func TestGetSlip_DefaultBillingSettings(t *testing.T) {
	f := newTestFixture(t)
	guest := f.seedGuest(t, "佐藤")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start, guest.ID)

	// No settings row saved: billing falls back to 20% service, 10% tax.
	slip, err := f.sessions.GetSlip(f.ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(5000), slip.Totals.Subtotal)
	assert.Equal(t, int64(1000), slip.Totals.ServiceCharge)
	assert.Equal(t, int64(600), slip.Totals.Tax)
	assert.Equal(t, int64(6600), slip.Totals.Total)
}

func TestGetSlip_VenueSettingsApplied(t *testing.T) {
	f := newTestFixture(t)
	guest := f.seedGuest(t, "佐藤")
	require.NoError(t, f.db.Create(&entity.VenueSettings{
		VenueID:             f.venue.ID,
		ServiceChargeRate:   10,
		TaxRate:             10,
		SlipRoundingEnabled: true,
		SlipRoundingMethod:  enum.RoundingMethodFloor,
		SlipRoundingUnit:    100,
	}).Error)

	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start, guest.ID)

	slip, err := f.sessions.GetSlip(f.ctx, session.ID)
	require.NoError(t, err)

	// 5000 + 500 + 550 = 6050, floored to the hundred.
	assert.Equal(t, int64(6050), slip.Totals.PreRoundedTotal)
	assert.Equal(t, int64(6000), slip.Totals.Total)
	assert.Equal(t, int64(-50), slip.Totals.RoundingAdjustment)
}

func TestFloorView(t *testing.T) {
	f := newTestFixture(t)
	free := &entity.VenueTable{VenueID: f.venue.ID, Name: "B-1", SortOrder: 1}
	require.NoError(t, f.db.Create(free).Error)

	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start)

	floor, err := f.sessions.FloorView(f.ctx)
	require.NoError(t, err)
	require.Len(t, floor, 2)

	byName := make(map[string]FloorTable, len(floor))
	for _, ft := range floor {
		byName[ft.Table.Name] = ft
	}
	require.NotNil(t, byName["A-1"].Session)
	assert.Equal(t, session.ID, byName["A-1"].Session.ID)
	assert.Nil(t, byName["B-1"].Session)
}

func TestDeleteSession_RemovesSlip(t *testing.T) {
	f := newTestFixture(t)
	guest := f.seedGuest(t, "佐藤")
	start := time.Date(2025, 11, 14, 20, 0, 0, 0, time.UTC)
	session := f.openSession(t, start, guest.ID)

	require.NoError(t, f.sessions.DeleteSession(f.ctx, session.ID))

	_, err := f.sessions.GetSlip(f.ctx, session.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
