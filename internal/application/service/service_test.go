package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
)

// testFixture wires real repositories against an in-memory database so
// service tests exercise the same query paths as production.
type testFixture struct {
	db      *gorm.DB
	ctx     context.Context
	venue   *entity.Venue
	table   *entity.VenueTable
	pricing *entity.PricingSystem

	sessions *SessionService
	orders   *OrderService
	charges  *ChargeService
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.Venue{},
		&entity.VenueMembership{},
		&entity.VenueSettings{},
		&entity.VenueTable{},
		&entity.PricingSystem{},
		&entity.Cast{},
		&entity.Guest{},
		&entity.MenuCategory{},
		&entity.MenuItem{},
		&entity.TableSession{},
		&entity.SessionGuest{},
		&entity.Order{},
	)
	require.NoError(t, err)

	venue := &entity.Venue{Name: "Club Luna", Slug: "club-luna", OwnerID: uuid.New()}
	require.NoError(t, db.Create(venue).Error)

	table := &entity.VenueTable{VenueID: venue.ID, Name: "A-1", Capacity: 4}
	require.NoError(t, db.Create(table).Error)

	pricing := &entity.PricingSystem{
		VenueID:               venue.ID,
		Name:                  "通常セット",
		SetFee:                5000,
		SetDurationMinutes:    60,
		ExtensionFee:          3000,
		ExtensionDurationMins: 30,
		NominationFee:         2000,
		NominationSetMinutes:  60,
		HouseFee:              1500,
		HouseSetMinutes:       30,
		DouhanFee:             4000,
		IsDefault:             true,
	}
	require.NoError(t, db.Create(pricing).Error)

	ctx := infraRepo.WithVenue(context.Background(), venue.ID)

	sessionRepo := infraRepo.NewSessionRepository(db)
	orderRepo := infraRepo.NewOrderRepository(db)
	tableRepo := infraRepo.NewTableRepository(db)
	pricingRepo := infraRepo.NewPricingSystemRepository(db)
	castRepo := infraRepo.NewCastRepository(db)
	guestRepo := infraRepo.NewGuestRepository(db)
	menuRepo := infraRepo.NewMenuRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)

	return &testFixture{
		db:       db,
		ctx:      ctx,
		venue:    venue,
		table:    table,
		pricing:  pricing,
		sessions: NewSessionService(sessionRepo, orderRepo, tableRepo, pricingRepo, guestRepo, settingsRepo),
		orders:   NewOrderService(orderRepo, sessionRepo, menuRepo, pricingRepo, castRepo, guestRepo),
		charges:  NewChargeService(sessionRepo, orderRepo, pricingRepo),
	}
}

func (f *testFixture) seedGuest(t *testing.T, name string) *entity.Guest {
	t.Helper()
	guest := &entity.Guest{VenueID: f.venue.ID, Name: name}
	require.NoError(t, f.db.Create(guest).Error)
	return guest
}

func (f *testFixture) seedCast(t *testing.T, stageName string) *entity.Cast {
	t.Helper()
	cast := &entity.Cast{VenueID: f.venue.ID, StageName: stageName, Active: true}
	require.NoError(t, f.db.Create(cast).Error)
	return cast
}

func (f *testFixture) seedMenuItem(t *testing.T, name string, price int64) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{VenueID: f.venue.ID, Name: name, Price: price, Active: true}
	require.NoError(t, f.db.Create(item).Error)
	return item
}

func (f *testFixture) openSession(t *testing.T, start time.Time, guestIDs ...uuid.UUID) *entity.TableSession {
	t.Helper()
	session, err := f.sessions.OpenSession(f.ctx, &OpenSessionInput{
		TableID:   f.table.ID,
		StartTime: &start,
		GuestIDs:  guestIDs,
	})
	require.NoError(t, err)
	return session
}

func (f *testFixture) sessionOrders(t *testing.T, sessionID uuid.UUID) []entity.Order {
	t.Helper()
	var orders []entity.Order
	require.NoError(t, f.db.Where("session_id = ?", sessionID).Find(&orders).Error)
	return orders
}

func ordersByCategory(orders []entity.Order, category enum.ChargeCategory) []entity.Order {
	var out []entity.Order
	for i := range orders {
		if orders[i].Category == category {
			out = append(out, orders[i])
		}
	}
	return out
}
