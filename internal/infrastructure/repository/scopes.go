package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// VenueIDKey is the context key for venue ID
	VenueIDKey ctxKey = "venue_id"
	// SkipVenueScopeKey is the context key for skipping venue scope (super admin)
	SkipVenueScopeKey ctxKey = "skip_venue_scope"
)

// VenueScope returns a GORM scope that filters by venue
// This should be applied to all queries for venue-scoped entities
// If SkipVenueScopeKey is true in context (super admin), returns all records
func VenueScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		// Check if venue scope should be skipped (super admin)
		if skipScope, ok := ctx.Value(SkipVenueScopeKey).(bool); ok && skipScope {
			return db // Return unfiltered query for super admins
		}

		venueID, ok := ctx.Value(VenueIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if venue context missing
			// This prevents accidental cross-venue data access
			return db.Where("1 = 0")
		}
		return db.Where("venue_id = ?", venueID)
	}
}

// WithSkipVenueScope adds skip venue scope flag to context (for super admins)
func WithSkipVenueScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipVenueScopeKey, skip)
}

// WithVenue adds venue ID to context
func WithVenue(ctx context.Context, venueID uuid.UUID) context.Context {
	return context.WithValue(ctx, VenueIDKey, venueID)
}

// GetVenueID extracts venue ID from context
func GetVenueID(ctx context.Context) (uuid.UUID, bool) {
	venueID, ok := ctx.Value(VenueIDKey).(uuid.UUID)
	return venueID, ok
}
