package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
)

// VenueHeader carries the active venue for the request
const VenueHeader = "X-Venue-ID"

// VenueMiddleware resolves the active venue from the X-Venue-ID header,
// checks the authenticated user is a member, and scopes the request context
// to that venue. Requests without the header pass through unscoped; repos
// then fail closed on venue-scoped queries.
func VenueMiddleware(venueRepo repository.VenueRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(VenueHeader)
		if header == "" {
			c.Next()
			return
		}

		venueID, err := uuid.Parse(header)
		if err != nil {
			response.BadRequest(c, "Invalid venue ID")
			c.Abort()
			return
		}

		venue, err := venueRepo.GetByID(infraRepo.WithSkipVenueScope(c.Request.Context(), true), venueID)
		if err != nil || venue == nil {
			response.NotFound(c, "Venue not found")
			c.Abort()
			return
		}

		userIDVal, exists := c.Get("user_id")
		if exists {
			userID, ok := userIDVal.(uuid.UUID)
			if ok && userID != uuid.Nil && !isSuperAdmin(c) {
				isMember, _ := venueRepo.IsMember(c.Request.Context(), venue.ID, userID)
				if !isMember {
					response.Forbidden(c, "Access denied to this venue")
					c.Abort()
					return
				}
			}
		}

		c.Set("venue_id", venue.ID)
		c.Set("venue", venue)

		ctx := infraRepo.WithVenue(c.Request.Context(), venue.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireVenue ensures a valid venue context exists
func RequireVenue() gin.HandlerFunc {
	return func(c *gin.Context) {
		venueID, exists := c.Get("venue_id")
		if !exists {
			response.BadRequest(c, "Venue context required: set the "+VenueHeader+" header")
			c.Abort()
			return
		}

		id, ok := venueID.(uuid.UUID)
		if !ok || id == uuid.Nil {
			response.BadRequest(c, "Invalid venue context")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetVenueID retrieves the venue ID from gin context
func GetVenueID(c *gin.Context) uuid.UUID {
	venueID, exists := c.Get("venue_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := venueID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

func isSuperAdmin(c *gin.Context) bool {
	rolesVal, exists := c.Get("user_roles")
	if !exists {
		return false
	}
	roles, ok := rolesVal.([]string)
	if !ok {
		return false
	}
	for _, role := range roles {
		if role == "super-admin" {
			return true
		}
	}
	return false
}
