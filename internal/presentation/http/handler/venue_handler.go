package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/request"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
	"github.com/clubops/clubops-api/internal/presentation/http/middleware"
)

// VenueHandler handles venue and membership HTTP requests
type VenueHandler struct {
	venueService *service.VenueService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(venueService *service.VenueService) *VenueHandler {
	return &VenueHandler{venueService: venueService}
}

// Create creates a new venue owned by the authenticated user
func (h *VenueHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	venue, err := h.venueService.CreateVenue(c.Request.Context(), &service.CreateVenueInput{
		Name:    req.Name,
		Slug:    req.Slug,
		OwnerID: *userID,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Venue created", venue)
}

// ListMine returns the venues the authenticated user belongs to
func (h *VenueHandler) ListMine(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	params := GetPaginationParams(c)
	result, err := h.venueService.GetUserVenues(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Venues retrieved", result)
}

// GetCurrent returns the venue selected by the X-Venue-ID header
func (h *VenueHandler) GetCurrent(c *gin.Context) {
	venueID := middleware.GetVenueID(c)
	if venueID == uuid.Nil {
		response.BadRequest(c, "Venue context required")
		return
	}

	venue, err := h.venueService.GetVenue(c.Request.Context(), venueID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Venue retrieved", venue)
}

// UpdateCurrent updates the selected venue
func (h *VenueHandler) UpdateCurrent(c *gin.Context) {
	venueID := middleware.GetVenueID(c)
	if venueID == uuid.Nil {
		response.BadRequest(c, "Venue context required")
		return
	}

	var req request.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	venue, err := h.venueService.UpdateVenue(c.Request.Context(), venueID, &service.UpdateVenueInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Venue updated", venue)
}

// DeleteCurrent removes the selected venue
func (h *VenueHandler) DeleteCurrent(c *gin.Context) {
	venueID := middleware.GetVenueID(c)
	if venueID == uuid.Nil {
		response.BadRequest(c, "Venue context required")
		return
	}

	if err := h.venueService.DeleteVenue(c.Request.Context(), venueID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Venue deleted", nil)
}

// ListMembers returns the selected venue's members
func (h *VenueHandler) ListMembers(c *gin.Context) {
	venueID := middleware.GetVenueID(c)
	if venueID == uuid.Nil {
		response.BadRequest(c, "Venue context required")
		return
	}

	members, err := h.venueService.GetVenueMembers(c.Request.Context(), venueID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Members retrieved", members)
}

// InviteMember adds a user to the selected venue
func (h *VenueHandler) InviteMember(c *gin.Context) {
	venueID := middleware.GetVenueID(c)
	if venueID == uuid.Nil {
		response.BadRequest(c, "Venue context required")
		return
	}

	var req request.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	memberID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.venueService.InviteMember(c.Request.Context(), &service.InviteMemberInput{
		VenueID: venueID,
		UserID:  memberID,
		Role:    req.Role,
	}); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Member invited", nil)
}

// UpdateMemberRole changes a member's role in the selected venue
func (h *VenueHandler) UpdateMemberRole(c *gin.Context) {
	venueID := middleware.GetVenueID(c)
	if venueID == uuid.Nil {
		response.BadRequest(c, "Venue context required")
		return
	}

	memberID, ok := ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req request.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.venueService.UpdateMemberRole(c.Request.Context(), venueID, memberID, req.Role); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member role updated", nil)
}

// RemoveMember removes a user from the selected venue
func (h *VenueHandler) RemoveMember(c *gin.Context) {
	venueID := middleware.GetVenueID(c)
	if venueID == uuid.Nil {
		response.BadRequest(c, "Venue context required")
		return
	}

	memberID, ok := ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := h.venueService.RemoveMember(c.Request.Context(), venueID, memberID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Member removed", nil)
}
