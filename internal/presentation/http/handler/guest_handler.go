package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/request"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
)

// GuestHandler handles guest book HTTP requests
type GuestHandler struct {
	guestService *service.GuestService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService *service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

func guestInput(req *request.GuestRequest) *service.GuestInput {
	return &service.GuestInput{
		Name:          req.Name,
		Furigana:      req.Furigana,
		Phone:         req.Phone,
		Birthday:      req.Birthday,
		FavoriteDrink: req.FavoriteDrink,
		Notes:         req.Notes,
	}
}

// Create creates a new guest
func (h *GuestHandler) Create(c *gin.Context) {
	var req request.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := h.guestService.CreateGuest(c.Request.Context(), guestInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Guest created", guest)
}

// Get returns one guest
func (h *GuestHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	guest, err := h.guestService.GetGuest(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest retrieved", guest)
}

// Update updates a guest
func (h *GuestHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guest, err := h.guestService.UpdateGuest(c.Request.Context(), id, guestInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest updated", guest)
}

// Delete removes a guest
func (h *GuestHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.guestService.DeleteGuest(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest deleted", nil)
}

// List returns guests with optional name/phone search
func (h *GuestHandler) List(c *gin.Context) {
	params := GetPaginationParams(c)
	search := c.Query("search")

	result, err := h.guestService.ListGuests(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Guests retrieved", result)
}
