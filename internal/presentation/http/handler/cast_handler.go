package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/request"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
)

// CastHandler handles cast roster HTTP requests
type CastHandler struct {
	castService *service.CastService
}

// NewCastHandler creates a new cast handler
func NewCastHandler(castService *service.CastService) *CastHandler {
	return &CastHandler{castService: castService}
}

func castInput(req *request.CastRequest) *service.CastInput {
	return &service.CastInput{
		StageName:  req.StageName,
		RealName:   req.RealName,
		Phone:      req.Phone,
		Photo:      req.Photo,
		HourlyWage: req.HourlyWage,
		BackRate:   req.BackRate,
		Active:     req.Active,
	}
}

// Create creates a new cast
func (h *CastHandler) Create(c *gin.Context) {
	var req request.CastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cast, err := h.castService.CreateCast(c.Request.Context(), castInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cast created", cast)
}

// Get returns one cast
func (h *CastHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	cast, err := h.castService.GetCast(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cast retrieved", cast)
}

// Update updates a cast
func (h *CastHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.CastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cast, err := h.castService.UpdateCast(c.Request.Context(), id, castInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cast updated", cast)
}

// Delete removes a cast
func (h *CastHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.castService.DeleteCast(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cast deleted", nil)
}

// List returns casts with optional search
func (h *CastHandler) List(c *gin.Context) {
	params := GetPaginationParams(c)
	search := c.Query("search")

	result, err := h.castService.ListCasts(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Casts retrieved", result)
}
