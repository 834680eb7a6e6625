package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/request"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
)

// PricingHandler handles pricing system HTTP requests
type PricingHandler struct {
	pricingService *service.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService *service.PricingService) *PricingHandler {
	return &PricingHandler{pricingService: pricingService}
}

func pricingInput(req *request.PricingSystemRequest) *service.PricingSystemInput {
	return &service.PricingSystemInput{
		Name:                  req.Name,
		SetFee:                req.SetFee,
		SetDurationMinutes:    req.SetDurationMinutes,
		ExtensionFee:          req.ExtensionFee,
		ExtensionDurationMins: req.ExtensionDurationMins,
		NominationFee:         req.NominationFee,
		NominationSetMinutes:  req.NominationSetMinutes,
		HouseFee:              req.HouseFee,
		HouseSetMinutes:       req.HouseSetMinutes,
		DouhanFee:             req.DouhanFee,
		IsDefault:             req.IsDefault,
	}
}

// Create creates a new pricing system
func (h *PricingHandler) Create(c *gin.Context) {
	var req request.PricingSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ps, err := h.pricingService.CreatePricingSystem(c.Request.Context(), pricingInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Pricing system created", ps)
}

// Get returns one pricing system
func (h *PricingHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	ps, err := h.pricingService.GetPricingSystem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing system retrieved", ps)
}

// Update updates a pricing system
func (h *PricingHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.PricingSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	ps, err := h.pricingService.UpdatePricingSystem(c.Request.Context(), id, pricingInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing system updated", ps)
}

// Delete removes a pricing system
func (h *PricingHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.pricingService.DeletePricingSystem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing system deleted", nil)
}

// List returns all pricing systems
func (h *PricingHandler) List(c *gin.Context) {
	systems, err := h.pricingService.ListPricingSystems(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Pricing systems retrieved", systems)
}
