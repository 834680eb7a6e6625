package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/request"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
)

// OrderHandler handles slip order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// AddMenuOrders appends menu item orders to a session's slip
// @Summary Add menu orders
// @Tags orders
// @Param request body request.AddMenuOrdersRequest true "Order lines"
// @Success 201 {object} response.APIResponse
// @Router /sessions/{id}/orders [post]
func (h *OrderHandler) AddMenuOrders(c *gin.Context) {
	sessionID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddMenuOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.MenuOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		menuID, err := uuid.Parse(item.MenuID)
		if err != nil {
			response.BadRequest(c, "Invalid menu ID")
			return
		}
		items = append(items, service.MenuOrderItemInput{MenuID: menuID, Quantity: item.Quantity})
	}

	orders, err := h.orderService.AddMenuOrders(c.Request.Context(), &service.AddMenuOrdersInput{
		SessionID: sessionID,
		Items:     items,
		GuestID:   ParseOptionalUUID(req.GuestID),
		CastID:    ParseOptionalUUID(req.CastID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Orders added", orders)
}

// AddCharge appends a manual set-fee or extension line
func (h *OrderHandler) AddCharge(c *gin.Context) {
	sessionID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.AddCharge(c.Request.Context(), sessionID, req.Category, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Charge added", order)
}

// AddCastFee appends a nomination, douhan or house fee
func (h *OrderHandler) AddCastFee(c *gin.Context) {
	sessionID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddCastFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	castID, err := uuid.Parse(req.CastID)
	if err != nil {
		response.BadRequest(c, "Invalid cast ID")
		return
	}

	order, err := h.orderService.AddCastFee(c.Request.Context(), &service.AddCastFeeInput{
		SessionID: sessionID,
		Category:  req.Category,
		CastID:    castID,
		GuestID:   ParseOptionalUUID(req.GuestID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cast fee added", order)
}

// SetGuestFee overrides one seated guest's set fee amount
func (h *OrderHandler) SetGuestFee(c *gin.Context) {
	sessionID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.GuestSetFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	order, err := h.orderService.UpsertGuestSetFee(c.Request.Context(), sessionID, guestID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest set fee updated", order)
}

// AddAdjustment appends a named surcharge or discount line
func (h *OrderHandler) AddAdjustment(c *gin.Context) {
	sessionID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.AddAdjustment(c.Request.Context(), sessionID, req.Name, req.Amount, req.Subtractive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Adjustment added", order)
}

// List returns all orders on a session's slip
func (h *OrderHandler) List(c *gin.Context) {
	sessionID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	orders, err := h.orderService.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved", orders)
}

// Update applies an inline edit to one order
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "order_id")
	if !ok {
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), id, &service.UpdateOrderInput{
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
		CastID:    ParseOptionalUUID(req.CastID),
		GuestID:   ParseOptionalUUID(req.GuestID),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated", order)
}

// Recalculate reprices one cast-fee order from its time window
func (h *OrderHandler) Recalculate(c *gin.Context) {
	id, ok := ParseIDParam(c, "order_id")
	if !ok {
		return
	}

	order, err := h.orderService.RecalculateOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order recalculated", order)
}

// Delete removes one order
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "order_id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted", nil)
}
