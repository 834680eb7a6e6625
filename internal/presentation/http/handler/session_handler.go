package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/request"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
	"github.com/clubops/clubops-api/pkg/pagination"
)

// SessionHandler handles table session and slip HTTP requests
type SessionHandler struct {
	sessionService *service.SessionService
	chargeService  *service.ChargeService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService, chargeService *service.ChargeService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		chargeService:  chargeService,
	}
}

// Open opens a new session on a table
// @Summary Open session
// @Tags sessions
// @Param request body request.OpenSessionRequest true "Session data"
// @Success 201 {object} response.APIResponse
// @Router /sessions [post]
func (h *SessionHandler) Open(c *gin.Context) {
	var req request.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	tableID, err := uuid.Parse(req.TableID)
	if err != nil {
		response.BadRequest(c, "Invalid table ID")
		return
	}

	guestIDs := make([]uuid.UUID, 0, len(req.GuestIDs))
	for _, raw := range req.GuestIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid guest ID")
			return
		}
		guestIDs = append(guestIDs, id)
	}

	session, err := h.sessionService.OpenSession(c.Request.Context(), &service.OpenSessionInput{
		TableID:         tableID,
		GuestCount:      req.GuestCount,
		StartTime:       req.StartTime,
		PricingSystemID: ParseOptionalUUID(req.PricingSystemID),
		GuestIDs:        guestIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Session opened", session)
}

// GetSlip returns the full slip for a session
func (h *SessionHandler) GetSlip(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	slip, err := h.sessionService.GetSlip(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Slip retrieved", slip)
}

// List returns sessions matching the given filters
func (h *SessionHandler) List(c *gin.Context) {
	var req request.ListSessionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SessionFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
	}
	params.Pagination.Validate()

	if req.Status != nil {
		switch *req.Status {
		case "active":
			s := enum.SessionStatusActive
			params.Status = &s
		case "completed":
			s := enum.SessionStatusCompleted
			params.Status = &s
		default:
			response.BadRequest(c, "Invalid status filter")
			return
		}
	}
	params.TableID = ParseOptionalUUID(req.TableID)
	if req.StartDate != nil {
		t, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			response.BadRequest(c, "Invalid start_date")
			return
		}
		params.StartDate = &t
	}
	if req.EndDate != nil {
		t, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end_date")
			return
		}
		params.EndDate = &t
	}

	sessions, total, err := h.sessionService.ListSessions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(sessions,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Sessions retrieved", result)
}

// Floor returns every table with its active session, if any
func (h *SessionHandler) Floor(c *gin.Context) {
	floor, err := h.sessionService.FloorView(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Floor retrieved", floor)
}

// Update applies a partial slip header update
func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.sessionService.UpdateHeader(c.Request.Context(), id, &service.UpdateHeaderInput{
		TableID:         ParseOptionalUUID(req.TableID),
		GuestCount:      req.GuestCount,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		PricingSystemID: ParseOptionalUUID(req.PricingSystemID),
		MainGuestID:     ParseOptionalUUID(req.MainGuestID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session updated", session)
}

// UpdateTimes changes the session time window
func (h *SessionHandler) UpdateTimes(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateSessionTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.sessionService.UpdateTimes(c.Request.Context(), id, req.StartTime, req.EndTime)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session times updated", session)
}

// Checkout closes an open session
func (h *SessionHandler) Checkout(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.sessionService.Checkout(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session checked out", session)
}

// Reopen reactivates a completed session
func (h *SessionHandler) Reopen(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.sessionService.Reopen(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session reopened", session)
}

// Delete removes a session with its orders and roster
func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sessionService.DeleteSession(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session deleted", nil)
}

// Recalculate wipes and regenerates the session's derived charges
func (h *SessionHandler) Recalculate(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.chargeService.RecalculateSession(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Charges recalculated", session)
}

// AddGuest seats a guest on the session roster
func (h *SessionHandler) AddGuest(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AddSessionGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	guestID, err := uuid.Parse(req.GuestID)
	if err != nil {
		response.BadRequest(c, "Invalid guest ID")
		return
	}

	session, err := h.sessionService.AddGuest(c.Request.Context(), id, guestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest seated", session)
}

// RemoveGuest removes a roster row from the session
func (h *SessionHandler) RemoveGuest(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}
	rowID, ok := ParseIDParam(c, "guest_row_id")
	if !ok {
		return
	}

	session, err := h.sessionService.RemoveGuest(c.Request.Context(), id, rowID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guest removed", session)
}
