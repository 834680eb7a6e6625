package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/request"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
)

// AttendanceHandler handles shift clock HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// ClockIn opens a shift for a cast or staff user
func (h *AttendanceHandler) ClockIn(c *gin.Context) {
	var req request.ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	attendance, err := h.attendanceService.ClockIn(c.Request.Context(), &service.ClockInInput{
		UserID:  ParseOptionalUUID(req.UserID),
		CastID:  ParseOptionalUUID(req.CastID),
		ClockIn: req.ClockIn,
		Note:    req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Clocked in", attendance)
}

// ClockOut closes an open shift
func (h *AttendanceHandler) ClockOut(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.ClockOutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	attendance, err := h.attendanceService.ClockOut(c.Request.Context(), id, req.ClockOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Clocked out", attendance)
}

// ListByDate returns the attendance sheet for one work date
func (h *AttendanceHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	workDate := time.Now().Truncate(24 * time.Hour)
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		workDate = parsed
	}

	sheet, err := h.attendanceService.ListByDate(c.Request.Context(), workDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance retrieved", sheet)
}

// Delete removes an attendance record
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Attendance deleted", nil)
}
