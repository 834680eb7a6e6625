package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
)

// ReportHandler handles payroll and ranking report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// reportPeriod reads from/to query dates. The default period is the current
// month to date. The `to` bound is exclusive, advanced one day past the
// given date so that day's sessions are included.
func reportPeriod(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
			return from, to, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
			return from, to, false
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, true
}

// Payroll returns per-cast pay over a period
func (h *ReportHandler) Payroll(c *gin.Context) {
	from, to, ok := reportPeriod(c)
	if !ok {
		return
	}

	lines, err := h.reportService.Payroll(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payroll retrieved", gin.H{
		"from":  from,
		"to":    to,
		"lines": lines,
	})
}

// Ranking returns casts ordered by attributed sales over a period
func (h *ReportHandler) Ranking(c *gin.Context) {
	from, to, ok := reportPeriod(c)
	if !ok {
		return
	}

	lines, err := h.reportService.Ranking(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ranking retrieved", gin.H{
		"from":  from,
		"to":    to,
		"lines": lines,
	})
}
