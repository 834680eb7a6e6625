package service

import (
	"context"
	"sort"
	"time"

	"github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/google/uuid"
)

// ReportService builds read-side reports: cast payroll and sales ranking
type ReportService struct {
	orderRepo      repository.OrderRepository
	attendanceRepo repository.AttendanceRepository
	castRepo       repository.CastRepository
}

// NewReportService creates a new report service
func NewReportService(
	orderRepo repository.OrderRepository,
	attendanceRepo repository.AttendanceRepository,
	castRepo repository.CastRepository,
) *ReportService {
	return &ReportService{
		orderRepo:      orderRepo,
		attendanceRepo: attendanceRepo,
		castRepo:       castRepo,
	}
}

// PayrollLine is one cast's pay for the period: hourly wage on worked time
// plus the back rate share of attributed sales
type PayrollLine struct {
	CastID          uuid.UUID `json:"cast_id"`
	StageName       string    `json:"stage_name"`
	WorkedMinutes   int       `json:"worked_minutes"`
	Shifts          int       `json:"shifts"`
	HourlyWage      int64     `json:"hourly_wage"`
	WagePay         int64     `json:"wage_pay"`
	AttributedSales int64     `json:"attributed_sales"`
	BackRate        int       `json:"back_rate"`
	BackPay         int64     `json:"back_pay"`
	TotalPay        int64     `json:"total_pay"`
}

// Payroll computes per-cast pay over a period
func (s *ReportService) Payroll(ctx context.Context, from, to time.Time) ([]PayrollLine, error) {
	if !to.After(from) {
		return nil, apperror.NewBadRequestError("Period end must be after period start")
	}

	minutes, err := s.attendanceRepo.SumCastMinutes(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sales, err := s.orderRepo.SumByCast(ctx, from, to)
	if err != nil {
		return nil, err
	}

	lines := make(map[uuid.UUID]*PayrollLine)
	for _, m := range minutes {
		lines[m.CastID] = &PayrollLine{
			CastID:        m.CastID,
			StageName:     m.StageName,
			WorkedMinutes: m.Minutes,
			Shifts:        m.Shifts,
		}
	}
	for _, sale := range sales {
		line, ok := lines[sale.CastID]
		if !ok {
			line = &PayrollLine{CastID: sale.CastID, StageName: sale.StageName}
			lines[sale.CastID] = line
		}
		line.AttributedSales = sale.Total
	}

	result := make([]PayrollLine, 0, len(lines))
	for castID, line := range lines {
		cast, err := s.castRepo.GetByID(ctx, castID)
		if err != nil {
			return nil, err
		}
		if cast == nil {
			continue // cast removed since the period; skip rather than fail the report
		}
		line.HourlyWage = cast.HourlyWage
		line.BackRate = cast.BackRate
		line.WagePay = cast.HourlyWage * int64(line.WorkedMinutes) / 60
		line.BackPay = line.AttributedSales * int64(cast.BackRate) / 100
		line.TotalPay = line.WagePay + line.BackPay
		result = append(result, *line)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TotalPay > result[j].TotalPay
	})
	return result, nil
}

// RankingLine is one cast's position in the sales ranking
type RankingLine struct {
	Rank       int       `json:"rank"`
	CastID     uuid.UUID `json:"cast_id"`
	StageName  string    `json:"stage_name"`
	Total      int64     `json:"total"`
	OrderCount int       `json:"order_count"`
}

// Ranking returns casts ordered by attributed sales over a period
func (s *ReportService) Ranking(ctx context.Context, from, to time.Time) ([]RankingLine, error) {
	if !to.After(from) {
		return nil, apperror.NewBadRequestError("Period end must be after period start")
	}

	sales, err := s.orderRepo.SumByCast(ctx, from, to)
	if err != nil {
		return nil, err
	}

	lines := make([]RankingLine, 0, len(sales))
	for i, sale := range sales {
		lines = append(lines, RankingLine{
			Rank:       i + 1,
			CastID:     sale.CastID,
			StageName:  sale.StageName,
			Total:      sale.Total,
			OrderCount: sale.OrderCount,
		})
	}
	return lines, nil
}
