package service

import (
	"context"
	"time"

	"strconv"

	"github.com/clubops/clubops-api/internal/domain/enum"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/clubops/clubops-api/pkg/printer"
	"github.com/clubops/clubops-api/pkg/utils"
	"github.com/google/uuid"
)

// PrinterService prints slips to a thermal receipt printer
type PrinterService struct {
	printer        printer.Printer
	sessionService *SessionService
	venueRepo      repository.VenueRepository
	charWidth      int
}

// NewPrinterService creates a new printer service
func NewPrinterService(p printer.Printer, sessionService *SessionService, venueRepo repository.VenueRepository) *PrinterService {
	return &PrinterService{
		printer:        p,
		sessionService: sessionService,
		venueRepo:      venueRepo,
		charWidth:      32,
	}
}

// PrinterStatus reports whether the configured printer is reachable
type PrinterStatus struct {
	Connected bool `json:"connected"`
}

// Status checks the printer connection
func (s *PrinterService) Status() PrinterStatus {
	return PrinterStatus{Connected: s.printer.IsConnected()}
}

// PrintResult describes a completed print job
type PrintResult struct {
	SlipNo    string    `json:"slip_no"`
	PrintedAt time.Time `json:"printed_at"`
}

// PrintSlip renders the session's slip as an ESC/POS document and sends it to
// the printer
func (s *PrinterService) PrintSlip(ctx context.Context, sessionID uuid.UUID) (*PrintResult, error) {
	slip, err := s.sessionService.GetSlip(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	venueName := ""
	if venueID, ok := infraRepo.GetVenueID(ctx); ok {
		venue, err := s.venueRepo.GetByID(ctx, venueID)
		if err == nil && venue != nil {
			venueName = venue.Name
		}
	}

	slipNo := utils.GenerateSlipNo()
	data := s.buildSlipDocument(slip, venueName, slipNo)

	if err := s.printer.Print(data); err != nil {
		return nil, apperror.NewAppError(502, "Failed to print slip: "+err.Error())
	}
	return &PrintResult{SlipNo: slipNo, PrintedAt: time.Now()}, nil
}

// TestPrint sends a short test page
func (s *PrinterService) TestPrint() error {
	doc := printer.NewDocument(s.charWidth)
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text("TEST PRINT").
		SetBold(false).
		Text(time.Now().Format("2006-01-02 15:04")).
		FeedLines(3).
		Cut()
	if err := s.printer.Print(doc.Bytes()); err != nil {
		return apperror.NewAppError(502, "Failed to print test page: "+err.Error())
	}
	return nil
}

func (s *PrinterService) buildSlipDocument(slip *SlipView, venueName, slipNo string) []byte {
	session := slip.Session
	doc := printer.NewDocument(s.charWidth)

	doc.SetAlign(printer.AlignCenter)
	if venueName != "" {
		doc.SetFontSize(printer.FontDouble).Text(venueName).SetFontSize(printer.FontNormal)
	}
	doc.Text("御会計伝票")
	doc.SetAlign(printer.AlignLeft)
	doc.Separator('-')

	doc.KeyValue("No.", slipNo)
	if session.Table != nil {
		doc.KeyValue("テーブル", session.Table.Name)
	}
	doc.KeyValue("来店", session.StartTime.Format("01/02 15:04"))
	if session.EndTime != nil {
		doc.KeyValue("退店", session.EndTime.Format("01/02 15:04"))
	}
	doc.KeyValue("人数", formatCount(session.GuestCount))

	for _, sg := range session.Guests {
		if sg.Guest != nil {
			doc.Text("  " + sg.Guest.Name + " 様")
		}
	}

	doc.Separator('-')
	for _, order := range session.Orders {
		name := order.Name
		if order.Category != enum.ChargeCategoryMenuItem && order.Category != enum.ChargeCategoryAdjustment {
			name = order.Category.Label()
		}
		doc.ItemLine(order.Quantity, name, formatYen(order.LineTotal()))
	}
	doc.Separator('-')

	doc.KeyValue("小計", formatYen(slip.Totals.Subtotal))
	doc.KeyValue("サービス料", formatYen(slip.Totals.ServiceCharge))
	doc.KeyValue("消費税", formatYen(slip.Totals.Tax))
	if slip.Totals.RoundingAdjustment != 0 {
		doc.KeyValue("端数調整", formatYen(slip.Totals.RoundingAdjustment))
	}
	doc.SetBold(true)
	doc.KeyValue("合計", formatYen(slip.Totals.Total))
	doc.SetBold(false)

	doc.FeedLines(2)
	doc.SetAlign(printer.AlignCenter).Text("ご来店ありがとうございました")
	doc.FeedLines(3)
	doc.Cut()

	return doc.Bytes()
}

func formatYen(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	digits := []byte{}
	if amount == 0 {
		digits = append(digits, '0')
	}
	for i := 0; amount > 0; i++ {
		if i > 0 && i%3 == 0 {
			digits = append([]byte{','}, digits...)
		}
		digits = append([]byte{byte('0' + amount%10)}, digits...)
		amount /= 10
	}
	return sign + "¥" + string(digits)
}

func formatCount(n int) string {
	if n < 0 {
		n = 0
	}
	return strconv.Itoa(n) + "名"
}
