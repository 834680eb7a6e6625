package service

import (
	"github.com/clubops/clubops-api/internal/domain/entity"
)

// SlipTotals is the bill breakdown for one session, all amounts in yen.
// Total is the amount actually charged; RoundingAdjustment is the difference
// the rounding policy introduced (negative when rounded down).
type SlipTotals struct {
	Subtotal           int64 `json:"subtotal"`
	ServiceCharge      int64 `json:"service_charge"`
	Tax                int64 `json:"tax"`
	PreRoundedTotal    int64 `json:"pre_rounded_total"`
	Total              int64 `json:"total"`
	RoundingAdjustment int64 `json:"rounding_adjustment"`
}

// CalculateSlipTotals computes the bill for a set of slip line items under the
// venue's billing settings. Service charge applies to the subtotal, tax applies
// to subtotal plus service charge, both floored to the yen. The rounding
// policy then snaps the result to the configured unit.
func CalculateSlipTotals(orders []entity.Order, settings *entity.VenueSettings) SlipTotals {
	var subtotal int64
	for i := range orders {
		subtotal += orders[i].LineTotal()
	}

	serviceCharge := floorPercent(subtotal, settings.ServiceChargeRate)
	tax := floorPercent(subtotal+serviceCharge, settings.TaxRate)
	preRounded := subtotal + serviceCharge + tax

	total := preRounded
	if settings.SlipRoundingEnabled {
		total = settings.SlipRoundingMethod.Apply(preRounded, settings.SlipRoundingUnit)
	}

	return SlipTotals{
		Subtotal:           subtotal,
		ServiceCharge:      serviceCharge,
		Tax:                tax,
		PreRoundedTotal:    preRounded,
		Total:              total,
		RoundingAdjustment: total - preRounded,
	}
}

// floorPercent takes rate percent of amount, flooring toward negative
// infinity. Integer division alone truncates toward zero, which would round a
// discount-heavy negative subtotal the wrong way.
func floorPercent(amount int64, rate int) int64 {
	v := amount * int64(rate)
	q := v / 100
	if v%100 != 0 && v < 0 {
		q--
	}
	return q
}
