package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/enum"
)

func billingSettings() *entity.VenueSettings {
	return &entity.VenueSettings{
		ServiceChargeRate:   20,
		TaxRate:             10,
		SlipRoundingEnabled: true,
		SlipRoundingMethod:  enum.RoundingMethodRound,
		SlipRoundingUnit:    10,
	}
}

func TestCalculateSlipTotals(t *testing.T) {
	// Two guests, 100 minutes on a 60-minute set: two set fees plus two
	// extension blocks billed per head.
	orders := []entity.Order{
		{Category: enum.ChargeCategorySetFee, UnitPrice: 5000, Quantity: 1},
		{Category: enum.ChargeCategorySetFee, UnitPrice: 5000, Quantity: 1},
		{Category: enum.ChargeCategoryExtension, UnitPrice: 3000, Quantity: 2},
		{Category: enum.ChargeCategoryExtension, UnitPrice: 3000, Quantity: 2},
	}

	totals := CalculateSlipTotals(orders, billingSettings())

	assert.Equal(t, int64(22000), totals.Subtotal)
	assert.Equal(t, int64(4400), totals.ServiceCharge)
	assert.Equal(t, int64(2640), totals.Tax)
	assert.Equal(t, int64(29040), totals.PreRoundedTotal)
	assert.Equal(t, int64(29040), totals.Total)
	assert.Equal(t, int64(0), totals.RoundingAdjustment)
}

func TestCalculateSlipTotals_TruncatesBeforeRounding(t *testing.T) {
	orders := []entity.Order{
		{Category: enum.ChargeCategoryMenuItem, UnitPrice: 999, Quantity: 1},
	}

	totals := CalculateSlipTotals(orders, billingSettings())

	// 999 * 20% = 199.8 truncates to 199; (999+199) * 10% = 119.8 truncates
	// to 119. Only the final total is rounded.
	assert.Equal(t, int64(999), totals.Subtotal)
	assert.Equal(t, int64(199), totals.ServiceCharge)
	assert.Equal(t, int64(119), totals.Tax)
	assert.Equal(t, int64(1317), totals.PreRoundedTotal)
	assert.Equal(t, int64(1320), totals.Total)
	assert.Equal(t, int64(3), totals.RoundingAdjustment)
}

func TestCalculateSlipTotals_RoundingMethods(t *testing.T) {
	orders := []entity.Order{
		{Category: enum.ChargeCategoryMenuItem, UnitPrice: 1001, Quantity: 1},
	}
	settings := &entity.VenueSettings{
		ServiceChargeRate:   0,
		TaxRate:             0,
		SlipRoundingEnabled: true,
		SlipRoundingUnit:    100,
	}

	settings.SlipRoundingMethod = enum.RoundingMethodRound
	assert.Equal(t, int64(1000), CalculateSlipTotals(orders, settings).Total)

	settings.SlipRoundingMethod = enum.RoundingMethodCeil
	assert.Equal(t, int64(1100), CalculateSlipTotals(orders, settings).Total)

	settings.SlipRoundingMethod = enum.RoundingMethodFloor
	totals := CalculateSlipTotals(orders, settings)
	assert.Equal(t, int64(1000), totals.Total)
	assert.Equal(t, int64(-1), totals.RoundingAdjustment)
}

func TestCalculateSlipTotals_RoundingDisabled(t *testing.T) {
	orders := []entity.Order{
		{Category: enum.ChargeCategoryMenuItem, UnitPrice: 999, Quantity: 1},
	}
	settings := billingSettings()
	settings.SlipRoundingEnabled = false

	totals := CalculateSlipTotals(orders, settings)

	assert.Equal(t, int64(1317), totals.Total)
	assert.Equal(t, int64(0), totals.RoundingAdjustment)
}

func TestCalculateSlipTotals_SubtractiveAdjustment(t *testing.T) {
	orders := []entity.Order{
		{Category: enum.ChargeCategorySetFee, UnitPrice: 5000, Quantity: 2},
		{Category: enum.ChargeCategoryAdjustment, UnitPrice: -1000, Quantity: 1},
	}

	totals := CalculateSlipTotals(orders, billingSettings())

	// The discount lands in the subtotal, so service charge and tax shrink
	// with it.
	assert.Equal(t, int64(9000), totals.Subtotal)
	assert.Equal(t, int64(1800), totals.ServiceCharge)
	assert.Equal(t, int64(1080), totals.Tax)
	assert.Equal(t, int64(11880), totals.Total)
}

func TestCalculateSlipTotals_NegativeSubtotalFloors(t *testing.T) {
	// A discount larger than the charges drives the subtotal negative; the
	// percentage cuts still floor instead of truncating toward zero.
	orders := []entity.Order{
		{Category: enum.ChargeCategoryMenuItem, UnitPrice: 1, Quantity: 1},
		{Category: enum.ChargeCategoryAdjustment, UnitPrice: -1000, Quantity: 1},
	}
	settings := billingSettings()
	settings.SlipRoundingEnabled = false

	totals := CalculateSlipTotals(orders, settings)

	assert.Equal(t, int64(-999), totals.Subtotal)
	// floor(-999 * 0.20) = -200, not -199.
	assert.Equal(t, int64(-200), totals.ServiceCharge)
	// floor(-1199 * 0.10) = -120, not -119.
	assert.Equal(t, int64(-120), totals.Tax)
	assert.Equal(t, int64(-1319), totals.Total)
}

func TestCalculateSlipTotals_Empty(t *testing.T) {
	totals := CalculateSlipTotals(nil, billingSettings())
	assert.Equal(t, int64(0), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Total)
}

func TestRoundingMethodApply(t *testing.T) {
	cases := []struct {
		name   string
		method enum.RoundingMethod
		value  int64
		unit   int64
		want   int64
	}{
		{"round up at half", enum.RoundingMethodRound, 1005, 10, 1010},
		{"round down below half", enum.RoundingMethodRound, 1004, 10, 1000},
		{"ceil", enum.RoundingMethodCeil, 1001, 10, 1010},
		{"floor", enum.RoundingMethodFloor, 1009, 10, 1000},
		{"exact multiple untouched", enum.RoundingMethodCeil, 1000, 10, 1000},
		{"unit one is a no-op", enum.RoundingMethodCeil, 1234, 1, 1234},
		{"unit zero is a no-op", enum.RoundingMethodFloor, 1234, 0, 1234},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.method.Apply(tc.value, tc.unit))
		})
	}
}
