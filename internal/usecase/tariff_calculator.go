package usecase

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultPenaltyMultiplier is applied to excess hours when no explicit
// multiplier is supplied.
const DefaultPenaltyMultiplier = 1.5

// Volume discount tiers by billed hours.
const (
	discountTierLargeHours  = 24
	discountTierMediumHours = 12
	discountTierSmallHours  = 6

	discountLarge  = 0.20
	discountMedium = 0.10
	discountSmall  = 0.05
)

// TariffCalculator computes hourly/monthly charges and penalty
// amounts. All methods are pure and deterministic; rounding is
// half-up to two decimals.
type TariffCalculator struct{}

func NewTariffCalculator() *TariffCalculator {
	return &TariffCalculator{}
}

// HourlyCharge bills whole hours, rounding the stay up and charging a
// minimum of one hour, then applies the volume discount for the billed
// tier.
func (c *TariffCalculator) HourlyCharge(rate, hoursUsed float64) float64 {
	billedHours := BilledHours(hoursUsed)
	gross := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(billedHours))
	discount := decimal.NewFromFloat(1 - volumeDiscount(billedHours))
	return round2(gross.Mul(discount))
}

// MonthlyCharge bills the full monthly rate from 30 days of use;
// shorter stays are prorated as rate/30 per day.
func (c *TariffCalculator) MonthlyCharge(monthlyRate float64, daysUsed int) float64 {
	if daysUsed >= 30 {
		return round2(decimal.NewFromFloat(monthlyRate))
	}
	prorated := decimal.NewFromFloat(monthlyRate).
		Div(decimal.NewFromInt(30)).
		Mul(decimal.NewFromInt(int64(daysUsed)))
	return round2(prorated)
}

// PenaltyCharge bills rate * ceil(hoursExceeded) * multiplier.
func (c *TariffCalculator) PenaltyCharge(rate, hoursExceeded, multiplier float64) float64 {
	hours := int64(math.Ceil(hoursExceeded))
	if hours < 0 {
		hours = 0
	}
	amount := decimal.NewFromFloat(rate).
		Mul(decimal.NewFromInt(hours)).
		Mul(decimal.NewFromFloat(multiplier))
	return round2(amount)
}

// BilledHours rounds a stay up to whole hours with a minimum of one.
func BilledHours(hoursUsed float64) int64 {
	h := int64(math.Ceil(hoursUsed))
	if h < 1 {
		h = 1
	}
	return h
}

func volumeDiscount(billedHours int64) float64 {
	switch {
	case billedHours >= discountTierLargeHours:
		return discountLarge
	case billedHours >= discountTierMediumHours:
		return discountMedium
	case billedHours >= discountTierSmallHours:
		return discountSmall
	default:
		return 0
	}
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
