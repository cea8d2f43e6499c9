package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// quarters builds an exact quarter-diária decimal from a count of quarters.
func quarters(n int64) decimal.Decimal {
	return decimal.New(n*25, -2)
}

// BillableUnits converts the elapsed stay duration in hours into the
// number of diárias to bill, applying the grace-tolerance ladder of the
// selected policy. The result is always a non-negative multiple of 0.25.
func BillableUnits(policy TolerancePolicy, totalHours float64) decimal.Decimal {
	if policy == ToleranceFullDay {
		if totalHours <= 0 {
			return decimal.Zero
		}
		if totalHours < 24 {
			// Minimum charge is one full diária, no fractional grace on
			// the first day.
			return quarters(4)
		}
		return ladder(totalHours)
	}

	// Graduated: up to six hours bills a quarter diária.
	if totalHours <= 6 {
		return quarters(1)
	}
	return ladder(totalHours)
}

// ladder applies the residual-hour tolerance bands shared by both
// policies: up to 2h residual is free, then each band adds a quarter.
func ladder(totalHours float64) decimal.Decimal {
	whole := int64(math.Floor(totalHours / 24))
	residual := math.Mod(totalHours, 24)

	q := whole * 4
	switch {
	case residual <= 2:
	case residual <= 6:
		q += 1
	case residual <= 12:
		q += 2
	case residual <= 18:
		q += 3
	default:
		q += 4
	}
	return quarters(q)
}
