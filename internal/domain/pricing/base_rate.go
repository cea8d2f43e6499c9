package pricing

import (
	"errors"
	"time"

	"condado_dog/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRateTable  = errors.New("empty daily rate table")
	ErrInvalidDogCount = errors.New("dog count must be positive")
	ErrInvalidPeriod   = errors.New("check-out must be after check-in")
)

// BaseQuote is the gross price of a stay before any plan discount.
type BaseQuote struct {
	BillableUnits decimal.Decimal
	UnitPrice     decimal.Decimal
	GrossTotal    decimal.Decimal
}

// ComputeBase prices a stay against the daily rate table.
//
// Invalid input (empty table, non-positive dog count, check-out not after
// check-in) yields a nil quote and a sentinel error; these are expected
// business conditions, never panics.
func ComputeBase(table entities.RateTable, dogCount int, checkIn, checkOut time.Time, highSeason bool, policy TolerancePolicy) (*BaseQuote, error) {
	if len(table) == 0 {
		return nil, ErrEmptyRateTable
	}
	if dogCount <= 0 {
		return nil, ErrInvalidDogCount
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidPeriod
	}

	totalHours := checkOut.Sub(checkIn).Hours()
	units := BillableUnits(policy, totalHours)

	// Rate selection always prices against at least the 1-diária tier.
	lookupTier := int(units.IntPart())
	if lookupTier < 1 {
		lookupTier = 1
	}
	unitPrice := tierPrice(table, lookupTier, highSeason)

	dogs := decimal.NewFromInt(int64(dogCount))

	var gross decimal.Decimal
	if policy == ToleranceFullDay {
		// Whole diárias earn their volume-tier rate; a fractional
		// remainder is billed at the single-diária rate so fractions
		// never benefit from bulk pricing.
		whole := units.Truncate(0)
		frac := units.Sub(whole)
		gross = whole.Mul(tierPrice(table, int(whole.IntPart()), highSeason))
		if !frac.IsZero() {
			gross = gross.Add(frac.Mul(tierPrice(table, 1, highSeason)))
		}
		gross = gross.Mul(dogs)
	} else {
		// Graduated policy prices the entire fractional quantity at the
		// matched tier's rate.
		gross = units.Mul(unitPrice).Mul(dogs)
	}

	return &BaseQuote{
		BillableUnits: units,
		UnitPrice:     unitPrice,
		GrossTotal:    gross,
	}, nil
}

// tierPrice resolves the price for a whole-diária count: exact tier match
// when present, otherwise the highest tier at or below it. A count beyond
// the table's last tier clamps to that tier, never extrapolates. A count
// below the first tier falls back to the first tier.
func tierPrice(table entities.RateTable, unitCount int, highSeason bool) decimal.Decimal {
	best := table[0]
	for _, tier := range table {
		if tier.UnitCount == unitCount {
			return tier.Price(highSeason)
		}
		if tier.UnitCount < unitCount && tier.UnitCount > best.UnitCount {
			best = tier
		}
	}
	return best.Price(highSeason)
}
