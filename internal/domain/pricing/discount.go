package pricing

import (
	"errors"
	"time"

	"condado_dog/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrPlanFrequencyNotFound reports that the plan table has no row for the
// requested weekly frequency. The discount defaults to zero; callers log
// a warning and keep the base price untouched.
var ErrPlanFrequencyNotFound = errors.New("no plan row for the requested weekly frequency")

// Discount is the outcome of the daycare plan proration over a stay.
type Discount struct {
	Amount           decimal.Decimal
	MatchingDayCount int
}

var zeroDiscount = Discount{Amount: decimal.Zero}

// ComputeDiscount prorates the client's monthly daycare plan into a
// per-visit value and applies it to every stay date whose weekday is in
// the plan. An empty weekday set means no discount regardless of client
// tier.
func ComputeDiscount(planWeekdays []time.Weekday, plan entities.MonthlyPlanTable, dogCount int, checkIn, checkOut time.Time, policy ProrationPolicy) (Discount, error) {
	days := dedupeWeekdays(planWeekdays)
	if len(days) == 0 || len(plan) == 0 {
		return zeroDiscount, nil
	}

	frequency := len(days)
	row, ok := plan.Row(frequency)
	if !ok {
		return zeroDiscount, ErrPlanFrequencyNotFound
	}

	var planDaysInMonth int
	if policy == ProrationCalendarMonth {
		for d := range days {
			planDaysInMonth += weekdayOccurrences(checkIn, d)
		}
	} else {
		planDaysInMonth = frequency * 4
	}
	perDay := row.MonthlyPrice.Div(decimal.NewFromInt(int64(planDaysInMonth)))

	matching := 0
	start := dateOf(checkIn)
	end := dateOf(checkOut)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if days[d.Weekday()] {
			matching++
		}
	}

	amount := perDay.Mul(decimal.NewFromInt(int64(matching))).Mul(decimal.NewFromInt(int64(dogCount)))
	return Discount{Amount: amount, MatchingDayCount: matching}, nil
}

func dedupeWeekdays(in []time.Weekday) map[time.Weekday]bool {
	out := make(map[time.Weekday]bool, len(in))
	for _, d := range in {
		out[d] = true
	}
	return out
}

// weekdayOccurrences counts how many times the weekday occurs in the
// calendar month containing ref (3, 4 or 5 depending on month layout).
func weekdayOccurrences(ref time.Time, day time.Weekday) int {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	count := 0
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == day {
			count++
		}
	}
	return count
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
