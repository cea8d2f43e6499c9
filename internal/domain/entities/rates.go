package entities

import "github.com/shopspring/decimal"

// RateTier is one row of the daily rate table (worksheet "Diária").
//
// UnitCount is the whole number of diárias the tier is keyed by; the two
// price columns are the per-dog, per-diária price in normal and high
// season.
type RateTier struct {
	UnitCount       int
	NormalPrice     decimal.Decimal
	HighSeasonPrice decimal.Decimal
}

// Price returns the tier price for the requested season column.
func (t RateTier) Price(highSeason bool) decimal.Decimal {
	if highSeason {
		return t.HighSeasonPrice
	}
	return t.NormalPrice
}

// RateTable is the full daily rate table, sorted ascending by UnitCount.
// UnitCount values are unique; an empty table makes every lookup fail
// upstream (the engine reports it as an input error, never panics).
type RateTable []RateTier

// MonthlyPlanRow is one row of a monthly daycare plan table
// (worksheets "Mensal" and "Mensal Fidelidade"): the monthly price for a
// plan of WeeklyFrequency visits per week.
type MonthlyPlanRow struct {
	WeeklyFrequency int
	MonthlyPrice    decimal.Decimal
}

// MonthlyPlanTable holds the plan rows for one client tier.
// WeeklyFrequency values are unique within a table.
type MonthlyPlanTable []MonthlyPlanRow

// Row returns the plan row for the given weekly frequency.
func (t MonthlyPlanTable) Row(weeklyFrequency int) (MonthlyPlanRow, bool) {
	for _, r := range t {
		if r.WeeklyFrequency == weeklyFrequency {
			return r, true
		}
	}
	return MonthlyPlanRow{}, false
}

// RateTables is the immutable rate snapshot a calculation runs against.
// It is loaded once per request from the rate source and passed by value;
// concurrent calculations over the same snapshot never interfere.
type RateTables struct {
	Daily   RateTable
	Monthly MonthlyPlanTable
	Loyalty MonthlyPlanTable
}

// PlanFor selects the monthly plan table for a client tier. Avulso
// clients have no plan.
func (r RateTables) PlanFor(ct ClientType) (MonthlyPlanTable, bool) {
	switch ct {
	case ClientTypeMensal:
		return r.Monthly, true
	case ClientTypeMensalFidelidade:
		return r.Loyalty, true
	default:
		return nil, false
	}
}
