// Package pricing implements the boarding pricing engine: the
// duration-to-diária tolerance conversion, the tiered daily rate
// calculation and the monthly daycare plan discount.
//
// Every function here is pure: no I/O, no shared state, safe for
// concurrent use. Rate tables are passed in as immutable snapshots.
package pricing

import "fmt"

// TolerancePolicy selects how elapsed hours convert into billed diárias.
// Two generations of the business rule coexist and are kept as explicit,
// configurable strategies.
type TolerancePolicy string

const (
	// ToleranceGraduated charges a fractional first day: any stay up to
	// six hours bills a quarter diária.
	ToleranceGraduated TolerancePolicy = "graduated"

	// ToleranceFullDay charges at least one full diária for any positive
	// stay; the grace ladder only applies past the first 24 hours.
	ToleranceFullDay TolerancePolicy = "full_day"
)

// ProrationPolicy selects how a monthly plan price is spread into a
// per-visit discount value.
type ProrationPolicy string

const (
	// ProrationFixedFourWeeks divides the monthly price by frequency×4.
	ProrationFixedFourWeeks ProrationPolicy = "fixed_four_weeks"

	// ProrationCalendarMonth divides the monthly price by the actual
	// number of plan days in the calendar month of check-in, accounting
	// for months with four or five occurrences of a weekday.
	ProrationCalendarMonth ProrationPolicy = "calendar_month"
)

// Policy bundles the strategy choices for one calculation.
type Policy struct {
	Tolerance TolerancePolicy
	Proration ProrationPolicy
}

// ParseTolerancePolicy validates a configured tolerance policy name.
func ParseTolerancePolicy(s string) (TolerancePolicy, error) {
	switch TolerancePolicy(s) {
	case ToleranceGraduated, ToleranceFullDay:
		return TolerancePolicy(s), nil
	}
	return "", fmt.Errorf("unknown tolerance policy %q", s)
}

// ParseProrationPolicy validates a configured proration policy name.
func ParseProrationPolicy(s string) (ProrationPolicy, error) {
	switch ProrationPolicy(s) {
	case ProrationFixedFourWeeks, ProrationCalendarMonth:
		return ProrationPolicy(s), nil
	}
	return "", fmt.Errorf("unknown proration policy %q", s)
}
