package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBillableUnits_Graduated(t *testing.T) {
	cases := []struct {
		name  string
		hours float64
		want  decimal.Decimal
	}{
		{"non-positive duration floors at a quarter", -3, quarters(1)},
		{"zero duration floors at a quarter", 0, quarters(1)},
		{"five hours bills a quarter", 5, quarters(1)},
		{"exactly six hours still a quarter", 6, quarters(1)},
		{"seven hours enters the ladder", 7, quarters(2)},
		{"exact full day", 24, quarters(4)},
		{"one day plus two hours is within grace", 26, quarters(4)},
		{"one day plus six hours adds a quarter", 30, quarters(5)},
		{"one day plus twelve hours adds a half", 36, quarters(6)},
		{"one day plus eighteen hours adds three quarters", 42, quarters(7)},
		{"one day plus nineteen hours rounds to two days", 43, quarters(8)},
		{"two days plus half hour is within grace", 48.5, quarters(8)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BillableUnits(ToleranceGraduated, tc.hours)
			if !got.Equal(tc.want) {
				t.Fatalf("BillableUnits(graduated, %v) = %s, want %s", tc.hours, got, tc.want)
			}
		})
	}
}

func TestBillableUnits_FullDay(t *testing.T) {
	cases := []struct {
		name  string
		hours float64
		want  decimal.Decimal
	}{
		{"non-positive duration is free", -1, decimal.Zero},
		{"zero duration is free", 0, decimal.Zero},
		{"any partial first day rounds to a full diária", 5, quarters(4)},
		{"almost a day rounds to a full diária", 23.9, quarters(4)},
		{"exact full day", 24, quarters(4)},
		{"one day plus two hours is within grace", 26, quarters(4)},
		{"one day plus six hours adds a quarter", 30, quarters(5)},
		{"two days plus residual past grace", 54, quarters(9)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BillableUnits(ToleranceFullDay, tc.hours)
			if !got.Equal(tc.want) {
				t.Fatalf("BillableUnits(full_day, %v) = %s, want %s", tc.hours, got, tc.want)
			}
		})
	}
}

func TestBillableUnits_QuarterGridAndMonotonicity(t *testing.T) {
	policies := []TolerancePolicy{ToleranceGraduated, ToleranceFullDay}
	quarter := decimal.New(25, -2)

	for _, p := range policies {
		prev := decimal.Zero.Sub(decimal.New(1, 0))
		for h := 0.0; h <= 240; h += 0.5 {
			got := BillableUnits(p, h)

			if got.IsNegative() {
				t.Fatalf("%s: BillableUnits(%v) = %s is negative", p, h, got)
			}
			if !got.Mod(quarter).IsZero() {
				t.Fatalf("%s: BillableUnits(%v) = %s is not a multiple of 0.25", p, h, got)
			}
			if got.LessThan(prev) {
				t.Fatalf("%s: BillableUnits not monotonic at %v: %s < %s", p, h, got, prev)
			}
			prev = got
		}
	}
}
