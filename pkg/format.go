package pkg

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats a monetary value as "R$ 1.234,56": dot as thousands
// separator, comma as decimal separator, always two decimal places.
func FormatBRL(v decimal.Decimal) string {
	s := v.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(intPart) + len(intPart)/3 + 8)
	if neg {
		b.WriteString("-")
	}
	b.WriteString("R$ ")

	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(',')
	b.WriteString(fracPart)

	return b.String()
}

// FormatDiarias renders a quarter-quantized diária count the way the
// business writes it: "2", "¹⁄₄", "1¹⁄₂". Values off the quarter grid fall
// back to a comma-decimal number.
func FormatDiarias(units decimal.Decimal) string {
	whole := units.Truncate(0)
	frac := units.Sub(whole)

	var glyph string
	switch {
	case frac.IsZero():
		return whole.String()
	case frac.Equal(decimal.New(25, -2)):
		glyph = "¹⁄₄"
	case frac.Equal(decimal.New(5, -1)):
		glyph = "¹⁄₂"
	case frac.Equal(decimal.New(75, -2)):
		glyph = "³⁄₄"
	default:
		return strings.Replace(units.StringFixed(2), ".", ",", 1)
	}

	if whole.IsZero() {
		return glyph
	}
	return whole.String() + glyph
}
