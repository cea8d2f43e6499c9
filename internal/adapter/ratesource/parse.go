// Package ratesource loads the boarding rate tables from the business
// spreadsheet: Google Sheets in production, a local XLSX file offline.
// Both sources read the same three worksheets and share the row parsing.
package ratesource

import (
	"sort"
	"strconv"
	"strings"

	"condado_dog/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Worksheet names as kept by the business.
const (
	SheetDaily   = "Diária"
	SheetMonthly = "Mensal"
	SheetLoyalty = "Mensal Fidelidade"
)

// rowsToRateTable parses the daily rate worksheet. The first row is the
// header; rows with non-numeric cells are dropped. The result is sorted
// ascending by unit count.
func rowsToRateTable(rows [][]string) entities.RateTable {
	var table entities.RateTable
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		unitCount, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil || unitCount <= 0 {
			continue
		}
		normal, ok := parseDecimal(row[1])
		if !ok {
			continue
		}
		high, ok := parseDecimal(row[2])
		if !ok {
			continue
		}
		table = append(table, entities.RateTier{
			UnitCount:       unitCount,
			NormalPrice:     normal,
			HighSeasonPrice: high,
		})
	}
	sort.Slice(table, func(i, j int) bool { return table[i].UnitCount < table[j].UnitCount })
	return table
}

// rowsToPlanTable parses a monthly plan worksheet (frequency, price).
func rowsToPlanTable(rows [][]string) entities.MonthlyPlanTable {
	var table entities.MonthlyPlanTable
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}
		frequency, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil || frequency <= 0 {
			continue
		}
		price, ok := parseDecimal(row[1])
		if !ok {
			continue
		}
		table = append(table, entities.MonthlyPlanRow{
			WeeklyFrequency: frequency,
			MonthlyPrice:    price,
		})
	}
	return table
}

// parseDecimal reads a spreadsheet money cell. Cells may carry an "R$"
// prefix and Brazilian separators ("1.234,56").
func parseDecimal(cell string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(cell)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
