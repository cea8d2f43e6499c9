package ratesource

import (
	"context"
	"fmt"

	"condado_dog/internal/domain/entities"
	"condado_dog/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

// XLSXRateSource reads the rate tables from a local .xlsx copy of the
// business spreadsheet. Useful offline and in tests; the worksheet layout
// is identical to the Google Sheets original.
type XLSXRateSource struct {
	path string
}

var _ interfaces.IRateSource = (*XLSXRateSource)(nil)

func NewXLSXRateSource(path string) *XLSXRateSource {
	return &XLSXRateSource{path: path}
}

func (s *XLSXRateSource) LoadRateTables(_ context.Context) (entities.RateTables, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return entities.RateTables{}, fmt.Errorf("failed to open rates workbook %q: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	daily, err := f.GetRows(SheetDaily)
	if err != nil {
		return entities.RateTables{}, fmt.Errorf("failed to read worksheet %q: %w", SheetDaily, err)
	}
	monthly, err := f.GetRows(SheetMonthly)
	if err != nil {
		return entities.RateTables{}, fmt.Errorf("failed to read worksheet %q: %w", SheetMonthly, err)
	}
	loyalty, err := f.GetRows(SheetLoyalty)
	if err != nil {
		return entities.RateTables{}, fmt.Errorf("failed to read worksheet %q: %w", SheetLoyalty, err)
	}

	return entities.RateTables{
		Daily:   rowsToRateTable(daily),
		Monthly: rowsToPlanTable(monthly),
		Loyalty: rowsToPlanTable(loyalty),
	}, nil
}
