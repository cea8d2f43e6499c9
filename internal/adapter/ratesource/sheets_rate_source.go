package ratesource

import (
	"context"
	"fmt"

	"condado_dog/internal/domain/entities"
	"condado_dog/internal/usecase/interfaces"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsRateSource reads the rate tables from the business Google Sheets
// spreadsheet using a service account.
type SheetsRateSource struct {
	svc           *sheets.Service
	spreadsheetID string
}

var _ interfaces.IRateSource = (*SheetsRateSource)(nil)

// NewSheetsRateSource builds a source for the given spreadsheet.
// credentialsPath is the service account JSON file.
func NewSheetsRateSource(ctx context.Context, credentialsPath, spreadsheetID string) (*SheetsRateSource, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &SheetsRateSource{svc: svc, spreadsheetID: spreadsheetID}, nil
}

func (s *SheetsRateSource) LoadRateTables(ctx context.Context) (entities.RateTables, error) {
	daily, err := s.readSheet(ctx, SheetDaily)
	if err != nil {
		return entities.RateTables{}, err
	}
	monthly, err := s.readSheet(ctx, SheetMonthly)
	if err != nil {
		return entities.RateTables{}, err
	}
	loyalty, err := s.readSheet(ctx, SheetLoyalty)
	if err != nil {
		return entities.RateTables{}, err
	}

	return entities.RateTables{
		Daily:   rowsToRateTable(daily),
		Monthly: rowsToPlanTable(monthly),
		Loyalty: rowsToPlanTable(loyalty),
	}, nil
}

func (s *SheetsRateSource) readSheet(ctx context.Context, sheetName string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", sheetName, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
