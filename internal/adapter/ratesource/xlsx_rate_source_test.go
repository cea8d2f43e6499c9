package ratesource

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]interface{}{
		SheetDaily: {
			{"Quantidade de Diárias", "Valor da Diária", "Alta temporada"},
			{1, 100, 120},
			{3, 270, 300},
			{7, 560, 610},
			{"a partir de 8", "consultar", "consultar"},
		},
		SheetMonthly: {
			{"Vezes por semana", "Valor"},
			{1, 400},
			{2, 700},
		},
		SheetLoyalty: {
			{"Vezes por semana", "Valor"},
			{1, 360},
			{2, 630},
		},
	}

	for name, rows := range sheets {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("NewSheet(%s): %v", name, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow(%s): %v", name, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "tabela.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func TestXLSXRateSourceLoadRateTables(t *testing.T) {
	src := NewXLSXRateSource(writeWorkbook(t))

	tables, err := src.LoadRateTables(context.Background())
	if err != nil {
		t.Fatalf("LoadRateTables: %v", err)
	}

	if len(tables.Daily) != 3 {
		t.Fatalf("expected 3 daily tiers, got %d: %+v", len(tables.Daily), tables.Daily)
	}
	if tables.Daily[1].UnitCount != 3 || !tables.Daily[1].NormalPrice.Equal(decimal.NewFromInt(270)) {
		t.Fatalf("unexpected daily tier: %+v", tables.Daily[1])
	}

	row, ok := tables.Monthly.Row(2)
	if !ok {
		t.Fatal("monthly plan row for frequency 2 not found")
	}
	if !row.MonthlyPrice.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("monthly price = %s, want 700", row.MonthlyPrice)
	}

	row, ok = tables.Loyalty.Row(1)
	if !ok {
		t.Fatal("loyalty plan row for frequency 1 not found")
	}
	if !row.MonthlyPrice.Equal(decimal.NewFromInt(360)) {
		t.Fatalf("loyalty price = %s, want 360", row.MonthlyPrice)
	}
}

func TestXLSXRateSourceMissingFile(t *testing.T) {
	src := NewXLSXRateSource(filepath.Join(t.TempDir(), "missing.xlsx"))
	if _, err := src.LoadRateTables(context.Background()); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}
