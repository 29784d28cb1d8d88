package extractor

import (
	"testing"

	"github.com/yurifrl/resultado/pkg/models"
)

func TestLocateColumnsOffsetHeader(t *testing.T) {
	// Header row is not the first row; the scan window must find it.
	rows := [][]string{
		{"Empresa XYZ Ltda"},
		{},
		{"Descrição", "JAN", "FEV", "MAR", "ABR", "MAI", "JUN", "JUL", "AGO", "SET", "OUT", "NOV", "DEZ", "TOTAL ANUAL"},
	}

	cm := LocateColumns(rows, 10)
	if cm.Annual != 13 {
		t.Errorf("Annual column = %d, want 13", cm.Annual)
	}
	if len(cm.Months) != 12 {
		t.Fatalf("Found %d month columns, want 12", len(cm.Months))
	}
	if cm.Months[models.Jan] != 1 || cm.Months[models.Dez] != 12 {
		t.Errorf("JAN=%d DEZ=%d, want 1 and 12", cm.Months[models.Jan], cm.Months[models.Dez])
	}
}

func TestLocateColumnsPartialMonths(t *testing.T) {
	rows := [][]string{
		{"", "JANEIRO", "FEVEREIRO", "MARÇO"},
	}

	cm := LocateColumns(rows, 10)
	if len(cm.Months) != 3 {
		t.Fatalf("Found %d month columns, want 3", len(cm.Months))
	}
	if cm.Months[models.Mar] != 3 {
		t.Errorf("MAR = %d, want 3 (accent folded)", cm.Months[models.Mar])
	}
	if cm.Annual != -1 {
		t.Errorf("Annual = %d, want -1", cm.Annual)
	}
}

func TestLocateColumnsNumericFallback(t *testing.T) {
	rows := [][]string{
		{"", "2023-01", "2023-02", "2023-03"},
	}

	cm := LocateColumns(rows, 10)
	if cm.Months[models.Jan] != 1 || cm.Months[models.Fev] != 2 || cm.Months[models.Mar] != 3 {
		t.Errorf("numeric headers = %v, want columns 1..3", cm.Months)
	}
}

func TestLocateColumnsFallbackIgnoresDataCells(t *testing.T) {
	// The numeric fallback must not read data rows: "5.000,10" ends in
	// "10" but is a value, not an OUT header.
	rows := [][]string{
		{"", "JAN", "FEV", "TOTAL"},
		{"FATURAMENTO", "5.000,10", "6.000,00", "11.000,10"},
	}

	cm := LocateColumns(rows, 10)
	if len(cm.Months) != 2 {
		t.Fatalf("Found %d month columns, want 2: %v", len(cm.Months), cm.Months)
	}
	if _, ok := cm.Months[models.Out]; ok {
		t.Errorf("OUT bound to a data column: %v", cm.Months)
	}
}

func TestLocateColumnsEmptySheet(t *testing.T) {
	cm := LocateColumns(nil, 10)
	if !cm.Empty() {
		t.Errorf("Empty() = false for nil rows")
	}

	cm = LocateColumns([][]string{{"só texto", "sem cabeçalho"}}, 10)
	if !cm.Empty() {
		t.Errorf("Empty() = false for sheet without headers")
	}
}
