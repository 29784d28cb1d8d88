package extractor

import (
	"testing"

	"github.com/yurifrl/resultado/pkg/workbook"
)

func TestSheetYear(t *testing.T) {
	e := testExtractor(Options{})

	cases := []struct {
		sheet    string
		filename string
		want     int
	}{
		{"2023", "planilha.xlsx", 2023},
		{"Resultado 2024", "planilha.xlsx", 2024},
		{"Resultado", "resultado-2022.xlsx", 2022},
		{"Previsão", "resultado-2022.xlsx", 2022},
		{"Comparativo 2023", "planilha.xlsx", 0},
		{"Gráficos", "resultado-2022.xlsx", 0},
		{"DRE 2023", "planilha.xlsx", 0},
		{"1999", "planilha.xlsx", 0},
		{"Notas", "planilha.xlsx", 0},
	}

	for _, c := range cases {
		if got := e.sheetYear(c.sheet, c.filename); got != c.want {
			t.Errorf("sheetYear(%q, %q) = %d, want %d", c.sheet, c.filename, got, c.want)
		}
	}
}

func TestSheetPriority(t *testing.T) {
	cases := []struct {
		sheet string
		want  int
	}{
		{"Resultado 2023", 0},
		{"2023", 1},
		{"Previsão 2023", 2},
		{"Resultado Previsão 2023", 2},
		{"Dados", 3},
	}

	for _, c := range cases {
		if got := sheetPriority(c.sheet); got != c.want {
			t.Errorf("sheetPriority(%q) = %d, want %d", c.sheet, got, c.want)
		}
	}
}

func TestExtractWorkbookResultBeatsForecast(t *testing.T) {
	e := testExtractor(Options{})

	forecast := workbook.NewSheet("Previsão 2023", [][]string{
		{"", "JAN", "TOTAL"},
		{"FATURAMENTO", "999,00", "999,00"},
		{"CUSTOS VARIÁVEIS", "100,00", "100,00"},
	})

	wb := &workbook.Workbook{Sheets: []*workbook.Sheet{forecast, resultSheet()}}
	records := e.ExtractWorkbook(wb, "planilha.xlsx")

	rec, ok := records[2023]
	if !ok {
		t.Fatalf("No record for 2023; got years %v", records)
	}
	if rec.Revenue().Annual != 330000 {
		t.Errorf("Revenue = %v, want 330000 from the result sheet", rec.Revenue().Annual)
	}
}

func TestExtractWorkbookForecastFallback(t *testing.T) {
	e := testExtractor(Options{})

	// The result sheet yields nothing, so the forecast fills the year in.
	empty := workbook.NewSheet("Resultado 2023", [][]string{
		{"", "JAN", "TOTAL"},
	})
	forecast := workbook.NewSheet("Previsão 2023", [][]string{
		{"", "JAN", "TOTAL"},
		{"FATURAMENTO", "999,00", "999,00"},
		{"CUSTOS VARIÁVEIS", "100,00", "100,00"},
	})

	wb := &workbook.Workbook{Sheets: []*workbook.Sheet{empty, forecast}}
	records := e.ExtractWorkbook(wb, "planilha.xlsx")

	rec, ok := records[2023]
	if !ok {
		t.Fatalf("No record for 2023")
	}
	if rec.Revenue().Annual != 999 {
		t.Errorf("Revenue = %v, want 999 from the forecast sheet", rec.Revenue().Annual)
	}
}

func TestExtractWorkbookSeparateYears(t *testing.T) {
	e := testExtractor(Options{})

	wb := &workbook.Workbook{Sheets: []*workbook.Sheet{
		resultSheet(),
		workbook.NewSheet("Resultado 2024", [][]string{
			{"", "JAN", "TOTAL"},
			{"FATURAMENTO", "500,00", "500,00"},
			{"CUSTOS VARIÁVEIS", "100,00", "100,00"},
		}),
	}}
	records := e.ExtractWorkbook(wb, "planilha.xlsx")

	if len(records) != 2 {
		t.Fatalf("Got %d years, want 2", len(records))
	}
	if records[2023] == nil || records[2024] == nil {
		t.Errorf("Missing a year: %v", records)
	}
}
