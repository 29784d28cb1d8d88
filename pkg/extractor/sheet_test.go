package extractor

import (
	"io"
	"math"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/resultado/pkg/models"
	"github.com/yurifrl/resultado/pkg/workbook"
)

func testExtractor(opts Options) *Extractor {
	return New(log.New(io.Discard), opts)
}

func resultSheet() *workbook.Sheet {
	return workbook.NewSheet("Resultado 2023", [][]string{
		{"Empresa Exemplo Ltda"},
		{"", "JAN", "FEV", "MAR", "TOTAL"},
		{"FATURAMENTO", "100.000,00", "110.000,00", "120.000,00", "330.000,00"},
		{"CUSTOS VARIÁVEIS", "40.000,00", "44.000,00", "48.000,00", "132.000,00"},
		{"Impostos", "10.000,00", "11.000,00", "12.000,00", "33.000,00"},
		{"Comissões", "5.000,00", "5.500,00", "6.000,00", "16.500,00"},
		{"Margem de Contribuição", "", "", "", "198.000,00"},
		{"Margem de Lucro", "0,30", "0,32", "0,35", "0,32"},
		{"CUSTOS FIXOS", "30.000,00", "30.000,00", "30.000,00", "90.000,00"},
		{"Aluguel", "10.000,00", "10.000,00", "10.000,00", "30.000,00"},
		{"Folha de Pagamento", "20.000,00", "20.000,00", "20.000,00", "60.000,00"},
		{"RESULTADO", "", "", "", "108.000,00"},
	})
}

func TestExtractSheetFullResult(t *testing.T) {
	e := testExtractor(Options{})
	rec := e.ExtractSheet(resultSheet(), 2023)
	if rec == nil {
		t.Fatal("ExtractSheet returned nil for a populated sheet")
	}

	rev := rec.Revenue()
	if rev == nil {
		t.Fatal("No revenue aggregate")
	}
	if rev.Annual != 330000 {
		t.Errorf("Revenue annual = %v, want 330000", rev.Annual)
	}
	if len(rev.Monthly) != 3 || rev.Monthly[models.Jan] != 100000 {
		t.Errorf("Revenue monthly = %v, want 3 months with JAN=100000", rev.Monthly)
	}

	if agg := rec.Categories[models.CategoryVariableCosts]; agg == nil || agg.Annual != 132000 {
		t.Errorf("Variable costs aggregate = %+v, want annual 132000", agg)
	}
	if agg := rec.Categories[models.CategoryFixedCosts]; agg == nil || agg.Annual != 90000 {
		t.Errorf("Fixed costs aggregate = %+v, want annual 90000", agg)
	}
	if agg := rec.Categories[models.CategoryTaxes]; agg == nil || agg.Annual != 33000 {
		t.Errorf("Taxes aggregate = %+v, want annual 33000", agg)
	}
	if agg := rec.Categories[models.CategoryCommissions]; agg == nil || agg.Annual != 16500 {
		t.Errorf("Commissions aggregate = %+v, want annual 16500", agg)
	}

	if rec.ContributionMargin == nil || *rec.ContributionMargin != 198000 {
		t.Errorf("ContributionMargin = %v, want 198000", rec.ContributionMargin)
	}
	if got := rec.Profits[models.ProfitOperational]; got != 108000 {
		t.Errorf("Operational profit = %v, want 108000", got)
	}

	// Margin fractions scale to percentages.
	if got := rec.Margins["JAN"]; math.Abs(got-30) > 1e-9 {
		t.Errorf("JAN margin = %v, want 30", got)
	}
	if got := rec.Margins[models.AnnualKey]; math.Abs(got-32) > 1e-9 {
		t.Errorf("Annual margin = %v, want 32", got)
	}

	// Margin, contribution and profit rows never become line items.
	if len(rec.LineItems) != 7 {
		t.Errorf("Got %d line items, want 7", len(rec.LineItems))
	}
	if item, ok := rec.LineItems["impostos"]; !ok || item.Category != models.CategoryTaxes {
		t.Errorf("LineItems[impostos] = %+v, want taxes item", item)
	}
}

func TestExtractSheetPrimaryRevenueReplacesSecondary(t *testing.T) {
	e := testExtractor(Options{})

	// A RECEITA row above the FATURAMENTO row seeds the revenue aggregate;
	// the primary row must replace those values, never add to them.
	sheet := workbook.NewSheet("Resultado 2023", [][]string{
		{"", "JAN", "TOTAL"},
		{"Receita de Serviços", "50.000,00", "50.000,00"},
		{"FATURAMENTO", "100.000,00", "330.000,00"},
		{"CUSTOS VARIÁVEIS", "40.000,00", "132.000,00"},
	})

	rec := e.ExtractSheet(sheet, 2023)
	if rec == nil {
		t.Fatal("ExtractSheet returned nil")
	}
	rev := rec.Revenue()
	if rev == nil {
		t.Fatal("No revenue aggregate")
	}
	if rev.Annual != 330000 {
		t.Errorf("Revenue annual = %v, want 330000 from the primary row alone", rev.Annual)
	}
	if rev.Monthly[models.Jan] != 100000 {
		t.Errorf("Revenue JAN = %v, want 100000 from the primary row alone", rev.Monthly[models.Jan])
	}
}

func TestExtractSheetOperationalProfitMonthly(t *testing.T) {
	e := testExtractor(Options{})

	sheet := workbook.NewSheet("Resultado 2023", [][]string{
		{"", "JAN", "FEV", "TOTAL"},
		{"FATURAMENTO", "1.000,00", "1.000,00", "2.000,00"},
		{"CUSTOS VARIÁVEIS", "400,00", "400,00", "800,00"},
		{"RESULTADO", "300,00", "300,00", ""},
	})

	rec := e.ExtractSheet(sheet, 2023)
	if rec == nil {
		t.Fatal("ExtractSheet returned nil")
	}
	if rec.ProfitMonthly[models.Jan] != 300 || rec.ProfitMonthly[models.Fev] != 300 {
		t.Errorf("ProfitMonthly = %v, want JAN=300 FEV=300", rec.ProfitMonthly)
	}
	// With no annual cell, the profit candidate is the monthly sum.
	if got := rec.Profits[models.ProfitOperational]; got != 600 {
		t.Errorf("Operational profit = %v, want 600", got)
	}
}

func TestExtractSheetIdempotent(t *testing.T) {
	e := testExtractor(Options{})
	a := e.ExtractSheet(resultSheet(), 2023)
	b := e.ExtractSheet(resultSheet(), 2023)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Two extractions of the same sheet differ")
	}
}

func TestExtractSheetComputedMarginSkipsZeroRevenue(t *testing.T) {
	e := testExtractor(Options{})
	sheet := workbook.NewSheet("Resultado 2023", [][]string{
		{"", "JAN", "FEV", "TOTAL"},
		{"FATURAMENTO", "0,00", "1.000,00", ""},
		{"CUSTOS VARIÁVEIS", "500,00", "400,00", ""},
	})

	rec := e.ExtractSheet(sheet, 2023)
	if rec == nil {
		t.Fatal("ExtractSheet returned nil")
	}
	if _, ok := rec.Margins["JAN"]; ok {
		t.Errorf("Margin computed for a zero-revenue month")
	}
	if got := rec.Margins["FEV"]; math.Abs(got-60) > 1e-9 {
		t.Errorf("FEV margin = %v, want 60", got)
	}
	if got := rec.Margins[models.AnnualKey]; math.Abs(got-10) > 1e-9 {
		t.Errorf("Annual margin = %v, want 10", got)
	}
}

func TestExtractSheetNoDataReturnsNil(t *testing.T) {
	e := testExtractor(Options{})

	if rec := e.ExtractSheet(workbook.NewSheet("Vazia", nil), 2023); rec != nil {
		t.Errorf("Empty sheet produced a record: %+v", rec)
	}

	headerOnly := workbook.NewSheet("Resultado 2023", [][]string{
		{"", "JAN", "FEV", "MAR", "TOTAL"},
	})
	if rec := e.ExtractSheet(headerOnly, 2023); rec != nil {
		t.Errorf("Header-only sheet produced a record: %+v", rec)
	}
}

func TestExtractSheetItemCeiling(t *testing.T) {
	e := testExtractor(Options{MaxItemValue: 50000})
	sheet := workbook.NewSheet("Resultado 2023", [][]string{
		{"", "JAN", "TOTAL"},
		{"FATURAMENTO", "40.000,00", "40.000,00"},
		{"Impostos", "60.000,00", "60.000,00"},
	})

	rec := e.ExtractSheet(sheet, 2023)
	if rec == nil {
		t.Fatal("ExtractSheet returned nil")
	}
	item, ok := rec.LineItems["impostos"]
	if !ok {
		t.Fatal("Oversized row dropped instead of demoted")
	}
	if item.Category != models.CategoryUncategorized {
		t.Errorf("Oversized row category = %s, want uncategorized", item.Category)
	}
	if _, ok := rec.Categories[models.CategoryTaxes]; ok {
		t.Errorf("Oversized row still aggregated into taxes")
	}
}
