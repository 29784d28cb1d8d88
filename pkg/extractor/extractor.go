// Package extractor turns irregular Brazilian financial report worksheets
// into normalized per-year records: category aggregates, atomic line items,
// reconstructed parent/child groups and derived profit figures.
package extractor

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/resultado/pkg/models"
)

// Extractor is the orchestrator: it locates columns, classifies rows,
// filters rollups and assembles YearRecords. Extraction is a pure function
// of the sheet: running it twice yields identical records.
type Extractor struct {
	logger *log.Logger
	opts   Options
	recon  *Reconstructor
}

// New builds an extractor. Zero option fields fall back to defaults.
func New(logger *log.Logger, opts Options) *Extractor {
	opts = opts.withDefaults()
	return &Extractor{
		logger: logger,
		opts:   opts,
		recon:  NewReconstructor(opts),
	}
}

var yearPattern = regexp.MustCompile(`20\d{2}`)

// skipSheetTerms excludes sheets that never hold year data (comparison
// views, chart sheets, projections, DRE summaries).
var skipSheetTerms = []string{"comparativo", "grafico", "projec", "dre"}

// sheetYear determines the candidate year for a sheet: a numeric sheet name
// in range, a year substring in the sheet name, or, for result/forecast
// sheets, a year in the workbook filename.
func (e *Extractor) sheetYear(sheetName, filename string) int {
	lower := strings.ToLower(models.Fold(sheetName))
	for _, term := range skipSheetTerms {
		if strings.Contains(lower, term) {
			return 0
		}
	}

	if y := parseYear(sheetName, e.opts.YearMin, e.opts.YearMax); y != 0 {
		return y
	}
	if m := yearPattern.FindString(sheetName); m != "" {
		if y := parseYear(m, e.opts.YearMin, e.opts.YearMax); y != 0 {
			return y
		}
	}
	if strings.Contains(lower, "resultado") || strings.Contains(lower, "previsao") {
		if m := yearPattern.FindString(filename); m != "" {
			return parseYear(m, e.opts.YearMin, e.opts.YearMax)
		}
	}
	return 0
}

func parseYear(s string, min, max int) int {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return 0
	}
	y := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		y = y*10 + int(r-'0')
	}
	if y < min || y > max {
		return 0
	}
	return y
}

// sheetPriority orders competing sheets for the same year: result sheets
// first, plain numeric names next, forecasts after, anything else last.
func sheetPriority(sheetName string) int {
	lower := strings.ToLower(models.Fold(sheetName))
	isDigits := len(sheetName) > 0 && strings.Trim(sheetName, "0123456789") == ""
	switch {
	case strings.Contains(lower, "resultado") && !strings.Contains(lower, "previsao"):
		return 0
	case isDigits:
		return 1
	case strings.Contains(lower, "previsao"):
		return 2
	default:
		return 3
	}
}
