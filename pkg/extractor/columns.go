package extractor

import (
	"strings"

	"github.com/yurifrl/resultado/pkg/models"
)

// ColumnMap records where each month column and the annual-total column sit
// in one worksheet. Built once per sheet and read-only afterwards. A sheet
// with only some months present yields a partial map; that is expected for
// in-progress years.
type ColumnMap struct {
	Annual int // -1 when the sheet has no annual column
	Months map[models.MonthCode]int
}

// Empty reports that no month and no annual column was found, which makes
// the sheet carry no extractable data.
func (c ColumnMap) Empty() bool {
	return c.Annual < 0 && len(c.Months) == 0
}

var annualTerms = []string{"ANUAL", "ANNUAL", "TOTAL", "ANO"}

// monthNumbers maps numeric header suffixes ("03", "/03", "-03") to month
// codes for sheets that label columns by number instead of abbreviation.
var monthNumbers = []struct {
	num   string
	month models.MonthCode
}{
	{"01", models.Jan}, {"02", models.Fev}, {"03", models.Mar},
	{"04", models.Abr}, {"05", models.Mai}, {"06", models.Jun},
	{"07", models.Jul}, {"08", models.Ago}, {"09", models.Set},
	{"10", models.Out}, {"11", models.Nov}, {"12", models.Dez},
}

// LocateColumns scans the first scanRows rows for the annual column (first
// header containing an annual term) and the twelve month columns (each
// month matched independently, first header containing its abbreviation).
// Headers are not always on row 0, hence the scan window.
func LocateColumns(rows [][]string, scanRows int) ColumnMap {
	cm := ColumnMap{Annual: -1, Months: make(map[models.MonthCode]int)}
	headerRows := make(map[int]bool)

	limit := scanRows
	if limit > len(rows) {
		limit = len(rows)
	}
	for r := 0; r < limit; r++ {
		for c, cell := range rows[r] {
			header := models.Fold(cell)
			if header == "" {
				continue
			}

			if cm.Annual < 0 {
				for _, term := range annualTerms {
					if strings.Contains(header, term) {
						cm.Annual = c
						headerRows[r] = true
						break
					}
				}
			}

			for _, month := range models.Months {
				if _, ok := cm.Months[month]; ok {
					continue
				}
				if strings.Contains(header, string(month)) {
					cm.Months[month] = c
					headerRows[r] = true
					break
				}
			}
		}
	}

	// Numeric fallback for headers like "2023-03" or "03" when the
	// abbreviation pass left gaps. Restricted to the header rows found
	// above, so a data value like "5.000,10" never binds a month; with no
	// header row known, cells that parse as numbers are skipped instead.
	for r := 0; r < limit; r++ {
		if len(headerRows) > 0 && !headerRows[r] {
			continue
		}
		for c, cell := range rows[r] {
			header := models.Fold(cell)
			if header == "" {
				continue
			}
			if len(headerRows) == 0 {
				if _, numeric := ParseNumber(header); numeric {
					continue
				}
			}
			for _, mn := range monthNumbers {
				if _, ok := cm.Months[mn.month]; ok {
					continue
				}
				if strings.HasSuffix(header, mn.num) ||
					strings.Contains(header, "/"+mn.num) ||
					strings.Contains(header, "-"+mn.num) {
					cm.Months[mn.month] = c
				}
			}
		}
	}

	return cm
}
