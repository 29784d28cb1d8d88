package extractor

import (
	"strings"

	"github.com/yurifrl/resultado/pkg/models"
	"github.com/yurifrl/resultado/pkg/workbook"
)

// aggregateTags are the categories accumulated into YearRecord.Categories.
var aggregateTags = map[models.CategoryTag]bool{
	models.CategoryRevenue:        true,
	models.CategoryVariableCosts:  true,
	models.CategoryFixedCosts:     true,
	models.CategoryNonOperational: true,
	models.CategoryTaxes:          true,
	models.CategoryCommissions:    true,
	models.CategoryAdministrative: true,
	models.CategoryMarketing:      true,
	models.CategoryFinancial:      true,
}

// sectionTags anchor a new hierarchy scope when their label opens a section.
var sectionTags = map[models.CategoryTag]bool{
	models.CategoryRevenue:        true,
	models.CategoryVariableCosts:  true,
	models.CategoryFixedCosts:     true,
	models.CategoryNonOperational: true,
}

// ExtractSheet processes one worksheet into a YearRecord. It returns nil
// when the sheet yields no revenue or cost data; a skipped sheet, never an
// error. The function has no hidden state: the same sheet always produces
// the same record.
func (e *Extractor) ExtractSheet(sheet *workbook.Sheet, year int) *models.YearRecord {
	rows := sheet.Rows()
	cm := LocateColumns(rows, e.opts.HeaderScanRows)
	if cm.Empty() {
		e.logger.Debug("no month or annual columns found", "sheet", sheet.Name())
		return nil
	}

	rec := models.NewYearRecord(year)
	revenueSeen := false
	secondaryRevenue := false

	// Hierarchy candidates are grouped per top-level section so a parent
	// scan never crosses into an unrelated part of the sheet.
	var buckets [][]models.LineItem
	var current []models.LineItem
	flush := func() {
		if len(current) > 0 {
			buckets = append(buckets, current)
			current = nil
		}
	}

	for _, row := range rows {
		label := rowLabel(row)
		if label == "" {
			continue
		}

		cls := Classify(label, revenueSeen)
		monthly := e.monthlyValues(row, cm)
		annual, annualOK := 0.0, false
		if cm.Annual >= 0 && cm.Annual < len(row) {
			annual, annualOK = ParseNumber(row[cm.Annual])
		}

		switch {
		case cls.Contribution:
			if annualOK {
				v := annual
				rec.ContributionMargin = &v
			}
			continue
		case cls.Margin:
			e.mergeMarginRow(rec, label, monthly, annual, annualOK)
			continue
		case cls.Category == models.CategoryProfit:
			if !annualOK && len(monthly) > 0 {
				for _, v := range monthly {
					annual += v
				}
				annualOK = true
			}
			if annualOK {
				rec.Profits[cls.Profit] = annual
			}
			if cls.Profit == models.ProfitOperational && rec.ProfitMonthly == nil && len(monthly) > 0 {
				rec.ProfitMonthly = monthly
			}
			continue
		}

		// A row with neither an annual value nor monthly values carries
		// no data and is dropped, not created as an item. The annual
		// figure is never fabricated: absent, it is the monthly sum.
		if len(monthly) == 0 && (!annualOK || annual == 0) {
			continue
		}
		if !annualOK {
			for _, v := range monthly {
				annual += v
			}
		}

		if e.opts.MaxItemValue > 0 && annual > e.opts.MaxItemValue {
			// Likely subtotal contamination; keep the row but out of
			// any category aggregate.
			e.logger.Debug("row value exceeds item ceiling", "label", label, "annual", annual)
			cls = Classification{Category: models.CategoryUncategorized}
		}

		isSub := IsRollup(label, annual, cls.Category)
		item := models.LineItem{
			Label:      strings.TrimSpace(label),
			Category:   cls.Category,
			Monthly:    monthly,
			Annual:     annual,
			IsSubtotal: isSub,
		}
		rec.LineItems[models.Slug(label)] = item

		if !isSub && aggregateTags[cls.Category] {
			switch {
			case cls.Secondary:
				// The weaker RECEITA signal never overwrites data from
				// a primary revenue row.
				if _, ok := rec.Categories[models.CategoryRevenue]; !ok {
					rec.Category(models.CategoryRevenue).Merge(monthly, annual)
					secondaryRevenue = true
				}
			case cls.Category == models.CategoryRevenue && secondaryRevenue:
				// The primary row is authoritative; values absorbed from a
				// secondary row before it are discarded, not summed.
				delete(rec.Categories, models.CategoryRevenue)
				secondaryRevenue = false
				rec.Category(cls.Category).Merge(monthly, annual)
			default:
				rec.Category(cls.Category).Merge(monthly, annual)
			}
		}

		if sectionTags[cls.Category] && !cls.Secondary {
			if cls.Category == models.CategoryRevenue {
				revenueSeen = true
			}
			flush()
			continue
		}
		if !isSub {
			current = append(current, item)
		}
	}
	flush()

	for _, bucket := range buckets {
		rec.Hierarchy = append(rec.Hierarchy, e.recon.Reconstruct(bucket)...)
	}

	e.computeMargins(rec)

	if !rec.HasData() {
		e.logger.Debug("sheet yielded no revenue or cost data", "sheet", sheet.Name())
		return nil
	}
	return rec
}

// rowLabel is the first non-empty of the row's first three cells; labels
// are sometimes offset by a spacer column.
func rowLabel(row []string) string {
	limit := 3
	if limit > len(row) {
		limit = len(row)
	}
	for i := 0; i < limit; i++ {
		if s := strings.TrimSpace(row[i]); s != "" {
			return s
		}
	}
	return ""
}

func (e *Extractor) monthlyValues(row []string, cm ColumnMap) map[models.MonthCode]float64 {
	var monthly map[models.MonthCode]float64
	for month, col := range cm.Months {
		if col < 0 || col >= len(row) {
			continue
		}
		v, ok := ParseNumber(row[col])
		if !ok {
			continue
		}
		if monthly == nil {
			monthly = make(map[models.MonthCode]float64)
		}
		monthly[month] = v
	}
	return monthly
}

// mergeMarginRow folds a "MARGEM DE LUCRO" row into the margins map.
// Fractions in (-1,1) are scaled to percentages. The net-margin variant
// (LÍQUIDO) never overwrites an operational margin already present.
func (e *Extractor) mergeMarginRow(rec *models.YearRecord, label string, monthly map[models.MonthCode]float64, annual float64, annualOK bool) {
	folded := models.Fold(label)
	if strings.Contains(folded, "LIQUIDO") {
		if _, ok := rec.Margins[models.AnnualKey]; ok {
			e.logger.Debug("skipping net margin, operational margin present", "label", label)
			return
		}
	}
	for month, v := range monthly {
		rec.Margins[string(month)] = asPercent(v)
	}
	if annualOK {
		rec.Margins[models.AnnualKey] = asPercent(annual)
	}
}

// asPercent scales decimal fractions (0.2975) to percentages (29.75);
// values at or above one are already percentages.
func asPercent(v float64) float64 {
	if v > -1 && v < 1 {
		return v * 100
	}
	return v
}

// computeMargins fills (revenue - variable costs) / revenue for every month
// the sheet did not provide a margin for. Months with zero or missing
// revenue produce no entry, never a division by zero.
func (e *Extractor) computeMargins(rec *models.YearRecord) {
	rev, ok := rec.Categories[models.CategoryRevenue]
	if !ok {
		return
	}
	costs, ok := rec.Categories[models.CategoryVariableCosts]
	if !ok {
		return
	}

	for month, r := range rev.Monthly {
		if _, have := rec.Margins[string(month)]; have {
			continue
		}
		c, haveCost := costs.Monthly[month]
		if !haveCost || r <= 0 {
			continue
		}
		rec.Margins[string(month)] = (r - c) / r * 100
	}
	if _, have := rec.Margins[models.AnnualKey]; !have && rev.Annual > 0 && costs.Annual != 0 {
		rec.Margins[models.AnnualKey] = (rev.Annual - costs.Annual) / rev.Annual * 100
	}
}
