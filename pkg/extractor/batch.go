package extractor

import (
	"path/filepath"
	"sort"
	"sync"

	"github.com/yurifrl/resultado/pkg/models"
	"github.com/yurifrl/resultado/pkg/workbook"
)

// ExtractWorkbook extracts every year sheet of a workbook. Sheets are
// grouped by candidate year; when several sheets claim the same year, the
// highest-priority sheet that actually yields data wins and the rest are
// discarded (never merged).
//
// Sheet extraction is pure and isolated, so the sheets are processed
// concurrently. The winner per year is picked from the collected results by
// priority, never by completion order, so the output is deterministic.
func (e *Extractor) ExtractWorkbook(wb *workbook.Workbook, filename string) map[int]*models.YearRecord {
	type candidate struct {
		year     int
		priority int
		order    int
		sheet    *workbook.Sheet
		rec      *models.YearRecord
	}

	var cands []*candidate
	for i, sheet := range wb.Sheets {
		year := e.sheetYear(sheet.Name(), filename)
		if year == 0 {
			e.logger.Debug("sheet has no candidate year", "sheet", sheet.Name())
			continue
		}
		cands = append(cands, &candidate{
			year:     year,
			priority: sheetPriority(sheet.Name()),
			order:    i,
			sheet:    sheet,
		})
	}

	var wg sync.WaitGroup
	for _, c := range cands {
		wg.Add(1)
		go func(c *candidate) {
			defer wg.Done()
			defer func() {
				// One bad sheet never takes down the batch; it just
				// yields no record.
				if r := recover(); r != nil {
					e.logger.Error("sheet extraction failed", "sheet", c.sheet.Name(), "panic", r)
				}
			}()
			c.rec = e.ExtractSheet(c.sheet, c.year)
		}(c)
	}
	wg.Wait()

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].year != cands[j].year {
			return cands[i].year < cands[j].year
		}
		if cands[i].priority != cands[j].priority {
			return cands[i].priority < cands[j].priority
		}
		return cands[i].order < cands[j].order
	})

	out := make(map[int]*models.YearRecord)
	for _, c := range cands {
		if c.rec == nil {
			continue
		}
		if _, taken := out[c.year]; taken {
			e.logger.Debug("discarding lower-priority sheet", "sheet", c.sheet.Name(), "year", c.year)
			continue
		}
		out[c.year] = c.rec
		e.logger.Info("extracted year", "year", c.year, "sheet", c.sheet.Name(), "file", filename)
	}
	return out
}

// ExtractBatch processes many workbook files into one year-keyed map.
// Unreadable files are logged and skipped; one bad workbook never blocks
// the rest. Files are processed in sorted path order and the first record
// for a year wins, keeping the merge deterministic.
func (e *Extractor) ExtractBatch(paths []string) map[int]*models.YearRecord {
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	out := make(map[int]*models.YearRecord)
	for _, path := range sorted {
		wb, err := workbook.Open(path)
		if err != nil {
			e.logger.Warn("skipping unreadable workbook", "file", path, "error", err)
			continue
		}
		for year, rec := range e.ExtractWorkbook(wb, filepath.Base(path)) {
			if _, taken := out[year]; taken {
				e.logger.Warn("year already extracted from an earlier file", "year", year, "file", path)
				continue
			}
			out[year] = rec
		}
	}
	return out
}
