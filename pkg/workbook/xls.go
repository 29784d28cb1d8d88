package workbook

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
)

// maxXLSRows bounds the scan of legacy sheets; malformed .xls files can
// report absurd MaxRow values.
const maxXLSRows = 10000

func openXLS(data []byte) (*Workbook, error) {
	book, err := xls.OpenReader(bytes.NewReader(data), "cp1252")
	if err != nil {
		return nil, fmt.Errorf("error opening xls workbook: %w", err)
	}

	wb := &Workbook{}
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}

		var rows [][]string
		last := int(sheet.MaxRow)
		if last > maxXLSRows {
			last = maxXLSRows
		}
		for r := 0; r <= last; r++ {
			row := sheet.Row(r)
			if row == nil || row.LastCol() < 0 {
				rows = append(rows, nil)
				continue
			}
			cells := make([]string, row.LastCol()+1)
			for c := 0; c <= row.LastCol(); c++ {
				cells[c] = row.Col(c)
			}
			rows = append(rows, cells)
		}
		wb.Sheets = append(wb.Sheets, NewSheet(sheet.Name, rows))
	}
	return wb, nil
}
