package workbook

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

func openXLSX(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("error opening xlsx workbook: %w", err)
	}
	defer f.Close()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("error reading sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, NewSheet(name, rows))
	}
	return wb, nil
}
