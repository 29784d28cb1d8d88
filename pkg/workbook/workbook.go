// Package workbook abstracts spreadsheet files into name + string cell grid
// sheets so the extraction core never touches a file-format library.
package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sheet is one worksheet: a name and a dense row/column grid of raw cell
// text. Numeric cells arrive as their decimal string form, formatted cells
// as the text the author saw.
type Sheet struct {
	name string
	rows [][]string
}

// NewSheet builds a sheet from an in-memory grid. Used by loaders and by
// tests that need synthetic worksheets.
func NewSheet(name string, rows [][]string) *Sheet {
	return &Sheet{name: name, rows: rows}
}

func (s *Sheet) Name() string { return s.name }

func (s *Sheet) Rows() [][]string { return s.rows }

// Cell returns the raw text at (row, col), or "" when out of range.
func (s *Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.rows) {
		return ""
	}
	r := s.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Workbook is an ordered collection of sheets.
type Workbook struct {
	Sheets []*Sheet
}

// Open reads a workbook from disk, dispatching on the file extension.
func Open(path string) (*Workbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	return OpenBytes(data, filepath.Base(path))
}

// OpenBytes reads a workbook already loaded in memory. The filename is only
// used to pick the loader. An unreadable file is the one hard error in this
// module; everything downstream degrades instead of failing.
func OpenBytes(data []byte, filename string) (*Workbook, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return openXLSX(data)
	case ".xls":
		return openXLS(data)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filename)
	}
}
