// Package xlsx reads .xlsx workbooks into the loosely-typed tabular form the
// schedule normalizer consumes.
package xlsx

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellKind discriminates the scalar stored in a Cell.
type CellKind int

const (
	// CellEmpty is an absent value.
	CellEmpty CellKind = iota
	// CellText is a free-form string.
	CellText
	// CellNumber is a numeric value.
	CellNumber
)

// Cell is one loosely-typed spreadsheet scalar. Date recognition is left to
// the consumer: Excel serves dates as formatted text, so a date-looking cell
// arrives here as CellText.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// ParseCell classifies a raw cell string into a Cell.
func ParseCell(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Cell{Kind: CellEmpty}
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Cell{Kind: CellNumber, Number: n, Text: s}
	}
	return Cell{Kind: CellText, Text: s}
}

// String returns the cell's text form ("" when empty).
func (c Cell) String() string {
	return c.Text
}

// Sheet represents a single worksheet: the header row plus data rows.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]Cell
}

// Workbook represents a parsed Excel file with all its sheets, in file order.
type Workbook struct {
	Sheets []Sheet
}

// ReadFile reads an .xlsx file and returns its structured data.
func ReadFile(path string) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s — check that the path is correct", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s — is this a valid .xlsx file? %w", path, err)
	}
	defer f.Close()

	return readWorkbook(f)
}

// ReadBytes reads an .xlsx file from a byte slice and returns its structured data.
func ReadBytes(data []byte) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not read Excel data: %w", err)
	}
	defer f.Close()

	return readWorkbook(f)
}

func readWorkbook(f *excelize.File) (*Workbook, error) {
	wb := &Workbook{}

	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("could not read sheet %q: %w", name, err)
		}

		sheet := Sheet{Name: name}
		if len(rows) > 0 {
			for _, h := range rows[0] {
				sheet.Columns = append(sheet.Columns, strings.TrimSpace(h))
			}
			for _, raw := range rows[1:] {
				row := make([]Cell, len(sheet.Columns))
				for j := range row {
					if j < len(raw) {
						row[j] = ParseCell(raw[j])
					}
				}
				sheet.Rows = append(sheet.Rows, row)
			}
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

// GetSheet returns a specific sheet by name. Returns an error if the sheet is not found.
func (wb *Workbook) GetSheet(name string) (*Sheet, error) {
	for i := range wb.Sheets {
		if wb.Sheets[i].Name == name {
			return &wb.Sheets[i], nil
		}
	}

	available := make([]string, len(wb.Sheets))
	for i, s := range wb.Sheets {
		available[i] = s.Name
	}
	return nil, fmt.Errorf("sheet %q not found — available sheets: %v", name, available)
}

// RowCount returns the number of data rows with at least one non-empty cell.
func (s *Sheet) RowCount() int {
	count := 0
	for _, row := range s.Rows {
		for _, cell := range row {
			if cell.Kind != CellEmpty {
				count++
				break
			}
		}
	}
	return count
}

// LatestInDir returns the most recently modified .xlsx file in dir.
// Operators drop new schedule releases into a shared folder; the newest wins.
func LatestInDir(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("could not read data directory %s: %w", dir, err)
	}

	var latest string
	var latestMod int64
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".xlsx") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().UnixNano() > latestMod {
			latest = filepath.Join(dir, e.Name())
			latestMod = info.ModTime().UnixNano()
		}
	}
	if latest == "" {
		return "", fmt.Errorf("no .xlsx files found in %s — upload a schedule workbook first", dir)
	}
	return latest, nil
}
