package schedule

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/monykiss/schedkit/internal/formats/xlsx"
)

// normalizeSheet maps one raw sheet onto canonical records. Malformed cells
// degrade to neutral values (0 for quantity, zero time for dates); the only
// way a sheet contributes nothing is having no resolvable company_code column
// or no rows.
func normalizeSheet(sheet *xlsx.Sheet, aliases AliasTable) ([]Record, bool) {
	cols := resolveColumns(sheet.Columns, aliases)
	codeIdx, ok := cols[FieldCompanyCode]
	if !ok {
		return nil, false
	}

	idx := func(f Field) int {
		if i, ok := cols[f]; ok {
			return i
		}
		return -1
	}

	records := make([]Record, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		rec := Record{
			CompanyCode: strings.ToLower(cellText(row, codeIdx)),
			CompanyName: cellText(row, idx(FieldCompanyName)),
			Brand:       cellText(row, idx(FieldBrand)),
			OrderNumber: cellText(row, idx(FieldOrderNumber)),
			Item:        cellText(row, idx(FieldItem)),
			Spec:        cellText(row, idx(FieldSpec)),
			Package:     cellText(row, idx(FieldPackage)),
			Quantity:    coerceQuantity(cellAt(row, idx(FieldQuantity))),
			WorkDate:    coerceDate(cellAt(row, idx(FieldWorkDate))),
			RequestDate: coerceDate(cellAt(row, idx(FieldRequestDate))),
			ReceiptDate: coerceDate(cellAt(row, idx(FieldReceiptDate))),
			SourceSheet: sheet.Name,
		}
		records = append(records, rec)
	}
	return records, true
}

// resolveColumns maps each canonical field to its column index in the sheet.
// company_code additionally falls back to the second positional column:
// operators conventionally place the code there.
func resolveColumns(columns []string, aliases AliasTable) map[Field]int {
	resolved := make(map[Field]int)
	for _, field := range AllFields {
		if idx, ok := aliases.ResolveColumn(columns, field); ok {
			resolved[field] = idx
		}
	}
	if _, ok := resolved[FieldCompanyCode]; !ok && len(columns) >= 2 {
		resolved[FieldCompanyCode] = 1
	}
	return resolved
}

func cellAt(row []xlsx.Cell, idx int) xlsx.Cell {
	if idx < 0 || idx >= len(row) {
		return xlsx.Cell{}
	}
	return row[idx]
}

// cellText returns the trimmed text of the cell at idx, or "" when idx is -1
// (field unresolved for this sheet).
func cellText(row []xlsx.Cell, idx int) string {
	return strings.TrimSpace(cellAt(row, idx).Text)
}

// coerceQuantity turns a loosely-typed cell into a non-negative integer.
// Thousands separators are tolerated; anything unparseable is 0.
func coerceQuantity(cell xlsx.Cell) int {
	switch cell.Kind {
	case xlsx.CellNumber:
		n := int(math.Round(cell.Number))
		if n < 0 {
			return 0
		}
		return n
	case xlsx.CellText:
		s := strings.ReplaceAll(strings.TrimSpace(cell.Text), ",", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return 0
		}
		return int(math.Round(f))
	}
	return 0
}

// excelEpoch is day zero of Excel's 1900 date system (with its leap-year
// quirk already folded in, hence Dec 30).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are the formatted-date shapes excelize produces plus the shapes
// operators type by hand. Order matters: unambiguous forms first.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06",
	"2006년 1월 2일",
}

// coerceDate turns a loosely-typed cell into a calendar date, or the zero
// time when it cannot be one. Numeric cells are treated as Excel serial days.
func coerceDate(cell xlsx.Cell) time.Time {
	switch cell.Kind {
	case xlsx.CellNumber:
		// Plausible serial range: years ~1905..2200.
		if cell.Number < 2000 || cell.Number > 110000 {
			return time.Time{}
		}
		d := excelEpoch.AddDate(0, 0, int(cell.Number))
		return d
	case xlsx.CellText:
		s := strings.TrimSpace(cell.Text)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return Date(t.Year(), t.Month(), t.Day())
			}
		}
	}
	return time.Time{}
}
