package schedule

import (
	"errors"
	"fmt"
	"strings"

	"github.com/monykiss/schedkit/internal/formats/xlsx"
)

// ErrEmptyWorkbook reports a workbook with no sheets at all.
var ErrEmptyWorkbook = errors.New("workbook contains no sheets")

// MissingColumnsError reports that required canonical fields could not be
// resolved in any sheet, even through the positional fallback.
type MissingColumnsError struct {
	Missing []Field
}

func (e *MissingColumnsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, f := range e.Missing {
		names[i] = string(f)
	}
	return fmt.Sprintf("required columns missing from every sheet: %s", strings.Join(names, ", "))
}

// Store is the canonical record table built from one workbook. It is
// immutable once built; every query works on copies or sub-slices.
type Store struct {
	Records []Record
	// SkippedSheets lists sheets that contributed no records because their
	// company code column could not be resolved.
	SkippedSheets []string
	// StopWords are the operator-supplied extra stop words from the
	// overrides file, carried with the load so query interpretation
	// applies them on top of the built-in list.
	StopWords []string
}

// Load normalizes every sheet of the workbook and concatenates the results in
// sheet order, row order within sheet. A single malformed sheet is skipped;
// the load only fails when nothing at all can be normalized.
func Load(wb *xlsx.Workbook) (*Store, error) {
	return LoadWithAliases(wb, DefaultAliases())
}

// LoadWithAliases is Load with a caller-supplied alias table (built-in table
// plus operator overrides).
func LoadWithAliases(wb *xlsx.Workbook, aliases AliasTable) (*Store, error) {
	if wb == nil || len(wb.Sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	store := &Store{}
	normalizedAny := false
	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		records, ok := normalizeSheet(sheet, aliases)
		if !ok {
			store.SkippedSheets = append(store.SkippedSheets, sheet.Name)
			continue
		}
		normalizedAny = true
		store.Records = append(store.Records, records...)
	}

	if !normalizedAny {
		return nil, &MissingColumnsError{Missing: []Field{FieldCompanyCode}}
	}
	return store, nil
}

// LookupCode returns every record for the given company code. Codes are
// stored lowercase-trimmed, so the lookup is case-insensitive by
// construction. An unknown code yields an empty slice, never an error.
func (s *Store) LookupCode(code string) []Record {
	key := strings.ToLower(strings.TrimSpace(code))
	var out []Record
	for _, r := range s.Records {
		if r.CompanyCode == key {
			out = append(out, r)
		}
	}
	return out
}

// LookupOrder returns every record whose order number equals the given value,
// case-insensitively. Used as the second leg of the unified code/order search.
func (s *Store) LookupOrder(number string) []Record {
	key := strings.ToLower(strings.TrimSpace(number))
	var out []Record
	for _, r := range s.Records {
		if strings.ToLower(r.OrderNumber) == key {
			out = append(out, r)
		}
	}
	return out
}

// Lookup tries the value as a company code first, then as an order number.
// The returned kind says which interpretation matched ("company", "order",
// or "" for no match).
func (s *Store) Lookup(value string) ([]Record, string) {
	if recs := s.LookupCode(value); len(recs) > 0 {
		return recs, "company"
	}
	if recs := s.LookupOrder(value); len(recs) > 0 {
		return recs, "order"
	}
	return nil, ""
}

// CompanyName returns the first non-empty company name in the records.
func CompanyName(records []Record) string {
	for _, r := range records {
		if r.CompanyName != "" {
			return r.CompanyName
		}
	}
	return ""
}

// TotalQuantity sums quantity over the records.
func TotalQuantity(records []Record) int {
	total := 0
	for _, r := range records {
		total += r.Quantity
	}
	return total
}

// FilterAny keeps records where any field's string form contains any token,
// case-insensitively. OR across tokens, OR across fields.
func FilterAny(records []Record, tokens []string) []Record {
	if len(tokens) == 0 {
		return nil
	}
	lowered := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			lowered = append(lowered, t)
		}
	}
	if len(lowered) == 0 {
		return nil
	}

	var out []Record
	for _, r := range records {
		if recordMatchesAny(r, lowered) {
			out = append(out, r)
		}
	}
	return out
}

func recordMatchesAny(r Record, tokens []string) bool {
	for _, field := range r.SearchStrings() {
		if field == "" {
			continue
		}
		lf := strings.ToLower(field)
		for _, t := range tokens {
			if strings.Contains(lf, t) {
				return true
			}
		}
	}
	return false
}
