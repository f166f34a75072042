// Package schedule normalizes heterogeneous materials-schedule workbooks into
// one canonical record table and provides lookups over it.
//
// Source workbooks come from different operators and releases: column names
// vary ("업체코드" vs "협력사코드" vs "code"), ordering varies, and some sheets
// abbreviate or decorate headers. The alias resolver reconciles all of them
// onto a fixed set of canonical fields.
package schedule

import "strings"

// Field identifies one canonical column of the normalized record table.
type Field string

// The complete canonical field set. Exactly these names exist after
// normalization regardless of source spelling.
const (
	FieldCompanyCode Field = "company_code"
	FieldCompanyName Field = "company_name"
	FieldBrand       Field = "brand"
	FieldOrderNumber Field = "order_number"
	FieldItem        Field = "item"
	FieldSpec        Field = "spec"
	FieldPackage     Field = "package"
	FieldQuantity    Field = "quantity"
	FieldWorkDate    Field = "work_date"
	FieldRequestDate Field = "request_date"
	FieldReceiptDate Field = "receipt_date"
	FieldSourceSheet Field = "source_sheet"
)

// AllFields lists every resolvable field in normalization order.
// company_code comes first: later steps depend on knowing the code column.
var AllFields = []Field{
	FieldCompanyCode,
	FieldCompanyName,
	FieldOrderNumber,
	FieldItem,
	FieldSpec,
	FieldPackage,
	FieldBrand,
	FieldQuantity,
	FieldWorkDate,
	FieldRequestDate,
	FieldReceiptDate,
}

// AliasTable maps each canonical field to its recognized source-column names,
// in priority order. Matching is case- and whitespace-insensitive.
type AliasTable map[Field][]string

// DefaultAliases covers every header spelling seen across schedule releases.
// Korean headers are the operators' convention; latin forms appear in exported
// or abbreviated sheets.
func DefaultAliases() AliasTable {
	return AliasTable{
		FieldCompanyCode: {"업체코드", "협력사코드", "거래처코드", "코드", "code"},
		FieldCompanyName: {"업체명", "협력사명", "거래처명", "고객명", "name"},
		FieldOrderNumber: {"발주번호", "주문번호", "po", "발주"},
		FieldItem:        {"아이템", "품목", "item", "제품명"},
		FieldSpec:        {"규격", "스펙", "규"},
		FieldPackage:     {"package", "포장", "패키지"},
		FieldBrand:       {"브랜드", "brand"},
		FieldQuantity:    {"수량", "qty", "수량합계", "quantity"},
		FieldWorkDate:    {"작업일자", "작업일", "작업", "완료일", "작업완료"},
		FieldRequestDate: {"요청일자", "요청일", "본사요청"},
		FieldReceiptDate: {"인수일자", "인수", "인계", "수령일자"},
	}
}

// Merge returns a copy of the table with extra candidates prepended per field,
// so overrides take priority over the built-in list.
func (t AliasTable) Merge(extra map[Field][]string) AliasTable {
	merged := make(AliasTable, len(t))
	for f, cands := range t {
		merged[f] = append([]string(nil), cands...)
	}
	for f, cands := range extra {
		merged[f] = append(append([]string(nil), cands...), merged[f]...)
	}
	return merged
}

// normalizeHeader collapses a raw column name for comparison: trimmed,
// lowercased, all whitespace removed.
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), "")
}

// ResolveColumn finds the column matching field in the given header row and
// returns its index. Exact candidate matches win over substring matches no
// matter where the columns sit; substring matching exists because operators
// both abbreviate headers ("qty") and decorate them ("수량합계").
func (t AliasTable) ResolveColumn(columns []string, field Field) (int, bool) {
	candidates := t[field]
	if len(candidates) == 0 {
		return 0, false
	}

	normalized := make([]string, len(columns))
	for i, col := range columns {
		normalized[i] = normalizeHeader(col)
	}

	// Phase 1: exact match, candidate priority order.
	for _, cand := range candidates {
		key := normalizeHeader(cand)
		for i, col := range normalized {
			if col == key {
				return i, true
			}
		}
	}

	// Phase 2: substring match, column order, candidate priority for ties.
	for i, col := range normalized {
		if col == "" {
			continue
		}
		for _, cand := range candidates {
			if strings.Contains(col, normalizeHeader(cand)) {
				return i, true
			}
		}
	}

	return 0, false
}
