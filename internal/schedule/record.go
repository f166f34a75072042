package schedule

import (
	"strconv"
	"time"
)

// Record is one row of the canonical table. String fields are "" when the
// source column was absent; date fields are the zero time when unparsed.
type Record struct {
	CompanyCode string    `json:"company_code"`
	CompanyName string    `json:"company_name,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	OrderNumber string    `json:"order_number,omitempty"`
	Item        string    `json:"item,omitempty"`
	Spec        string    `json:"spec,omitempty"`
	Package     string    `json:"package,omitempty"`
	Quantity    int       `json:"quantity"`
	WorkDate    time.Time `json:"work_date,omitempty"`
	RequestDate time.Time `json:"request_date,omitempty"`
	ReceiptDate time.Time `json:"receipt_date,omitempty"`
	SourceSheet string    `json:"source_sheet"`
}

// Date builds a calendar date at midnight UTC. All record dates and query
// dates are normalized through this so equality comparison is exact.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a record date as yyyy-mm-dd, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// DateField returns the record's value for one of the three date fields.
func (r Record) DateField(f Field) time.Time {
	switch f {
	case FieldWorkDate:
		return r.WorkDate
	case FieldRequestDate:
		return r.RequestDate
	case FieldReceiptDate:
		return r.ReceiptDate
	}
	return time.Time{}
}

// StringField returns the record's value for one of the listable text fields.
func (r Record) StringField(f Field) string {
	switch f {
	case FieldCompanyCode:
		return r.CompanyCode
	case FieldCompanyName:
		return r.CompanyName
	case FieldBrand:
		return r.Brand
	case FieldOrderNumber:
		return r.OrderNumber
	case FieldItem:
		return r.Item
	case FieldSpec:
		return r.Spec
	case FieldPackage:
		return r.Package
	case FieldSourceSheet:
		return r.SourceSheet
	}
	return ""
}

// SearchStrings returns every field of the record in string form, for the
// free-text token filter.
func (r Record) SearchStrings() []string {
	return []string{
		r.CompanyCode,
		r.CompanyName,
		r.Brand,
		r.OrderNumber,
		r.Item,
		r.Spec,
		r.Package,
		strconv.Itoa(r.Quantity),
		FormatDate(r.WorkDate),
		FormatDate(r.RequestDate),
		FormatDate(r.ReceiptDate),
		r.SourceSheet,
	}
}
