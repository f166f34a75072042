package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/monykiss/schedkit/internal/schedule"
)

// Result is a structured answer: the composed message plus the rows that
// support it, for display.
type Result struct {
	Message string            `json:"message"`
	Rows    []schedule.Record `json:"rows,omitempty"`
}

// helpMessage enumerates example phrasings when no intent matches.
const helpMessage = `Try questions like: "10월 27일 작업되었어?", "인수완료?", ` +
	`"총 수량은?", "발주번호 내역", "아이템 보여줘", "PACKAGE 내역"`

// Answer runs the per-query decision pipeline over one company's records:
// date filter, free-text token filter, then intent classification. Every
// path is total — unknown intents get the help message, never an error.
// extraStops are operator-supplied stop words applied on top of the
// built-in list during token extraction.
func Answer(records []schedule.Record, queryText string, ref time.Time, extraStops ...string) Result {
	q := strings.ToLower(strings.TrimSpace(queryText))
	subset := records

	// 1. Date filter. The filter column is the first of work/request/receipt
	// date in which the queried date actually occurs — chosen once for the
	// whole subset.
	var queryDate time.Time
	var hasDate bool
	if d, ok := ParseDate(q).Resolve(ref); ok {
		queryDate, hasDate = d, true
		col := dateColumnFor(subset, d)
		subset = filterByDate(subset, col, d)
	}

	// 2. Free-text tokens: OR across tokens, OR across fields.
	if tokens := ExtractTokens(q, extraStops...); len(tokens) > 0 {
		subset = schedule.FilterAny(subset, tokens)
	}

	// 3. Intent, first matching keyword wins.
	switch {
	case matchesWorkDone(q):
		return statusReport(records, subset, schedule.FieldWorkDate, "work", queryDate, hasDate)

	case containsAny(q, "인수", "수령", "receipt", "received", "receive"):
		return statusReport(records, subset, schedule.FieldReceiptDate, "receipt", queryDate, hasDate)

	case containsAny(q, "요청", "request"):
		return latestDateReport(records, subset, schedule.FieldRequestDate, "request")

	case containsAny(q, "수량", "몇건", "quantity", "qty", "how many", "total"):
		if mode, ok := DetectPeriod(q); ok && !hasDate {
			msg, rows := PeriodSummary(records, companyLabel(records), mode, "total", ref)
			return Result{Message: msg, Rows: rows}
		}
		total := schedule.TotalQuantity(subset)
		if hasDate {
			return Result{
				Message: fmt.Sprintf("Quantity for %s: %s units.", schedule.FormatDate(queryDate), FormatCount(total)),
				Rows:    subset,
			}
		}
		return Result{
			Message: fmt.Sprintf("Total quantity: %s units.", FormatCount(total)),
			Rows:    subset,
		}

	case containsAny(q, "발주", "주문번호", "po", "order"):
		return listReport(subset, schedule.FieldOrderNumber, "order numbers")

	case containsAny(q, "아이템", "품목", "item"):
		return listReport(subset, schedule.FieldItem, "items")

	case containsAny(q, "package", "패키지", "포장"):
		return listReport(subset, schedule.FieldPackage, "packages")

	case containsAny(q, "브랜드", "brand"):
		return listReport(subset, schedule.FieldBrand, "brands")

	case containsAny(q, "업체명", "company name"):
		if name := schedule.CompanyName(records); name != "" {
			return Result{Message: fmt.Sprintf("Company name: %s.", name), Rows: subset}
		}
		return Result{Message: "No company name on record.", Rows: subset}

	case containsAny(q, "내역", "보여", "표", "show", "list"):
		return Result{Message: "Here are the matching rows.", Rows: subset}
	}

	// A bare period expression ("지난주?") still gets a comparison answer.
	if mode, ok := DetectPeriod(q); ok && !hasDate {
		msg, rows := PeriodSummary(records, companyLabel(records), mode, "total", ref)
		return Result{Message: msg, Rows: rows}
	}

	return Result{Message: helpMessage, Rows: subset}
}

// companyLabel names the company in composed sentences: the company name if
// present, else the uppercased code.
func companyLabel(records []schedule.Record) string {
	if name := schedule.CompanyName(records); name != "" {
		return name
	}
	if len(records) > 0 {
		return strings.ToUpper(records[0].CompanyCode)
	}
	return "(unknown)"
}

// dateFields is the preference order for date-bearing questions.
var dateFields = []schedule.Field{schedule.FieldWorkDate, schedule.FieldRequestDate, schedule.FieldReceiptDate}

// dateColumnFor picks the column an explicit-date filter applies to: the
// first of work/request/receipt date in which the queried date actually
// occurs. A receipt question about a date that only appears in the receipt
// column must land there even when every row carries a work date. When no
// column contains the date, the first populated column takes the filter so
// the subset comes out empty against real data.
func dateColumnFor(records []schedule.Record, d time.Time) schedule.Field {
	for _, f := range dateFields {
		for _, r := range records {
			if r.DateField(f).Equal(d) {
				return f
			}
		}
	}
	return dateFilterField(records)
}

// dateFilterField picks the column a date-range filter applies to: the first
// of work/request/receipt date that is populated anywhere in the subset.
func dateFilterField(records []schedule.Record) schedule.Field {
	for _, f := range dateFields {
		for _, r := range records {
			if !r.DateField(f).IsZero() {
				return f
			}
		}
	}
	return schedule.FieldWorkDate
}

func filterByDate(records []schedule.Record, field schedule.Field, d time.Time) []schedule.Record {
	var out []schedule.Record
	for _, r := range records {
		if r.DateField(field).Equal(d) {
			out = append(out, r)
		}
	}
	return out
}

// statusReport answers completion questions. With an explicit date it states
// complete/incomplete for that date; without one it reports the most recent
// entry for the field instead.
func statusReport(all, subset []schedule.Record, field schedule.Field, label string, queryDate time.Time, hasDate bool) Result {
	if hasDate {
		// The subset already carries the date filter on whichever column
		// contained the date; re-filtering by this intent's field would
		// demand the date in two columns at once.
		if len(subset) > 0 {
			qty := schedule.TotalQuantity(subset)
			return Result{
				Message: fmt.Sprintf("%s %s is complete. Quantity %s units.", schedule.FormatDate(queryDate), label, FormatCount(qty)),
				Rows:    subset,
			}
		}
		return Result{
			Message: fmt.Sprintf("%s %s is incomplete.", schedule.FormatDate(queryDate), label),
			Rows:    subset,
		}
	}
	return latestDateReport(all, subset, field, label)
}

// latestDateReport states the most recent date present for the field and the
// quantity recorded on it.
func latestDateReport(all, subset []schedule.Record, field schedule.Field, label string) Result {
	source := subset
	if len(source) == 0 {
		source = all
	}
	var withDates []schedule.Record
	for _, r := range source {
		if !r.DateField(field).IsZero() {
			withDates = append(withDates, r)
		}
	}
	if len(withDates) == 0 {
		return Result{Message: fmt.Sprintf("No %s date on record.", label), Rows: subset}
	}
	sort.SliceStable(withDates, func(i, j int) bool {
		return withDates[i].DateField(field).Before(withDates[j].DateField(field))
	})
	last := withDates[len(withDates)-1]
	return Result{
		Message: fmt.Sprintf("Most recent %s date is %s, quantity %s units.",
			label, schedule.FormatDate(last.DateField(field)), FormatCount(last.Quantity)),
		Rows: []schedule.Record{last},
	}
}

// listReport lists the distinct non-empty values of a field, capped at 10.
func listReport(subset []schedule.Record, field schedule.Field, label string) Result {
	seen := make(map[string]struct{})
	var values []string
	for _, r := range subset {
		v := r.StringField(field)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
		if len(values) == 10 {
			break
		}
	}
	if len(values) == 0 {
		return Result{Message: fmt.Sprintf("No %s information.", label), Rows: subset}
	}
	return Result{
		Message: fmt.Sprintf("%s: %s", strings.ToUpper(label[:1])+label[1:], strings.Join(values, ", ")),
		Rows:    subset,
	}
}

// matchesWorkDone detects "was the work done" phrasings: a work word together
// with a completion word, or an explicit work-date mention.
func matchesWorkDone(q string) bool {
	if strings.Contains(q, "작업일자") || strings.Contains(q, "work date") {
		return true
	}
	work := containsAny(q, "작업", "work")
	done := containsAny(q, "되었", "완료", "됐", "끝", "done", "complete", "finished")
	return work && done
}

func containsAny(q string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(q, w) {
			return true
		}
	}
	return false
}
