package query

import (
	"strings"
	"time"
)

// Period is a resolved date range plus the immediately preceding range of
// equal length, for period-over-period comparison.
type Period struct {
	Start     time.Time
	End       time.Time
	PrevStart time.Time
	PrevEnd   time.Time
}

// Period modes. Weeks start on Monday.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodThisWeek  = "this_week"
	PeriodLastWeek  = "last_week"
	PeriodThisMonth = "this_month"
	PeriodLastMonth = "last_month"
	PeriodThisYear  = "this_year"
	PeriodLastYear  = "last_year"
)

// periodKeywords maps written period expressions to modes. Checked in order;
// first hit wins.
var periodKeywords = []struct {
	word string
	mode string
}{
	{"오늘", PeriodToday}, {"금일", PeriodToday}, {"today", PeriodToday},
	{"어제", PeriodYesterday}, {"yesterday", PeriodYesterday},
	{"이번주", PeriodThisWeek}, {"금주", PeriodThisWeek}, {"this week", PeriodThisWeek},
	{"지난주", PeriodLastWeek}, {"전주", PeriodLastWeek}, {"last week", PeriodLastWeek},
	{"이번달", PeriodThisMonth}, {"금월", PeriodThisMonth}, {"this month", PeriodThisMonth},
	{"지난달", PeriodLastMonth}, {"전월", PeriodLastMonth}, {"last month", PeriodLastMonth},
	{"올해", PeriodThisYear}, {"금년", PeriodThisYear}, {"this year", PeriodThisYear},
	{"작년", PeriodLastYear}, {"last year", PeriodLastYear},
}

// DetectPeriod scans the text for a relative-period expression.
func DetectPeriod(text string) (string, bool) {
	q := strings.ToLower(text)
	for _, kw := range periodKeywords {
		if strings.Contains(q, kw.word) {
			return kw.mode, true
		}
	}
	return "", false
}

// PeriodLabel returns the human label for a period mode.
func PeriodLabel(mode string) string {
	switch mode {
	case PeriodToday:
		return "today"
	case PeriodYesterday:
		return "yesterday"
	case PeriodThisWeek:
		return "this week"
	case PeriodLastWeek:
		return "last week"
	case PeriodThisMonth:
		return "this month"
	case PeriodLastMonth:
		return "last month"
	case PeriodThisYear:
		return "this year"
	case PeriodLastYear:
		return "last year"
	}
	return mode
}

// ResolvePeriod computes the date range for mode anchored at ref, and the
// immediately preceding comparable range. Supplier-facing answers quote
// deltas across these spans, so every boundary matters. Unknown modes get
// today's rule.
func ResolvePeriod(ref time.Time, mode string) Period {
	ref = dateOnly(ref)

	switch mode {
	case PeriodYesterday:
		start := ref.AddDate(0, 0, -1)
		return Period{Start: start, End: start, PrevStart: start.AddDate(0, 0, -1), PrevEnd: start.AddDate(0, 0, -1)}

	case PeriodThisWeek:
		start := mondayOf(ref)
		prevEnd := start.AddDate(0, 0, -1)
		return Period{Start: start, End: ref, PrevStart: mondayOf(prevEnd), PrevEnd: prevEnd}

	case PeriodLastWeek:
		end := mondayOf(ref).AddDate(0, 0, -1) // Sunday of prior week
		start := end.AddDate(0, 0, -6)
		return Period{Start: start, End: end, PrevStart: start.AddDate(0, 0, -7), PrevEnd: start.AddDate(0, 0, -1)}

	case PeriodThisMonth:
		start := firstOfMonth(ref)
		prevEnd := start.AddDate(0, 0, -1)
		return Period{Start: start, End: ref, PrevStart: firstOfMonth(prevEnd), PrevEnd: prevEnd}

	case PeriodLastMonth:
		end := firstOfMonth(ref).AddDate(0, 0, -1) // last day of previous month
		start := firstOfMonth(end)
		prevEnd := start.AddDate(0, 0, -1)
		return Period{Start: start, End: end, PrevStart: firstOfMonth(prevEnd), PrevEnd: prevEnd}

	case PeriodThisYear:
		start := firstOfYear(ref)
		return Period{
			Start: start, End: ref,
			PrevStart: firstOfYear(start.AddDate(0, 0, -1)),
			PrevEnd:   start.AddDate(0, 0, -1),
		}

	case PeriodLastYear:
		end := firstOfYear(ref).AddDate(0, 0, -1) // Dec 31 of previous year
		start := firstOfYear(end)
		return Period{
			Start: start, End: end,
			PrevStart: firstOfYear(start.AddDate(0, 0, -1)),
			PrevEnd:   start.AddDate(0, 0, -1),
		}

	default: // today, and any unknown mode
		return Period{Start: ref, End: ref, PrevStart: ref.AddDate(0, 0, -1), PrevEnd: ref.AddDate(0, 0, -1)}
	}
}

// Contains reports whether t falls inside [Start, End].
func (p Period) Contains(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(p.Start) && !t.After(p.End)
}

// ContainsPrev reports whether t falls inside [PrevStart, PrevEnd].
func (p Period) ContainsPrev(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(p.PrevStart) && !t.After(p.PrevEnd)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// mondayOf returns the Monday of t's week.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func firstOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}
