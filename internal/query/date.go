// Package query interprets free-text supplier questions: date extraction,
// relative periods, keyword tokens, intent classification, and answer
// composition.
package query

import (
	"regexp"
	"strconv"
	"time"

	"github.com/monykiss/schedkit/internal/schedule"
)

// DateKind discriminates the outcome of date parsing.
type DateKind int

const (
	// DateNone means no date expression was found.
	DateNone DateKind = iota
	// DateExact is a fully resolved calendar date.
	DateExact
	// DateMonthDay is a month/day with the year unresolved; the caller
	// supplies a reference year.
	DateMonthDay
)

// DateQuery is the result of parsing a date expression out of query text.
type DateQuery struct {
	Kind  DateKind
	Date  time.Time
	Month time.Month
	Day   int
}

// Resolve returns the concrete date, using ref's year for month/day
// expressions. The second return is false when there is no usable date.
func (q DateQuery) Resolve(ref time.Time) (time.Time, bool) {
	switch q.Kind {
	case DateExact:
		return q.Date, true
	case DateMonthDay:
		if !validDate(ref.Year(), q.Month, q.Day) {
			return time.Time{}, false
		}
		return schedule.Date(ref.Year(), q.Month, q.Day), true
	}
	return time.Time{}, false
}

// datePattern is one recognized written form. yearGroup is 0 for forms
// without a year.
type datePattern struct {
	re        *regexp.Regexp
	yearGroup int
	monGroup  int
	dayGroup  int
}

// datePatterns in precedence order: most specific, least ambiguous first.
// A candidate with an impossible month/day is rejected and parsing falls
// through to the next pattern.
var datePatterns = []datePattern{
	// 2025-10-27 / 2025.10.27 / 2025/10/27, optional trailing 일
	{regexp.MustCompile(`(\d{4})\s*[-./]\s*(\d{1,2})\s*[-./]\s*(\d{1,2})\s*일?`), 1, 2, 3},
	// 25-10-27 and friends; two-digit years are 2000-based
	{regexp.MustCompile(`(\d{2})\s*[-./]\s*(\d{1,2})\s*[-./]\s*(\d{1,2})\s*일?`), 1, 2, 3},
	// dotted with day marker: 25.10.27일, 2025. 10. 27 일
	{regexp.MustCompile(`(\d{2,4})\s*\.\s*(\d{1,2})\s*\.\s*(\d{1,2})(?:\s*일)?`), 1, 2, 3},
	// worded: 2025년 10월 27일 / 25년10월27일
	{regexp.MustCompile(`(\d{2,4})\s*년\s*(\d{1,2})\s*월\s*(\d{1,2})\s*일`), 1, 2, 3},
	// bare month/day words: 10월 27일 (year comes from the caller)
	{regexp.MustCompile(`(\d{1,2})\s*월\s*(\d{1,2})\s*일`), 0, 1, 2},
	// bare numeric month/day: 10-27, 10/27, 10.27
	{regexp.MustCompile(`(\d{1,2})\s*[-./]\s*(\d{1,2})`), 0, 1, 2},
}

// ParseDate extracts the first date expression from the text. Later
// date-like substrings in the same query are ignored.
func ParseDate(text string) DateQuery {
	for _, p := range datePatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			mon, err1 := strconv.Atoi(m[p.monGroup])
			day, err2 := strconv.Atoi(m[p.dayGroup])
			if err1 != nil || err2 != nil {
				continue
			}

			if p.yearGroup == 0 {
				if !validMonthDay(time.Month(mon), day) {
					continue
				}
				return DateQuery{Kind: DateMonthDay, Month: time.Month(mon), Day: day}
			}

			year, err := strconv.Atoi(m[p.yearGroup])
			if err != nil {
				continue
			}
			if year < 100 {
				year += 2000
			}
			if !validDate(year, time.Month(mon), day) {
				continue
			}
			return DateQuery{Kind: DateExact, Date: schedule.Date(year, time.Month(mon), day)}
		}
	}
	return DateQuery{Kind: DateNone}
}

// StripDates erases every date-like span from the text, leaving the residual
// words for token extraction. The same patterns as ParseDate are used, purely
// for deletion.
func StripDates(text string) string {
	for _, p := range datePatterns {
		text = p.re.ReplaceAllString(text, " ")
	}
	return text
}

func validDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == month && t.Day() == day
}

// validMonthDay checks a month/day pair with no year in hand. Feb 29 passes
// here; Resolve re-validates against the reference year.
func validMonthDay(month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	maxDay := [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	return day <= maxDay[month]
}
