package query

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/monykiss/schedkit/internal/schedule"
)

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// Compose builds the period-over-period answer sentence: current value,
// direction, absolute delta, and percent change to one decimal place.
// Percent is 0 when the previous value is 0.
func Compose(company, periodLabel, intentLabel string, cur, prev int) string {
	delta := cur - prev
	pct := 0.0
	if prev != 0 {
		pct = float64(delta) / float64(prev) * 100
	}

	direction := "no change"
	switch {
	case delta > 0:
		direction = "an increase"
	case delta < 0:
		direction = "a decrease"
	}

	abs := delta
	if abs < 0 {
		abs = -abs
	}

	if delta == 0 {
		return fmt.Sprintf("%s %s %s quantity is %s units, no change from the prior period.",
			company, periodLabel, intentLabel, FormatCount(cur))
	}
	return fmt.Sprintf("%s %s %s quantity is %s units, %s of %s units (%.1f%%) from the prior period.",
		company, periodLabel, intentLabel, FormatCount(cur), direction, FormatCount(abs), pct)
}

// PeriodSummary answers a relative-period question: it sums quantity over
// the period and its predecessor and composes the comparison sentence.
func PeriodSummary(records []schedule.Record, company, mode, intentLabel string, ref time.Time) (string, []schedule.Record) {
	p := ResolvePeriod(ref, mode)
	field := dateFilterField(records)

	var cur, prev int
	var rows []schedule.Record
	for _, r := range records {
		d := r.DateField(field)
		if p.Contains(d) {
			cur += r.Quantity
			rows = append(rows, r)
		} else if p.ContainsPrev(d) {
			prev += r.Quantity
		}
	}

	label := fmt.Sprintf("%s (%s ~ %s)", PeriodLabel(mode),
		p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
	return Compose(company, label, intentLabel, cur, prev), rows
}
