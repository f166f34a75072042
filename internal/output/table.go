package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/monykiss/schedkit/internal/schedule"
)

// recordColumns is the display order for record tables; mirrors the column
// order operators are used to from the source workbooks.
var recordColumns = []struct {
	header string
	value  func(schedule.Record) string
}{
	{"work date", func(r schedule.Record) string { return schedule.FormatDate(r.WorkDate) }},
	{"request date", func(r schedule.Record) string { return schedule.FormatDate(r.RequestDate) }},
	{"receipt date", func(r schedule.Record) string { return schedule.FormatDate(r.ReceiptDate) }},
	{"order no", func(r schedule.Record) string { return r.OrderNumber }},
	{"item", func(r schedule.Record) string { return r.Item }},
	{"spec", func(r schedule.Record) string { return r.Spec }},
	{"qty", func(r schedule.Record) string { return strconv.Itoa(r.Quantity) }},
	{"package", func(r schedule.Record) string { return r.Package }},
	{"brand", func(r schedule.Record) string { return r.Brand }},
	{"sheet", func(r schedule.Record) string { return r.SourceSheet }},
}

// PrintRecords renders records as an aligned terminal table, skipping
// columns that are empty for every row.
func PrintRecords(records []schedule.Record) {
	dim := color.New(color.FgHiBlack)

	if len(records) == 0 {
		dim.Println("  (no rows)")
		return
	}

	// Keep only columns with data.
	type col struct {
		header string
		cells  []string
		width  int
	}
	var cols []col
	for _, rc := range recordColumns {
		c := col{header: rc.header, width: runewidth.StringWidth(rc.header)}
		hasData := false
		for _, r := range records {
			v := rc.value(r)
			if v != "" {
				hasData = true
			}
			// Display width, not byte length: Hangul cells are double-width.
			if w := runewidth.StringWidth(v); w > c.width {
				c.width = w
			}
			c.cells = append(c.cells, v)
		}
		if hasData {
			if c.width > 40 {
				c.width = 40
			}
			cols = append(cols, c)
		}
	}

	headerStyle := color.New(color.Bold)
	fmt.Print("  ")
	for j, c := range cols {
		if j > 0 {
			fmt.Print("| ")
		}
		headerStyle.Print(pad(c.header, c.width))
	}
	fmt.Println()

	dim.Print("  ")
	for j, c := range cols {
		if j > 0 {
			dim.Print("+-")
		}
		dim.Print(strings.Repeat("-", c.width+1))
	}
	dim.Println()

	for i := range records {
		fmt.Print("  ")
		for j, c := range cols {
			if j > 0 {
				fmt.Print("| ")
			}
			fmt.Print(pad(c.cells[i], c.width))
		}
		fmt.Println()
	}
	dim.Printf("  (%d rows)\n", len(records))
}

func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "~")
	}
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s)+1)
}
