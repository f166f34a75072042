// Package summary implements the period totals command.
package summary

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/monykiss/schedkit/internal/config"
	"github.com/monykiss/schedkit/internal/formats/xlsx"
	"github.com/monykiss/schedkit/internal/output"
	"github.com/monykiss/schedkit/internal/query"
	"github.com/monykiss/schedkit/internal/schedule"
)

func NewCommand() *cobra.Command {
	var (
		file      string
		code      string
		overrides string
		period    string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Period totals with a comparison to the prior period",
		Long: `Sums a company's quantities for a period (today, this_week, this_month,
last_month, ...) and states the change against the immediately preceding
period of the same length.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			if code == "" {
				return fmt.Errorf("no company code given — pass one with --code (e.g. --code A001)")
			}

			path := file
			if path == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				path, err = xlsx.LatestInDir(cfg.DataDir)
				if err != nil {
					return err
				}
			}

			store, err := schedule.LoadFile(path, overrides)
			if err != nil {
				return err
			}

			records, kind := store.Lookup(code)
			if kind == "" {
				return fmt.Errorf("no data for code %q — check the company code or order number", code)
			}

			company := schedule.CompanyName(records)
			if company == "" {
				company = code
			}
			ref := time.Now()

			if jsonFlag {
				type periodTotal struct {
					Period   string `json:"period"`
					Start    string `json:"start"`
					End      string `json:"end"`
					Quantity int    `json:"quantity"`
					Previous int    `json:"previous"`
				}
				var totals []periodTotal
				for _, mode := range summaryModes(period) {
					p := query.ResolvePeriod(ref, mode)
					cur, prev := sumPeriod(records, p)
					totals = append(totals, periodTotal{
						Period:   mode,
						Start:    p.Start.Format("2006-01-02"),
						End:      p.End.Format("2006-01-02"),
						Quantity: cur,
						Previous: prev,
					})
				}
				return output.PrintJSON("summary", map[string]any{
					"company": company,
					"totals":  totals,
				})
			}

			header := color.New(color.Bold, color.FgCyan)
			header.Printf("%s — schedule summary\n\n", company)
			for _, mode := range summaryModes(period) {
				msg, _ := query.PeriodSummary(records, company, mode, "total", ref)
				fmt.Println(msg)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schedule workbook (default: newest .xlsx in the data dir)")
	cmd.Flags().StringVarP(&code, "code", "c", "", "Company code or order number")
	cmd.Flags().StringVar(&overrides, "aliases", "", "YAML file with extra column aliases and stop words")
	cmd.Flags().StringVarP(&period, "period", "p", "", "Single period (today, this_week, this_month, ...)")

	return cmd
}

func summaryModes(period string) []string {
	if period != "" {
		return []string{period}
	}
	return []string{query.PeriodToday, query.PeriodThisWeek, query.PeriodThisMonth}
}

func sumPeriod(records []schedule.Record, p query.Period) (cur, prev int) {
	for _, r := range records {
		if p.Contains(r.WorkDate) {
			cur += r.Quantity
		} else if p.ContainsPrev(r.WorkDate) {
			prev += r.Quantity
		}
	}
	return cur, prev
}
