// Package ask implements the one-shot question command.
package ask

import (
	"fmt"
	"strings"
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
		date      string
	)

	cmd := &cobra.Command{
		Use:   "ask \"<question>\"",
		Short: "Ask one question about a schedule workbook",
		Long: `Loads the schedule workbook, narrows it to your company code (or order
number), and answers a single question.

Examples:
  schedkit ask --code A001 "10월 27일 작업되었어?"
  schedkit ask --code A001 --file schedule.xlsx "총 수량은?"
  schedkit ask --code 3FTKBA143K003 "아이템 보여줘"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")
			question := args[0]

			if strings.TrimSpace(code) == "" {
				return fmt.Errorf("no company code given — pass one with --code (e.g. --code A001)")
			}

			path, err := resolveWorkbook(file)
			if err != nil {
				return err
			}

			store, err := schedule.LoadFile(path, overrides)
			if err != nil {
				return err
			}

			records, kind := store.Lookup(code)
			if kind == "" {
				return fmt.Errorf("no data for code %q — check the company code or order number", code)
			}

			ref := time.Now()
			if date != "" {
				d := query.ParseDate(date)
				resolved, ok := d.Resolve(time.Now())
				if !ok {
					return fmt.Errorf("could not parse reference date %q — use a form like 2025-10-27", date)
				}
				ref = resolved
			}

			result := query.Answer(records, question, ref, store.StopWords...)

			if jsonFlag {
				return output.PrintJSON("ask", result)
			}

			color.New(color.Bold).Println(result.Message)
			if len(result.Rows) > 0 {
				output.PrintRecords(result.Rows)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schedule workbook (default: newest .xlsx in the data dir)")
	cmd.Flags().StringVarP(&code, "code", "c", "", "Company code or order number")
	cmd.Flags().StringVar(&overrides, "aliases", "", "YAML file with extra column aliases and stop words")
	cmd.Flags().StringVar(&date, "ref-date", "", "Reference date for relative expressions (default: today)")

	return cmd
}

// resolveWorkbook returns the explicit file, or the newest workbook in the
// configured data directory.
func resolveWorkbook(file string) (string, error) {
	if file != "" {
		return file, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return xlsx.LatestInDir(cfg.DataDir)
}
