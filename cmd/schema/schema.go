// Package schema implements the column-resolution inspection command.
package schema

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/monykiss/schedkit/internal/formats/xlsx"
	"github.com/monykiss/schedkit/internal/output"
	"github.com/monykiss/schedkit/internal/schedule"
)

func NewCommand() *cobra.Command {
	var overrides string

	cmd := &cobra.Command{
		Use:   "schema <file.xlsx>",
		Short: "Show how each sheet's columns map to canonical fields",
		Long: `Reads a schedule workbook and shows, per sheet, which source column each
canonical field resolved to. Use this when a new release renames headers and
rows come out empty: it tells you which alias is missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			wb, err := xlsx.ReadFile(args[0])
			if err != nil {
				return err
			}

			aliases := schedule.DefaultAliases()
			if overrides != "" {
				o, err := schedule.LoadOverrides(overrides)
				if err != nil {
					return err
				}
				aliases = o.Apply(aliases)
			}

			type mapping struct {
				Field  string `json:"field"`
				Column string `json:"column,omitempty"`
			}
			type sheetReport struct {
				Sheet    string    `json:"sheet"`
				Rows     int       `json:"rows"`
				Mappings []mapping `json:"mappings"`
			}

			var reports []sheetReport
			for i := range wb.Sheets {
				sheet := &wb.Sheets[i]
				report := sheetReport{Sheet: sheet.Name, Rows: sheet.RowCount()}
				for _, field := range schedule.AllFields {
					m := mapping{Field: string(field)}
					if idx, ok := aliases.ResolveColumn(sheet.Columns, field); ok {
						m.Column = sheet.Columns[idx]
					} else if field == schedule.FieldCompanyCode && len(sheet.Columns) >= 2 {
						m.Column = sheet.Columns[1] + " (positional fallback)"
					}
					report.Mappings = append(report.Mappings, m)
				}
				reports = append(reports, report)
			}

			if jsonFlag {
				return output.PrintJSON("schema", reports)
			}

			headerStyle := color.New(color.Bold, color.FgCyan)
			dim := color.New(color.FgHiBlack)
			okStyle := color.New(color.FgGreen)
			missStyle := color.New(color.FgYellow)

			for _, report := range reports {
				headerStyle.Printf("Sheet: %s", report.Sheet)
				dim.Printf("  (%d rows)\n", report.Rows)
				for _, m := range report.Mappings {
					fmt.Printf("  %-14s ", m.Field)
					if m.Column != "" {
						okStyle.Printf("← %s\n", m.Column)
					} else {
						missStyle.Println("(unresolved)")
					}
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&overrides, "aliases", "", "YAML file with extra column aliases and stop words")

	return cmd
}
