// Package watch implements the data-directory monitoring command.
package watch

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/monykiss/schedkit/internal/config"
	"github.com/monykiss/schedkit/internal/query"
	"github.com/monykiss/schedkit/internal/schedule"
	watchpkg "github.com/monykiss/schedkit/internal/watch"
)

func NewCommand() *cobra.Command {
	var (
		dir       string
		code      string
		overrides string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the data directory and reprint totals on upload",
		Long: `Monitors the schedule data directory. When a workbook is added or
re-uploaded, reloads it and prints the company's period totals. Runs until
interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.DataDir
			}
			if overrides == "" {
				overrides = cfg.Overrides
			}
			if code == "" {
				return fmt.Errorf("no company code given — pass one with --code (e.g. --code A001)")
			}

			aliases := schedule.DefaultAliases()
			var stops []string
			if overrides != "" {
				o, err := schedule.LoadOverrides(overrides)
				if err != nil {
					return err
				}
				aliases = o.Apply(aliases)
				stops = o.StopWords
			}
			cache := schedule.NewCache(aliases, stops...)

			printTotals := func(path string) {
				cache.Invalidate(path)
				store, err := cache.Load(path)
				if err != nil {
					fmt.Printf("reload failed: %s\n", err)
					return
				}
				records, kind := store.Lookup(code)
				if kind == "" {
					fmt.Printf("no data for code %q in %s\n", code, path)
					return
				}
				company := schedule.CompanyName(records)
				if company == "" {
					company = code
				}
				color.New(color.Bold).Printf("\n%s @ %s\n", company, time.Now().Format("15:04:05"))
				ref := time.Now()
				for _, mode := range []string{query.PeriodToday, query.PeriodThisWeek, query.PeriodThisMonth} {
					msg, _ := query.PeriodSummary(records, company, mode, "total", ref)
					fmt.Println(msg)
				}
			}

			w, err := watchpkg.New(dir, time.Duration(cfg.Watch.DebounceMs)*time.Millisecond, printTotals)
			if err != nil {
				return err
			}
			if verbose, _ := cmd.Flags().GetBool("verbose"); !verbose {
				w.Logger = log.New(io.Discard, "", 0)
			}
			return w.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory to watch (default: configured data dir)")
	cmd.Flags().StringVarP(&code, "code", "c", "", "Company code to summarize on each upload")
	cmd.Flags().StringVar(&overrides, "aliases", "", "YAML file with extra column aliases and stop words")

	return cmd
}
