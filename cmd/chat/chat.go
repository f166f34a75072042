// Package chat implements the interactive supplier chat command.
package chat

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/monykiss/schedkit/internal/config"
	"github.com/monykiss/schedkit/internal/formats/xlsx"
	"github.com/monykiss/schedkit/internal/schedule"
	shellpkg "github.com/monykiss/schedkit/internal/shell"
)

func NewCommand() *cobra.Command {
	var (
		file      string
		code      string
		overrides string
	)

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive schedule chat session",
		Long: `Start a question-and-answer session against the schedule workbook.

Enter your company code (or an order number) once; every question after that
runs against your rows only. The workbook is re-checked before each answer,
so a new upload takes effect mid-session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if overrides == "" {
				overrides = cfg.Overrides
			}

			path := file
			if path == "" {
				path, err = xlsx.LatestInDir(cfg.DataDir)
				if err != nil {
					return err
				}
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
			store, err := cache.Load(path)
			if err != nil {
				return err
			}

			if code == "" {
				fmt.Print("Company code or order number: ")
				if _, err := fmt.Scanln(&code); err != nil {
					return fmt.Errorf("no code entered")
				}
			}
			code = strings.TrimSpace(code)

			session := shellpkg.NewSession(store, func() (*schedule.Store, error) {
				return cache.Load(path)
			})
			if err := session.Login(code); err != nil {
				return err
			}
			return session.Run()
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Schedule workbook (default: newest .xlsx in the data dir)")
	cmd.Flags().StringVarP(&code, "code", "c", "", "Company code or order number (prompted if omitted)")
	cmd.Flags().StringVar(&overrides, "aliases", "", "YAML file with extra column aliases and stop words")

	return cmd
}
