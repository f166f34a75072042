// Package shell provides the interactive supplier chat session.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/monykiss/schedkit/internal/output"
	"github.com/monykiss/schedkit/internal/query"
	"github.com/monykiss/schedkit/internal/schedule"
)

// Session manages an interactive chat session against one loaded store.
// The session holds the company subset after login; questions run against it.
type Session struct {
	Store       *schedule.Store
	Reload      func() (*schedule.Store, error)
	HistoryFile string
	Now         func() time.Time

	records []schedule.Record
	label   string
	history []string
	start   time.Time
}

// NewSession creates a chat session over the given store. reload, when
// non-nil, is called before each question so a changed workbook is picked up
// mid-session (the load cache makes this cheap).
func NewSession(store *schedule.Store, reload func() (*schedule.Store, error)) *Session {
	home, _ := os.UserHomeDir()
	histFile := filepath.Join(home, ".schedkit", "chat_history")
	os.MkdirAll(filepath.Dir(histFile), 0755)

	return &Session{
		Store:       store,
		Reload:      reload,
		HistoryFile: histFile,
		Now:         time.Now,
		start:       time.Now(),
	}
}

// Login narrows the session to one company code or order number. Returns an
// error message suitable for the prompt when nothing matches.
func (s *Session) Login(code string) error {
	records, kind := s.Store.Lookup(code)
	if kind == "" {
		return fmt.Errorf("no data for code %q — check the company code or order number", code)
	}
	s.records = records

	name := schedule.CompanyName(records)
	if name == "" {
		name = strings.ToUpper(strings.TrimSpace(code))
	}
	if kind == "order" {
		s.label = fmt.Sprintf("order %s — %s", strings.ToUpper(strings.TrimSpace(code)), name)
	} else {
		s.label = name
	}
	return nil
}

// Run starts the REPL loop. Blocks until 'exit' or Ctrl+D.
func (s *Session) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ask> ",
		HistoryFile:     s.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	s.printBanner()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.history = append(s.history, line)

		switch line {
		case "exit", "quit":
			elapsed := time.Since(s.start).Round(time.Second)
			fmt.Printf("\nSession ended. %d questions in %s.\n", len(s.history)-1, elapsed)
			return nil
		case "help":
			s.printHelp()
		case "history":
			for i, q := range s.history {
				fmt.Printf("  %d  %s\n", i+1, q)
			}
		case "summary":
			s.printSummary()
		default:
			s.answer(line)
		}
	}

	return nil
}

func (s *Session) answer(question string) {
	if s.Reload != nil {
		if store, err := s.Reload(); err == nil && store != s.Store {
			s.Store = store
			// Re-run the lookup so the subset reflects the new upload.
			if records, kind := store.Lookup(firstCode(s.records)); kind != "" {
				s.records = records
			}
		}
	}

	result := query.Answer(s.records, question, s.Now(), s.Store.StopWords...)
	fmt.Println(result.Message)
	if len(result.Rows) > 0 {
		output.PrintRecords(result.Rows)
	}
}

// printBanner shows the company header and the standing totals, the way the
// original summary cards did.
func (s *Session) printBanner() {
	header := color.New(color.Bold, color.FgCyan)
	header.Printf("%s — supplier schedule chat\n", s.label)

	s.printSummary()
	fmt.Println("Type a question, 'summary' for totals, 'help' for examples, 'exit' to quit.")
	fmt.Println()
}

func (s *Session) printSummary() {
	ref := s.Now()
	for _, mode := range []string{query.PeriodToday, query.PeriodThisWeek, query.PeriodThisMonth} {
		p := query.ResolvePeriod(ref, mode)
		total := 0
		for _, r := range s.records {
			if p.Contains(r.WorkDate) {
				total += r.Quantity
			}
		}
		fmt.Printf("  %-11s %s units\n", query.PeriodLabel(mode)+":", query.FormatCount(total))
	}
	fmt.Printf("  %-11s %s units over %d rows\n", "all:",
		query.FormatCount(schedule.TotalQuantity(s.records)), len(s.records))
}

func (s *Session) printHelp() {
	fmt.Println("Ask about dates, quantities, and orders, for example:")
	fmt.Println(`  10월 27일 작업되었어?      was the Oct 27 work done`)
	fmt.Println(`  인수완료?                  was it received`)
	fmt.Println(`  총 수량은?                 total quantity`)
	fmt.Println(`  이번주 수량                this week's quantity vs last`)
	fmt.Println(`  발주번호 내역              list order numbers`)
	fmt.Println(`  아이템 보여줘              list items`)
}

func firstCode(records []schedule.Record) string {
	if len(records) == 0 {
		return ""
	}
	return records[0].CompanyCode
}
