// Package watch monitors a schedule data directory for workbook changes so
// long-running sessions always answer from the newest upload.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called with the workbook path after a change settles.
type Handler func(path string)

// Watcher monitors one directory for .xlsx create/write events.
type Watcher struct {
	Dir      string
	Debounce time.Duration
	Logger   *log.Logger
	Handler  Handler

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	debounce map[string]*time.Timer
}

// New creates a watcher for dir. Debounce <= 0 gets a 500ms default: Excel
// saves fire several write events in quick succession.
func New(dir string, debounce time.Duration, handler Handler) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create file watcher: %w", err)
	}

	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		Dir:      dir,
		Debounce: debounce,
		Logger:   log.New(os.Stderr, "[watch] ", log.LstdFlags),
		Handler:  handler,
		watcher:  fsw,
		debounce: make(map[string]*time.Timer),
	}, nil
}

// Start begins watching. It blocks until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	absDir, err := filepath.Abs(w.Dir)
	if err != nil {
		return fmt.Errorf("could not resolve %s: %w", w.Dir, err)
	}
	if err := w.watcher.Add(absDir); err != nil {
		return fmt.Errorf("could not watch %s: %w", absDir, err)
	}

	w.Logger.Printf("Watching %s for schedule workbooks", absDir)

	for {
		select {
		case <-ctx.Done():
			w.Logger.Println("Stopping watcher")
			return w.watcher.Close()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Printf("Error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	path := event.Name
	if strings.ToLower(filepath.Ext(path)) != ".xlsx" {
		return
	}

	// Skip Excel lock/temp files
	base := filepath.Base(path)
	if strings.HasPrefix(base, "~$") || strings.HasPrefix(base, ".~") {
		return
	}

	w.mu.Lock()
	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(w.Debounce, func() {
		w.Logger.Printf("Workbook changed: %s", base)
		if w.Handler != nil {
			w.Handler(path)
		}
	})
	w.mu.Unlock()
}
