package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDetectsWorkbookWrite(t *testing.T) {
	tmpDir := t.TempDir()

	changed := make(chan string, 1)
	w, err := New(tmpDir, 50*time.Millisecond, func(path string) {
		select {
		case changed <- path:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watcher a moment to register the directory
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(tmpDir, "schedule.xlsx")
	if err := os.WriteFile(path, []byte("stub"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case got := <-changed:
		if filepath.Base(got) != "schedule.xlsx" {
			t.Errorf("expected schedule.xlsx, got %s", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler was not called for workbook write")
	}
}

func TestWatcherIgnoresNonWorkbooks(t *testing.T) {
	tmpDir := t.TempDir()

	changed := make(chan string, 1)
	w, err := New(tmpDir, 50*time.Millisecond, func(path string) {
		changed <- path
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	time.Sleep(100 * time.Millisecond)

	for _, name := range []string{"notes.txt", "~$schedule.xlsx"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}

	select {
	case got := <-changed:
		t.Errorf("handler should not fire for %s", got)
	case <-time.After(500 * time.Millisecond):
	}
}
