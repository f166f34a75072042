package schedule

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/monykiss/schedkit/internal/formats/xlsx"
)

func writeWorkbook(t *testing.T, path string, rows [][]string) {
	t.Helper()
	err := xlsx.WriteFile([]xlsx.RawSheet{{Name: "일정", Rows: rows}}, path)
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
}

func TestCacheReusesUnchangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	writeWorkbook(t, path, [][]string{
		{"발주번호", "업체코드", "수량"},
		{"PO-1", "a001", "5"},
	})

	cache := NewCache(DefaultAliases())
	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if first != second {
		t.Error("expected the cached store pointer on an unchanged file")
	}
}

func TestCacheReloadsOnModTimeChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	writeWorkbook(t, path, [][]string{
		{"발주번호", "업체코드", "수량"},
		{"PO-1", "a001", "5"},
	})

	cache := NewCache(DefaultAliases())
	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}

	writeWorkbook(t, path, [][]string{
		{"발주번호", "업체코드", "수량"},
		{"PO-1", "a001", "5"},
		{"PO-2", "a001", "7"},
	})
	// Filesystems with coarse timestamps could hand back the old entry.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if first == second {
		t.Fatal("expected a fresh store after the file changed")
	}
	if len(second.Records) != 2 {
		t.Errorf("expected 2 records after reload, got %d", len(second.Records))
	}
}

func TestCacheInvalidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	writeWorkbook(t, path, [][]string{
		{"발주번호", "업체코드", "수량"},
		{"PO-1", "a001", "5"},
	})

	cache := NewCache(DefaultAliases())
	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	cache.Invalidate(path)
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("load after invalidate: %v", err)
	}
	if first == second {
		t.Error("expected a re-parse after Invalidate")
	}
}

func TestCacheMissingFile(t *testing.T) {
	cache := NewCache(DefaultAliases())
	if _, err := cache.Load(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Error("expected an error for a missing workbook")
	}
}
