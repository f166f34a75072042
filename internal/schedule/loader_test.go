package schedule

import (
	"path/filepath"
	"testing"
)

func TestLoadFileAppliesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	writeWorkbook(t, path, [][]string{
		{"no", "업체코드", "납품수량"},
		{"1", "a001", "7"},
	})
	overrides := writeOverrides(t, `
aliases:
  quantity:
    - 납품수량
stop_words:
  - 긴급
`)

	store, err := LoadFile(path, overrides)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if store.Records[0].Quantity != 7 {
		t.Errorf("expected the override alias to resolve quantity, got %d", store.Records[0].Quantity)
	}
	if len(store.StopWords) != 1 || store.StopWords[0] != "긴급" {
		t.Errorf("expected override stop words on the store, got %v", store.StopWords)
	}
}

func TestLoadFileWithoutOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	writeWorkbook(t, path, [][]string{
		{"no", "업체코드", "수량"},
		{"1", "a001", "7"},
	})

	store, err := LoadFile(path, "")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(store.StopWords) != 0 {
		t.Errorf("expected no stop words, got %v", store.StopWords)
	}
}

func TestCacheStampsStopWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")
	writeWorkbook(t, path, [][]string{
		{"no", "업체코드", "수량"},
		{"1", "a001", "7"},
	})

	cache := NewCache(DefaultAliases(), "긴급")
	store, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(store.StopWords) != 1 || store.StopWords[0] != "긴급" {
		t.Errorf("expected cache stop words on the store, got %v", store.StopWords)
	}
}
