package schedule

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeOverrides(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeOverrides(t, `
aliases:
  quantity:
    - 납품수량
stop_words:
  - 부탁드립니다
`)
	o, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides failed: %v", err)
	}
	if len(o.Aliases["quantity"]) != 1 || o.Aliases["quantity"][0] != "납품수량" {
		t.Errorf("unexpected aliases: %v", o.Aliases)
	}
	if len(o.StopWords) != 1 || o.StopWords[0] != "부탁드립니다" {
		t.Errorf("unexpected stop words: %v", o.StopWords)
	}

	// Overrides take priority over built-in candidates.
	table := o.Apply(DefaultAliases())
	cols := []string{"수량", "납품수량"}
	idx, ok := table.ResolveColumn(cols, FieldQuantity)
	if !ok || idx != 1 {
		t.Errorf("expected override candidate to win, got idx=%d ok=%v", idx, ok)
	}
}

func TestLoadOverridesUnknownField(t *testing.T) {
	path := writeOverrides(t, `
aliases:
  not_a_field:
    - whatever
`)
	_, err := LoadOverrides(path)
	if err == nil || !strings.Contains(err.Error(), "unknown field") {
		t.Errorf("expected unknown-field error, got %v", err)
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestLoadOverridesBadYAML(t *testing.T) {
	path := writeOverrides(t, "aliases: [not, a, map")
	_, err := LoadOverrides(path)
	if err == nil || !strings.Contains(err.Error(), "invalid overrides YAML") {
		t.Errorf("expected parse error, got %v", err)
	}
}
