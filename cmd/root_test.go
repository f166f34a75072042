package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
)

func TestConfigDrivesOutputDefaults(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".schedkit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "output:\n  format: json\n  color: false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	prevNoColor := color.NoColor
	defer func() { color.NoColor = prevNoColor }()

	root := NewRootCommand()
	root.PersistentPreRun(root, nil)

	if !color.NoColor {
		t.Error("expected output.color=false to disable color")
	}
	jsonFlag, err := root.PersistentFlags().GetBool("json")
	if err != nil {
		t.Fatalf("json flag: %v", err)
	}
	if !jsonFlag {
		t.Error("expected output.format=json to default --json on")
	}
}

func TestExplicitJSONFlagWins(t *testing.T) {
	viper.Reset()
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".schedkit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("output:\n  format: json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	root := NewRootCommand()
	if err := root.PersistentFlags().Set("json", "false"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	root.PersistentPreRun(root, nil)

	jsonFlag, _ := root.PersistentFlags().GetBool("json")
	if jsonFlag {
		t.Error("an explicit --json=false must not be overridden by config")
	}
}
