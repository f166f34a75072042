// Package config manages application configuration from files and environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	// DataDir is the folder operators drop schedule workbooks into.
	DataDir string `mapstructure:"data_dir"`
	// Overrides is an optional aliases/stop-words YAML file applied on load.
	Overrides string `mapstructure:"overrides"`
	Output    struct {
		Format string `mapstructure:"format"`
		Color  bool   `mapstructure:"color"`
	} `mapstructure:"output"`
	Watch struct {
		DebounceMs int `mapstructure:"debounce_ms"`
	} `mapstructure:"watch"`
}

// Load reads the configuration from ~/.schedkit/config.yaml and environment
// variables (SCHEDKIT_ prefix).
func Load() (*Config, error) {
	dir := configDir()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	// Defaults
	viper.SetDefault("data_dir", "data")
	viper.SetDefault("output.color", true)
	viper.SetDefault("output.format", "text")
	viper.SetDefault("watch.debounce_ms", 500)

	// Environment variable overrides
	viper.SetEnvPrefix("SCHEDKIT")
	viper.AutomaticEnv()

	// Read config file (non-fatal if missing)
	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Dir returns the schedkit configuration directory.
func Dir() string {
	return configDir()
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".schedkit"
	}
	return filepath.Join(home, ".schedkit")
}
