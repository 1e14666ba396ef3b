// Package config loads shiftlog settings from ~/.shiftlog/config.yaml,
// with SHIFTLOG_* environment variables taking precedence. All settings
// are optional; the built-in defaults work without a config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Export  ExportConfig  `mapstructure:"export"`
	Show    ShowConfig    `mapstructure:"show"`
	Summary SummaryConfig `mapstructure:"summary"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	// Format is the default export format: csv, json or xlsx.
	Format string `mapstructure:"format"`
	// Output is the default output path; empty means stdout.
	Output string `mapstructure:"output"`
}

// ShowConfig holds highlight display defaults.
type ShowConfig struct {
	// Markers forces <highlight> text markers instead of ANSI colors.
	Markers bool `mapstructure:"markers"`
}

// SummaryConfig holds summary defaults.
type SummaryConfig struct {
	// Worker pre-selects a single worker; empty means all workers.
	Worker string `mapstructure:"worker"`
}

// DefaultFormat is used when neither flag, env nor config file name one.
const DefaultFormat = "csv"

// Load reads the config file if present and applies env overrides.
// A missing file is not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvPrefix("SHIFTLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("export.format", DefaultFormat)
	v.SetDefault("export.output", "")
	v.SetDefault("show.markers", false)
	v.SetDefault("summary.worker", "")

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".shiftlog"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
