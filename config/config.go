// Package config loads the outline tool's TOML configuration file and turns
// it into engine settings.
//
// A configuration file looks like:
//
//	workers = 4
//	parallel_threshold = 10
//	title_pages = 3
//	structural_tables = true
//
//	[font]
//	title_ratio = 1.5
//	h1_ratio = 1.3
//	h2_ratio = 1.15
//	h3_ratio = 1.1
//
//	[store]
//	path = "/var/lib/outline/outlines.db"
//
// Keys left out keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/tables"
)

// dirName is the per-user directory holding the config file and database
const dirName = ".outline"

// Config is the contents of the configuration file
type Config struct {
	Workers           int   `toml:"workers"`
	ParallelThreshold int   `toml:"parallel_threshold"`
	TitlePages        int   `toml:"title_pages"`
	StructuralTables  bool  `toml:"structural_tables"`
	Font              Font  `toml:"font"`
	Store             Store `toml:"store"`
}

// Font holds the font size ratios, relative to body text, that mark each
// hierarchy tier
type Font struct {
	TitleRatio float64 `toml:"title_ratio"`
	H1Ratio    float64 `toml:"h1_ratio"`
	H2Ratio    float64 `toml:"h2_ratio"`
	H3Ratio    float64 `toml:"h3_ratio"`
}

// Store configures outline persistence
type Store struct {
	Path string `toml:"path"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	engine := outline.DefaultConfig()
	return Config{
		Workers:           engine.Workers,
		ParallelThreshold: engine.ParallelThreshold,
		TitlePages:        engine.TitlePages,
		Font: Font{
			TitleRatio: engine.Font.TitleRatio,
			H1Ratio:    engine.Font.H1Ratio,
			H2Ratio:    engine.Font.H2Ratio,
			H3Ratio:    engine.Font.H3Ratio,
		},
		Store: Store{Path: filepath.Join(baseDir(), "outlines.db")},
	}
}

// DefaultPath returns ~/.outline/config.toml
func DefaultPath() string {
	return filepath.Join(baseDir(), "config.toml")
}

func baseDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return dirName
	}
	return filepath.Join(home, dirName)
}

// Load reads the file at path over the defaults. An empty path means
// DefaultPath. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the engine cannot use
func (c Config) Validate() error {
	switch {
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	case c.ParallelThreshold < 0:
		return fmt.Errorf("parallel_threshold must not be negative, got %d", c.ParallelThreshold)
	case c.TitlePages < 0:
		return fmt.Errorf("title_pages must not be negative, got %d", c.TitlePages)
	}

	ratios := []struct {
		key   string
		value float64
	}{
		{"font.title_ratio", c.Font.TitleRatio},
		{"font.h1_ratio", c.Font.H1Ratio},
		{"font.h2_ratio", c.Font.H2Ratio},
		{"font.h3_ratio", c.Font.H3Ratio},
	}
	for _, r := range ratios {
		if r.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", r.key, r.value)
		}
	}
	return nil
}

// Engine converts the file settings to an engine configuration. Zero
// counts keep the engine defaults.
func (c Config) Engine(logger *slog.Logger) outline.Config {
	cfg := outline.DefaultConfig()
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	if c.ParallelThreshold > 0 {
		cfg.ParallelThreshold = c.ParallelThreshold
	}
	if c.TitlePages > 0 {
		cfg.TitlePages = c.TitlePages
	}
	cfg.Font.TitleRatio = c.Font.TitleRatio
	cfg.Font.H1Ratio = c.Font.H1Ratio
	cfg.Font.H2Ratio = c.Font.H2Ratio
	cfg.Font.H3Ratio = c.Font.H3Ratio
	if c.StructuralTables {
		cfg.StructureDetector = tables.NewGeometricDetector()
	}
	cfg.Logger = logger
	return cfg
}

// Write encodes the configuration as TOML
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
