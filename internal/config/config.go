package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NOTE: This file provides the configuration model and full YAML-based
// load/save behavior, including first-run config creation and 0600
// permissions.

// PDFConfig controls the headless-Chromium PDF rasterization.
type PDFConfig struct {
	// PaperWidthIn / PaperHeightIn are the page dimensions in inches.
	// Defaults are A4 portrait.
	PaperWidthIn  float64 `yaml:"paper_width_in" json:"paper_width_in"`
	PaperHeightIn float64 `yaml:"paper_height_in" json:"paper_height_in"`

	// TimeoutSec bounds a single document rasterization.
	TimeoutSec int `yaml:"timeout_sec" json:"timeout_sec"`
}

// Config is the top-level application configuration.
type Config struct {
	// PlacesPath is the directory of per-venue YAML descriptors.
	PlacesPath string `yaml:"places_path" json:"places_path"`

	// TemplatesPath is the root directory of HTML document templates,
	// one subdirectory per document (book/, schedule/, identifier/).
	TemplatesPath string `yaml:"templates_path" json:"templates_path"`

	// TargetDir is where rendered artifacts are written.
	TargetDir string `yaml:"target_dir" json:"target_dir"`

	// Locale controls date formatting and weekday recognition in the
	// tabular schedule form. Supported values: "pl" (default), "en".
	Locale string `yaml:"locale" json:"locale"`

	// Blanks is the default number of blank identifier cards appended to
	// pad the printed sheet.
	Blanks int `yaml:"blanks" json:"blanks"`

	// PaidOnly, when true, limits identifiers to preferences with an
	// accepted payment.
	PaidOnly bool `yaml:"paid_only" json:"paid_only"`

	// PDF holds rasterization parameters.
	PDF PDFConfig `yaml:"pdf" json:"pdf"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		PlacesPath:    "./data/places",
		TemplatesPath: "./templates",
		TargetDir:     "./gen",
		Locale:        "pl",
		Blanks:        20,
		PaidOnly:      false,
		PDF: PDFConfig{
			PaperWidthIn:  8.27,
			PaperHeightIn: 11.69,
			TimeoutSec:    30,
		},
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs (e.g., older versions) still behave correctly.
func (c *Config) Normalize() {
	if c.PlacesPath == "" {
		c.PlacesPath = "./data/places"
	}
	if c.TemplatesPath == "" {
		c.TemplatesPath = "./templates"
	}
	if c.TargetDir == "" {
		c.TargetDir = "./gen"
	}
	// Locale default & validation.
	switch c.Locale {
	case "pl", "en":
		// ok
	case "":
		c.Locale = "pl"
	default:
		// Unknown value; fall back to pl to keep weekday matching working.
		c.Locale = "pl"
	}
	if c.Blanks < 0 {
		c.Blanks = 0
	}
	if c.PDF.PaperWidthIn <= 0 {
		c.PDF.PaperWidthIn = 8.27
	}
	if c.PDF.PaperHeightIn <= 0 {
		c.PDF.PaperHeightIn = 11.69
	}
	if c.PDF.TimeoutSec <= 0 {
		c.PDF.TimeoutSec = 30
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist:
//   - create parent directory if needed
//   - write a default config with 0600 perms
//   - return the default config
//   - If the file exists:
//   - read YAML and unmarshal into Config
//   - normalize defaults
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// First run: create default config file.
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Even if save fails, return cfg with error so caller can decide.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes the given configuration to the specified path.
//
// Implementation details:
//   - Ensures parent directory exists (0700).
//   - Marshals cfg to YAML.
//   - Writes atomically via a temp file + rename.
//   - Ensures final file permissions are 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// Atomic write: write to temp file in same directory then rename.
	tmp, err := os.CreateTemp(dir, ".zosiaprint-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Ensure we clean up temp file on error.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}

	// Flush and close before chmod/rename.
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	// Set permissions to 0600 on temp file before rename.
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	// Rename over the target path.
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	return nil
}

// Save is a convenience method on Config that delegates to the package-level
// Save function.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
