// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/mescal/internal/calendar"
	"github.com/javiermolinar/mescal/internal/dateutil"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds the widget construction settings.
type CalendarConfig struct {
	Selector       string `toml:"selector"`        // mount target, e.g. "#calendar"
	WeekStarts     string `toml:"week_starts"`     // e.g. "monday"
	PreviousSymbol string `toml:"previous_symbol"` // e.g. "<"
	NextSymbol     string `toml:"next_symbol"`     // e.g. ">"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			Selector:       "#calendar",
			WeekStarts:     "monday",
			PreviousSymbol: "<",
			NextSymbol:     ">",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "mescal.db"
	}
	return filepath.Join(home, ".local", "share", "mescal", "mescal.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "mescal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MESCAL_SELECTOR"); v != "" {
		cfg.Calendar.Selector = v
	}
	if v := os.Getenv("MESCAL_WEEK_STARTS"); v != "" {
		cfg.Calendar.WeekStarts = v
	}
	if v := os.Getenv("MESCAL_PREVIOUS_SYMBOL"); v != "" {
		cfg.Calendar.PreviousSymbol = v
	}
	if v := os.Getenv("MESCAL_NEXT_SYMBOL"); v != "" {
		cfg.Calendar.NextSymbol = v
	}

	if v := os.Getenv("MESCAL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("MESCAL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Calendar.Selector == "" {
		return errors.New("selector must be set")
	}
	if _, err := dateutil.ParseWeekday(c.Calendar.WeekStarts); err != nil {
		return fmt.Errorf("week_starts: %w", err)
	}
	if c.Calendar.PreviousSymbol == "" || c.Calendar.NextSymbol == "" {
		return errors.New("previous_symbol and next_symbol must be set")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// WeekStartsIndex returns the configured first weekday as a 0-6 index
// (0 = sunday). Invalid values fall back to monday.
func (c *Config) WeekStartsIndex() int {
	idx, err := dateutil.ParseWeekday(c.Calendar.WeekStarts)
	if err != nil {
		return 1
	}
	return idx
}

// WidgetOptions returns the widget construction options described by the config.
func (c *Config) WidgetOptions() calendar.Options {
	return calendar.Options{
		Selector:       c.Calendar.Selector,
		WeekStarts:     c.WeekStartsIndex(),
		PreviousSymbol: c.Calendar.PreviousSymbol,
		NextSymbol:     c.Calendar.NextSymbol,
	}
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
