package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/mescal/internal/config"
	"github.com/javiermolinar/mescal/internal/dateutil"
	"github.com/javiermolinar/mescal/internal/grid"
	"github.com/javiermolinar/mescal/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  mescal config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive(a.in, a.out, config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	_, _ = fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		_, _ = fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	reader := bufio.NewReader(in)

	// Ask if user wants to edit
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	cfg.Calendar.Selector = promptValue(reader, out, "Mount selector", cfg.Calendar.Selector)
	cfg.Calendar.WeekStarts = promptWeekday(reader, out, cfg.Calendar.WeekStarts)
	cfg.Calendar.PreviousSymbol = promptValue(reader, out, "Previous-month symbol", cfg.Calendar.PreviousSymbol)
	cfg.Calendar.NextSymbol = promptValue(reader, out, "Next-month symbol", cfg.Calendar.NextSymbol)
	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	p := func(format string, args ...any) { _, _ = fmt.Fprintf(out, format, args...) }

	p("Current configuration:\n")
	p("──────────────────────\n")
	p("[calendar]\n")
	p("  selector         = %s\n", cfg.Calendar.Selector)
	p("  week_starts      = %s (%s)\n", cfg.Calendar.WeekStarts, dateutil.WeekdayDisplayName(cfg.WeekStartsIndex()))
	p("  previous_symbol  = %s\n", cfg.Calendar.PreviousSymbol)
	p("  next_symbol      = %s\n", cfg.Calendar.NextSymbol)
	p("\n[storage]\n")
	p("  db_path          = %s\n", cfg.Storage.DBPath)
	p("\n[ui]\n")
	p("  theme            = %s\n", cfg.UI.Theme)
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptWeekday asks until the answer parses as a weekday and returns its
// lowercase config name.
func promptWeekday(reader *bufio.Reader, out io.Writer, current string) string {
	names := make([]string, grid.DaysPerWeek)
	for i := range names {
		names[i] = dateutil.WeekdayDisplayName(i)
	}
	label := fmt.Sprintf("Week starts on (%s)", strings.Join(names, ", "))
	for {
		value := promptValue(reader, out, label, current)
		idx, err := dateutil.ParseWeekday(value)
		if err == nil {
			return dateutil.WeekdayName(idx)
		}
		_, _ = fmt.Fprintf(out, "  Invalid weekday %q.\n", value)
		if value == current {
			// Nothing left to read and the current value is bad.
			return dateutil.WeekdayName(grid.Monday)
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		_, _ = fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if value == strings.ToLower(current) {
			return theme.DefaultName
		}
	}
}
