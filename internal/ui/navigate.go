package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/mescal/internal/host"
)

func (a *App) nextCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Move the saved view one month forward",
		Long: `Move the saved view to the next month and print it.

The 1st of the new month becomes the selected day.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			return a.runSession(cmd.Context(), func(s *host.Session) error {
				s.Next()
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) prevCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:     "prev",
		Aliases: []string{"previous"},
		Short:   "Move the saved view one month back",
		Long: `Move the saved view to the previous month and print it.

The 1st of the new month becomes the selected day.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			return a.runSession(cmd.Context(), func(s *host.Session) error {
				s.Previous()
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) selectCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "select DAY",
		Short: "Select a day of the saved month",
		Long: `Select a day of the saved month and print it.

Disabled days cannot be selected.

Example:
  mescal select 17`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", args[0], err)
			}
			return a.runSession(cmd.Context(), func(s *host.Session) error {
				if err := s.Select(day); err != nil {
					return fmt.Errorf("selecting %d: %w", day, err)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
