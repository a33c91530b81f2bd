package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/mescal/internal/calendar"
	"github.com/javiermolinar/mescal/internal/dateutil"
	"github.com/javiermolinar/mescal/internal/host"
)

func (a *App) disableCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "disable DAYS...",
		Short: "Disable days of the saved month",
		Long: `Mark days of the saved month as unavailable. They stay disabled
whenever the month is shown again.

Days outside the month are reported and skipped; the others are still
disabled.`,
		Example: `  mescal disable 6 7
  mescal disable 6,7,20-21`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			days, err := dateutil.ParseDayArgs(args)
			if err != nil {
				return err
			}
			return a.runSession(cmd.Context(), func(s *host.Session) error {
				err := s.DisableDays(cmd.Context(), days...)
				var derr *calendar.DisableError
				if errors.As(err, &derr) {
					return fmt.Errorf("not in %s: %s: %w",
						s.Widget().Title(), joinDays(derr.Rejected), calendar.ErrInvalidDisableTarget)
				}
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func (a *App) enableCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "enable DAYS...",
		Short: "Re-enable disabled days of the saved month",
		Example: `  mescal enable 7
  mescal enable 20-21`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			days, err := dateutil.ParseDayArgs(args)
			if err != nil {
				return err
			}
			return a.runSession(cmd.Context(), func(s *host.Session) error {
				return s.EnableDays(cmd.Context(), days...)
			})
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
