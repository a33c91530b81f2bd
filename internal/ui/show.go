package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/mescal/internal/dateutil"
)

func (a *App) showCmd() *cobra.Command {
	var (
		month      string
		weekStarts string
		selectDay  int
		disable    string
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a month",
		Long: `Print a month with its selected and disabled days.

Without --month the saved view is shown, or today's month if nothing was
saved yet. Days stored as disabled for the month are marked. --select and
--disable only change this printout; use the select and disable commands
to change the saved state.`,
		Example: `  mescal show
  mescal show --month next
  mescal show --month 2024-02 --week-starts sunday
  mescal show --select 14 --disable 6,7,20-21`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := cmd.Context()

			start, err := a.showStart(cmd, month)
			if err != nil {
				return err
			}

			opts := a.config.WidgetOptions()
			if weekStarts != "" {
				ws, err := dateutil.ParseWeekday(weekStarts)
				if err != nil {
					return err
				}
				opts.WeekStarts = ws
			}

			r := newTextRenderer()
			w, err := a.newWidget(r, opts, start)
			if err != nil {
				return err
			}

			stored, err := a.repo.ListDisabledDays(ctx, w.Year(), w.Month())
			if err != nil {
				return fmt.Errorf("loading disabled days: %w", err)
			}
			if len(stored) > 0 {
				if err := w.DisableDays(stored...); err != nil {
					a.logger.Warn("ignoring stored disabled days", "error", err)
				}
			}

			var warnings []error
			if disable != "" {
				days, err := dateutil.ParseDayList(disable)
				if err != nil {
					return err
				}
				if err := w.DisableDays(days...); err != nil {
					warnings = append(warnings, err)
				}
			}
			if cmd.Flags().Changed("select") {
				if err := w.SelectDay(selectDay); err != nil {
					warnings = append(warnings, fmt.Errorf("selecting %d: %w", selectDay, err))
				}
			}

			printMonth(a.out, w, r.view, a.now())
			for _, werr := range warnings {
				_, _ = fmt.Fprintln(a.out, formatWarning("warning: "+werr.Error()))
			}
			return errors.Join(warnings...)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show: YYYY-MM, YYYY-MM-DD, this, next, prev or +N/-N")
	cmd.Flags().StringVar(&weekStarts, "week-starts", "", "First day of the week (default from config)")
	cmd.Flags().IntVar(&selectDay, "select", 0, "Day to select in the printed month")
	cmd.Flags().StringVar(&disable, "disable", "", "Days to mark disabled, e.g. 6,7,20-21")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// showStart resolves the date show opens on: --month relative to today, or
// the saved view, or today.
func (a *App) showStart(cmd *cobra.Command, month string) (time.Time, error) {
	now := a.now()
	if month != "" {
		return dateutil.ParseMonth(month, now)
	}
	st, err := a.repo.LoadState(cmd.Context())
	if err != nil {
		return time.Time{}, fmt.Errorf("loading saved state: %w", err)
	}
	if st == nil {
		return dateutil.TruncateToDay(now), nil
	}
	return st.Date(now.Location()), nil
}
