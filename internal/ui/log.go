package ui

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func (a *App) logCmd() *cobra.Command {
	var (
		limit   int
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recorded day and month changes",
		Long: `List the day_changed and month_changed notifications recorded by
every run, newest first.`,
		Example: `  mescal log
  mescal log --limit 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ns, err := a.repo.ListNotifications(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("listing notifications: %w", err)
			}
			if len(ns) == 0 {
				_, _ = fmt.Fprintln(a.out, "No notifications recorded.")
				return nil
			}

			width := termWidth()
			for _, n := range ns {
				line := fmt.Sprintf("%5d  %-13s  %s  %s",
					n.ID,
					n.Event,
					n.Date.Format("Mon 2006-01-02"),
					n.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				)
				line = runewidth.Truncate(line, width, "…")
				_, _ = fmt.Fprintln(a.out, line)
			}
			_, _ = fmt.Fprintln(a.out, formatMuted(fmt.Sprintf("%d shown", len(ns))))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of notifications to show (0 for all)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
