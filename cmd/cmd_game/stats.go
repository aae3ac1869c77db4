package cmd_game

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rskv-p/guess/pkg/x_log"
	"github.com/spf13/cobra"
)

var ErrHistoryDisabled = errors.New("game history is disabled (set history.enabled)")

// NewStatsCmd summarizes the recorded games.
func NewStatsCmd(a *App) *cobra.Command {
	var recent int

	c := &cobra.Command{
		Use:   "stats",
		Short: "Show game history totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openHistory()
			if err != nil {
				return err
			}
			if store == nil {
				return ErrHistoryDisabled
			}
			defer store.Close()

			ctx := cmd.Context()
			st, err := store.Stats(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "games: %d  won: %d  learned: %d\n", st.Games, st.Won, st.Learned)

			if recent <= 0 {
				return nil
			}
			recs, err := store.Recent(ctx, recent)
			if err != nil {
				return err
			}
			for _, r := range recs {
				line := fmt.Sprintf("%s  %-7s  %s", r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.Guess)
				if r.Answer != "" {
					line += fmt.Sprintf(" -> %s (%s)", r.Answer, r.Question)
				}
				fmt.Fprintln(a.Out, line)
			}
			return nil
		},
	}

	c.Flags().IntVarP(&recent, "recent", "n", 0, "also list the last N games")
	return c
}

// NewLogsCmd prints the tail of the log file.
func NewLogsCmd(a *App) *cobra.Command {
	var lines int

	c := &cobra.Command{
		Use:   "logs",
		Short: "Show the last lines of the log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tail, err := x_log.GetLogs(a.Cfg.Log.LogFile, lines)
			if err != nil {
				return fmt.Errorf("read logs: %w", err)
			}
			prefix := lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60))
			x_log.PrintLogs(a.Out, tail, "│", prefix)
			return nil
		},
	}

	c.Flags().IntVarP(&lines, "lines", "n", 20, "number of lines")
	return c
}
