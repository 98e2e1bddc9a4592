package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/repstack/repcore/internal/app"
	"github.com/repstack/repcore/internal/config"
	"github.com/repstack/repcore/internal/store"
)

// historyRow is the per-workout summary printed by the history command.
type historyRow struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Exercises int    `json:"exercises"`
	Sets      int    `json:"sets"`
	Volume    int    `json:"volume"`
	Duration  string `json:"duration,omitempty"`
}

// NewHistoryCommand lists stored workouts, newest first.
func NewHistoryCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List finished workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			workouts, err := st.LoadAll(cmd.Context())
			if err != nil {
				return WrapExitError(ExitCommandError, "load history", err)
			}

			rows := make([]historyRow, 0, len(workouts))
			for i := range workouts {
				w := &workouts[i]
				row := historyRow{
					ID:        w.ID.String(),
					Name:      w.Name,
					Date:      w.StartTimestamp.Format("Jan 02, 2006"),
					Exercises: len(w.Exercises),
					Sets:      w.TotalSets(),
					Volume:    int(w.TotalVolume()),
				}
				if w.Duration != nil {
					row.Duration = app.FormatDuration(*w.Duration)
				}
				rows = append(rows, row)
			}

			if opts.Format == "json" {
				return out.Success(rows)
			}

			if len(rows) == 0 {
				fmt.Fprintln(out.Writer, "no workouts recorded")
				return nil
			}
			var b strings.Builder
			fmt.Fprintf(&b, "%-36s  %-20s  %-12s  %9s  %5s  %7s\n",
				"ID", "NAME", "DATE", "EXERCISES", "SETS", "VOLUME")
			for _, row := range rows {
				name := row.Name
				if name == "" {
					name = "(unnamed)"
				}
				fmt.Fprintf(&b, "%-36s  %-20s  %-12s  %9d  %5d  %7d\n",
					row.ID, name, row.Date, row.Exercises, row.Sets, row.Volume)
			}
			fmt.Fprint(out.Writer, b.String())
			return nil
		},
	}
}

// openStore opens the configured database for one-shot commands.
func openStore(opts *RootOptions) (*store.Store, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load config", err)
	}
	st, err := store.Open(cfg.DatabasePath, slog.Default())
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open database", err)
	}
	return st, nil
}
