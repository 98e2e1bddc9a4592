package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repstack/repcore/internal/id"
)

// NewExportCommand writes one workout as JSON, in the same shape the
// import command accepts.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <workout-id>",
		Short: "Export a workout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workoutID, err := id.Parse(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid workout id %q", args[0]), err)
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			w, err := st.LoadByID(cmd.Context(), workoutID.String())
			if err != nil {
				return WrapExitError(ExitCommandError, "load workout", err)
			}
			if w == nil {
				return NewExitError(ExitFailure, fmt.Sprintf("workout %s not found", workoutID))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(w); err != nil {
				return WrapExitError(ExitCommandError, "encode workout", err)
			}
			return nil
		},
	}
}
