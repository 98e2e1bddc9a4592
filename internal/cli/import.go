package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repstack/repcore/internal/app"
)

// NewImportCommand validates a workout JSON file and stores it in history.
func NewImportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a workout from a JSON file",
		Long: "Validate a workout JSON document and write it to history.\n" +
			"The whole document is rejected if any field or identifier is invalid.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{
				Format:    opts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   opts.Verbose,
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "read import file", err)
			}
			out.VerboseLog("read %d bytes from %s", len(data), args[0])

			w, err := app.ParseWorkoutImport(data)
			if err != nil {
				return NewExitError(ExitFailure, err.Error())
			}

			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.SaveWorkout(cmd.Context(), w); err != nil {
				return WrapExitError(ExitCommandError, "save workout", err)
			}

			if opts.Format == "json" {
				return out.Success(map[string]any{
					"id":        w.ID.String(),
					"name":      w.Name,
					"exercises": len(w.Exercises),
					"sets":      w.TotalSets(),
				})
			}
			fmt.Fprintf(out.Writer, "imported workout %s (%d exercises, %d sets)\n",
				w.ID, len(w.Exercises), w.TotalSets())
			return nil
		},
	}
}
