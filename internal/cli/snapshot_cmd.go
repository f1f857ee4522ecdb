package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/costline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSnapshotCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "snapshot <project>",
		Short: "Show the resolved value set of a version",
		Long: `Show the resolved value set of a version.

--at accepts a version number, "baseline" (version 0) or "latest".
Without --at the latest version is shown, falling back to the raw
baseline when the project has no versions yet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			sel, err := parseSelector(at)
			if err != nil {
				return err
			}
			project, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			snap, err := app.Snapshots.Resolve(ctx, projectID, sel)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSnapshot(project, snap))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "latest", "Version to resolve (number, \"baseline\" or \"latest\")")

	return cmd
}
