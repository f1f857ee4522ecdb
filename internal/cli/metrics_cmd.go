package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/costline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMetricsCmd(app *App) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "metrics <project>",
		Short: "Show spend reconciliation against the forecast",
		Args:  cobra.ExactArgs(1),
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
			m, err := app.Metrics.Compute(ctx, projectID, sel)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatMetrics(project, m))
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "latest", "Version to reconcile against (number, \"baseline\" or \"latest\")")

	return cmd
}
