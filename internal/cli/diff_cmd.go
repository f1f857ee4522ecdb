package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/costline/internal/cli/formatter"
	"github.com/alexanderramin/costline/internal/domain"
	"github.com/spf13/cobra"
)

func newDiffCmd(app *App) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "diff <project> <from> <to>",
		Short: "Compare two versions line by line",
		Long: `Compare two versions line by line.

<from> and <to> each accept a version number, "baseline" (version 0) or
"latest". Example:
  costline diff PROJ baseline latest
  costline diff PROJ 2 5 --level business-line`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			selA, err := parseSelector(args[1])
			if err != nil {
				return err
			}
			selB, err := parseSelector(args[2])
			if err != nil {
				return err
			}
			classLevel, err := parseClassLevel(level)
			if err != nil {
				return err
			}

			rows, err := app.Diffs.DiffVersions(ctx, projectID, selA, selB)
			if err != nil {
				return err
			}
			rollup := app.Diffs.RollupByCategory(rows, classLevel)
			fmt.Println(formatter.FormatDiff(selectorLabel(args[1]), selectorLabel(args[2]), rows, rollup))
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "cost-line", "Rollup level: business-line, cost-line, spend-type or sub-category")

	return cmd
}

func parseClassLevel(input string) (domain.ClassLevel, error) {
	switch strings.ToLower(input) {
	case "business-line":
		return domain.LevelBusinessLine, nil
	case "cost-line", "":
		return domain.LevelCostLine, nil
	case "spend-type":
		return domain.LevelSpendType, nil
	case "sub-category":
		return domain.LevelSubCategory, nil
	default:
		return domain.LevelCostLine, fmt.Errorf("invalid level %q", input)
	}
}

func selectorLabel(input string) string {
	switch strings.ToLower(input) {
	case "", "latest":
		return "latest"
	case "baseline", "0":
		return "baseline"
	default:
		return "v" + input
	}
}
