package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/costline/internal/cli/formatter"
	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/forecast"
	"github.com/alexanderramin/costline/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newVersionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Manage the forecast version ledger",
	}

	cmd.AddCommand(
		newVersionCreateCmd(app),
		newVersionListCmd(app),
		newVersionShowCmd(app),
	)

	return cmd
}

func newVersionCreateCmd(app *App) *cobra.Command {
	var reason, createdBy string
	var sets, excludes, adds []string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "create <project>",
		Short: "Commit staged edits as the next forecast version",
		Long: `Commit staged edits as the next forecast version.

Unedited line items inherit their value from the previous version.
Examples:
  costline version create PROJ --set 3f2a=12500 --reason "vendor quote"
  costline version create PROJ --exclude 9b1c --new "Ops/IT/Services/Audit=8000" --reason "descope"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			buffer, err := buildStagingBuffer(ctx, app, projectID, sets, excludes, adds)
			if err != nil {
				return err
			}

			if interactive && reason == "" {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("interactive mode requires a terminal")
				}
				form := huh.NewForm(huh.NewGroup(
					huh.NewInput().
						Title("Reason for this version").
						Placeholder("quarterly reforecast").
						Value(&reason),
				))
				if err := form.Run(); err != nil {
					return err
				}
			}

			v, err := app.Versions.CreateVersion(ctx, projectID, reason, authorOrDefault(app, createdBy), buffer)
			if err != nil {
				return err
			}

			snap, err := app.Snapshots.Resolve(ctx, projectID, service.AtVersion(v.VersionNumber))
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatVersionCreated(v, snap.Total(), len(snap.Lines)))
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "Rationale recorded in the ledger")
	cmd.Flags().StringVar(&createdBy, "by", "", "Author recorded in the ledger")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Override a value: <line-item>=<value> (repeatable)")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "Exclude a line item (repeatable)")
	cmd.Flags().StringArrayVar(&adds, "new", nil, "Add a line item: <bl>/<cl>/<st>/<sub>=<value> (repeatable)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the reason")

	return cmd
}

func buildStagingBuffer(ctx context.Context, app *App, projectID string, sets, excludes, adds []string) (forecast.StagingBuffer, error) {
	buffer := forecast.NewStagingBuffer()

	for _, spec := range sets {
		ref, value, err := splitAssignment(spec)
		if err != nil {
			return buffer, fmt.Errorf("--set %q: %w", spec, err)
		}
		itemID, err := resolveLineItemID(ctx, app, projectID, ref)
		if err != nil {
			return buffer, err
		}
		buffer = buffer.Modify(domain.PersistedRef(itemID), value)
	}

	for _, ref := range excludes {
		itemID, err := resolveLineItemID(ctx, app, projectID, ref)
		if err != nil {
			return buffer, err
		}
		buffer = buffer.Exclude(domain.PersistedRef(itemID))
	}

	for _, spec := range adds {
		path, value, err := splitAssignment(spec)
		if err != nil {
			return buffer, fmt.Errorf("--new %q: %w", spec, err)
		}
		levels := strings.Split(path, "/")
		if len(levels) != 4 {
			return buffer, fmt.Errorf("--new %q: classification needs 4 levels separated by /", spec)
		}
		buffer, _ = buffer.AddNew(domain.Classification{
			BusinessLine: levels[0],
			CostLine:     levels[1],
			SpendType:    levels[2],
			SubCategory:  levels[3],
		}, value)
	}

	return buffer, nil
}

func splitAssignment(spec string) (string, float64, error) {
	idx := strings.LastIndex(spec, "=")
	if idx <= 0 || idx == len(spec)-1 {
		return "", 0, fmt.Errorf("expected <key>=<value>")
	}
	value, err := strconv.ParseFloat(spec[idx+1:], 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid value %q", spec[idx+1:])
	}
	return spec[:idx], value, nil
}

func newVersionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project> <number>",
		Short: "Show a version's ledger entry and resolved values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			number, err := strconv.Atoi(args[1])
			if err != nil || number < 0 {
				return fmt.Errorf("invalid version number %q", args[1])
			}
			project, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			v, err := app.Versions.GetVersion(ctx, projectID, number)
			if err != nil {
				return err
			}
			snap, err := app.Snapshots.Resolve(ctx, projectID, service.AtVersion(number))
			if err != nil {
				return err
			}
			fmt.Printf("%s by %s at %s\n", v.Reason, v.CreatedBy, v.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Println(formatter.FormatSnapshot(project, snap))
			return nil
		},
	}
}

func newVersionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <project>",
		Short: "List the version ledger, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			project, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			versions, err := app.Versions.ListVersions(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatVersionList(project, versions))
			return nil
		},
	}
}
