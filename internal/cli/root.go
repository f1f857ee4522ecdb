package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/costline/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Baseline  service.BaselineService
	Versions  service.VersionService
	Snapshots service.SnapshotService
	Diffs     service.DiffService
	Metrics   service.MetricsService

	// IsInteractive reports whether stdin is an interactive terminal,
	// gating the prompt-based flows.
	IsInteractive func() bool

	// DefaultCreatedBy is used when --by is not given.
	DefaultCreatedBy string
}

// NewRootCmd creates the top-level "costline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "costline",
		Short: "Budget forecast versioning and PO reconciliation",
	}

	root.AddCommand(
		newProjectCmd(app),
		newBaselineCmd(app),
		newVersionCmd(app),
		newSnapshotCmd(app),
		newDiffCmd(app),
		newMetricsCmd(app),
	)

	return root
}

// resolveProjectID accepts a full UUID or an unambiguous prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range projects {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("project not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("project ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveLineItemID accepts a full line-item UUID or an unambiguous prefix
// within the project's baseline.
func resolveLineItemID(ctx context.Context, app *App, projectID, input string) (string, error) {
	items, err := app.Baseline.GetBaseline(ctx, projectID)
	if err != nil {
		return "", err
	}

	for _, li := range items {
		if li.ID == input {
			return li.ID, nil
		}
	}

	var matches []string
	for _, li := range items {
		if strings.HasPrefix(li.ID, input) {
			matches = append(matches, li.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("line item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("line item prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// parseSelector maps "latest", "baseline" or a version number to a
// snapshot selector.
func parseSelector(input string) (service.SnapshotSelector, error) {
	switch strings.ToLower(input) {
	case "", "latest":
		return service.Latest(), nil
	case "baseline":
		return service.AtVersion(0), nil
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return service.SnapshotSelector{}, fmt.Errorf("invalid version %q (use a number, \"latest\" or \"baseline\")", input)
	}
	return service.AtVersion(n), nil
}
