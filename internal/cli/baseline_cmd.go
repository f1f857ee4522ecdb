package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/costline/internal/cli/formatter"
	"github.com/alexanderramin/costline/internal/domain"
	"github.com/spf13/cobra"
)

func newBaselineCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage a project's budget line items",
	}

	cmd.AddCommand(
		newBaselineAddCmd(app),
		newBaselineShowCmd(app),
		newBaselineSetCmd(app),
		newBaselineRemoveCmd(app),
		newBaselineImportCmd(app),
		newBaselineFreezeCmd(app),
	)

	return cmd
}

func newBaselineAddCmd(app *App) *cobra.Command {
	var businessLine, costLine, spendType, subCategory string
	var budget float64

	cmd := &cobra.Command{
		Use:   "add <project>",
		Short: "Add a budget line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			li := &domain.LineItem{
				ProjectID: projectID,
				Classification: domain.Classification{
					BusinessLine: businessLine,
					CostLine:     costLine,
					SpendType:    spendType,
					SubCategory:  subCategory,
				},
				BudgetCost: budget,
			}
			if err := app.Baseline.AddLineItem(ctx, li); err != nil {
				return err
			}

			fmt.Printf("Added %s at %s\n", li.Classification.String(), formatter.Money(budget))
			return nil
		},
	}

	cmd.Flags().StringVar(&businessLine, "business-line", "", "Business line")
	cmd.Flags().StringVar(&costLine, "cost-line", "", "Cost line")
	cmd.Flags().StringVar(&spendType, "spend-type", "", "Spend type")
	cmd.Flags().StringVar(&subCategory, "sub-category", "", "Sub category")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Budget cost (must be positive)")
	_ = cmd.MarkFlagRequired("business-line")
	_ = cmd.MarkFlagRequired("cost-line")
	_ = cmd.MarkFlagRequired("spend-type")
	_ = cmd.MarkFlagRequired("sub-category")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func newBaselineShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <project>",
		Short: "Show the budget baseline",
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
			items, err := app.Baseline.GetBaseline(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatBaseline(project, items))
			return nil
		},
	}
}

func newBaselineSetCmd(app *App) *cobra.Command {
	var budget float64

	cmd := &cobra.Command{
		Use:   "set <project> <line-item>",
		Short: "Update a line item's baseline budget cost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveLineItemID(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}
			if err := app.Baseline.UpdateBudgetCost(ctx, itemID, budget); err != nil {
				return err
			}
			fmt.Printf("Budget cost set to %s\n", formatter.Money(budget))
			return nil
		},
	}

	cmd.Flags().Float64Var(&budget, "budget", 0, "New budget cost")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func newBaselineRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <project> <line-item>",
		Short: "Remove a line item (only while unreferenced by versions)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveLineItemID(ctx, app, projectID, args[1])
			if err != nil {
				return err
			}
			if err := app.Baseline.RemoveLineItem(ctx, itemID); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}

func newBaselineImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <project> <file>",
		Short: "Import line items and PO mappings from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			result, err := app.Baseline.ImportBaseline(ctx, projectID, args[1])
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatImportSummary(result.LineItemCount, result.POCount, result.TotalBudget))
			return nil
		},
	}
}

func newBaselineFreezeCmd(app *App) *cobra.Command {
	var reason, createdBy string

	cmd := &cobra.Command{
		Use:   "freeze <project>",
		Short: "Record the approved budget as version 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			v, err := app.Baseline.CreateInitialBudget(ctx, projectID, reason, authorOrDefault(app, createdBy))
			if err != nil {
				return err
			}
			fmt.Printf("Recorded initial budget as version %d\n", v.VersionNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "initial approved budget", "Rationale recorded in the ledger")
	cmd.Flags().StringVar(&createdBy, "by", "", "Author recorded in the ledger")

	return cmd
}

func authorOrDefault(app *App, by string) string {
	if by != "" {
		return by
	}
	if app.DefaultCreatedBy != "" {
		return app.DefaultCreatedBy
	}
	return "unknown"
}
