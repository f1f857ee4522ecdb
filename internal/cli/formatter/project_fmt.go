package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/costline/internal/domain"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects. Create one with: costline project add")
	}

	headers := []string{"ID", "NAME", "BUSINESS LINE", "START", "STATUS"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			Dim(p.DisplayID()),
			Bold(p.Name),
			p.BusinessLine,
			p.StartDate.Format("2006-01-02"),
			statusPill(p.Status),
		})
	}
	return RenderBox("Projects", RenderTable(headers, rows))
}

func statusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.StatusActive:
		return StyleGreen.Render("active")
	case domain.StatusArchived:
		return StyleDim.Render("archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// FormatBaseline renders a project's budget line items grouped by cost line.
func FormatBaseline(project *domain.Project, items []*domain.LineItem) string {
	if len(items) == 0 {
		return Dim("No line items. Add one with: costline baseline add")
	}

	headers := []string{"ID", "CLASSIFICATION", "BUDGET"}
	rows := make([][]string, 0, len(items))
	var total float64
	for _, li := range items {
		rows = append(rows, []string{
			Dim(truncID(li.ID)),
			li.Classification.String(),
			Money(li.BudgetCost),
		})
		total += li.BudgetCost
	}
	rows = append(rows, []string{"", Bold("TOTAL"), Bold(Money(total))})

	return RenderBox(project.Name+" · baseline", RenderTable(headers, rows))
}

func truncID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// FormatImportSummary renders the outcome of a baseline import.
func FormatImportSummary(lineItems, poMappings int, totalBudget float64) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("Import complete") + "\n")
	b.WriteString(Dim("line items  ") + Bold(strconv.Itoa(lineItems)) + "\n")
	b.WriteString(Dim("po mappings ") + Bold(strconv.Itoa(poMappings)) + "\n")
	b.WriteString(Dim("total budget ") + Bold(Money(totalBudget)))
	return b.String()
}
