package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/costline/internal/domain"
)

// FormatMetrics renders the reconciliation dashboard for a project.
func FormatMetrics(project *domain.Project, m *domain.Metrics) string {
	var b strings.Builder

	b.WriteString(Header("totals") + "\n")
	b.WriteString(metricLine("budget", Money(m.TotalBudget)))
	b.WriteString(metricLine("actual spend", Money(m.ActualSpend)))
	b.WriteString(metricLine("open orders", Money(m.OpenOrders)))
	b.WriteString(metricLine("invoiced", Money(m.InvoicedAmount)))

	b.WriteString("\n" + Header("position") + "\n")
	b.WriteString(metricLine("variance", varianceCell(m.Variance)+Dim(" ("+SignedPercent(m.VariancePercent)+")")))
	b.WriteString(metricLine("utilization", utilizationCell(m.Utilization)))
	b.WriteString(metricLine("burn rate", Money(m.BurnRate)+Dim("/month")))
	b.WriteString(metricLine("purchase orders", fmt.Sprintf("%d across %d line items", m.POCount, m.LineItemCount)))

	if len(m.Categories) > 0 {
		b.WriteString("\n" + Header("by cost line") + "\n")
		headers := []string{"COST LINE", "BUDGET", "ACTUAL", "OPEN"}
		rows := make([][]string, 0, len(m.Categories))
		for _, c := range m.Categories {
			rows = append(rows, []string{
				Bold(c.Category),
				Money(c.Budget),
				Money(c.ActualSpend),
				Money(c.OpenOrders),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	return RenderBox(project.Name+" · reconciliation", b.String())
}

func metricLine(label, value string) string {
	// Pad before styling so ANSI escapes don't skew the column.
	return Dim(fmt.Sprintf("%-16s", label)) + " " + value + "\n"
}

func varianceCell(v float64) string {
	if v < 0 {
		return StyleRed.Render(Money(v))
	}
	return StyleGreen.Render(Money(v))
}

func utilizationCell(pct float64) string {
	switch {
	case pct > 100:
		return StyleRed.Render(Percent(pct))
	case pct > 85:
		return StyleYellow.Render(Percent(pct))
	default:
		return StyleGreen.Render(Percent(pct))
	}
}
