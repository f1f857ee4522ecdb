package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/costline/internal/domain"
)

// FormatDiff renders a version comparison: per-row changes followed by a
// category rollup and the net total.
func FormatDiff(labelA, labelB string, rows []domain.DiffRow, rollup []domain.CategoryDelta) string {
	if len(rows) == 0 {
		return Dim("Nothing to compare.")
	}

	headers := []string{"STATUS", "CLASSIFICATION", labelA, labelB, "DELTA", "DELTA %"}
	tableRows := make([][]string, 0, len(rows))
	var net float64
	for _, row := range rows {
		style := DiffStatusStyle(row.Status)
		tableRows = append(tableRows, []string{
			style.Render(string(row.Status)),
			row.Classification.String(),
			amountCell(row.AmountA),
			amountCell(row.AmountB),
			style.Render(SignedMoney(row.Delta)),
			style.Render(SignedPercent(row.DeltaPercent)),
		})
		net += row.Delta
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, tableRows))
	b.WriteString("\n" + Header("by category") + "\n")
	for _, c := range rollup {
		b.WriteString(fmt.Sprintf("%s  %s (%d rows)\n",
			Bold(c.Category), SignedMoney(c.Delta), c.RowCount))
	}
	b.WriteString("\n" + Dim("net change ") + Bold(SignedMoney(net)))

	return RenderBox(fmt.Sprintf("%s → %s", labelA, labelB), b.String())
}

func amountCell(v *float64) string {
	if v == nil {
		return Dim("--")
	}
	return Money(*v)
}
