package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/costline/internal/domain"
)

// FormatVersionList renders the version ledger newest-first.
func FormatVersionList(project *domain.Project, versions []*domain.Version) string {
	if len(versions) == 0 {
		return Dim("No versions yet. The baseline is the current forecast.")
	}

	headers := []string{"VERSION", "REASON", "BY", "CREATED"}
	rows := make([][]string, 0, len(versions))
	for _, v := range versions {
		label := "v" + strconv.Itoa(v.VersionNumber)
		if v.VersionNumber == 0 {
			label = "v0 (initial budget)"
		}
		rows = append(rows, []string{
			Bold(label),
			Truncate(v.Reason, 48),
			v.CreatedBy,
			Dim(v.CreatedAt.Format("2006-01-02 15:04")),
		})
	}
	return RenderBox(project.Name+" · versions", RenderTable(headers, rows))
}

// FormatVersionCreated renders the confirmation after committing a version.
func FormatVersionCreated(v *domain.Version, total float64, lineCount int) string {
	return fmt.Sprintf("%s %s\n%s %s across %d line items",
		StyleGreen.Render("Created"),
		Bold(fmt.Sprintf("version %d", v.VersionNumber)),
		Dim("forecast total"),
		Bold(Money(total)),
		lineCount,
	)
}

// FormatSnapshot renders a resolved snapshot as a value table.
func FormatSnapshot(project *domain.Project, snap *domain.Snapshot) string {
	title := project.Name + " · baseline"
	if snap.VersionNumber != nil {
		title = fmt.Sprintf("%s · v%d", project.Name, *snap.VersionNumber)
	}

	headers := []string{"CLASSIFICATION", "VALUE"}
	rows := make([][]string, 0, len(snap.Lines)+1)
	for _, l := range snap.Lines {
		rows = append(rows, []string{l.Item.Classification.String(), Money(l.Value)})
	}
	rows = append(rows, []string{Bold("TOTAL"), Bold(Money(snap.Total()))})

	return RenderBox(title, RenderTable(headers, rows))
}
