package forecast

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/costline/internal/domain"
)

// BuildEntries materializes the complete forecast entry set for a new
// version from the previous version plus a sparse edit set.
//
// items is every line item existing at creation time (new items already
// persisted, so edits and drafts reference ids uniformly). prev is the
// previous version's complete entry set, or nil when the project has no
// prior version. edits maps line-item id to a new value; a nil value
// excludes the item from the new version, an absent key inherits.
//
// Resolution priority per item: explicit override, exclusion, inherited
// previous entry, baseline budget cost. Every item receives exactly one
// entry, which is what keeps each version a complete snapshot.
func BuildEntries(versionID string, items []domain.LineItem, prev []domain.ForecastEntry, edits map[string]*float64) ([]domain.ForecastEntry, error) {
	known := make(map[string]bool, len(items))
	for _, li := range items {
		if known[li.ID] {
			return nil, fmt.Errorf("duplicate line item %s: %w", li.ID, domain.ErrInvariant)
		}
		known[li.ID] = true
	}
	for id := range edits {
		if !known[id] {
			return nil, fmt.Errorf("edit references unknown line item %s", id)
		}
	}

	prevByItem := make(map[string]domain.ForecastEntry, len(prev))
	for _, e := range prev {
		prevByItem[e.LineItemID] = e
	}

	entries := make([]domain.ForecastEntry, 0, len(items))
	for _, li := range items {
		entry := domain.ForecastEntry{VersionID: versionID, LineItemID: li.ID}
		if v, edited := edits[li.ID]; edited {
			if v == nil {
				entry.Excluded = true
			} else {
				entry.ForecastedCost = *v
			}
		} else if p, ok := prevByItem[li.ID]; ok {
			entry.ForecastedCost = p.ForecastedCost
			entry.Excluded = p.Excluded
		} else {
			entry.ForecastedCost = li.BudgetCost
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// VerifyComplete checks the full-snapshot invariant: every line item has
// exactly one entry and no entry references an unknown item. A failure
// indicates a resolution-rule bug and wraps domain.ErrInvariant.
func VerifyComplete(items []domain.LineItem, entries []domain.ForecastEntry) error {
	seen := make(map[string]int, len(entries))
	for _, e := range entries {
		seen[e.LineItemID]++
	}
	for _, li := range items {
		switch seen[li.ID] {
		case 0:
			return fmt.Errorf("version missing entry for line item %s: %w", li.ID, domain.ErrInvariant)
		case 1:
		default:
			return fmt.Errorf("version has %d entries for line item %s: %w", seen[li.ID], li.ID, domain.ErrInvariant)
		}
		delete(seen, li.ID)
	}
	for id := range seen {
		return fmt.Errorf("version has entry for unknown line item %s: %w", id, domain.ErrInvariant)
	}
	return nil
}

// AssembleSnapshot builds the resolved snapshot of a ledger version from
// its persisted entries. Excluded entries are persisted for completeness
// but contribute nothing, so they are omitted here.
func AssembleSnapshot(projectID string, versionNumber int, entries []domain.ForecastEntry, itemsByID map[string]domain.LineItem) (*domain.Snapshot, error) {
	n := versionNumber
	snap := &domain.Snapshot{
		ProjectID:     projectID,
		VersionNumber: &n,
		Source:        domain.SourceLedger,
	}
	for _, e := range entries {
		if e.Excluded {
			continue
		}
		li, ok := itemsByID[e.LineItemID]
		if !ok {
			return nil, fmt.Errorf("entry references unknown line item %s: %w", e.LineItemID, domain.ErrInvariant)
		}
		snap.Lines = append(snap.Lines, domain.SnapshotLine{Item: li, Value: e.ForecastedCost})
	}
	sortSnapshotLines(snap.Lines)
	return snap, nil
}

// BaselineSnapshot builds the snapshot of a project with no versions:
// every line item at its budget cost, flagged as base version.
func BaselineSnapshot(projectID string, items []domain.LineItem) *domain.Snapshot {
	snap := &domain.Snapshot{
		ProjectID: projectID,
		Source:    domain.SourceBaseline,
	}
	for _, li := range items {
		snap.Lines = append(snap.Lines, domain.SnapshotLine{Item: li, Value: li.BudgetCost})
	}
	sortSnapshotLines(snap.Lines)
	return snap
}

func sortSnapshotLines(lines []domain.SnapshotLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i].Item, lines[j].Item
		if a.Classification.String() != b.Classification.String() {
			return a.Classification.String() < b.Classification.String()
		}
		return a.ID < b.ID
	})
}
