package forecast

import (
	"sort"

	"github.com/alexanderramin/costline/internal/domain"
)

// Diff compares two resolved snapshots line by line. It is a pure
// function of its inputs: rows are classified added/removed/increased/
// decreased/unchanged over the union of line items in either snapshot,
// ordered by classification path for stable output.
func Diff(a, b *domain.Snapshot) []domain.DiffRow {
	valuesA := a.ValueByItem()
	valuesB := b.ValueByItem()

	type side struct {
		item domain.LineItem
	}
	union := make(map[string]side)
	for _, l := range a.Lines {
		union[l.Item.ID] = side{item: l.Item}
	}
	for _, l := range b.Lines {
		union[l.Item.ID] = side{item: l.Item}
	}

	rows := make([]domain.DiffRow, 0, len(union))
	for id, s := range union {
		row := domain.DiffRow{LineItemID: id, Classification: s.item.Classification}

		va, inA := valuesA[id]
		vb, inB := valuesB[id]
		if inA {
			v := va
			row.AmountA = &v
		}
		if inB {
			v := vb
			row.AmountB = &v
		}

		row.Delta = vb - va
		row.DeltaPercent = deltaPercent(va, vb)

		switch {
		case !inA && inB:
			row.Status = domain.DiffAdded
		case inA && !inB:
			row.Status = domain.DiffRemoved
		case row.Delta > 0:
			row.Status = domain.DiffIncreased
		case row.Delta < 0:
			row.Status = domain.DiffDecreased
		default:
			row.Status = domain.DiffUnchanged
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Classification.String() != b.Classification.String() {
			return a.Classification.String() < b.Classification.String()
		}
		return a.LineItemID < b.LineItemID
	})
	return rows
}

// deltaPercent reproduces the audit convention exactly: relative to |A|
// when A is nonzero; a move off a zero baseline counts as a full 100%
// step in the direction of the change; no change from zero is 0.
func deltaPercent(a, b float64) float64 {
	if a != 0 {
		return (b - a) / abs(a) * 100
	}
	switch {
	case b > 0:
		return 100
	case b < 0:
		return -100
	default:
		return 0
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// RollupByCategory sums row deltas grouped by one classification level,
// independent of per-row status.
func RollupByCategory(rows []domain.DiffRow, level domain.ClassLevel) []domain.CategoryDelta {
	byCategory := make(map[string]*domain.CategoryDelta)
	var order []string
	for _, row := range rows {
		key := row.Classification.Level(level)
		agg, ok := byCategory[key]
		if !ok {
			agg = &domain.CategoryDelta{Category: key}
			byCategory[key] = agg
			order = append(order, key)
		}
		agg.Delta += row.Delta
		agg.RowCount++
	}

	sort.Strings(order)
	result := make([]domain.CategoryDelta, 0, len(order))
	for _, key := range order {
		result = append(result, *byCategory[key])
	}
	return result
}
