package forecast

import (
	"testing"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(n int, lines ...domain.SnapshotLine) *domain.Snapshot {
	s := &domain.Snapshot{ProjectID: "p1", Source: domain.SourceLedger, Lines: lines}
	if n >= 0 {
		v := n
		s.VersionNumber = &v
	} else {
		s.Source = domain.SourceBaseline
	}
	sortSnapshotLines(s.Lines)
	return s
}

func line(id string, v float64) domain.SnapshotLine {
	return domain.SnapshotLine{Item: item(id, v), Value: v}
}

func rowsByItem(rows []domain.DiffRow) map[string]domain.DiffRow {
	m := make(map[string]domain.DiffRow, len(rows))
	for _, r := range rows {
		m[r.LineItemID] = r
	}
	return m
}

func TestDiff_Statuses(t *testing.T) {
	a := snapshot(1, line("A", 100), line("B", 200), line("D", 40))
	b := snapshot(2, line("A", 150), line("C", 50), line("D", 40))

	rows := Diff(a, b)
	require.Len(t, rows, 4)

	byItem := rowsByItem(rows)
	assert.Equal(t, domain.DiffIncreased, byItem["A"].Status)
	assert.Equal(t, 50.0, byItem["A"].Delta)
	assert.Equal(t, 50.0, byItem["A"].DeltaPercent)

	assert.Equal(t, domain.DiffRemoved, byItem["B"].Status)
	assert.Equal(t, -200.0, byItem["B"].Delta)
	require.NotNil(t, byItem["B"].AmountA)
	assert.Nil(t, byItem["B"].AmountB)

	assert.Equal(t, domain.DiffAdded, byItem["C"].Status)
	assert.Equal(t, 50.0, byItem["C"].Delta)
	assert.Nil(t, byItem["C"].AmountA)
	require.NotNil(t, byItem["C"].AmountB)

	assert.Equal(t, domain.DiffUnchanged, byItem["D"].Status)
	assert.Equal(t, 0.0, byItem["D"].Delta)
}

func TestDiff_IsAntisymmetric(t *testing.T) {
	a := snapshot(1, line("A", 100), line("B", 200))
	b := snapshot(2, line("A", 150), line("C", 50))

	forward := rowsByItem(Diff(a, b))
	backward := rowsByItem(Diff(b, a))

	for id, f := range forward {
		r := backward[id]
		assert.Equal(t, f.Delta, -r.Delta, "delta flips sign for %s", id)
	}
	assert.Equal(t, domain.DiffAdded, forward["C"].Status)
	assert.Equal(t, domain.DiffRemoved, backward["C"].Status)
	assert.Equal(t, domain.DiffIncreased, forward["A"].Status)
	assert.Equal(t, domain.DiffDecreased, backward["A"].Status)
}

func TestDeltaPercent_Conventions(t *testing.T) {
	assert.Equal(t, 50.0, deltaPercent(100, 150))
	assert.Equal(t, -25.0, deltaPercent(100, 75))
	assert.Equal(t, 100.0, deltaPercent(0, 50), "move off zero counts as a full step")
	assert.Equal(t, -100.0, deltaPercent(0, -50))
	assert.Equal(t, 0.0, deltaPercent(0, 0))
}

func TestDiff_AgainstBaseline(t *testing.T) {
	base := snapshot(-1, line("A", 100), line("B", 200))
	v1 := snapshot(1, line("A", 150), line("B", 200))

	rows := Diff(base, v1)
	byItem := rowsByItem(rows)
	assert.Equal(t, domain.DiffIncreased, byItem["A"].Status)
	assert.Equal(t, domain.DiffUnchanged, byItem["B"].Status)
}

func TestRollupByCategory(t *testing.T) {
	a := snapshot(1, line("A", 100), line("B", 200))
	b := snapshot(2, line("A", 150), line("B", 180))

	rollup := RollupByCategory(Diff(a, b), domain.LevelCostLine)
	require.Len(t, rollup, 1, "test fixtures share one cost line")
	assert.Equal(t, "IT", rollup[0].Category)
	assert.Equal(t, 30.0, rollup[0].Delta, "50 up and 20 down net to 30")
	assert.Equal(t, 2, rollup[0].RowCount)
}

func TestDiff_StableOrdering(t *testing.T) {
	a := snapshot(1, line("B", 200), line("A", 100))
	b := snapshot(2, line("A", 100), line("B", 200))

	rows := Diff(a, b)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].LineItemID)
	assert.Equal(t, "B", rows[1].LineItemID)
}
