package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastEntryRepo_CreateBatchAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	items := NewSQLiteLineItemRepo(db)
	versions := NewSQLiteVersionRepo(db)
	repo := NewSQLiteForecastEntryRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)
	liA := testutil.NewTestLineItem(proj.ID, "Laptops")
	liB := testutil.NewTestLineItem(proj.ID, "Monitors")
	require.NoError(t, items.Create(ctx, liA))
	require.NoError(t, items.Create(ctx, liB))

	v := testutil.NewTestVersion(proj.ID, 1)
	require.NoError(t, versions.Create(ctx, v))

	batch := []domain.ForecastEntry{
		{VersionID: v.ID, LineItemID: liA.ID, ForecastedCost: 1500},
		{VersionID: v.ID, LineItemID: liB.ID, Excluded: true},
	}
	require.NoError(t, repo.CreateBatch(ctx, batch))

	entries, err := repo.ListByVersion(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byItem := make(map[string]domain.ForecastEntry)
	for _, e := range entries {
		byItem[e.LineItemID] = e
	}
	assert.Equal(t, 1500.0, byItem[liA.ID].ForecastedCost)
	assert.True(t, byItem[liB.ID].Excluded)
	assert.Equal(t, 0.0, byItem[liB.ID].ForecastedCost)
}

func TestForecastEntryRepo_DuplicateEntryConflicts(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	items := NewSQLiteLineItemRepo(db)
	versions := NewSQLiteVersionRepo(db)
	repo := NewSQLiteForecastEntryRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)
	li := testutil.NewTestLineItem(proj.ID, "Laptops")
	require.NoError(t, items.Create(ctx, li))
	v := testutil.NewTestVersion(proj.ID, 1)
	require.NoError(t, versions.Create(ctx, v))

	entry := domain.ForecastEntry{VersionID: v.ID, LineItemID: li.ID, ForecastedCost: 100}
	require.NoError(t, repo.CreateBatch(ctx, []domain.ForecastEntry{entry}))

	err := repo.CreateBatch(ctx, []domain.ForecastEntry{entry})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestForecastEntryRepo_ListWithItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	items := NewSQLiteLineItemRepo(db)
	versions := NewSQLiteVersionRepo(db)
	repo := NewSQLiteForecastEntryRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)
	liZ := testutil.NewTestLineItem(proj.ID, "Zebra")
	liA := testutil.NewTestLineItem(proj.ID, "Alpha", testutil.WithBudgetCost(300))
	require.NoError(t, items.Create(ctx, liZ))
	require.NoError(t, items.Create(ctx, liA))

	v := testutil.NewTestVersion(proj.ID, 1)
	require.NoError(t, versions.Create(ctx, v))
	require.NoError(t, repo.CreateBatch(ctx, []domain.ForecastEntry{
		{VersionID: v.ID, LineItemID: liZ.ID, ForecastedCost: 1000},
		{VersionID: v.ID, LineItemID: liA.ID, ForecastedCost: 350},
	}))

	joined, err := repo.ListWithItems(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, joined, 2)

	// Ordered by classification path, not insert order.
	assert.Equal(t, "Alpha", joined[0].Item.Classification.SubCategory)
	assert.Equal(t, 350.0, joined[0].Entry.ForecastedCost)
	assert.Equal(t, 300.0, joined[0].Item.BudgetCost, "baseline stays untouched next to the forecast value")
	assert.Equal(t, "Zebra", joined[1].Item.Classification.SubCategory)
}

func TestForecastEntryRepo_ListByVersion_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteForecastEntryRepo(db)

	entries, err := repo.ListByVersion(context.Background(), "no-such-version")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
