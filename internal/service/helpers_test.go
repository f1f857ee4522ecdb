package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/costline/internal/db"
	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/repository"
	"github.com/alexanderramin/costline/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack against a fresh in-memory database.
type testEnv struct {
	db       *sql.DB
	projects *repository.SQLiteProjectRepo
	items    *repository.SQLiteLineItemRepo
	versions *repository.SQLiteVersionRepo
	entries  *repository.SQLiteForecastEntryRepo
	mappings *repository.SQLitePOMappingRepo

	projectSvc  ProjectService
	baselineSvc BaselineService
	versionSvc  VersionService
	snapshotSvc SnapshotService
	diffSvc     DiffService
	metricsSvc  MetricsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newEnvWithDB(database)
}

func newEnvWithDB(database *sql.DB) *testEnv {
	env := &testEnv{
		db:       database,
		projects: repository.NewSQLiteProjectRepo(database),
		items:    repository.NewSQLiteLineItemRepo(database),
		versions: repository.NewSQLiteVersionRepo(database),
		entries:  repository.NewSQLiteForecastEntryRepo(database),
		mappings: repository.NewSQLitePOMappingRepo(database),
	}
	uow := testutil.NewTestUoW(database)
	retry := db.DefaultRetryPolicy()

	env.projectSvc = NewProjectService(env.projects)
	env.baselineSvc = NewBaselineService(env.projects, env.items, uow)
	env.versionSvc = NewVersionService(env.projects, env.versions, uow, retry)
	env.snapshotSvc = NewSnapshotService(env.projects, env.items, env.versions, env.entries)
	env.diffSvc = NewDiffService(env.snapshotSvc)
	env.metricsSvc = NewMetricsService(env.projects, env.mappings, env.snapshotSvc)
	return env
}

// seedProjectWithItems creates a project with baseline line items and
// returns the project plus the items keyed by sub-category.
func (env *testEnv) seedProjectWithItems(t *testing.T, budgets map[string]float64) (*domain.Project, map[string]*domain.LineItem) {
	t.Helper()
	ctx := context.Background()

	proj := testutil.NewTestProject("Budget")
	require.NoError(t, env.projectSvc.Create(ctx, proj))

	items := make(map[string]*domain.LineItem, len(budgets))
	for sub, budget := range budgets {
		li := testutil.NewTestLineItem(proj.ID, sub, testutil.WithBudgetCost(budget))
		require.NoError(t, env.baselineSvc.AddLineItem(ctx, li))
		items[sub] = li
	}
	return proj, items
}

func snapshotValues(s *domain.Snapshot) map[string]float64 {
	values := make(map[string]float64, len(s.Lines))
	for _, l := range s.Lines {
		values[l.Item.Classification.SubCategory] = l.Value
	}
	return values
}
