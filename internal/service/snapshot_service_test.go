package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/forecast"
	"github.com/alexanderramin/costline/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_LatestFallsBackToBaseline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	proj, _ := env.seedProjectWithItems(t, map[string]float64{"A": 100, "B": 200})

	snap, err := env.snapshotSvc.Resolve(ctx, proj.ID, Latest())
	require.NoError(t, err)
	assert.Nil(t, snap.VersionNumber)
	assert.Equal(t, domain.SourceBaseline, snap.Source)
	assert.Equal(t, 300.0, snap.Total())
}

func TestResolve_LatestPicksHighestVersion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	proj, items := env.seedProjectWithItems(t, map[string]float64{"A": 100})

	_, err := env.versionSvc.CreateVersion(ctx, proj.ID, "first", "alice",
		forecast.NewStagingBuffer().Modify(domain.PersistedRef(items["A"].ID), 120))
	require.NoError(t, err)
	_, err = env.versionSvc.CreateVersion(ctx, proj.ID, "second", "alice",
		forecast.NewStagingBuffer().Modify(domain.PersistedRef(items["A"].ID), 140))
	require.NoError(t, err)

	snap, err := env.snapshotSvc.Resolve(ctx, proj.ID, Latest())
	require.NoError(t, err)
	require.NotNil(t, snap.VersionNumber)
	assert.Equal(t, 2, *snap.VersionNumber)
	assert.Equal(t, domain.SourceLedger, snap.Source)
	assert.Equal(t, 140.0, snap.Total())
}

func TestResolve_VersionZeroWithoutLedgerRowIsBaseline(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	proj, items := env.seedProjectWithItems(t, map[string]float64{"A": 100})

	_, err := env.versionSvc.CreateVersion(ctx, proj.ID, "reforecast", "alice",
		forecast.NewStagingBuffer().Modify(domain.PersistedRef(items["A"].ID), 150))
	require.NoError(t, err)

	snap, err := env.snapshotSvc.Resolve(ctx, proj.ID, AtVersion(0))
	require.NoError(t, err)
	assert.Equal(t, domain.SourceBaseline, snap.Source)
	assert.Equal(t, 100.0, snap.Total(), "version 0 reads the current baseline when never frozen")
}

func TestResolve_VersionZeroLedgerRowIsAuthoritative(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	proj, items := env.seedProjectWithItems(t, map[string]float64{"A": 100})

	_, err := env.baselineSvc.CreateInitialBudget(ctx, proj.ID, "approved budget", "alice")
	require.NoError(t, err)

	// Baseline drifts after the freeze.
	require.NoError(t, env.baselineSvc.UpdateBudgetCost(ctx, items["A"].ID, 999))

	snap, err := env.snapshotSvc.Resolve(ctx, proj.ID, AtVersion(0))
	require.NoError(t, err)
	assert.Equal(t, domain.SourceLedger, snap.Source)
	assert.Equal(t, 100.0, snap.Total(), "frozen version 0 ignores later baseline edits")
}

func TestResolve_MissingVersionIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	proj, items := env.seedProjectWithItems(t, map[string]float64{"A": 100})

	for _, reason := range []string{"one", "two"} {
		_, err := env.versionSvc.CreateVersion(ctx, proj.ID, reason, "alice",
			forecast.NewStagingBuffer().Modify(domain.PersistedRef(items["A"].ID), 110))
		require.NoError(t, err)
	}

	_, err := env.snapshotSvc.Resolve(ctx, proj.ID, AtVersion(5))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResolve_ProjectNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.snapshotSvc.Resolve(context.Background(), "nonexistent", Latest())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResolve_HistoricalVersionsStayImmutable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	proj, items := env.seedProjectWithItems(t, map[string]float64{"A": 100, "B": 200})

	_, err := env.versionSvc.CreateVersion(ctx, proj.ID, "first", "alice",
		forecast.NewStagingBuffer().Modify(domain.PersistedRef(items["A"].ID), 150))
	require.NoError(t, err)

	_, err = env.versionSvc.CreateVersion(ctx, proj.ID, "second", "alice",
		forecast.NewStagingBuffer().
			Modify(domain.PersistedRef(items["A"].ID), 175).
			Exclude(domain.PersistedRef(items["B"].ID)))
	require.NoError(t, err)

	snap1, err := env.snapshotSvc.Resolve(ctx, proj.ID, AtVersion(1))
	require.NoError(t, err)
	values := snapshotValues(snap1)
	assert.Equal(t, 150.0, values["A"])
	assert.Equal(t, 200.0, values["B"], "later exclusion does not rewrite history")
	assert.Equal(t, 350.0, snap1.Total())
}
