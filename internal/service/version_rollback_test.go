package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/costline/internal/db"
	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/forecast"
	"github.com/alexanderramin/costline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A failure while writing forecast entries must undo the whole version:
// no version row, no partial entry set, and no leaked draft line items.
func TestCreateVersion_RollbackLeavesNoPartialVersion(t *testing.T) {
	database := testutil.NewTestDB(t)
	env := newEnvWithDB(database)
	ctx := context.Background()
	proj, items := env.seedProjectWithItems(t, map[string]float64{"A": 100, "B": 200})

	// Exec order inside the tx: draft insert (1), version insert (2),
	// then one entry insert per line item. Fail on the first entry.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("injected entry insert failure"),
	}
	svc := NewVersionService(env.projects, env.versions, failUoW, db.RetryPolicy{MaxAttempts: 1})

	buffer := forecast.NewStagingBuffer().Modify(domain.PersistedRef(items["A"].ID), 150)
	buffer, _ = buffer.AddNew(domain.Classification{
		BusinessLine: "Operations", CostLine: "IT", SpendType: "Services", SubCategory: "C",
	}, 50)

	_, err := svc.CreateVersion(ctx, proj.ID, "doomed reforecast", "alice", buffer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected entry insert failure")

	// No version row.
	list, err := env.versions.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	// The draft line item rolled back with the version.
	baseline, err := env.items.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	assert.Len(t, baseline, 2)

	// A later attempt on a healthy UoW starts clean at version 1.
	v, err := env.versionSvc.CreateVersion(ctx, proj.ID, "retry after failure", "alice",
		forecast.NewStagingBuffer().Modify(domain.PersistedRef(items["A"].ID), 150))
	require.NoError(t, err)
	assert.Equal(t, 1, v.VersionNumber)
}
