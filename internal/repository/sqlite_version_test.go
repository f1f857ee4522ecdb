package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/costline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionRepo_CreateAndGetByNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteVersionRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)
	v := testutil.NewTestVersion(proj.ID, 1, testutil.WithReason("vendor price increase"), testutil.WithCreatedBy("alice"))
	require.NoError(t, repo.Create(ctx, v))

	fetched, err := repo.GetByNumber(ctx, proj.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, v.ID, fetched.ID)
	assert.Equal(t, 1, fetched.VersionNumber)
	assert.Equal(t, "vendor price increase", fetched.Reason)
	assert.Equal(t, "alice", fetched.CreatedBy)
}

func TestVersionRepo_GetByNumber_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteVersionRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)
	_, err := repo.GetByNumber(ctx, proj.ID, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVersionRepo_DuplicateNumberConflicts(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteVersionRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)
	require.NoError(t, repo.Create(ctx, testutil.NewTestVersion(proj.ID, 1)))

	err := repo.Create(ctx, testutil.NewTestVersion(proj.ID, 1))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestVersionRepo_NumbersIndependentAcrossProjects(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteVersionRepo(db)
	ctx := context.Background()

	p1 := seedProject(t, projects)
	p2 := testutil.NewTestProject("Other")
	require.NoError(t, projects.Create(ctx, p2))

	require.NoError(t, repo.Create(ctx, testutil.NewTestVersion(p1.ID, 1)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestVersion(p2.ID, 1)))
}

func TestVersionRepo_ListByProject_Descending(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteVersionRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)
	for n := 1; n <= 3; n++ {
		require.NoError(t, repo.Create(ctx, testutil.NewTestVersion(proj.ID, n)))
	}

	list, err := repo.ListByProject(ctx, proj.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, 3, list[0].VersionNumber)
	assert.Equal(t, 1, list[2].VersionNumber)
}

func TestVersionRepo_MaxNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteVersionRepo(db)
	ctx := context.Background()

	proj := seedProject(t, projects)

	_, exists, err := repo.MaxNumber(ctx, proj.ID)
	require.NoError(t, err)
	assert.False(t, exists, "no versions yet")

	require.NoError(t, repo.Create(ctx, testutil.NewTestVersion(proj.ID, 0)))
	max, exists, err := repo.MaxNumber(ctx, proj.ID)
	require.NoError(t, err)
	assert.True(t, exists, "version zero still counts as existing")
	assert.Equal(t, 0, max)

	require.NoError(t, repo.Create(ctx, testutil.NewTestVersion(proj.ID, 1)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestVersion(proj.ID, 2)))
	max, exists, err = repo.MaxNumber(ctx, proj.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, 2, max)
}
