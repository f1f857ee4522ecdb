package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_RetriesTransient(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, Backoff: FixedBackoff(time.Millisecond)}

	calls := 0
	err := policy.Do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("database is locked")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_DoesNotRetryNonTransient(t *testing.T) {
	policy := DefaultRetryPolicy()

	calls := 0
	err := policy.Do(context.Background(), func() error {
		calls++
		return errors.New("UNIQUE constraint failed: versions.project_id, versions.version_number")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_ExhaustsAttempts(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 2, Backoff: FixedBackoff(0)}

	calls := 0
	err := policy.Do(context.Background(), func() error {
		calls++
		return errors.New("database is locked")
	})
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryPolicy_ContextCancelled(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, Backoff: FixedBackoff(50 * time.Millisecond)}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := policy.Do(ctx, func() error {
		calls++
		return errors.New("database is locked")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsTransient(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.False(t, IsTransient(nil))
	assert.False(t, IsTransient(errors.New("no such table: versions")))

	assert.True(t, IsUniqueViolation(errors.New("constraint failed: UNIQUE constraint failed: versions.project_id")))
	assert.False(t, IsUniqueViolation(nil))

	assert.True(t, IsForeignKeyViolation(errors.New("constraint failed: FOREIGN KEY constraint failed")))
	assert.False(t, IsForeignKeyViolation(errors.New("database is locked")))
}
