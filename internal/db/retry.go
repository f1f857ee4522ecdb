package db

import (
	"context"
	"strings"
	"time"
)

// BackoffFunc maps a zero-based attempt index to a sleep duration.
type BackoffFunc func(attempt int) time.Duration

// FixedBackoff sleeps the same duration between every attempt.
func FixedBackoff(d time.Duration) BackoffFunc {
	return func(int) time.Duration { return d }
}

// RetryPolicy retries transient storage failures with bounded attempts.
// The engine logic stays retry-policy-agnostic: the policy is injected at
// the persistence boundary and only retries errors IsTransient recognizes.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     BackoffFunc
}

// DefaultRetryPolicy retries transient failures up to 3 attempts total
// with a fixed 50ms backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, Backoff: FixedBackoff(50 * time.Millisecond)}
}

// Do runs fn, retrying while it returns a transient error and attempts
// remain. Non-transient errors are returned immediately.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			var wait time.Duration
			if p.Backoff != nil {
				wait = p.Backoff(attempt - 1)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		err = fn()
		if err == nil || !IsTransient(err) {
			return err
		}
	}
	return err
}

// IsTransient reports whether err looks like a retryable SQLite I/O
// failure (lock contention), as opposed to a constraint or logic error.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "SQLITE_BUSY")
}

// IsUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure, the backstop for concurrent version-number collisions.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// IsForeignKeyViolation reports whether err is a SQLite FK constraint
// failure, e.g. hard-deleting a line item referenced by a forecast entry.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
