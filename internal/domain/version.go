package domain

import (
	"fmt"
	"time"
)

// MaxReasonLen bounds the persisted rationale for a forecast version.
const MaxReasonLen = 500

// Version is one entry in the append-only forecast ledger of a project.
// Version numbers are monotonically increasing; number 0 is reserved for
// the initial budget and created at most once per project. Once created,
// a version's forecast entries are immutable.
type Version struct {
	ID            string
	ProjectID     string
	VersionNumber int
	Reason        string
	CreatedBy     string
	CreatedAt     time.Time
}

// ValidateReason checks the non-empty and length bounds on a version reason.
func ValidateReason(reason string) error {
	if reason == "" {
		return fmt.Errorf("version reason is required")
	}
	if len(reason) > MaxReasonLen {
		return fmt.Errorf("version reason exceeds %d characters (got %d)", MaxReasonLen, len(reason))
	}
	return nil
}

// ForecastEntry is the value of one line item in one version. A version's
// entries form the complete snapshot for that version: every line item
// that existed when the version was created has exactly one entry.
// Excluded entries carry a zero contribution but are still persisted so
// the completeness invariant holds and exclusion inherits forward.
type ForecastEntry struct {
	VersionID      string
	LineItemID     string
	ForecastedCost float64
	Excluded       bool
}
