package domain

import "errors"

// ErrInvariant marks an internal resolution-rule violation, e.g. a version
// missing a forecast entry for a known line item. It indicates a bug and
// is surfaced rather than silently corrected.
var ErrInvariant = errors.New("forecast invariant violation")
