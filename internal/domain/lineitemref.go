package domain

import "fmt"

type refKind int

const (
	refPersisted refKind = iota
	refDraft
)

// LineItemRef identifies a line item during an editing session. A ref is
// either Persisted (a real row id) or Draft (a session-local id for a new
// entry that has not been saved yet). Draft refs are resolved to real ids
// at commit time; the two cases never mix.
type LineItemRef struct {
	kind refKind
	id   string
}

// PersistedRef returns a ref to an existing line item row.
func PersistedRef(id string) LineItemRef {
	return LineItemRef{kind: refPersisted, id: id}
}

// DraftRef returns a ref to an unsaved draft line item.
func DraftRef(localID string) LineItemRef {
	return LineItemRef{kind: refDraft, id: localID}
}

// IsDraft reports whether the ref points at an unsaved draft.
func (r LineItemRef) IsDraft() bool { return r.kind == refDraft }

// ID returns the underlying id. For draft refs this is the session-local
// id, which must not be persisted.
func (r LineItemRef) ID() string { return r.id }

func (r LineItemRef) String() string {
	if r.kind == refDraft {
		return fmt.Sprintf("draft(%s)", r.id)
	}
	return r.id
}
