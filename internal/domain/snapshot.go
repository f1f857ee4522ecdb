package domain

// SnapshotLine pairs a line item with its value as of a resolved version.
type SnapshotLine struct {
	Item  LineItem
	Value float64
}

// Snapshot is the fully resolved set of (line item, value) pairs for a
// project as of a version. VersionNumber is nil when the snapshot was
// resolved from the raw baseline of a project with no versions (Source
// is SourceBaseline in that case). Excluded line items are absent.
type Snapshot struct {
	ProjectID     string
	VersionNumber *int
	Source        SnapshotSource
	Lines         []SnapshotLine
}

// Total sums the snapshot values.
func (s *Snapshot) Total() float64 {
	var total float64
	for _, l := range s.Lines {
		total += l.Value
	}
	return total
}

// ValueByItem returns a line-item-id → value index of the snapshot.
func (s *Snapshot) ValueByItem() map[string]float64 {
	m := make(map[string]float64, len(s.Lines))
	for _, l := range s.Lines {
		m[l.Item.ID] = l.Value
	}
	return m
}

// ItemByID returns the line item carried by the snapshot, if present.
func (s *Snapshot) ItemByID(id string) (LineItem, bool) {
	for _, l := range s.Lines {
		if l.Item.ID == id {
			return l.Item, true
		}
	}
	return LineItem{}, false
}
