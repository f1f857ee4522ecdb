package domain

type ProjectStatus string

const (
	StatusActive   ProjectStatus = "active"
	StatusArchived ProjectStatus = "archived"
)

// DiffStatus classifies a single line in a version comparison.
type DiffStatus string

const (
	DiffAdded     DiffStatus = "added"
	DiffRemoved   DiffStatus = "removed"
	DiffIncreased DiffStatus = "increased"
	DiffDecreased DiffStatus = "decreased"
	DiffUnchanged DiffStatus = "unchanged"
)

// SnapshotSource records where a resolved snapshot's values came from:
// a persisted forecast version, or the raw baseline line items of a
// project that has no versions yet.
type SnapshotSource string

const (
	SourceLedger   SnapshotSource = "ledger"
	SourceBaseline SnapshotSource = "baseline"
)

// ClassLevel names one of the four classification levels of a line item.
type ClassLevel string

const (
	LevelBusinessLine ClassLevel = "business_line"
	LevelCostLine     ClassLevel = "cost_line"
	LevelSpendType    ClassLevel = "spend_type"
	LevelSubCategory  ClassLevel = "sub_category"
)
