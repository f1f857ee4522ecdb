package service

import (
	"context"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/forecast"
	"github.com/alexanderramin/costline/internal/importer"
)

// SnapshotSelector picks which value set of a project to resolve: the
// latest state or a specific version number. The zero value means latest.
type SnapshotSelector struct {
	number *int
}

// Latest selects the most recent forecast version, falling back to the
// raw baseline when the project has no versions yet.
func Latest() SnapshotSelector {
	return SnapshotSelector{}
}

// AtVersion selects a specific version number.
func AtVersion(n int) SnapshotSelector {
	v := n
	return SnapshotSelector{number: &v}
}

// Number returns the selected version number, or false for latest.
func (s SnapshotSelector) Number() (int, bool) {
	if s.number == nil {
		return 0, false
	}
	return *s.number, true
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Archive(ctx context.Context, id string) error
}

// BaselineService manages a project's budget line items: the baseline
// values that forecast versions inherit from.
type BaselineService interface {
	AddLineItem(ctx context.Context, li *domain.LineItem) error
	UpdateBudgetCost(ctx context.Context, lineItemID string, budgetCost float64) error
	RemoveLineItem(ctx context.Context, lineItemID string) error
	GetBaseline(ctx context.Context, projectID string) ([]*domain.LineItem, error)
	ImportBaseline(ctx context.Context, projectID, filePath string) (*ImportResult, error)
	ImportBaselineFromSchema(ctx context.Context, projectID string, schema *importer.BaselineSchema) (*ImportResult, error)
	// CreateInitialBudget records version 0: an explicit ledger row for the
	// approved budget. It fails with a conflict when any version exists.
	CreateInitialBudget(ctx context.Context, projectID, reason, createdBy string) (*domain.Version, error)
}

// VersionService appends forecast versions to the project ledger.
type VersionService interface {
	// CreateVersion commits a staging buffer as the next forecast version.
	// Draft line items are persisted, the complete entry set is resolved
	// from the previous version plus the buffer's edits, and version row
	// plus entries are written in one transaction.
	CreateVersion(ctx context.Context, projectID, reason, createdBy string, buffer forecast.StagingBuffer) (*domain.Version, error)
	GetVersion(ctx context.Context, projectID string, number int) (*domain.Version, error)
	ListVersions(ctx context.Context, projectID string) ([]*domain.Version, error)
}

type SnapshotService interface {
	Resolve(ctx context.Context, projectID string, sel SnapshotSelector) (*domain.Snapshot, error)
}

type DiffService interface {
	DiffVersions(ctx context.Context, projectID string, a, b SnapshotSelector) ([]domain.DiffRow, error)
	RollupByCategory(rows []domain.DiffRow, level domain.ClassLevel) []domain.CategoryDelta
}

type MetricsService interface {
	Compute(ctx context.Context, projectID string, sel SnapshotSelector) (*domain.Metrics, error)
}

// ImportResult holds the outcome of a baseline import.
type ImportResult struct {
	Project       *domain.Project
	LineItemCount int
	POCount       int
	TotalBudget   float64
}
