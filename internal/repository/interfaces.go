package repository

import (
	"context"

	"github.com/alexanderramin/costline/internal/domain"
)

// EntryWithItem joins a forecast entry with its line item, the unit a
// resolved snapshot is assembled from.
type EntryWithItem struct {
	Entry domain.ForecastEntry
	Item  domain.LineItem
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Archive(ctx context.Context, id string) error
}

type LineItemRepo interface {
	Create(ctx context.Context, li *domain.LineItem) error
	GetByID(ctx context.Context, id string) (*domain.LineItem, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.LineItem, error)
	UpdateBudgetCost(ctx context.Context, id string, budgetCost float64) error
	// Delete hard-deletes a line item. It fails with ErrConflict when the
	// item is referenced by any persisted forecast entry.
	Delete(ctx context.Context, id string) error
}

type VersionRepo interface {
	Create(ctx context.Context, v *domain.Version) error
	GetByNumber(ctx context.Context, projectID string, number int) (*domain.Version, error)
	// ListByProject returns versions ordered by version number descending.
	ListByProject(ctx context.Context, projectID string) ([]*domain.Version, error)
	// MaxNumber returns the highest version number for the project and
	// whether any version exists at all.
	MaxNumber(ctx context.Context, projectID string) (int, bool, error)
}

type ForecastEntryRepo interface {
	CreateBatch(ctx context.Context, entries []domain.ForecastEntry) error
	ListByVersion(ctx context.Context, versionID string) ([]domain.ForecastEntry, error)
	ListWithItems(ctx context.Context, versionID string) ([]EntryWithItem, error)
}

// POMappingRepo reads the externally-owned PO mapping relation. Create
// exists for import and test seeding only; engine operations never write.
type POMappingRepo interface {
	Create(ctx context.Context, m *domain.POMapping) error
	ListByProject(ctx context.Context, projectID string) ([]*domain.POMapping, error)
}
