package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/forecast"
	"github.com/alexanderramin/costline/internal/repository"
)

type snapshotService struct {
	projects repository.ProjectRepo
	items    repository.LineItemRepo
	versions repository.VersionRepo
	entries  repository.ForecastEntryRepo
}

func NewSnapshotService(projects repository.ProjectRepo, items repository.LineItemRepo, versions repository.VersionRepo, entries repository.ForecastEntryRepo) SnapshotService {
	return &snapshotService{projects: projects, items: items, versions: versions, entries: entries}
}

// Resolve materializes the value set the selector points at. Latest falls
// back to the raw baseline when the ledger is empty. Version 0 resolves
// from its ledger row when one was recorded, from the raw baseline
// otherwise; any other missing version number is an error.
func (s *snapshotService) Resolve(ctx context.Context, projectID string, sel SnapshotSelector) (*domain.Snapshot, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	number, pinned := sel.Number()
	if !pinned {
		max, exists, err := s.versions.MaxNumber(ctx, projectID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return s.baseline(ctx, projectID)
		}
		number = max
	}

	version, err := s.versions.GetByNumber(ctx, projectID, number)
	if err != nil {
		if number == 0 && errors.Is(err, repository.ErrNotFound) {
			// No explicit initial-budget row; the baseline stands in.
			return s.baseline(ctx, projectID)
		}
		return nil, err
	}

	joined, err := s.entries.ListWithItems(ctx, version.ID)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.ForecastEntry, 0, len(joined))
	itemsByID := make(map[string]domain.LineItem, len(joined))
	for _, ei := range joined {
		entries = append(entries, ei.Entry)
		itemsByID[ei.Item.ID] = ei.Item
	}
	return forecast.AssembleSnapshot(projectID, version.VersionNumber, entries, itemsByID)
}

func (s *snapshotService) baseline(ctx context.Context, projectID string) (*domain.Snapshot, error) {
	itemPtrs, err := s.items.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	items := make([]domain.LineItem, len(itemPtrs))
	for i, li := range itemPtrs {
		items[i] = *li
	}
	return forecast.BaselineSnapshot(projectID, items), nil
}
