package service

import (
	"context"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/forecast"
)

type diffService struct {
	snapshots SnapshotService
}

func NewDiffService(snapshots SnapshotService) DiffService {
	return &diffService{snapshots: snapshots}
}

// DiffVersions resolves both selectors and compares the resulting value
// sets. Either side may be the raw baseline, a pinned version, or latest.
func (s *diffService) DiffVersions(ctx context.Context, projectID string, a, b SnapshotSelector) ([]domain.DiffRow, error) {
	snapA, err := s.snapshots.Resolve(ctx, projectID, a)
	if err != nil {
		return nil, err
	}
	snapB, err := s.snapshots.Resolve(ctx, projectID, b)
	if err != nil {
		return nil, err
	}
	return forecast.Diff(snapA, snapB), nil
}

func (s *diffService) RollupByCategory(rows []domain.DiffRow, level domain.ClassLevel) []domain.CategoryDelta {
	return forecast.RollupByCategory(rows, level)
}
