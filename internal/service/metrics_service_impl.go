package service

import (
	"context"
	"time"

	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/reconcile"
	"github.com/alexanderramin/costline/internal/repository"
)

type metricsService struct {
	projects  repository.ProjectRepo
	mappings  repository.POMappingRepo
	snapshots SnapshotService
	now       func() time.Time
	observer  UseCaseObserver
}

func NewMetricsService(projects repository.ProjectRepo, mappings repository.POMappingRepo, snapshots SnapshotService, observers ...UseCaseObserver) MetricsService {
	return &metricsService{
		projects:  projects,
		mappings:  mappings,
		snapshots: snapshots,
		now:       func() time.Time { return time.Now().UTC() },
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *metricsService) Compute(ctx context.Context, projectID string, sel SnapshotSelector) (*domain.Metrics, error) {
	var metrics *domain.Metrics
	err := observe(ctx, s.observer, "metrics.compute", map[string]any{"project_id": projectID}, func() error {
		project, err := s.projects.GetByID(ctx, projectID)
		if err != nil {
			return err
		}
		snapshot, err := s.snapshots.Resolve(ctx, projectID, sel)
		if err != nil {
			return err
		}
		mappings, err := s.mappings.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		metrics = reconcile.Compute(reconcile.Input{
			Project:  *project,
			Snapshot: snapshot,
			Mappings: mappings,
			Now:      s.now(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return metrics, nil
}
