package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/costline/internal/db"
	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/forecast"
	"github.com/alexanderramin/costline/internal/repository"
	"github.com/google/uuid"
)

type versionService struct {
	projects repository.ProjectRepo
	versions repository.VersionRepo
	uow      db.UnitOfWork
	retry    db.RetryPolicy
	observer UseCaseObserver
}

func NewVersionService(projects repository.ProjectRepo, versions repository.VersionRepo, uow db.UnitOfWork, retry db.RetryPolicy, observers ...UseCaseObserver) VersionService {
	return &versionService{
		projects: projects,
		versions: versions,
		uow:      uow,
		retry:    retry,
		observer: useCaseObserverOrNoop(observers),
	}
}

// CreateVersion appends the next forecast version in one transaction:
// draft line items, the version row, and the complete resolved entry set
// all commit or roll back together, so readers never observe a partial
// version. The version number is allocated inside the transaction; a
// concurrent writer that claims the same number trips the unique index,
// and the loser recomputes and retries once.
func (s *versionService) CreateVersion(ctx context.Context, projectID, reason, createdBy string, buffer forecast.StagingBuffer) (*domain.Version, error) {
	var created *domain.Version
	err := observe(ctx, s.observer, "version.create", map[string]any{"project_id": projectID}, func() error {
		if err := domain.ValidateReason(reason); err != nil {
			return err
		}
		if errs := buffer.Validate(); len(errs) > 0 {
			return fmt.Errorf("invalid staged edits: %w", errors.Join(errs...))
		}

		if _, err := s.projects.GetByID(ctx, projectID); err != nil {
			return err
		}

		attempt := func() error {
			v, err := s.commitVersion(ctx, projectID, reason, createdBy, buffer)
			if err != nil {
				return err
			}
			created = v
			return nil
		}

		err := s.retry.Do(ctx, attempt)
		if errors.Is(err, repository.ErrConflict) {
			// Lost the number to a concurrent writer. The transaction rolled
			// everything back, so one fresh attempt recomputes the next
			// number and re-persists the drafts.
			err = s.retry.Do(ctx, attempt)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *versionService) commitVersion(ctx context.Context, projectID, reason, createdBy string, buffer forecast.StagingBuffer) (*domain.Version, error) {
	now := time.Now().UTC()
	version := &domain.Version{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Reason:    reason,
		CreatedBy: createdBy,
		CreatedAt: now,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteLineItemRepo(tx)
		txVersions := repository.NewSQLiteVersionRepo(tx)
		txEntries := repository.NewSQLiteForecastEntryRepo(tx)

		// Drafts become real line items first so the edit map references
		// persisted ids only. A rollback removes them again.
		edits := buffer.Edits()
		for _, draft := range buffer.Drafts() {
			li := &domain.LineItem{
				ID:             uuid.New().String(),
				ProjectID:      projectID,
				Classification: draft.Classification,
				BudgetCost:     draft.Value,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := txItems.Create(ctx, li); err != nil {
				return err
			}
			value := draft.Value
			edits[li.ID] = &value
		}

		max, exists, err := txVersions.MaxNumber(ctx, projectID)
		if err != nil {
			return err
		}
		version.VersionNumber = 1
		var prevEntries []domain.ForecastEntry
		if exists {
			version.VersionNumber = max + 1
			prev, err := txVersions.GetByNumber(ctx, projectID, max)
			if err != nil {
				return err
			}
			prevEntries, err = txEntries.ListByVersion(ctx, prev.ID)
			if err != nil {
				return err
			}
		}

		itemPtrs, err := txItems.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		items := make([]domain.LineItem, len(itemPtrs))
		for i, li := range itemPtrs {
			items[i] = *li
		}

		entries, err := forecast.BuildEntries(version.ID, items, prevEntries, edits)
		if err != nil {
			return err
		}
		if err := forecast.VerifyComplete(items, entries); err != nil {
			return err
		}

		if err := txVersions.Create(ctx, version); err != nil {
			return err
		}
		return txEntries.CreateBatch(ctx, entries)
	})
	if err != nil {
		return nil, err
	}
	return version, nil
}

func (s *versionService) GetVersion(ctx context.Context, projectID string, number int) (*domain.Version, error) {
	return s.versions.GetByNumber(ctx, projectID, number)
}

func (s *versionService) ListVersions(ctx context.Context, projectID string) ([]*domain.Version, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.versions.ListByProject(ctx, projectID)
}
