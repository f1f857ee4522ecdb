package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/costline/internal/db"
	"github.com/alexanderramin/costline/internal/domain"
	"github.com/alexanderramin/costline/internal/forecast"
	"github.com/alexanderramin/costline/internal/importer"
	"github.com/alexanderramin/costline/internal/repository"
	"github.com/google/uuid"
)

type baselineService struct {
	projects repository.ProjectRepo
	items    repository.LineItemRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewBaselineService(projects repository.ProjectRepo, items repository.LineItemRepo, uow db.UnitOfWork, observers ...UseCaseObserver) BaselineService {
	return &baselineService{
		projects: projects,
		items:    items,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *baselineService) AddLineItem(ctx context.Context, li *domain.LineItem) error {
	if errs := li.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid line item: %w", errors.Join(errs...))
	}
	if _, err := s.projects.GetByID(ctx, li.ProjectID); err != nil {
		return err
	}
	if li.ID == "" {
		li.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	li.CreatedAt = now
	li.UpdatedAt = now
	return s.items.Create(ctx, li)
}

func (s *baselineService) UpdateBudgetCost(ctx context.Context, lineItemID string, budgetCost float64) error {
	if budgetCost <= 0 {
		return fmt.Errorf("budget cost must be positive, got %v", budgetCost)
	}
	return s.items.UpdateBudgetCost(ctx, lineItemID, budgetCost)
}

func (s *baselineService) RemoveLineItem(ctx context.Context, lineItemID string) error {
	return s.items.Delete(ctx, lineItemID)
}

func (s *baselineService) GetBaseline(ctx context.Context, projectID string) ([]*domain.LineItem, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.items.ListByProject(ctx, projectID)
}

func (s *baselineService) ImportBaseline(ctx context.Context, projectID, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadBaselineSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading baseline import: %w", err)
	}
	return s.ImportBaselineFromSchema(ctx, projectID, schema)
}

// ImportBaselineFromSchema persists an imported baseline in one
// transaction: all line items and PO mappings land together or not at all.
func (s *baselineService) ImportBaselineFromSchema(ctx context.Context, projectID string, schema *importer.BaselineSchema) (*ImportResult, error) {
	var result *ImportResult
	err := observe(ctx, s.observer, "baseline.import", map[string]any{"project_id": projectID}, func() error {
		if errs := importer.ValidateBaselineSchema(schema); len(errs) > 0 {
			return fmt.Errorf("invalid baseline import: %w", errors.Join(errs...))
		}

		project, err := s.projects.GetByID(ctx, projectID)
		if err != nil {
			return err
		}

		converted, err := importer.Convert(projectID, schema)
		if err != nil {
			return err
		}

		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txItems := repository.NewSQLiteLineItemRepo(tx)
			txMappings := repository.NewSQLitePOMappingRepo(tx)
			for _, li := range converted.LineItems {
				if err := txItems.Create(ctx, li); err != nil {
					return err
				}
			}
			for _, m := range converted.POMappings {
				if err := txMappings.Create(ctx, m); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		var total float64
		for _, li := range converted.LineItems {
			total += li.BudgetCost
		}
		result = &ImportResult{
			Project:       project,
			LineItemCount: len(converted.LineItems),
			POCount:       len(converted.POMappings),
			TotalBudget:   total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateInitialBudget records version 0, freezing the approved budget as
// an explicit ledger row. Allowed only while the ledger is empty; after
// any version exists the initial budget is already part of history.
func (s *baselineService) CreateInitialBudget(ctx context.Context, projectID, reason, createdBy string) (*domain.Version, error) {
	if err := domain.ValidateReason(reason); err != nil {
		return nil, err
	}
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	version := &domain.Version{
		ID:            uuid.New().String(),
		ProjectID:     projectID,
		VersionNumber: 0,
		Reason:        reason,
		CreatedBy:     createdBy,
		CreatedAt:     now,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteLineItemRepo(tx)
		txVersions := repository.NewSQLiteVersionRepo(tx)
		txEntries := repository.NewSQLiteForecastEntryRepo(tx)

		_, exists, err := txVersions.MaxNumber(ctx, projectID)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("project %s already has versions, initial budget cannot be recorded: %w", projectID, repository.ErrConflict)
		}

		itemPtrs, err := txItems.ListByProject(ctx, projectID)
		if err != nil {
			return err
		}
		if len(itemPtrs) == 0 {
			return fmt.Errorf("project %s has no line items to freeze", projectID)
		}
		items := make([]domain.LineItem, len(itemPtrs))
		for i, li := range itemPtrs {
			items[i] = *li
		}

		entries, err := forecast.BuildEntries(version.ID, items, nil, nil)
		if err != nil {
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
