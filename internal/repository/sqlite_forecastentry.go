package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/costline/internal/db"
	"github.com/alexanderramin/costline/internal/domain"
)

// SQLiteForecastEntryRepo implements ForecastEntryRepo using a SQLite database.
type SQLiteForecastEntryRepo struct {
	db db.DBTX
}

// NewSQLiteForecastEntryRepo creates a new SQLiteForecastEntryRepo.
func NewSQLiteForecastEntryRepo(conn db.DBTX) *SQLiteForecastEntryRepo {
	return &SQLiteForecastEntryRepo{db: conn}
}

// CreateBatch inserts the complete entry set of a new version. Callers run
// this inside the same transaction as the version insert so readers never
// observe a partial version.
func (r *SQLiteForecastEntryRepo) CreateBatch(ctx context.Context, entries []domain.ForecastEntry) error {
	query := `INSERT INTO forecast_entries (version_id, line_item_id, forecasted_cost, excluded)
		VALUES (?, ?, ?, ?)`
	for _, e := range entries {
		_, err := r.db.ExecContext(ctx, query,
			e.VersionID,
			e.LineItemID,
			e.ForecastedCost,
			boolToInt(e.Excluded),
		)
		if err != nil {
			if db.IsUniqueViolation(err) {
				return fmt.Errorf("duplicate forecast entry for line item %s: %w", e.LineItemID, ErrConflict)
			}
			return fmt.Errorf("inserting forecast entry for line item %s: %w", e.LineItemID, err)
		}
	}
	return nil
}

func (r *SQLiteForecastEntryRepo) ListByVersion(ctx context.Context, versionID string) ([]domain.ForecastEntry, error) {
	query := `SELECT version_id, line_item_id, forecasted_cost, excluded
		FROM forecast_entries WHERE version_id = ?`
	rows, err := r.db.QueryContext(ctx, query, versionID)
	if err != nil {
		return nil, fmt.Errorf("listing forecast entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ForecastEntry
	for rows.Next() {
		var e domain.ForecastEntry
		var excluded int
		if err := rows.Scan(&e.VersionID, &e.LineItemID, &e.ForecastedCost, &excluded); err != nil {
			return nil, fmt.Errorf("scanning forecast entry: %w", err)
		}
		e.Excluded = excluded != 0
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating forecast entries: %w", err)
	}
	return entries, nil
}

// ListWithItems joins entries with their line items, ordered by the
// classification path for stable snapshot output.
func (r *SQLiteForecastEntryRepo) ListWithItems(ctx context.Context, versionID string) ([]EntryWithItem, error) {
	query := `SELECT e.version_id, e.line_item_id, e.forecasted_cost, e.excluded,
			` + prefixedLineItemColumns("li") + `
		FROM forecast_entries e
		JOIN line_items li ON li.id = e.line_item_id
		WHERE e.version_id = ?
		ORDER BY li.business_line, li.cost_line, li.spend_type, li.sub_category, li.created_at`
	rows, err := r.db.QueryContext(ctx, query, versionID)
	if err != nil {
		return nil, fmt.Errorf("listing forecast entries with items: %w", err)
	}
	defer rows.Close()

	var result []EntryWithItem
	for rows.Next() {
		var e domain.ForecastEntry
		var li domain.LineItem
		var excluded int
		var createdAtStr, updatedAtStr string
		err := rows.Scan(
			&e.VersionID, &e.LineItemID, &e.ForecastedCost, &excluded,
			&li.ID, &li.ProjectID,
			&li.Classification.BusinessLine,
			&li.Classification.CostLine,
			&li.Classification.SpendType,
			&li.Classification.SubCategory,
			&li.BudgetCost,
			&createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning joined forecast entry: %w", err)
		}
		e.Excluded = excluded != 0
		if li.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing line item created_at: %w", err)
		}
		if li.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
			return nil, fmt.Errorf("parsing line item updated_at: %w", err)
		}
		result = append(result, EntryWithItem{Entry: e, Item: li})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating joined forecast entries: %w", err)
	}
	return result, nil
}

func prefixedLineItemColumns(alias string) string {
	return alias + `.id, ` + alias + `.project_id, ` + alias + `.business_line, ` +
		alias + `.cost_line, ` + alias + `.spend_type, ` + alias + `.sub_category, ` +
		alias + `.budget_cost, ` + alias + `.created_at, ` + alias + `.updated_at`
}
