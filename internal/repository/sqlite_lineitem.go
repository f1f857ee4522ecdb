package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/costline/internal/db"
	"github.com/alexanderramin/costline/internal/domain"
)

const lineItemColumns = `id, project_id, business_line, cost_line, spend_type, sub_category,
		budget_cost, created_at, updated_at`

// SQLiteLineItemRepo implements LineItemRepo using a SQLite database.
type SQLiteLineItemRepo struct {
	db db.DBTX
}

// NewSQLiteLineItemRepo creates a new SQLiteLineItemRepo.
func NewSQLiteLineItemRepo(conn db.DBTX) *SQLiteLineItemRepo {
	return &SQLiteLineItemRepo{db: conn}
}

func (r *SQLiteLineItemRepo) Create(ctx context.Context, li *domain.LineItem) error {
	query := `INSERT INTO line_items (id, project_id, business_line, cost_line, spend_type, sub_category,
		budget_cost, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		li.ID,
		li.ProjectID,
		li.Classification.BusinessLine,
		li.Classification.CostLine,
		li.Classification.SpendType,
		li.Classification.SubCategory,
		li.BudgetCost,
		li.CreatedAt.Format(time.RFC3339),
		li.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting line item: %w", err)
	}
	return nil
}

func (r *SQLiteLineItemRepo) GetByID(ctx context.Context, id string) (*domain.LineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM line_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	li, err := scanLineItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("line item %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return li, nil
}

func (r *SQLiteLineItemRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.LineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM line_items WHERE project_id = ?
		ORDER BY business_line, cost_line, spend_type, sub_category, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing line items: %w", err)
	}
	defer rows.Close()

	var items []*domain.LineItem
	for rows.Next() {
		li, err := scanLineItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating line items: %w", err)
	}
	return items, nil
}

// UpdateBudgetCost mutates the baseline value only. Forecast values live
// in forecast entries and must never be written here.
func (r *SQLiteLineItemRepo) UpdateBudgetCost(ctx context.Context, id string, budgetCost float64) error {
	query := `UPDATE line_items SET budget_cost = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, budgetCost, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating line item budget: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("line item %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteLineItemRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM line_items WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return fmt.Errorf("line item %s is referenced by a forecast version: %w", id, ErrConflict)
		}
		return fmt.Errorf("deleting line item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("line item %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanLineItem(row scanner) (*domain.LineItem, error) {
	var li domain.LineItem
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&li.ID, &li.ProjectID,
		&li.Classification.BusinessLine,
		&li.Classification.CostLine,
		&li.Classification.SpendType,
		&li.Classification.SubCategory,
		&li.BudgetCost,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning line item: %w", err)
	}

	var parseErr error
	li.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	li.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &li, nil
}
