package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/costline/internal/db"
	"github.com/alexanderramin/costline/internal/domain"
)

// SQLitePOMappingRepo implements POMappingRepo using a SQLite database.
type SQLitePOMappingRepo struct {
	db db.DBTX
}

// NewSQLitePOMappingRepo creates a new SQLitePOMappingRepo.
func NewSQLitePOMappingRepo(conn db.DBTX) *SQLitePOMappingRepo {
	return &SQLitePOMappingRepo{db: conn}
}

func (r *SQLitePOMappingRepo) Create(ctx context.Context, m *domain.POMapping) error {
	query := `INSERT INTO po_mappings (id, project_id, line_item_id, po_number, description,
		mapped_amount, invoiced_value, line_value, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ProjectID,
		m.LineItemID,
		m.PONumber,
		m.Description,
		m.MappedAmount,
		nullableFloatToValue(m.InvoicedValue),
		nullableFloatToValue(m.LineValue),
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting po mapping: %w", err)
	}
	return nil
}

func (r *SQLitePOMappingRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.POMapping, error) {
	query := `SELECT id, project_id, line_item_id, po_number, description,
		mapped_amount, invoiced_value, line_value, created_at
		FROM po_mappings WHERE project_id = ? ORDER BY po_number, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing po mappings: %w", err)
	}
	defer rows.Close()

	var mappings []*domain.POMapping
	for rows.Next() {
		var m domain.POMapping
		var invoiced, lineValue sql.NullFloat64
		var createdAtStr string
		err := rows.Scan(
			&m.ID, &m.ProjectID, &m.LineItemID, &m.PONumber, &m.Description,
			&m.MappedAmount, &invoiced, &lineValue, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning po mapping: %w", err)
		}
		m.InvoicedValue = parseNullableFloat(invoiced)
		m.LineValue = parseNullableFloat(lineValue)
		if m.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		mappings = append(mappings, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating po mappings: %w", err)
	}
	return mappings, nil
}
