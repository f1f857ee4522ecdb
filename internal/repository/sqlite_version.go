package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/costline/internal/db"
	"github.com/alexanderramin/costline/internal/domain"
)

const versionColumns = `id, project_id, version_number, reason, created_by, created_at`

// SQLiteVersionRepo implements VersionRepo using a SQLite database.
type SQLiteVersionRepo struct {
	db db.DBTX
}

// NewSQLiteVersionRepo creates a new SQLiteVersionRepo.
func NewSQLiteVersionRepo(conn db.DBTX) *SQLiteVersionRepo {
	return &SQLiteVersionRepo{db: conn}
}

// Create inserts a version row. A UNIQUE violation on
// (project_id, version_number) is mapped to ErrConflict so the caller can
// recompute the next number and retry.
func (r *SQLiteVersionRepo) Create(ctx context.Context, v *domain.Version) error {
	query := `INSERT INTO versions (id, project_id, version_number, reason, created_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID,
		v.ProjectID,
		v.VersionNumber,
		v.Reason,
		v.CreatedBy,
		v.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("version %d for project %s already exists: %w", v.VersionNumber, v.ProjectID, ErrConflict)
		}
		return fmt.Errorf("inserting version: %w", err)
	}
	return nil
}

func (r *SQLiteVersionRepo) GetByNumber(ctx context.Context, projectID string, number int) (*domain.Version, error) {
	query := `SELECT ` + versionColumns + ` FROM versions WHERE project_id = ? AND version_number = ?`
	row := r.db.QueryRowContext(ctx, query, projectID, number)
	v, err := scanVersion(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("version %d for project %s: %w", number, projectID, ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (r *SQLiteVersionRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Version, error) {
	query := `SELECT ` + versionColumns + ` FROM versions WHERE project_id = ? ORDER BY version_number DESC`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}
	defer rows.Close()

	var versions []*domain.Version
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating versions: %w", err)
	}
	return versions, nil
}

func (r *SQLiteVersionRepo) MaxNumber(ctx context.Context, projectID string) (int, bool, error) {
	query := `SELECT MAX(version_number) FROM versions WHERE project_id = ?`
	var max sql.NullInt64
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&max); err != nil {
		return 0, false, fmt.Errorf("reading max version number: %w", err)
	}
	if !max.Valid {
		return 0, false, nil
	}
	return int(max.Int64), true, nil
}

func scanVersion(row scanner) (*domain.Version, error) {
	var v domain.Version
	var createdAtStr string

	err := row.Scan(&v.ID, &v.ProjectID, &v.VersionNumber, &v.Reason, &v.CreatedBy, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning version: %w", err)
	}

	var parseErr error
	v.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	return &v, nil
}
