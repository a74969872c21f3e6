package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"recettes/internal/domain"
	"recettes/internal/port"
)

type scanRunRepository struct {
	db *sqlx.DB
}

// NewScanRunRepository creates a PostgreSQL-backed ScanRunRepository.
func NewScanRunRepository(db *sqlx.DB) port.ScanRunRepository {
	return &scanRunRepository{db: db}
}

func (r *scanRunRepository) Create(ctx context.Context, run *domain.ScanRun) error {
	query := `
		INSERT INTO scan_runs (
			id, status, documents_total, documents_indexed, documents_skipped,
			error, started_at, finished_at
		) VALUES (
			:id, :status, :documents_total, :documents_indexed, :documents_skipped,
			:error, :started_at, :finished_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, run); err != nil {
		return fmt.Errorf("creating scan run: %w", err)
	}
	return nil
}

func (r *scanRunRepository) Update(ctx context.Context, run *domain.ScanRun) error {
	query := `
		UPDATE scan_runs SET
			status = :status,
			documents_total = :documents_total,
			documents_indexed = :documents_indexed,
			documents_skipped = :documents_skipped,
			error = :error,
			finished_at = :finished_at
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, run)
	if err != nil {
		return fmt.Errorf("updating scan run %s: %w", run.ID, err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrScanRunNotFound
	}
	return nil
}

func (r *scanRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ScanRun, error) {
	var run domain.ScanRun
	query := `SELECT * FROM scan_runs WHERE id = $1`
	if err := r.db.GetContext(ctx, &run, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScanRunNotFound
		}
		return nil, fmt.Errorf("getting scan run %s: %w", id, err)
	}
	return &run, nil
}

func (r *scanRunRepository) List(ctx context.Context, limit int) ([]domain.ScanRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var runs []domain.ScanRun
	query := `SELECT * FROM scan_runs ORDER BY started_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("listing scan runs: %w", err)
	}
	return runs, nil
}
