package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"recettes/internal/domain"
	"recettes/internal/port"
)

const recipeColumns = `
	id, scan_run_id, file_id, title, normalized_title, title_key,
	mime_type, web_view_link, full_path, created_time, modified_time,
	ingredients_raw, steps_raw, ingredients, steps, ingredients_invalid,
	parse_status, parse_notes,
	total_kcal, kcal_per_portion, proteins_g, lipids_g, carbs_g,
	proteins_g_per_portion, lipids_g_per_portion, carbs_g_per_portion,
	portions, created_at`

const insertRecipeQuery = `
	INSERT INTO recipes (
		id, scan_run_id, file_id, title, normalized_title, title_key,
		mime_type, web_view_link, full_path, created_time, modified_time,
		ingredients_raw, steps_raw, ingredients, steps, ingredients_invalid,
		parse_status, parse_notes,
		total_kcal, kcal_per_portion, proteins_g, lipids_g, carbs_g,
		proteins_g_per_portion, lipids_g_per_portion, carbs_g_per_portion,
		portions, created_at
	) VALUES (
		:id, :scan_run_id, :file_id, :title, :normalized_title, :title_key,
		:mime_type, :web_view_link, :full_path, :created_time, :modified_time,
		:ingredients_raw, :steps_raw, :ingredients, :steps, :ingredients_invalid,
		:parse_status, :parse_notes,
		:total_kcal, :kcal_per_portion, :proteins_g, :lipids_g, :carbs_g,
		:proteins_g_per_portion, :lipids_g_per_portion, :carbs_g_per_portion,
		:portions, :created_at
	)`

type recipeRepository struct {
	db *sqlx.DB
}

// NewRecipeRepository creates a PostgreSQL-backed RecipeRepository.
func NewRecipeRepository(db *sqlx.DB) port.RecipeRepository {
	return &recipeRepository{db: db}
}

// ReplaceAll swaps the whole index inside one transaction: previous records
// are deleted and the new set inserted with the owning scan run ID.
func (r *recipeRepository) ReplaceAll(ctx context.Context, scanRunID uuid.UUID, records []domain.RecipeRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return fmt.Errorf("clearing recipes: %w", err)
	}
	for i := range records {
		records[i].ScanRunID = scanRunID
		if _, err := tx.NamedExecContext(ctx, insertRecipeQuery, &records[i]); err != nil {
			return fmt.Errorf("inserting recipe %s: %w", records[i].FileID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace tx: %w", err)
	}
	return nil
}

func (r *recipeRepository) List(ctx context.Context, filter port.RecipeFilter) ([]domain.RecipeRecord, int, error) {
	var conds []string
	args := map[string]interface{}{}
	if filter.Status != "" {
		conds = append(conds, "parse_status = :status")
		args["status"] = filter.Status
	}
	if filter.Search != "" {
		conds = append(conds, "normalized_title LIKE :search")
		args["search"] = "%" + strings.ToLower(filter.Search) + "%"
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM recipes" + where
	stmt, err := r.db.PrepareNamedContext(ctx, countQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("prepare recipe count: %w", err)
	}
	defer stmt.Close()
	var total int
	if err := stmt.GetContext(ctx, &total, args); err != nil {
		return nil, 0, fmt.Errorf("counting recipes: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args["limit"] = limit
	args["offset"] = offset

	listQuery := "SELECT" + recipeColumns + " FROM recipes" + where +
		" ORDER BY title ASC LIMIT :limit OFFSET :offset"
	listStmt, err := r.db.PrepareNamedContext(ctx, listQuery)
	if err != nil {
		return nil, 0, fmt.Errorf("prepare recipe list: %w", err)
	}
	defer listStmt.Close()

	var records []domain.RecipeRecord
	if err := listStmt.SelectContext(ctx, &records, args); err != nil {
		return nil, 0, fmt.Errorf("listing recipes: %w", err)
	}
	return records, total, nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecipeRecord, error) {
	var rec domain.RecipeRecord
	query := "SELECT" + recipeColumns + " FROM recipes WHERE id = $1"
	if err := r.db.GetContext(ctx, &rec, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("getting recipe %s: %w", id, err)
	}
	return &rec, nil
}

func (r *recipeRepository) ListAll(ctx context.Context) ([]domain.RecipeRecord, error) {
	var records []domain.RecipeRecord
	query := "SELECT" + recipeColumns + " FROM recipes ORDER BY title ASC"
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("listing all recipes: %w", err)
	}
	return records, nil
}
