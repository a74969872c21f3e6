package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"recettes/internal/domain"
	"recettes/internal/port"
	"recettes/internal/recipe"
)

type duplicateFinderRepository struct {
	db *sqlx.DB
}

// NewDuplicateFinderRepository creates a DuplicateFinder that loads the title
// keys from PostgreSQL and delegates group detection to the recipe package,
// keeping one implementation of the duplicate relations.
func NewDuplicateFinderRepository(db *sqlx.DB) port.DuplicateFinder {
	return &duplicateFinderRepository{db: db}
}

func (r *duplicateFinderRepository) Find(ctx context.Context) (*domain.DuplicateReport, error) {
	var records []domain.RecipeRecord
	query := `
		SELECT id, scan_run_id, file_id, title, normalized_title, title_key, full_path
		FROM recipes
		ORDER BY title ASC`
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("loading titles for duplicate scan: %w", err)
	}

	report := recipe.FindDuplicates(records)
	return &report, nil
}
