package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"recettes/internal/domain"
	"recettes/internal/port"
)

type statsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a PostgreSQL-backed StatsRepository.
func NewStatsRepository(db *sqlx.DB) port.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) IndexStats(ctx context.Context) (*domain.Stats, error) {
	query := `
		SELECT
			COUNT(*) AS total_recipes,
			COUNT(*) FILTER (WHERE parse_status = 'CONFIDENT') AS confident,
			COUNT(*) FILTER (WHERE parse_status = 'PARTIAL') AS partial,
			COUNT(*) FILTER (WHERE parse_status = 'INCOMPLETE') AS incomplete,
			(
				SELECT COUNT(*) FROM (
					SELECT normalized_title
					FROM recipes
					WHERE normalized_title <> ''
					GROUP BY normalized_title
					HAVING COUNT(*) > 1
				) dup
			) AS exact_duplicates,
			COALESCE(ROUND(AVG(kcal_per_portion) FILTER (WHERE parse_status = 'CONFIDENT'), 1), 0)::float8 AS avg_kcal_per_portion
		FROM recipes`

	var stats domain.Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("computing index stats: %w", err)
	}
	return &stats, nil
}
