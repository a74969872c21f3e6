package service

import (
	"context"

	"recettes/internal/domain"
	"recettes/internal/port"
)

// StatsService exposes index-level aggregates.
type StatsService struct {
	stats port.StatsRepository
}

// NewStatsService creates a StatsService.
func NewStatsService(stats port.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// IndexStats returns counts per parse status, duplicate groups and the
// average kcal per portion over confident records.
func (s *StatsService) IndexStats(ctx context.Context) (*domain.Stats, error) {
	return s.stats.IndexStats(ctx)
}
