package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"recettes/internal/domain"
	"recettes/internal/port"
)

// RescanService owns scan-run lifecycle for the HTTP server. At most one
// scan runs at a time; a second start request fails with ErrScanInProgress.
type RescanService struct {
	scanner *Scanner
	recipes port.RecipeRepository
	runs    port.ScanRunRepository

	mu      sync.Mutex
	running bool
}

// NewRescanService wires the scanner to the persistence layer.
func NewRescanService(scanner *Scanner, recipes port.RecipeRepository, runs port.ScanRunRepository) *RescanService {
	return &RescanService{scanner: scanner, recipes: recipes, runs: runs}
}

// Start registers a new scan run and executes it in the background. The
// returned run is in status running; poll GetRun for completion.
func (s *RescanService) Start(ctx context.Context) (*domain.ScanRun, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil, domain.ErrScanInProgress
	}
	s.running = true
	s.mu.Unlock()

	run := &domain.ScanRun{
		ID:        uuid.New(),
		Status:    domain.ScanStatusRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := s.runs.Create(ctx, run); err != nil {
		s.release()
		return nil, err
	}

	go s.execute(*run)
	return run, nil
}

// execute runs detached from the request context so an HTTP disconnect does
// not abort the scan.
func (s *RescanService) execute(run domain.ScanRun) {
	defer s.release()
	ctx := context.Background()

	result, err := s.scanner.Scan(ctx)
	if err != nil {
		s.finish(ctx, &run, domain.ScanStatusFailed, err.Error())
		return
	}

	run.DocumentsTotal = result.Total
	run.DocumentsIndexed = result.Indexed
	run.DocumentsSkipped = result.Skipped

	if err := s.recipes.ReplaceAll(ctx, run.ID, result.Records); err != nil {
		s.finish(ctx, &run, domain.ScanStatusFailed, err.Error())
		return
	}
	s.finish(ctx, &run, domain.ScanStatusCompleted, "")
}

func (s *RescanService) finish(ctx context.Context, run *domain.ScanRun, status domain.ScanStatus, errMsg string) {
	now := time.Now().UTC()
	run.Status = status
	run.Error = errMsg
	run.FinishedAt = &now
	if err := s.runs.Update(ctx, run); err != nil {
		log.Printf("service.RescanService: updating scan run %s: %v", run.ID, err)
	}
	if errMsg != "" {
		log.Printf("service.RescanService: scan run %s failed: %s", run.ID, errMsg)
	} else {
		log.Printf("service.RescanService: scan run %s completed (%d/%d indexed)",
			run.ID, run.DocumentsIndexed, run.DocumentsTotal)
	}
}

func (s *RescanService) release() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// GetRun returns one scan run by ID.
func (s *RescanService) GetRun(ctx context.Context, id uuid.UUID) (*domain.ScanRun, error) {
	return s.runs.GetByID(ctx, id)
}

// ListRuns returns the most recent scan runs.
func (s *RescanService) ListRuns(ctx context.Context, limit int) ([]domain.ScanRun, error) {
	return s.runs.List(ctx, limit)
}
