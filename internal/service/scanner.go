package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"recettes/internal/domain"
	"recettes/internal/foodtable"
	"recettes/internal/port"
	"recettes/internal/recipe"
)

// Scanner runs the analysis pipeline over every document of a source with
// bounded concurrency. Documents are independent, so extraction and parsing
// run in parallel while the result order stays that of the source listing.
type Scanner struct {
	source      port.DocumentSource
	table       *foodtable.Table
	concurrency int
}

// ScanResult is the outcome of one full pass.
type ScanResult struct {
	Records []domain.RecipeRecord
	Total   int
	Indexed int
	Skipped int
}

// NewScanner creates a Scanner. Concurrency values below 1 fall back to 1.
func NewScanner(source port.DocumentSource, table *foodtable.Table, concurrency int) *Scanner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Scanner{source: source, table: table, concurrency: concurrency}
}

// Scan lists the source and builds one record per document. Extraction
// failures are logged and skip the document; empty text still yields an
// INCOMPLETE record. A failed listing aborts the scan.
func (s *Scanner) Scan(ctx context.Context) (*ScanResult, error) {
	docs, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	results := make([]*domain.RecipeRecord, len(docs))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, doc domain.RawDocument) {
			defer wg.Done()
			defer func() { <-sem }()

			text, err := s.source.Text(ctx, doc)
			if err != nil {
				log.Printf("service.Scanner: extraction failed for %s: %v", doc.Name, err)
				return
			}
			rec := recipe.BuildRecord(doc, text, s.table)
			results[i] = &rec
		}(i, doc)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &ScanResult{Total: len(docs)}
	for _, r := range results {
		if r == nil {
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, *r)
	}
	result.Indexed = len(result.Records)

	log.Printf("service.Scanner: scanned %d document(s), indexed %d, skipped %d",
		result.Total, result.Indexed, result.Skipped)
	return result, nil
}
