package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"recettes/internal/config"
	"recettes/internal/csvexport"
	"recettes/internal/domain"
	"recettes/internal/foodtable"
	"recettes/internal/port"
	"recettes/internal/recipe"
	"recettes/internal/service"
	"recettes/internal/source/fsdir"
	s3source "recettes/internal/source/s3"
	"recettes/internal/xlsxexport"
)

// rescan walks the configured document source, rebuilds the recipe index and
// writes it to the export directory as JSON plus CSV and XLSX reports.
func main() {
	if err := run(); err != nil {
		log.Fatalf("rescan: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	ctx := context.Background()

	table, err := loadFoodTable(cfg.Food.TablePath)
	if err != nil {
		return err
	}

	var source port.DocumentSource
	var s3src *s3source.Source
	switch cfg.Source.Kind {
	case "fsdir":
		source, err = fsdir.New(cfg.Source.Dir)
	case "s3":
		s3src, err = s3source.New(ctx, cfg.Source.S3)
		source = s3src
	default:
		return fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
	if err != nil {
		return fmt.Errorf("opening document source: %w", err)
	}

	scanner := service.NewScanner(source, table, cfg.Scan.Concurrency)
	result, err := scanner.Scan(ctx)
	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}
	log.Printf("rescan: %d documents, %d indexed, %d skipped",
		result.Total, result.Indexed, result.Skipped)

	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	if err := writeIndex(cfg.Export.Dir, result.Records); err != nil {
		return err
	}
	if err := writeReports(ctx, cfg.Export.Dir, s3src, result.Records); err != nil {
		return err
	}

	report := recipe.FindDuplicates(result.Records)
	log.Printf("rescan: %d exact duplicate groups, %d near duplicate groups",
		len(report.Exact), len(report.Near))
	return nil
}

func loadFoodTable(path string) (*foodtable.Table, error) {
	if path == "" {
		log.Println("rescan: using builtin food table")
		return foodtable.Builtin(), nil
	}
	table, err := foodtable.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading food table %s: %w", path, err)
	}
	log.Printf("rescan: loaded food table from %s", path)
	return table, nil
}

func writeIndex(dir string, records []domain.RecipeRecord) error {
	path := filepath.Join(dir, "recettes_index.json")
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding index: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Printf("rescan: wrote %s (%d recipes)", path, len(records))
	return nil
}

func writeReports(ctx context.Context, dir string, s3src *s3source.Source, records []domain.RecipeRecord) error {
	reports := []struct {
		name        string
		contentType string
		write       func(w *bytes.Buffer) error
	}{
		{"recipes_list.csv", "text/csv; charset=utf-8", func(w *bytes.Buffer) error {
			return csvexport.ExportRecipes(w, records)
		}},
		{"recipes_nutrition.csv", "text/csv; charset=utf-8", func(w *bytes.Buffer) error {
			return csvexport.ExportNutrition(w, records)
		}},
		{"recipes_nutrition.xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			func(w *bytes.Buffer) error {
				return xlsxexport.WriteNutrition(w, records)
			}},
	}

	for _, r := range reports {
		var buf bytes.Buffer
		if err := r.write(&buf); err != nil {
			return fmt.Errorf("building %s: %w", r.name, err)
		}
		path := filepath.Join(dir, r.name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		log.Printf("rescan: wrote %s", path)

		if s3src != nil {
			loc, err := s3src.UploadReport(ctx, r.name, r.contentType, bytes.NewReader(buf.Bytes()))
			if err != nil {
				return fmt.Errorf("uploading %s: %w", r.name, err)
			}
			log.Printf("rescan: uploaded %s", loc)
		}
	}
	return nil
}
