package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"recettes/internal/config"
	"recettes/internal/foodtable"
	"recettes/internal/handler"
	"recettes/internal/port"
	"recettes/internal/repository/postgres"
	"recettes/internal/router"
	"recettes/internal/service"
	"recettes/internal/source/fsdir"
	s3source "recettes/internal/source/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := postgres.Connect(cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	table, err := loadFoodTable(cfg.Food.TablePath)
	if err != nil {
		return err
	}

	source, err := newDocumentSource(cfg)
	if err != nil {
		return err
	}

	recipeRepo := postgres.NewRecipeRepository(db)
	scanRunRepo := postgres.NewScanRunRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	duplicateFinder := postgres.NewDuplicateFinderRepository(db)

	scanner := service.NewScanner(source, table, cfg.Scan.Concurrency)
	rescanSvc := service.NewRescanService(scanner, recipeRepo, scanRunRepo)
	recipeSvc := service.NewRecipeService(recipeRepo, duplicateFinder)
	statsSvc := service.NewStatsService(statsRepo)
	authSvc := service.NewAuthService(
		cfg.Auth.Username,
		cfg.Auth.PasswordHash,
		[]byte(cfg.JWT.Secret),
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	engine := router.New(router.Handlers{
		Health:  handler.NewHealthHandler(db),
		Auth:    handler.NewAuthHandler(authSvc),
		Recipes: handler.NewRecipeHandler(recipeSvc),
		Scans:   handler.NewScanHandler(rescanSvc),
		Stats:   handler.NewStatsHandler(statsSvc),
		Exports: handler.NewExportHandler(recipeSvc),
	}, authSvc, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server: listening on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Printf("server: received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	log.Println("server: stopped")
	return nil
}

// loadFoodTable returns the external table merged over the builtin rows, or
// the builtin table alone when no path is configured.
func loadFoodTable(path string) (*foodtable.Table, error) {
	if path == "" {
		log.Println("server: using builtin food table")
		return foodtable.Builtin(), nil
	}
	table, err := foodtable.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading food table %s: %w", path, err)
	}
	log.Printf("server: loaded food table from %s", path)
	return table, nil
}

func newDocumentSource(cfg *config.Config) (port.DocumentSource, error) {
	switch cfg.Source.Kind {
	case "fsdir":
		return fsdir.New(cfg.Source.Dir)
	case "s3":
		return s3source.New(context.Background(), cfg.Source.S3)
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
