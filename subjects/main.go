package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/brequin/brequin/plan/catalog"
	"github.com/brequin/brequin/plan/config"
	"github.com/brequin/brequin/plan/curriculum"
	"github.com/brequin/brequin/plan/db"
)

// ReadCatalog reads the catalog file when one is configured and otherwise
// scrapes the published study plan page.
func ReadCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]curriculum.Subject, error) {
	if cfg.CatalogFile != "" {
		return catalog.ReadFile(cfg.CatalogFile)
	}

	if cfg.PlanPageURL == "" {
		return nil, errors.New("neither PLAN_CATALOG_FILE nor PLAN_PAGE_URL is set")
	}

	subjects, err := catalog.ScrapePlanPage(ctx, cfg.PlanPageURL, logger)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fatal(logger, "Unable to load configuration", err)
	}

	subjects, err := ReadCatalog(ctx, cfg, logger)
	if err != nil {
		fatal(logger, "Unable to read catalog", err)
	}

	index := curriculum.Build(subjects)
	for _, warning := range index.Warnings() {
		logger.Warn("Catalog warning", "warning", warning)
	}

	database, err := db.Connect(ctx, cfg.DatabaseConnectionString)
	if err != nil {
		fatal(logger, "Unable to connect to database", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		fatal(logger, "Unable to create schema", err)
	}

	if err := database.StoreCatalog(ctx, subjects); err != nil {
		fatal(logger, "Unable to store catalog", err)
	}

	logger.Info("Stored catalog", "subjects", index.Len(), "years", index.Years())
}
