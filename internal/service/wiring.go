package service

import (
	"fmt"

	"seni-kraf-manik/internal/config"
	"seni-kraf-manik/internal/repository"
	"seni-kraf-manik/pkg/database"
)

// NewFromConfig opens the configured table backend and image directory.
func NewFromConfig(cfg config.Config, publisher Publisher) (CatalogService, error) {
	images, err := repository.NewImageStore(cfg.ImageDir)
	if err != nil {
		return nil, err
	}

	var table repository.ProductTable
	switch cfg.Backend {
	case config.BackendCSV:
		table = repository.NewCSVTable(cfg.CSVFile)
	case config.BackendPostgres:
		db, err := database.ConnectDB(database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		table, err = repository.NewGormTable(db)
		if err != nil {
			return nil, fmt.Errorf("prepare table: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown CATALOG_BACKEND %q", cfg.Backend)
	}

	return NewCatalogService(table, images, publisher), nil
}
