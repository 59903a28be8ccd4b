package repository

import (
	"seni-kraf-manik/internal/model"
)

// ProductTable is the persisted catalog: the whole table is read and
// written at once. Implementations: CSV file (default) and SQL via gorm.
type ProductTable interface {
	// Load returns every product in persisted order. A table that was never
	// written loads as empty.
	Load() ([]model.Product, error)
	// Save replaces the whole table with products.
	Save(products []model.Product) error
	// Drop removes the table entirely.
	Drop() error
}
