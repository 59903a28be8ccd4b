package repository

import (
	"seni-kraf-manik/internal/model"

	"gorm.io/gorm"
)

type gormTable struct {
	db *gorm.DB
}

// NewGormTable stores the catalog in the produk_seni_kraf table. The table
// is created on first use.
func NewGormTable(db *gorm.DB) (ProductTable, error) {
	if err := db.AutoMigrate(&model.ProductRecord{}); err != nil {
		return nil, err
	}
	return &gormTable{db}, nil
}

func (r *gormTable) Load() ([]model.Product, error) {
	var records []model.ProductRecord
	if err := r.db.Order("position ASC").Find(&records).Error; err != nil {
		return nil, model.IOError("select", model.ProductRecord{}.TableName(), err)
	}

	products := make([]model.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, model.Product{
			ID:         rec.ID,
			Nama:       rec.Nama,
			Kategori:   rec.Kategori,
			Harga:      rec.Harga,
			GambarPath: rec.GambarPath,
			Keterangan: rec.Keterangan,
		})
	}
	return products, nil
}

// Save replaces every row inside one SQL transaction.
func (r *gormTable) Save(products []model.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ProductRecord{}).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}

		records := make([]model.ProductRecord, len(products))
		for i, p := range products {
			records[i] = model.ProductRecord{
				Position:   i + 1,
				ID:         p.ID,
				Nama:       p.Nama,
				Kategori:   p.Kategori,
				Harga:      p.Harga,
				GambarPath: p.GambarPath,
				Keterangan: p.Keterangan,
			}
		}
		return tx.CreateInBatches(records, 100).Error
	})
	if err != nil {
		return model.IOError("replace", model.ProductRecord{}.TableName(), err)
	}
	return nil
}

func (r *gormTable) Drop() error {
	if err := r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ProductRecord{}).Error; err != nil {
		return model.IOError("delete", model.ProductRecord{}.TableName(), err)
	}
	return nil
}
