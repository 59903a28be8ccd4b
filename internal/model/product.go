package model

import (
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is one row of the catalog table.
type Product struct {
	ID         string          `json:"id"`
	Nama       string          `json:"nama" validate:"notblank"`
	Kategori   string          `json:"kategori" validate:"category"`
	Harga      decimal.Decimal `json:"harga" validate:"gte=0"`
	GambarPath string          `json:"gambar_path"`
	Keterangan string          `json:"keterangan"`
}

// ProductRecord is the SQL shape of a Product. Position keeps table order.
type ProductRecord struct {
	Position   int             `gorm:"primaryKey;autoIncrement:false"`
	ID         string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	Nama       string          `gorm:"type:varchar(255);not null"`
	Kategori   string          `gorm:"type:varchar(100);not null"`
	Harga      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	GambarPath string          `gorm:"type:varchar(512)"`
	Keterangan string          `gorm:"type:text"`
}

func (ProductRecord) TableName() string {
	return "produk_seni_kraf"
}

// ProductView is a Product as shown to callers, with the soft
// asset-missing condition resolved.
type ProductView struct {
	Product
	ImageMissing bool   `json:"image_missing"`
	ImageURL     string `json:"gambar_url,omitempty"`
}

// Upload is an uploaded file as handed over by the presentation layer.
type Upload struct {
	Filename string
	Data     []byte
}

// NewProduct carries the user input for Add.
type NewProduct struct {
	Nama       string
	Kategori   string
	Harga      decimal.Decimal
	Keterangan string
	Image      *Upload
}

// NewID returns a fresh product id in the 32-char hex form used by
// existing data files.
func NewID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
