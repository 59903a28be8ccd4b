package repository

import (
	"io"

	"seni-kraf-manik/internal/model"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Produk"

// EncodeXLSX writes the catalog as a single-sheet workbook with the same
// columns as the CSV file. Prices are written as numbers.
func EncodeXLSX(w io.Writer, products []model.Product) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return err
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return err
	}

	for i, p := range products {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.ID, p.Nama, p.Kategori, p.Harga.InexactFloat64(), p.GambarPath, p.Keterangan}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
