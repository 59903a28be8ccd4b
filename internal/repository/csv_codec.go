package repository

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"seni-kraf-manik/internal/model"

	"github.com/shopspring/decimal"
)

// Header is the fixed column layout of the catalog file.
var Header = []string{"id", "nama", "kategori", "harga", "gambar_path", "keterangan"}

const utf8BOM = "\ufeff"

// EncodeCSV writes the header followed by one row per product.
func EncodeCSV(w io.Writer, products []model.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, p := range products {
		row := []string{p.ID, p.Nama, p.Kategori, p.Harga.String(), p.GambarPath, p.Keterangan}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCSV parses a catalog file. Rows missing required fields are
// reported as model.ErrCorruptData instead of being passed through.
func DecodeCSV(r io.Reader) ([]model.Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, csvReadError(err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	for i, col := range Header {
		if header[i] != col {
			return nil, model.CorruptError(1, "unexpected header %q, want %q", strings.Join(header, ","), strings.Join(Header, ","))
		}
	}

	products := []model.Product{}
	seen := make(map[string]bool)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvReadError(err)
		}
		line, _ := cr.FieldPos(0)

		p, err := productFromRow(line, row)
		if err != nil {
			return nil, err
		}
		if seen[p.ID] {
			return nil, model.CorruptError(line, "duplicate id %s", p.ID)
		}
		seen[p.ID] = true
		products = append(products, p)
	}
	return products, nil
}

func productFromRow(line int, row []string) (model.Product, error) {
	p := model.Product{
		ID:         strings.TrimSpace(row[0]),
		Nama:       row[1],
		Kategori:   row[2],
		GambarPath: row[4],
		Keterangan: row[5],
	}
	switch {
	case p.ID == "":
		return p, model.CorruptError(line, "missing id")
	case strings.TrimSpace(p.Nama) == "":
		return p, model.CorruptError(line, "missing nama")
	case strings.TrimSpace(p.Kategori) == "":
		return p, model.CorruptError(line, "missing kategori")
	}

	harga, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return p, model.CorruptError(line, "invalid harga %q", row[3])
	}
	if harga.IsNegative() {
		return p, model.CorruptError(line, "negative harga %s", harga)
	}
	p.Harga = harga
	return p, nil
}

// csvReadError separates malformed CSV from failures of the underlying reader.
func csvReadError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return model.CorruptError(perr.Line, "%v", perr.Err)
	}
	return model.IOError("read", "catalog", err)
}
