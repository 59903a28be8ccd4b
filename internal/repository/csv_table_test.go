package repository

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"seni-kraf-manik/internal/model"

	"github.com/shopspring/decimal"
)

func TestCSVTableLoadMissingFile(t *testing.T) {
	table := NewCSVTable(filepath.Join(t.TempDir(), "products.csv"))

	products, err := table.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", products)
	}
}

func TestCSVTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	table := NewCSVTable(path)

	want := []model.Product{
		{ID: "a1", Nama: "Gelang A", Kategori: "Gelang Tangan", Harga: decimal.NewFromFloat(15.5)},
		{ID: "b2", Nama: "Brooch, \"Besar\"", Kategori: "Brooch Tudung - Besar", Harga: decimal.NewFromInt(0), GambarPath: "seni_kraf_data/images/x.png", Keterangan: "dua\nbaris"},
	}
	if err := table.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "id,nama,kategori,harga,gambar_path,keterangan\n") {
		t.Errorf("unexpected header in %q", raw)
	}

	got, err := table.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertProducts(t, got, want)

	// Saving what was loaded leaves the file unchanged
	if err := table.Save(got); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(raw) {
		t.Errorf("save(load()) changed the file:\n%s\nvs\n%s", raw, again)
	}
}

func TestCSVTableDrop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	table := NewCSVTable(path)

	if err := table.Drop(); err != nil {
		t.Fatalf("Drop on missing file: %v", err)
	}
	if err := table.Save([]model.Product{{ID: "x", Nama: "X", Kategori: "Cincin"}}); err != nil {
		t.Fatal(err)
	}
	if err := table.Drop(); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected file to be gone, stat err = %v", err)
	}
}

func TestDecodeCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		corrupt bool
	}{
		{name: "empty file", input: "", want: 0},
		{name: "header only", input: "id,nama,kategori,harga,gambar_path,keterangan\n", want: 0},
		{name: "bom and float price", input: "\ufeffid,nama,kategori,harga,gambar_path,keterangan\nab,Cincin A,Cincin,12.0,,\n", want: 1},
		{name: "wrong header", input: "id,name,kategori,harga,gambar_path,keterangan\n", corrupt: true},
		{name: "short row", input: "id,nama,kategori,harga,gambar_path,keterangan\nab,Cincin A,Cincin\n", corrupt: true},
		{name: "missing id", input: "id,nama,kategori,harga,gambar_path,keterangan\n,Cincin A,Cincin,1,,\n", corrupt: true},
		{name: "missing nama", input: "id,nama,kategori,harga,gambar_path,keterangan\nab, ,Cincin,1,,\n", corrupt: true},
		{name: "bad price", input: "id,nama,kategori,harga,gambar_path,keterangan\nab,Cincin A,Cincin,nan,,\n", corrupt: true},
		{name: "negative price", input: "id,nama,kategori,harga,gambar_path,keterangan\nab,Cincin A,Cincin,-2,,\n", corrupt: true},
		{name: "duplicate id", input: "id,nama,kategori,harga,gambar_path,keterangan\nab,A,Cincin,1,,\nab,B,Cincin,1,,\n", corrupt: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCSV(strings.NewReader(tt.input))
			if tt.corrupt {
				if !errors.Is(err, model.ErrCorruptData) {
					t.Fatalf("expected ErrCorruptData, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeCSV: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d rows, want %d", len(got), tt.want)
			}
		})
	}
}

func assertProducts(t *testing.T, got, want []model.Product) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d products, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Nama != w.Nama || g.Kategori != w.Kategori || !g.Harga.Equal(w.Harga) ||
			g.GambarPath != w.GambarPath || g.Keterangan != w.Keterangan {
			t.Errorf("row %d: got %+v, want %+v", i, g, w)
		}
	}
}

func TestDecodeCSVReaderFailureIsIOError(t *testing.T) {
	diskErr := errors.New("input/output error")
	tests := []struct {
		name   string
		prefix string
	}{
		{"at header", ""},
		{"mid file", "id,nama,kategori,harga,gambar_path,keterangan\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := io.MultiReader(strings.NewReader(tt.prefix), iotest.ErrReader(diskErr))
			_, err := DecodeCSV(r)
			if !errors.Is(err, model.ErrIO) || !errors.Is(err, diskErr) {
				t.Fatalf("expected ErrIO wrapping the read error, got %v", err)
			}
			if errors.Is(err, model.ErrCorruptData) {
				t.Errorf("read failure reported as corrupt data: %v", err)
			}
		})
	}
}
