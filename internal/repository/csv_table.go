package repository

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"seni-kraf-manik/internal/model"
)

type csvTable struct {
	path string
}

func NewCSVTable(path string) ProductTable {
	return &csvTable{path: path}
}

func (t *csvTable) Load() ([]model.Product, error) {
	f, err := os.Open(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Product{}, nil
	}
	if err != nil {
		return nil, model.IOError("open", t.path, err)
	}
	defer f.Close()

	return DecodeCSV(bufio.NewReader(f))
}

// Save writes to a temp file in the same directory and renames it over the
// table so readers never see a half-written file.
func (t *csvTable) Save(products []model.Product) error {
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return model.IOError("mkdir", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".products-*.csv")
	if err != nil {
		return model.IOError("create", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := bufio.NewWriter(tmp)
	if err := EncodeCSV(w, products); err != nil {
		tmp.Close()
		return model.IOError("write", tmpName, err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return model.IOError("write", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return model.IOError("sync", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return model.IOError("close", tmpName, err)
	}
	if err := os.Rename(tmpName, t.path); err != nil {
		return model.IOError("rename", t.path, err)
	}
	return nil
}

func (t *csvTable) Drop() error {
	if err := os.Remove(t.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return model.IOError("remove", t.path, err)
	}
	return nil
}
