package repository

import (
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"seni-kraf-manik/internal/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// AllowedExtensions are the image suffixes accepted for upload.
var AllowedExtensions = []string{".png", ".jpg", ".jpeg"}

var allowedMIME = []string{"image/png", "image/jpeg"}

// ImageStore owns the flat directory of uploaded images.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, model.IOError("mkdir", dir, err)
	}
	return &ImageStore{dir: dir}, nil
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// Store writes data under a freshly generated name that keeps the
// extension of originalName. The name never derives from originalName
// itself and an existing file is never overwritten.
func (s *ImageStore) Store(data []byte, originalName string) (string, error) {
	ext := filepath.Ext(filepath.Base(originalName))
	if !isAllowedExtension(ext) {
		return "", &model.ValidationError{Field: "gambar", Message: "must be a .png, .jpg or .jpeg file"}
	}
	if len(data) == 0 {
		return "", &model.ValidationError{Field: "gambar", Message: "file is empty"}
	}
	if !isAllowedMIME(mimetype.Detect(data)) {
		return "", &model.ValidationError{Field: "gambar", Message: "file is not a PNG or JPEG image"}
	}

	token := uuid.New()
	dest := filepath.Join(s.dir, hex.EncodeToString(token[:])+ext)

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", model.IOError("create", dest, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(dest)
		return "", model.IOError("write", dest, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dest)
		return "", model.IOError("close", dest, err)
	}
	return dest, nil
}

// Contains reports whether path names a file directly inside the managed
// directory.
func (s *ImageStore) Contains(path string) bool {
	if path == "" {
		return false
	}
	dir, err := filepath.Abs(s.dir)
	if err != nil {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	return filepath.Dir(abs) == dir
}

// Exists reports whether path still resolves to a regular file.
func (s *ImageStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes one managed image. Paths outside the directory are
// rejected without touching the filesystem.
func (s *ImageStore) Remove(path string) error {
	if !s.Contains(path) {
		return model.IOError("remove", path, errors.New("path is outside the image directory"))
	}
	if err := os.Remove(path); err != nil {
		return model.IOError("remove", path, err)
	}
	return nil
}

// All enumerates image paths lazily in directory order. Each call starts a
// fresh listing.
func (s *ImageStore) All() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		d, err := os.Open(s.dir)
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		if err != nil {
			yield("", model.IOError("open", s.dir, err))
			return
		}
		defer d.Close()

		for {
			entries, err := d.ReadDir(64)
			for _, e := range entries {
				if !e.Type().IsRegular() || strings.HasPrefix(e.Name(), ".") {
					continue
				}
				if !yield(filepath.Join(s.dir, e.Name()), nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield("", model.IOError("readdir", s.dir, err))
				return
			}
		}
	}
}

// RemoveAll deletes every file in the directory, leaving the directory.
func (s *ImageStore) RemoveAll() error {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return model.IOError("readdir", s.dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := filepath.Join(s.dir, e.Name())
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return model.IOError("remove", p, err)
		}
	}
	return nil
}

func isAllowedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, a := range AllowedExtensions {
		if a == ext {
			return true
		}
	}
	return false
}

func isAllowedMIME(m *mimetype.MIME) bool {
	for _, a := range allowedMIME {
		if m.Is(a) {
			return true
		}
	}
	return false
}
