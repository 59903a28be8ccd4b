package service

import (
	"fmt"
	"io"
	"iter"
	"log"
	"sync"

	"seni-kraf-manik/internal/model"
	"seni-kraf-manik/internal/repository"
	"seni-kraf-manik/pkg/validator"
)

// Publisher receives catalog change events. The websocket hub is the
// production implementation.
type Publisher interface {
	Publish(event Event)
}

type CatalogService interface {
	Load() ([]model.Product, error)
	Save(products []model.Product) error
	Add(req model.NewProduct) (*model.Product, error)
	StoreImage(data []byte, originalName string) (string, error)
	Delete(id string) error
	Images() iter.Seq2[string, error]
	ListImages() ([]string, error)
	ResetAll(confirmed bool) error

	List(kategori string) ([]model.ProductView, error)
	UploadGallery(files []model.Upload) ([]string, error)
	ExportCSV(w io.Writer) error
	ExportXLSX(w io.Writer) error
	Summary() (*CatalogSummary, error)
	ImageDir() string
}

type catalogService struct {
	table     repository.ProductTable
	images    *repository.ImageStore
	publisher Publisher

	// mu serializes writers so read-modify-write cycles don't lose updates
	mu sync.Mutex
}

// NewCatalogService builds the store. publisher may be nil.
func NewCatalogService(table repository.ProductTable, images *repository.ImageStore, publisher Publisher) CatalogService {
	return &catalogService{
		table:     table,
		images:    images,
		publisher: publisher,
	}
}

func (s *catalogService) Load() ([]model.Product, error) {
	return s.table.Load()
}

func (s *catalogService) Save(products []model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(products)
}

func (s *catalogService) save(products []model.Product) error {
	seen := make(map[string]bool, len(products))
	for _, p := range products {
		if p.ID == "" {
			return &model.ValidationError{Field: "id", Message: "is required"}
		}
		if seen[p.ID] {
			return &model.ValidationError{Field: "id", Message: fmt.Sprintf("duplicate id %s", p.ID)}
		}
		seen[p.ID] = true
	}
	return s.table.Save(products)
}

func (s *catalogService) Add(req model.NewProduct) (*model.Product, error) {
	product := model.Product{
		Nama:       req.Nama,
		Kategori:   req.Kategori,
		Harga:      req.Harga,
		Keterangan: req.Keterangan,
	}

	// 1. Validasi before anything touches the disk
	if err := validator.ToValidationError(validator.ValidateStruct(&product)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.table.Load()
	if err != nil {
		return nil, err
	}

	// 2. Image is optional
	if req.Image != nil {
		path, err := s.images.Store(req.Image.Data, req.Image.Filename)
		if err != nil {
			return nil, err
		}
		product.GambarPath = path
	}

	// 3. Fresh id, unique against the current table
	product.ID = model.NewID()
	for containsID(products, product.ID) {
		product.ID = model.NewID()
	}

	if err := s.save(append(products, product)); err != nil {
		if product.GambarPath != "" {
			s.removeImage(product.GambarPath)
		}
		return nil, err
	}

	log.Printf("Product %s saved (%s)", product.ID, product.Nama)
	s.publish(Event{Type: EventProductCreated, Product: &product})
	return &product, nil
}

func (s *catalogService) StoreImage(data []byte, originalName string) (string, error) {
	return s.images.Store(data, originalName)
}

func (s *catalogService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.table.Load()
	if err != nil {
		return err
	}

	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", model.ErrNotFound, id)
	}

	removed := products[idx]
	remaining := append(products[:idx:idx], products[idx+1:]...)
	if err := s.save(remaining); err != nil {
		return err
	}

	// Row deletion is the contract; image cleanup is best-effort
	if removed.GambarPath != "" {
		s.removeImage(removed.GambarPath)
	}

	s.publish(Event{Type: EventProductDeleted, Product: &removed})
	return nil
}

func (s *catalogService) Images() iter.Seq2[string, error] {
	return s.images.All()
}

func (s *catalogService) ListImages() ([]string, error) {
	paths := []string{}
	for p, err := range s.images.All() {
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// ResetAll deletes every image and the product table. Confirmation is the
// caller's job; it only has to say so.
func (s *catalogService) ResetAll(confirmed bool) error {
	if !confirmed {
		return model.ErrResetNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.images.RemoveAll(); err != nil {
		return err
	}
	if err := s.table.Drop(); err != nil {
		return err
	}

	log.Println("Catalog reset: all products and images removed")
	s.publish(Event{Type: EventCatalogReset})
	return nil
}

// List returns the products, optionally limited to one category, with
// dangling image references flagged instead of reported as errors.
func (s *catalogService) List(kategori string) ([]model.ProductView, error) {
	products, err := s.table.Load()
	if err != nil {
		return nil, err
	}

	views := []model.ProductView{}
	for _, p := range products {
		if kategori != "" && p.Kategori != kategori {
			continue
		}
		views = append(views, model.ProductView{
			Product:      p,
			ImageMissing: p.GambarPath != "" && !s.images.Exists(p.GambarPath),
		})
	}
	return views, nil
}

// UploadGallery stores process photos that belong to no product. It stops
// at the first failure and returns the paths saved so far.
func (s *catalogService) UploadGallery(files []model.Upload) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := []string{}
	for _, f := range files {
		path, err := s.images.Store(f.Data, f.Filename)
		if err != nil {
			if len(saved) > 0 {
				s.publish(Event{Type: EventGalleryUploaded, Images: saved})
			}
			return saved, fmt.Errorf("%s: %w", f.Filename, err)
		}
		saved = append(saved, path)
	}

	if len(saved) > 0 {
		log.Printf("%d images saved to gallery", len(saved))
		s.publish(Event{Type: EventGalleryUploaded, Images: saved})
	}
	return saved, nil
}

func (s *catalogService) ExportCSV(w io.Writer) error {
	products, err := s.table.Load()
	if err != nil {
		return err
	}
	return repository.EncodeCSV(w, products)
}

func (s *catalogService) ExportXLSX(w io.Writer) error {
	products, err := s.table.Load()
	if err != nil {
		return err
	}
	return repository.EncodeXLSX(w, products)
}

func (s *catalogService) ImageDir() string {
	return s.images.Dir()
}

func (s *catalogService) removeImage(path string) {
	if err := s.images.Remove(path); err != nil {
		log.Printf("Warning: could not remove image: %v", err)
	}
}

func (s *catalogService) publish(e Event) {
	if s.publisher != nil {
		s.publisher.Publish(e)
	}
}

func containsID(products []model.Product, id string) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}
