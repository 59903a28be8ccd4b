package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"seni-kraf-manik/internal/model"
	"seni-kraf-manik/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const (
	exportName     = "produk_seni_kraf"
	resetConfirm   = "DELETE"
	maxUploadBytes = 10 << 20
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// GetCategories returns the fixed category list
// GET /api/v1/categories
func (h *CatalogHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(model.Categories)
}

// GetProducts returns all products, optionally filtered by ?kategori=
// GET /api/v1/products
func (h *CatalogHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.List(c.Query("kategori"))
	if err != nil {
		return errorResponse(c, err)
	}
	for i := range products {
		products[i].ImageURL = h.imageURL(products[i].GambarPath)
	}
	return c.JSON(products)
}

// CreateProduct handles the multipart product form
// POST /api/v1/products
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	harga := decimal.Zero
	if raw := strings.TrimSpace(c.FormValue("harga")); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "harga: must be a number"})
		}
		harga = parsed
	}

	req := model.NewProduct{
		Nama:       c.FormValue("nama"),
		Kategori:   c.FormValue("kategori"),
		Harga:      harga,
		Keterangan: c.FormValue("keterangan"),
	}

	if fh, err := c.FormFile("gambar"); err == nil {
		upload, err := readUpload(fh)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		req.Image = upload
	}

	product, err := h.service.Add(req)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product '" + product.Nama + "' saved", "data": product})
}

// DeleteProduct removes a product and its image
// DELETE /api/v1/products/:id
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// GetGallery lists every uploaded image
// GET /api/v1/gallery
func (h *CatalogHandler) GetGallery(c *fiber.Ctx) error {
	paths, err := h.service.ListImages()
	if err != nil {
		return errorResponse(c, err)
	}
	images := make([]fiber.Map, 0, len(paths))
	for _, p := range paths {
		images = append(images, fiber.Map{"name": filepath.Base(p), "url": h.imageURL(p)})
	}
	return c.JSON(images)
}

// UploadGallery stores one or more process photos
// POST /api/v1/gallery
func (h *CatalogHandler) UploadGallery(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid multipart form"})
	}
	headers := form.File["gambar"]
	if len(headers) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No images uploaded"})
	}

	uploads := make([]model.Upload, 0, len(headers))
	for _, fh := range headers {
		upload, err := readUpload(fh)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		uploads = append(uploads, *upload)
	}

	saved, err := h.service.UploadGallery(uploads)
	if err != nil {
		return errorResponse(c, err, fiber.Map{"saved": len(saved)})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Images saved to gallery", "saved": len(saved)})
}

// Export downloads the catalog as CSV, or as XLSX with ?format=xlsx
// GET /api/v1/export
func (h *CatalogHandler) Export(c *fiber.Ctx) error {
	var buf bytes.Buffer

	if strings.EqualFold(c.Query("format"), "xlsx") {
		if err := h.service.ExportXLSX(&buf); err != nil {
			return errorResponse(c, err)
		}
		c.Attachment(exportName + ".xlsx")
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		return c.Send(buf.Bytes())
	}

	if err := h.service.ExportCSV(&buf); err != nil {
		return errorResponse(c, err)
	}
	c.Attachment(exportName + ".csv")
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(buf.Bytes())
}

// ResetAll wipes products and images once the caller typed DELETE
// POST /api/v1/reset
func (h *CatalogHandler) ResetAll(c *fiber.Ctx) error {
	var req struct {
		Confirm string `json:"confirm"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.ResetAll(req.Confirm == resetConfirm); err != nil {
		if err == model.ErrResetNotConfirmed {
			return c.Status(400).JSON(fiber.Map{"error": "Type '" + resetConfirm + "' to confirm"})
		}
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "All data deleted"})
}

// imageURL rewrites a stored path to its public /images URL.
func (h *CatalogHandler) imageURL(path string) string {
	if path == "" {
		return ""
	}
	return "/images/" + filepath.Base(path)
}

func readUpload(fh *multipart.FileHeader) (*model.Upload, error) {
	if fh.Size > maxUploadBytes {
		return nil, &model.ValidationError{Field: fh.Filename, Message: "file is too large"}
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &model.Upload{Filename: fh.Filename, Data: data}, nil
}
