package handler

import (
	"seni-kraf-manik/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Setup registers the catalog API and the image file server on app.
func Setup(app *fiber.App, svc service.CatalogService) {
	catalogHandler := NewCatalogHandler(svc)
	dashHandler := NewDashboardHandler(svc)

	app.Static("/images", svc.ImageDir())

	api := app.Group("/api/v1")

	api.Get("/categories", catalogHandler.GetCategories)

	// Product Routes
	api.Get("/products", catalogHandler.GetProducts)
	api.Post("/products", catalogHandler.CreateProduct)
	api.Delete("/products/:id", catalogHandler.DeleteProduct)

	// Gallery Routes
	api.Get("/gallery", catalogHandler.GetGallery)
	api.Post("/gallery", catalogHandler.UploadGallery)

	api.Get("/export", catalogHandler.Export)
	api.Post("/reset", catalogHandler.ResetAll)

	api.Get("/dashboard/stats", dashHandler.GetDashboardStats)
}
