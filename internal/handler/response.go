package handler

import (
	"errors"
	"log"

	"seni-kraf-manik/internal/model"

	"github.com/gofiber/fiber/v2"
)

// errorResponse maps store errors onto HTTP statuses. Fields in extra are
// merged into the JSON body.
func errorResponse(c *fiber.Ctx, err error, extra ...fiber.Map) error {
	status, msg := fiber.StatusInternalServerError, "Internal Server Error"
	switch {
	case errors.Is(err, model.ErrValidation):
		status, msg = fiber.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrNotFound):
		status, msg = fiber.StatusNotFound, "Product not found"
	case errors.Is(err, model.ErrCorruptData):
		log.Printf("Catalog data is corrupt: %v", err)
		msg = "Catalog data is corrupt"
	default:
		log.Printf("Storage error: %v", err)
	}

	body := fiber.Map{"error": msg}
	for _, m := range extra {
		for k, v := range m {
			body[k] = v
		}
	}
	return c.Status(status).JSON(body)
}
