package service

import "seni-kraf-manik/internal/model"

type EventType string

const (
	EventProductCreated  EventType = "product_created"
	EventProductDeleted  EventType = "product_deleted"
	EventGalleryUploaded EventType = "gallery_uploaded"
	EventCatalogReset    EventType = "catalog_reset"
)

// Event describes one change to the catalog.
type Event struct {
	Type    EventType      `json:"type"`
	Product *model.Product `json:"product,omitempty"`
	Images  []string       `json:"images,omitempty"`
}
