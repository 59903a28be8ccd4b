package service

import (
	"maps"
	"slices"

	"seni-kraf-manik/internal/model"

	"github.com/shopspring/decimal"
)

// CategoryCount untuk chart per kategori
type CategoryCount struct {
	Kategori string `json:"kategori"`
	Count    int    `json:"count"`
}

// CatalogSummary untuk overview stats
type CatalogSummary struct {
	TotalProducts  int             `json:"total_products"`
	TotalValuation decimal.Decimal `json:"total_valuation"`
	GalleryImages  int             `json:"gallery_images"`
	MissingImages  int             `json:"missing_images"`
	Categories     []CategoryCount `json:"categories"`
}

// Summary counts products per category (in category order, including
// empty ones) and sums their prices.
func (s *catalogService) Summary() (*CatalogSummary, error) {
	views, err := s.List("")
	if err != nil {
		return nil, err
	}
	images, err := s.ListImages()
	if err != nil {
		return nil, err
	}

	summary := &CatalogSummary{
		TotalProducts:  len(views),
		TotalValuation: decimal.Zero,
		GalleryImages:  len(images),
	}

	counts := map[string]int{}
	for _, v := range views {
		summary.TotalValuation = summary.TotalValuation.Add(v.Harga)
		counts[v.Kategori]++
		if v.ImageMissing {
			summary.MissingImages++
		}
	}
	for _, k := range model.Categories {
		summary.Categories = append(summary.Categories, CategoryCount{Kategori: k, Count: counts[k]})
		delete(counts, k)
	}
	// Rows from hand-edited files may carry categories outside the set
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		summary.Categories = append(summary.Categories, CategoryCount{Kategori: k, Count: counts[k]})
	}
	return summary, nil
}
