package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/client"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/models"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/pagination"
)

// GalleryService wraps the photo gallery endpoints.
type GalleryService struct {
	client *client.Client
}

// GalleryCategoryInput is the payload for creating or updating a category.
type GalleryCategoryInput struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

// ListCategories returns the gallery categories in display order.
func (s *GalleryService) ListCategories(ctx context.Context) ([]models.GalleryCategory, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/gallery/categories/", nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.GalleryCategory](data)
}

// CreateCategory adds a gallery category.
func (s *GalleryService) CreateCategory(ctx context.Context, input GalleryCategoryInput) (*models.GalleryCategory, error) {
	var c models.GalleryCategory
	if err := s.client.Post(ctx, "/gallery/categories/", input, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCategory replaces a gallery category's fields.
func (s *GalleryService) UpdateCategory(ctx context.Context, id uuid.UUID, input GalleryCategoryInput) (*models.GalleryCategory, error) {
	var c models.GalleryCategory
	if err := s.client.Put(ctx, "/gallery/categories/"+id.String()+"/", input, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCategory soft-deletes a gallery category.
func (s *GalleryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/gallery/categories/"+id.String()+"/")
}

// GalleryItemInput is the payload for creating or updating a gallery item.
type GalleryItemInput struct {
	CategoryID         *uuid.UUID       `json:"category,omitempty"`
	Title              string           `json:"title"`
	Description        string           `json:"description,omitempty"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	AvailabilityStatus string           `json:"availability_status"`
	IsFeatured         bool             `json:"is_featured"`
	IsPublished        bool             `json:"is_published"`
}

// GalleryListParams are the supported item list filters.
type GalleryListParams struct {
	// CategoryID limits results to one category.
	CategoryID uuid.UUID

	// FeaturedOnly limits results to featured items.
	FeaturedOnly bool
}

// Values returns the filter set as request query parameters. Pages also use
// it to build query cache keys.
func (p GalleryListParams) Values() url.Values {
	v := url.Values{}
	if p.CategoryID != uuid.Nil {
		v.Set("category", p.CategoryID.String())
	}
	if p.FeaturedOnly {
		v.Set("featured", "true")
	}
	return v
}

// ListItems returns gallery items, featured first.
func (s *GalleryService) ListItems(ctx context.Context, params GalleryListParams) ([]models.GalleryItem, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/gallery/items/", params.Values(), nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.GalleryItem](data)
}

// GetItem returns one gallery item by id, images included.
func (s *GalleryService) GetItem(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := s.client.Get(ctx, "/gallery/items/"+id.String()+"/", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem adds a gallery item.
func (s *GalleryService) CreateItem(ctx context.Context, input GalleryItemInput) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := s.client.Post(ctx, "/gallery/items/", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces a gallery item's fields.
func (s *GalleryService) UpdateItem(ctx context.Context, id uuid.UUID, input GalleryItemInput) (*models.GalleryItem, error) {
	var item models.GalleryItem
	if err := s.client.Put(ctx, "/gallery/items/"+id.String()+"/", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem soft-deletes a gallery item.
func (s *GalleryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/gallery/items/"+id.String()+"/")
}

// GetSettings returns the shop's gallery settings.
func (s *GalleryService) GetSettings(ctx context.Context) (*models.GallerySettings, error) {
	var gs models.GallerySettings
	if err := s.client.Get(ctx, "/gallery/settings/", nil, &gs); err != nil {
		return nil, err
	}
	return &gs, nil
}

// UpdateSettings updates the shop's gallery settings.
func (s *GalleryService) UpdateSettings(ctx context.Context, gs models.GallerySettings) (*models.GallerySettings, error) {
	var out models.GallerySettings
	if err := s.client.Put(ctx, "/gallery/settings/", gs, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PublicGallery returns a shop's published gallery items. This endpoint
// needs no authentication; the adapter simply has no token to attach for
// anonymous visitors.
func (s *GalleryService) PublicGallery(ctx context.Context, shopID uuid.UUID) ([]models.GalleryItem, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/public/gallery/"+shopID.String()+"/", nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.GalleryItem](data)
}
