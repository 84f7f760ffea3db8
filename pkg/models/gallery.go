package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Gallery item availability statuses.
const (
	GalleryAvailable       = "AVAILABLE"
	GalleryCustomOrderOnly = "CUSTOM_ORDER_ONLY"
	GalleryNotAccepting    = "NOT_ACCEPTING"
)

// GalleryCategory groups gallery items for display.
type GalleryCategory struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CoverImageURL string    `json:"cover_image,omitempty"`
	IsActive      bool      `json:"is_active"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GalleryImage is one image attached to a gallery item.
type GalleryImage struct {
	ID           uuid.UUID `json:"id"`
	ImageURL     string    `json:"image"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// GalleryItem is a showcased work or product in the shop's photo gallery.
type GalleryItem struct {
	ID                 uuid.UUID        `json:"id"`
	CategoryID         *uuid.UUID       `json:"category,omitempty"`
	Title              string           `json:"title"`
	Description        string           `json:"description,omitempty"`
	Price              *decimal.Decimal `json:"price,omitempty"`
	AvailabilityStatus string           `json:"availability_status"`
	IsFeatured         bool             `json:"is_featured"`
	IsPublished        bool             `json:"is_published"`
	Images             []GalleryImage   `json:"images"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// GallerySettings controls the public gallery for a shop.
type GallerySettings struct {
	ID              uuid.UUID `json:"id"`
	IsPublicEnabled bool      `json:"is_public_enabled"`
	ShowPrices      bool      `json:"show_prices"`
}
