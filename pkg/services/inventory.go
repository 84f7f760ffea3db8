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

// InventoryService wraps the inventory endpoints: categories, items, stock
// movements and the materials consumed by orders.
type InventoryService struct {
	client *client.Client
}

// CategoryInput is the payload for creating or updating a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DefaultUnit string `json:"default_unit"`
	IsActive    bool   `json:"is_active"`
}

// ListCategories returns the inventory categories, name-ordered.
func (s *InventoryService) ListCategories(ctx context.Context) ([]models.InventoryCategory, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/inventory/categories/", nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.InventoryCategory](data)
}

// CreateCategory adds a category.
func (s *InventoryService) CreateCategory(ctx context.Context, input CategoryInput) (*models.InventoryCategory, error) {
	var c models.InventoryCategory
	if err := s.client.Post(ctx, "/inventory/categories/", input, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCategory replaces a category's fields.
func (s *InventoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) (*models.InventoryCategory, error) {
	var c models.InventoryCategory
	if err := s.client.Put(ctx, "/inventory/categories/"+id.String()+"/", input, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteCategory soft-deletes a category.
func (s *InventoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/inventory/categories/"+id.String()+"/")
}

// ItemInput is the payload for creating or updating an inventory item.
type ItemInput struct {
	CategoryID   *uuid.UUID      `json:"category,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	Notes        string          `json:"notes,omitempty"`
	IsActive     bool            `json:"is_active"`
}

// ItemListParams are the supported item list filters.
type ItemListParams struct {
	// CategoryID limits results to one category.
	CategoryID uuid.UUID

	// LowStock limits results to items below their minimum stock.
	LowStock bool

	// Search filters by name or SKU.
	Search string
}

// Values returns the filter set as request query parameters. Pages also use
// it to build query cache keys.
func (p ItemListParams) Values() url.Values {
	v := url.Values{}
	if p.CategoryID != uuid.Nil {
		v.Set("category", p.CategoryID.String())
	}
	if p.LowStock {
		v.Set("low_stock", "true")
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v
}

// ListItems returns inventory items.
func (s *InventoryService) ListItems(ctx context.Context, params ItemListParams) ([]models.InventoryItem, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/inventory/items/", params.Values(), nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.InventoryItem](data)
}

// GetItem returns one inventory item by id.
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.client.Get(ctx, "/inventory/items/"+id.String()+"/", nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem adds an inventory item. A non-zero opening stock produces an
// initial stock history entry server-side.
func (s *InventoryService) CreateItem(ctx context.Context, input ItemInput) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.client.Post(ctx, "/inventory/items/", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces an item's fields. Stock levels are changed through
// StockIn/AdjustStock, not here.
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, input ItemInput) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := s.client.Put(ctx, "/inventory/items/"+id.String()+"/", input, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem soft-deletes an inventory item.
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/inventory/items/"+id.String()+"/")
}

// StockInInput is the payload for adding purchased stock.
type StockInInput struct {
	Quantity     decimal.Decimal `json:"quantity"`
	SupplierName string          `json:"supplier_name,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// StockResult is the acknowledgement returned by stock mutations.
type StockResult struct {
	Message      string          `json:"message"`
	CurrentStock decimal.Decimal `json:"current_stock"`
}

// StockIn adds stock to an item and records a history entry.
func (s *InventoryService) StockIn(ctx context.Context, id uuid.UUID, input StockInInput) (*StockResult, error) {
	var res StockResult
	if err := s.client.Post(ctx, "/inventory/items/"+id.String()+"/stock_in/", input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AdjustStockInput is the payload for stock corrections.
type AdjustStockInput struct {
	NewStock decimal.Decimal `json:"new_stock"`
	Reason   string          `json:"reason"`
	Notes    string          `json:"notes,omitempty"`
}

// AdjustStock sets an item's stock level for corrections, damage and counts.
func (s *InventoryService) AdjustStock(ctx context.Context, id uuid.UUID, input AdjustStockInput) (*StockResult, error) {
	var res StockResult
	if err := s.client.Post(ctx, "/inventory/items/"+id.String()+"/adjust_stock/", input, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// History returns an item's most recent stock movements (last 50).
func (s *InventoryService) History(ctx context.Context, id uuid.UUID) ([]models.StockEntry, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/inventory/items/"+id.String()+"/history/", nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.StockEntry](data)
}

// OrderMaterialInput is one material line consumed by an order.
type OrderMaterialInput struct {
	InventoryItemID uuid.UUID       `json:"inventory_item"`
	Quantity        decimal.Decimal `json:"quantity"`
	Notes           string          `json:"notes,omitempty"`
}

// OrderMaterials returns the materials recorded against an order.
func (s *InventoryService) OrderMaterials(ctx context.Context, orderID uuid.UUID) ([]models.OrderMaterial, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/orders/"+orderID.String()+"/materials/", nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.OrderMaterial](data)
}

// AddOrderMaterials records materials used by an order, deducting stock
// server-side.
func (s *InventoryService) AddOrderMaterials(ctx context.Context, orderID uuid.UUID, materials []OrderMaterialInput) ([]models.OrderMaterial, error) {
	body := map[string]any{"materials": materials}
	data, err := s.client.DoRaw(ctx, http.MethodPost, "/orders/"+orderID.String()+"/materials/add/", nil, body)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.OrderMaterial](data)
}

// RemoveOrderMaterial deletes a recorded material line, restoring stock.
func (s *InventoryService) RemoveOrderMaterial(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/inventory/order-materials/"+id.String()+"/")
}

// Dashboard returns the inventory overview aggregate.
func (s *InventoryService) Dashboard(ctx context.Context) (*models.InventoryDashboard, error) {
	var d models.InventoryDashboard
	if err := s.client.Get(ctx, "/inventory/dashboard/", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
