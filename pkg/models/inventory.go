package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock units.
const (
	StockUnitPieces = "PCS"
	StockUnitMeters = "MTR"
	StockUnitYards  = "YRD"
	StockUnitSet    = "SET"
	StockUnitRoll   = "ROLL"
	StockUnitSpool  = "SPOOL"
	StockUnitKG     = "KG"
	StockUnitGrams  = "GM"
)

// Stock transaction types and reasons.
const (
	StockIn         = "IN"
	StockOut        = "OUT"
	StockAdjustment = "ADJUSTMENT"

	StockReasonInitial  = "INITIAL_STOCK"
	StockReasonPurchase = "PURCHASE"
	StockReasonOrderUse = "ORDER_USE"
	StockReasonDamaged  = "DAMAGED"
	StockReasonCounted  = "STOCK_COUNT"
)

// InventoryCategory groups inventory items (Fabric, Buttons, Thread, ...).
type InventoryCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	DefaultUnit string    `json:"default_unit"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InventoryItem is a stocked material that can be consumed by orders.
type InventoryItem struct {
	ID           uuid.UUID       `json:"id"`
	CategoryID   *uuid.UUID      `json:"category,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	SKU          string          `json:"sku,omitempty"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	IsLowStock   bool            `json:"is_low_stock"`
	Notes        string          `json:"notes,omitempty"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockEntry is one stock history record for an inventory item.
type StockEntry struct {
	ID              uuid.UUID       `json:"id"`
	InventoryItemID uuid.UUID       `json:"inventory_item"`
	TransactionType string          `json:"transaction_type"`
	Reason          string          `json:"reason"`
	Quantity        decimal.Decimal `json:"quantity"`
	StockBefore     decimal.Decimal `json:"stock_before"`
	StockAfter      decimal.Decimal `json:"stock_after"`
	SupplierName    string          `json:"supplier_name,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderMaterial links an inventory item consumed by an order, with the unit
// price captured at time of use.
type OrderMaterial struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order"`
	InventoryItemID uuid.UUID       `json:"inventory_item"`
	ItemName        string          `json:"item_name,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// InventoryDashboard is the aggregate for the inventory overview page.
type InventoryDashboard struct {
	TotalItems    int             `json:"total_items"`
	LowStockItems []InventoryItem `json:"low_stock_items"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Categories    int             `json:"categories"`
}
