package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses, in workflow order. The backend rejects backward
// transitions for non-staff users.
const (
	OrderStatusPending     = "PENDING"
	OrderStatusInStitching = "IN_STITCHING"
	OrderStatusReady       = "READY"
	OrderStatusDelivered   = "DELIVERED"
)

// Payment statuses.
const (
	PaymentStatusUnpaid  = "UNPAID"
	PaymentStatusPartial = "PARTIAL"
	PaymentStatusPaid    = "PAID"
)

// Payment methods recorded on orders.
const (
	PaymentMethodCash = "CASH"
	PaymentMethodUPI  = "UPI"
	PaymentMethodBank = "BANK"
)

// OrderItem is one garment line on an order, with its recorded measurements.
type OrderItem struct {
	ID              uuid.UUID          `json:"id"`
	OrderID         uuid.UUID          `json:"order"`
	TemplateID      *uuid.UUID         `json:"template,omitempty"`
	ItemType        string             `json:"item_type"`
	Quantity        int                `json:"quantity"`
	UnitPrice       decimal.Decimal    `json:"unit_price"`
	Measurements    map[string]float64 `json:"measurements"`
	SampleGiven     bool               `json:"sample_given"`
	DesignReference string             `json:"design_reference,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// Order is a boutique order. Subtotal, total and balance are calculated
// server-side; the client treats them as read-only.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	CustomerID      uuid.UUID       `json:"customer"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	OrderNumber     string          `json:"order_number"`
	OrderDate       Date            `json:"order_date"`
	DeliveryDate    Date            `json:"delivery_date"`
	Status          string          `json:"status"`
	StitchingCharge decimal.Decimal `json:"stitching_charge"`
	ExtraCharge     decimal.Decimal `json:"extra_charge"`
	Discount        decimal.Decimal `json:"discount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentStatus   string          `json:"payment_status"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	BalanceAmount   decimal.Decimal `json:"balance_amount"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Items           []OrderItem     `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItemInput is one item line in an order create/update payload.
type OrderItemInput struct {
	TemplateID      *uuid.UUID         `json:"template,omitempty"`
	ItemType        string             `json:"item_type"`
	Quantity        int                `json:"quantity"`
	UnitPrice       decimal.Decimal    `json:"unit_price"`
	Measurements    map[string]float64 `json:"measurements"`
	SampleGiven     bool               `json:"sample_given"`
	DesignReference string             `json:"design_reference,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

// OrderInput is the payload for creating or updating an order.
type OrderInput struct {
	CustomerID      uuid.UUID        `json:"customer"`
	OrderDate       Date             `json:"order_date"`
	DeliveryDate    Date             `json:"delivery_date"`
	StitchingCharge decimal.Decimal  `json:"stitching_charge"`
	ExtraCharge     decimal.Decimal  `json:"extra_charge"`
	Discount        decimal.Decimal  `json:"discount"`
	Tax             decimal.Decimal  `json:"tax"`
	AmountPaid      decimal.Decimal  `json:"amount_paid"`
	PaymentMethod   string           `json:"payment_method,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	Items           []OrderItemInput `json:"items"`
}

// DashboardStats is the aggregate shown on the dashboard page. It is polled
// on a fixed interval rather than invalidated.
type DashboardStats struct {
	TotalOrders       int             `json:"total_orders"`
	PendingOrders     int             `json:"pending_orders"`
	InStitchingOrders int             `json:"in_stitching_orders"`
	ReadyOrders       int             `json:"ready_orders"`
	DeliveredOrders   int             `json:"delivered_orders"`
	TotalCustomers    int             `json:"total_customers"`
	RevenueThisMonth  decimal.Decimal `json:"revenue_this_month"`
	PendingPayments   decimal.Decimal `json:"pending_payments"`
	DueThisWeek       int             `json:"due_this_week"`
}
