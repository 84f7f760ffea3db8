package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GST types on invoices.
const (
	GSTIntrastate = "intrastate" // CGST + SGST
	GSTInterstate = "interstate" // IGST
)

// Invoice payment statuses (lowercase on the wire, unlike order statuses).
const (
	InvoiceUnpaid = "unpaid"
	InvoicePaid   = "paid"
)

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	ID              uuid.UUID       `json:"id"`
	ItemDescription string          `json:"item_description"`
	HSNCode         string          `json:"hsn_code,omitempty"`
	Quantity        int             `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Amount          decimal.Decimal `json:"amount"`
	OrderItemID     *uuid.UUID      `json:"order_item,omitempty"`
}

// Invoice is a billing document, optionally linked to an order. Totals are
// calculated server-side from the items and GST configuration.
type Invoice struct {
	ID              uuid.UUID       `json:"id"`
	InvoiceNumber   string          `json:"invoice_number"`
	InvoiceDate     Date            `json:"invoice_date"`
	OrderID         *uuid.UUID      `json:"order,omitempty"`
	CustomerID      uuid.UUID       `json:"customer"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerAddress string          `json:"customer_address"`
	GSTType         string          `json:"gst_type,omitempty"`
	CGSTPercent     decimal.Decimal `json:"cgst_percent"`
	SGSTPercent     decimal.Decimal `json:"sgst_percent"`
	IGSTPercent     decimal.Decimal `json:"igst_percent"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaymentStatus   string          `json:"payment_status"`
	Notes           string          `json:"notes,omitempty"`
	Terms           string          `json:"terms_and_conditions,omitempty"`
	ShareToken      string          `json:"share_token,omitempty"`
	Items           []InvoiceItem   `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// InvoiceItemInput is one item line in an invoice create/update payload.
type InvoiceItemInput struct {
	ItemDescription string          `json:"item_description"`
	HSNCode         string          `json:"hsn_code,omitempty"`
	Quantity        int             `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	OrderItemID     *uuid.UUID      `json:"order_item,omitempty"`
}

// InvoiceInput is the payload for creating or updating an invoice.
type InvoiceInput struct {
	InvoiceDate     Date               `json:"invoice_date"`
	OrderID         *uuid.UUID         `json:"order,omitempty"`
	CustomerID      uuid.UUID          `json:"customer"`
	CustomerAddress string             `json:"customer_address"`
	GSTType         string             `json:"gst_type,omitempty"`
	CGSTPercent     decimal.Decimal    `json:"cgst_percent"`
	SGSTPercent     decimal.Decimal    `json:"sgst_percent"`
	IGSTPercent     decimal.Decimal    `json:"igst_percent"`
	Notes           string             `json:"notes,omitempty"`
	Terms           string             `json:"terms_and_conditions,omitempty"`
	Items           []InvoiceItemInput `json:"items"`
}
