package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User roles.
const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

// User is the authenticated account profile. A copy is cached in the session
// store after login so the guard can gate superuser routes without a network
// round trip on every check.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	ShopID       uuid.UUID `json:"shop,omitempty"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	Is2FAEnabled bool      `json:"is_2fa_enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

// PaymentMethod is a shop-configured payment method (Cash, UPI, ...).
type PaymentMethod struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Invoice template choices for BusinessSettings.InvoiceTemplate.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateMinimal = "minimal"
	TemplateElegant = "elegant"
)

// BusinessSettings holds the shop identity shared by all staff of a shop.
type BusinessSettings struct {
	ShopID          uuid.UUID `json:"id"`
	ShopName        string    `json:"shop_name"`
	LogoURL         string    `json:"logo,omitempty"`
	PhoneNumber     string    `json:"phone_number,omitempty"`
	Email           string    `json:"email,omitempty"`
	FullAddress     string    `json:"full_address,omitempty"`
	GSTNumber       string    `json:"gst_number,omitempty"`
	DefaultCurrency string    `json:"default_currency"`
}

// OrderSettings holds order-related defaults.
type OrderSettings struct {
	DeliveryDurationDays int `json:"delivery_duration_days"`
}

// InvoiceSettings holds invoice numbering and tax defaults.
type InvoiceSettings struct {
	InvoicePrefix          string          `json:"invoice_prefix"`
	QuotationPrefix        string          `json:"quotation_prefix"`
	InvoiceNumberingFormat string          `json:"invoice_numbering_format"`
	DefaultTaxType         string          `json:"default_tax_type"`
	DefaultCGSTPercent     decimal.Decimal `json:"default_cgst_percent"`
	DefaultSGSTPercent     decimal.Decimal `json:"default_sgst_percent"`
	DefaultIGSTPercent     decimal.Decimal `json:"default_igst_percent"`
	ShowTaxOnInvoice       bool            `json:"show_tax_on_invoice"`
	InvoiceTemplate        string          `json:"invoice_template"`
}

// Settings is the aggregate returned by the all-settings endpoint.
type Settings struct {
	Business       BusinessSettings `json:"business"`
	Order          OrderSettings    `json:"order"`
	Invoice        InvoiceSettings  `json:"invoice"`
	PaymentMethods []PaymentMethod  `json:"payment_methods"`
}
