package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/client"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/models"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/pagination"
)

// InvoicesService wraps the invoice endpoints.
type InvoicesService struct {
	client *client.Client
}

// InvoiceListParams are the supported list filters.
type InvoiceListParams struct {
	// CustomerID limits results to one customer's invoices.
	CustomerID uuid.UUID

	// PaymentStatus filters by "paid"/"unpaid".
	PaymentStatus string

	// Page selects an envelope page (0 for the first).
	Page int
}

// Values returns the filter set as request query parameters. Pages also use
// it to build query cache keys.
func (p InvoiceListParams) Values() url.Values {
	v := url.Values{}
	if p.CustomerID != uuid.Nil {
		v.Set("customer", p.CustomerID.String())
	}
	if p.PaymentStatus != "" {
		v.Set("payment_status", p.PaymentStatus)
	}
	if p.Page > 0 {
		v.Set("page", itoa(p.Page))
	}
	return v
}

// List returns invoices newest-first.
func (s *InvoicesService) List(ctx context.Context, params InvoiceListParams) ([]models.Invoice, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/invoices/", params.Values(), nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.Invoice](data)
}

// Get returns one invoice by id, items included.
func (s *InvoicesService) Get(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.client.Get(ctx, "/invoices/"+id.String()+"/", nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create adds an invoice. Invoice number and totals come back calculated by
// the server.
func (s *InvoicesService) Create(ctx context.Context, input models.InvoiceInput) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.client.Post(ctx, "/invoices/", input, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Update replaces an invoice's fields.
func (s *InvoicesService) Update(ctx context.Context, id uuid.UUID, input models.InvoiceInput) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.client.Put(ctx, "/invoices/"+id.String()+"/", input, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Delete removes an invoice.
func (s *InvoicesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/invoices/"+id.String()+"/")
}

// UpdateStatus sets the payment status ("paid"/"unpaid").
func (s *InvoicesService) UpdateStatus(ctx context.Context, id uuid.UUID, paymentStatus string) (*models.Invoice, error) {
	body := map[string]string{"payment_status": paymentStatus}
	var inv models.Invoice
	if err := s.client.Patch(ctx, "/invoices/"+id.String()+"/update_status/", body, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// PopulateFromOrder fills an invoice's customer and item lines from its
// linked order.
func (s *InvoicesService) PopulateFromOrder(ctx context.Context, id uuid.UUID, orderID uuid.UUID) (*models.Invoice, error) {
	body := map[string]string{"order": orderID.String()}
	var inv models.Invoice
	if err := s.client.Post(ctx, "/invoices/"+id.String()+"/populate_from_order/", body, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// PDF downloads the rendered invoice PDF.
func (s *InvoicesService) PDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	return s.client.DoRaw(ctx, http.MethodGet, "/invoices/"+id.String()+"/pdf/", nil, nil)
}

// QuotationsService wraps the quotation endpoints (the pre-order sibling of
// invoices, sharing the billing item catalogue).
type QuotationsService struct {
	client *client.Client
}

// BillingItem is a reusable line item description with a default rate.
type BillingItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	HSNCode     string `json:"hsn_code,omitempty"`
	DefaultRate string `json:"default_rate,omitempty"`
}

// ListItems returns the reusable billing items.
func (s *QuotationsService) ListItems(ctx context.Context) ([]BillingItem, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/items/", nil, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[BillingItem](data)
}

// CreateItem adds a reusable billing item.
func (s *QuotationsService) CreateItem(ctx context.Context, item BillingItem) (*BillingItem, error) {
	var out BillingItem
	if err := s.client.Post(ctx, "/items/", item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem removes a reusable billing item.
func (s *QuotationsService) DeleteItem(ctx context.Context, id int64) error {
	return s.client.Delete(ctx, "/items/"+i64toa(id)+"/")
}
