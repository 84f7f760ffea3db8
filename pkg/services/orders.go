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

// OrdersService wraps the order endpoints.
type OrdersService struct {
	client *client.Client
}

// OrderListParams are the supported list filters.
type OrderListParams struct {
	// Status filters by workflow status (PENDING, IN_STITCHING, ...).
	Status string

	// CustomerID limits results to one customer's orders.
	CustomerID uuid.UUID

	// Page selects an envelope page (0 for the first).
	Page int
}

// Values returns the filter set as request query parameters. Pages also use
// it to build query cache keys.
func (p OrderListParams) Values() url.Values {
	v := url.Values{}
	if p.Status != "" {
		v.Set("status", p.Status)
	}
	if p.CustomerID != uuid.Nil {
		v.Set("customer", p.CustomerID.String())
	}
	if p.Page > 0 {
		v.Set("page", itoa(p.Page))
	}
	return v
}

// List returns orders newest-first.
func (s *OrdersService) List(ctx context.Context, params OrderListParams) ([]models.Order, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/orders/", params.Values(), nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.Order](data)
}

// Get returns one order by id, items included.
func (s *OrdersService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var o models.Order
	if err := s.client.Get(ctx, "/orders/"+id.String()+"/", nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Create places an order. Order number, subtotal, total and balance come
// back calculated by the server.
func (s *OrdersService) Create(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	var o models.Order
	if err := s.client.Post(ctx, "/orders/", input, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Update replaces an order's fields.
func (s *OrdersService) Update(ctx context.Context, id uuid.UUID, input models.OrderInput) (*models.Order, error) {
	var o models.Order
	if err := s.client.Put(ctx, "/orders/"+id.String()+"/", input, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// Delete soft-deletes an order.
func (s *OrdersService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/orders/"+id.String()+"/")
}

// UpdateStatus moves an order through the workflow. The backend rejects
// backward transitions for non-staff users with a 400.
func (s *OrdersService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.Order, error) {
	body := map[string]string{"status": status}
	var o models.Order
	if err := s.client.Patch(ctx, "/orders/"+id.String()+"/update_status/", body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DashboardStats returns the dashboard aggregate. Pages poll this on a
// 30 second interval rather than relying on invalidation.
func (s *OrdersService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := s.client.Get(ctx, "/orders/dashboard_stats/", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
