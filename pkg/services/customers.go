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

// CustomersService wraps the customer endpoints.
type CustomersService struct {
	client *client.Client
}

// CustomerListParams are the supported list filters.
type CustomerListParams struct {
	// Search filters by name or phone.
	Search string

	// Page selects an envelope page (0 for the first).
	Page int
}

// Values returns the filter set as request query parameters. Pages also use
// it to build query cache keys.
func (p CustomerListParams) Values() url.Values {
	v := url.Values{}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Page > 0 {
		v.Set("page", itoa(p.Page))
	}
	return v
}

// List returns the customers newest-first.
func (s *CustomersService) List(ctx context.Context, params CustomerListParams) ([]models.Customer, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/customers/", params.Values(), nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.Customer](data)
}

// ListAll follows pagination links and returns every customer.
func (s *CustomersService) ListAll(ctx context.Context) ([]models.Customer, error) {
	return pagination.FetchAll[models.Customer](ctx, func(ctx context.Context, next string) ([]byte, error) {
		if next == "" {
			return s.client.DoRaw(ctx, http.MethodGet, "/customers/", nil, nil)
		}
		return fetchAbsolute(ctx, s.client, next)
	})
}

// Get returns one customer by id.
func (s *CustomersService) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var c models.Customer
	if err := s.client.Get(ctx, "/customers/"+id.String()+"/", nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create adds a customer.
func (s *CustomersService) Create(ctx context.Context, input models.CustomerInput) (*models.Customer, error) {
	var c models.Customer
	if err := s.client.Post(ctx, "/customers/", input, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Update replaces a customer's fields.
func (s *CustomersService) Update(ctx context.Context, id uuid.UUID, input models.CustomerInput) (*models.Customer, error) {
	var c models.Customer
	if err := s.client.Put(ctx, "/customers/"+id.String()+"/", input, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a customer.
func (s *CustomersService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/customers/"+id.String()+"/")
}
