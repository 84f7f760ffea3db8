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

// MeasurementsService wraps the customer measurement endpoints.
type MeasurementsService struct {
	client *client.Client
}

// MeasurementListParams are the supported list filters.
type MeasurementListParams struct {
	// CustomerID limits results to one customer.
	CustomerID uuid.UUID
}

// Values returns the filter set as request query parameters. Pages also use
// it to build query cache keys.
func (p MeasurementListParams) Values() url.Values {
	v := url.Values{}
	if p.CustomerID != uuid.Nil {
		v.Set("customer", p.CustomerID.String())
	}
	return v
}

// List returns measurements newest-first.
func (s *MeasurementsService) List(ctx context.Context, params MeasurementListParams) ([]models.Measurement, error) {
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/measurements/", params.Values(), nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.Measurement](data)
}

// Get returns one measurement by id.
func (s *MeasurementsService) Get(ctx context.Context, id uuid.UUID) (*models.Measurement, error) {
	var m models.Measurement
	if err := s.client.Get(ctx, "/measurements/"+id.String()+"/", nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Create records a measurement for a customer.
func (s *MeasurementsService) Create(ctx context.Context, input models.MeasurementInput) (*models.Measurement, error) {
	var m models.Measurement
	if err := s.client.Post(ctx, "/measurements/", input, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Update replaces a measurement's values.
func (s *MeasurementsService) Update(ctx context.Context, id uuid.UUID, input models.MeasurementInput) (*models.Measurement, error) {
	var m models.Measurement
	if err := s.client.Put(ctx, "/measurements/"+id.String()+"/", input, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes a measurement.
func (s *MeasurementsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/measurements/"+id.String()+"/")
}

// TemplatesService wraps the measurement template endpoints.
type TemplatesService struct {
	client *client.Client
}

// TemplateInput is the payload for creating or updating a template.
type TemplateInput struct {
	ItemType string                 `json:"item_type"`
	Name     string                 `json:"name"`
	Fields   []models.TemplateField `json:"fields"`
	IsActive bool                   `json:"is_active"`
}

// List returns the templates, optionally filtered by item type.
func (s *TemplatesService) List(ctx context.Context, itemType string) ([]models.MeasurementTemplate, error) {
	var v url.Values
	if itemType != "" {
		v = url.Values{"item_type": []string{itemType}}
	}
	data, err := s.client.DoRaw(ctx, http.MethodGet, "/measurement-templates/", v, nil)
	if err != nil {
		return nil, err
	}
	return pagination.Normalize[models.MeasurementTemplate](data)
}

// Get returns one template by id.
func (s *TemplatesService) Get(ctx context.Context, id uuid.UUID) (*models.MeasurementTemplate, error) {
	var t models.MeasurementTemplate
	if err := s.client.Get(ctx, "/measurement-templates/"+id.String()+"/", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Create adds a template.
func (s *TemplatesService) Create(ctx context.Context, input TemplateInput) (*models.MeasurementTemplate, error) {
	var t models.MeasurementTemplate
	if err := s.client.Post(ctx, "/measurement-templates/", input, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Update replaces a template's fields.
func (s *TemplatesService) Update(ctx context.Context, id uuid.UUID, input TemplateInput) (*models.MeasurementTemplate, error) {
	var t models.MeasurementTemplate
	if err := s.client.Put(ctx, "/measurement-templates/"+id.String()+"/", input, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes a template.
func (s *TemplatesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/measurement-templates/"+id.String()+"/")
}
