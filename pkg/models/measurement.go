package models

import (
	"time"

	"github.com/google/uuid"
)

// Item types for measurement templates and order items.
const (
	ItemTypeBlouse = "BLOUSE"
	ItemTypeSaree  = "SAREE"
	ItemTypeDress  = "DRESS"
	ItemTypeOther  = "OTHER"
)

// Measurement units.
const (
	UnitCM   = "CM"
	UnitInch = "INCH"
)

// TemplateField is one measurement point definition on a template sketch.
type TemplateField struct {
	Label string `json:"label"`
	Point string `json:"point"`
	Unit  string `json:"unit"`
}

// MeasurementTemplate is a configurable per-item-type measurement template
// (field definitions plus a sketch image).
type MeasurementTemplate struct {
	ID        uuid.UUID       `json:"id"`
	ItemType  string          `json:"item_type"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image,omitempty"`
	Fields    []TemplateField `json:"fields"`
	IsActive  bool            `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Measurement holds the values recorded for a customer against a template.
// Keys are template field points, values the recorded measurements.
type Measurement struct {
	ID           uuid.UUID          `json:"id"`
	CustomerID   uuid.UUID          `json:"customer"`
	CustomerName string             `json:"customer_name,omitempty"`
	TemplateID   *uuid.UUID         `json:"template,omitempty"`
	Values       map[string]float64 `json:"measurements"`
	Notes        string             `json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// MeasurementInput is the payload for creating or updating a measurement.
type MeasurementInput struct {
	CustomerID uuid.UUID          `json:"customer"`
	TemplateID *uuid.UUID         `json:"template,omitempty"`
	Values     map[string]float64 `json:"measurements"`
	Notes      string             `json:"notes,omitempty"`
}
