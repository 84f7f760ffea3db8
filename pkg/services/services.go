// Package services provides one typed wrapper per backend resource. Each
// function issues exactly one HTTP call and returns the parsed payload typed
// to the resource's shape; list endpoints normalize the optional pagination
// envelope into a plain sequence. No batching, no retry, no client-side
// validation beyond type shape.
package services

import (
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/client"
)

// Resource names, used as query cache key prefixes by the pages.
const (
	ResourceCustomers      = "customers"
	ResourceMeasurements   = "measurements"
	ResourceTemplates      = "measurement-templates"
	ResourceOrders         = "orders"
	ResourceDashboard      = "dashboard-stats"
	ResourceInvoices       = "invoices"
	ResourceQuotations     = "quotations"
	ResourceBillingItems   = "billing-items"
	ResourceInventoryCats  = "inventory-categories"
	ResourceInventoryItems = "inventory-items"
	ResourceOrderMaterials = "order-materials"
	ResourceGalleryCats    = "gallery-categories"
	ResourceGalleryItems   = "gallery-items"
	ResourceSettings       = "settings"
	ResourceSubscription   = "subscription"
)

// Services bundles every resource service over one shared client adapter.
type Services struct {
	Accounts      *AccountsService
	Customers     *CustomersService
	Measurements  *MeasurementsService
	Templates     *TemplatesService
	Orders        *OrdersService
	Invoices      *InvoicesService
	Quotations    *QuotationsService
	Inventory     *InventoryService
	Gallery       *GalleryService
	Settings      *SettingsService
	Subscriptions *SubscriptionsService
}

// New creates the service bundle.
func New(c *client.Client) *Services {
	return &Services{
		Accounts:      &AccountsService{client: c},
		Customers:     &CustomersService{client: c},
		Measurements:  &MeasurementsService{client: c},
		Templates:     &TemplatesService{client: c},
		Orders:        &OrdersService{client: c},
		Invoices:      &InvoicesService{client: c},
		Quotations:    &QuotationsService{client: c},
		Inventory:     &InventoryService{client: c},
		Gallery:       &GalleryService{client: c},
		Settings:      &SettingsService{client: c},
		Subscriptions: &SubscriptionsService{client: c},
	}
}
