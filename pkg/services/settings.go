package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/client"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/models"
)

// SettingsService wraps the shop settings endpoints: business identity,
// order and invoice defaults, payment methods, and security.
type SettingsService struct {
	client *client.Client
}

// All returns the full settings aggregate in one call.
func (s *SettingsService) All(ctx context.Context) (*models.Settings, error) {
	var out models.Settings
	if err := s.client.Get(ctx, "/settings/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Business returns the shop identity settings.
func (s *SettingsService) Business(ctx context.Context) (*models.BusinessSettings, error) {
	var out models.BusinessSettings
	if err := s.client.Get(ctx, "/settings/business/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBusiness replaces the shop identity settings.
func (s *SettingsService) UpdateBusiness(ctx context.Context, in models.BusinessSettings) (*models.BusinessSettings, error) {
	var out models.BusinessSettings
	if err := s.client.Put(ctx, "/settings/business/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Order returns the order defaults.
func (s *SettingsService) Order(ctx context.Context) (*models.OrderSettings, error) {
	var out models.OrderSettings
	if err := s.client.Get(ctx, "/settings/order/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOrder replaces the order defaults.
func (s *SettingsService) UpdateOrder(ctx context.Context, in models.OrderSettings) (*models.OrderSettings, error) {
	var out models.OrderSettings
	if err := s.client.Put(ctx, "/settings/order/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Invoice returns the invoice numbering and tax defaults.
func (s *SettingsService) Invoice(ctx context.Context) (*models.InvoiceSettings, error) {
	var out models.InvoiceSettings
	if err := s.client.Get(ctx, "/settings/invoice/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInvoice replaces the invoice defaults.
func (s *SettingsService) UpdateInvoice(ctx context.Context, in models.InvoiceSettings) (*models.InvoiceSettings, error) {
	var out models.InvoiceSettings
	if err := s.client.Put(ctx, "/settings/invoice/", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PaymentMethods returns the shop's configured payment methods.
func (s *SettingsService) PaymentMethods(ctx context.Context) ([]models.PaymentMethod, error) {
	var out []models.PaymentMethod
	if err := s.client.Get(ctx, "/settings/payment-methods/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePaymentMethod adds a payment method.
func (s *SettingsService) CreatePaymentMethod(ctx context.Context, name string) (*models.PaymentMethod, error) {
	body := map[string]string{"name": name}
	var out models.PaymentMethod
	if err := s.client.Post(ctx, "/settings/payment-methods/", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePaymentMethod renames or toggles a payment method.
func (s *SettingsService) UpdatePaymentMethod(ctx context.Context, id uuid.UUID, pm models.PaymentMethod) (*models.PaymentMethod, error) {
	var out models.PaymentMethod
	if err := s.client.Put(ctx, "/settings/payment-methods/"+id.String()+"/", pm, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePaymentMethod removes a payment method.
func (s *SettingsService) DeletePaymentMethod(ctx context.Context, id uuid.UUID) error {
	return s.client.Delete(ctx, "/settings/payment-methods/"+id.String()+"/")
}

// ChangePassword changes the account password.
func (s *SettingsService) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"current_password": current, "new_password": next}
	return s.client.Post(ctx, "/settings/security/change-password/", body, nil)
}

// Toggle2FA enables or disables two-factor login. Enabling sends an OTP
// that must be confirmed with Verify2FA.
func (s *SettingsService) Toggle2FA(ctx context.Context, enable bool) error {
	body := map[string]bool{"enable": enable}
	return s.client.Post(ctx, "/settings/security/2fa/toggle/", body, nil)
}

// Verify2FA confirms a 2FA toggle with the emailed OTP.
func (s *SettingsService) Verify2FA(ctx context.Context, otp string) error {
	body := map[string]string{"otp": otp}
	return s.client.Post(ctx, "/settings/security/2fa/verify/", body, nil)
}
