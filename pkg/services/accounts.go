package services

import (
	"context"
	"fmt"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/client"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/models"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/session"
)

// AccountsService wraps the auth endpoints. Login and Register persist the
// returned token and user profile to the session store; Logout clears them.
type AccountsService struct {
	client *client.Client
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	ShopName string `json:"shop_name,omitempty"`
}

// AuthResponse is returned by login, register and 2FA verification.
type AuthResponse struct {
	Token       string       `json:"token"`
	User        *models.User `json:"user"`
	Requires2FA bool         `json:"requires_2fa"`
}

// Login authenticates with email and password. When the account has 2FA
// enabled the response carries Requires2FA and no token; finish with
// VerifyLoginOTP. Otherwise the credentials are stored immediately.
func (s *AccountsService) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.Post(ctx, "/auth/login/", input, &resp); err != nil {
		return nil, err
	}
	if resp.Requires2FA {
		return &resp, nil
	}
	if err := s.storeCredentials(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new account and stores the returned credentials.
func (s *AccountsService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	var resp AuthResponse
	if err := s.client.Post(ctx, "/auth/register/", input, &resp); err != nil {
		return nil, err
	}
	if err := s.storeCredentials(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout invalidates the token server-side and clears the stored
// credentials regardless of the server outcome.
func (s *AccountsService) Logout(ctx context.Context) error {
	postErr := s.client.Post(ctx, "/auth/logout/", nil, nil)
	if err := s.client.Session().Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return postErr
}

// SendLoginOTP requests a one-time code for a 2FA-enabled account.
func (s *AccountsService) SendLoginOTP(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.Post(ctx, "/auth/2fa/send-otp/", body, nil)
}

// VerifyLoginOTP completes a 2FA login and stores the credentials.
func (s *AccountsService) VerifyLoginOTP(ctx context.Context, email, otp string) (*AuthResponse, error) {
	body := map[string]string{"email": email, "otp": otp}
	var resp AuthResponse
	if err := s.client.Post(ctx, "/auth/2fa/verify-otp/", body, &resp); err != nil {
		return nil, err
	}
	if err := s.storeCredentials(ctx, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword starts a password reset flow for the given email.
func (s *AccountsService) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return s.client.Post(ctx, "/auth/forgot-password/", body, nil)
}

// ResetPassword completes a password reset with the emailed token.
func (s *AccountsService) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "new_password": newPassword}
	return s.client.Post(ctx, "/auth/reset-password/", body, nil)
}

// CurrentUser returns the cached user profile from the session store, or nil
// when logged out. The profile is cached at login; there is no profile
// endpoint to refetch it from.
func (s *AccountsService) CurrentUser(ctx context.Context) (*models.User, error) {
	creds, err := s.client.Session().Load(ctx)
	if err != nil {
		return nil, err
	}
	return creds.User, nil
}

func (s *AccountsService) storeCredentials(ctx context.Context, resp *AuthResponse) error {
	if resp.Token == "" {
		return nil
	}
	creds := session.Credentials{Token: resp.Token, User: resp.User}
	if err := s.client.Session().Save(ctx, creds); err != nil {
		return fmt.Errorf("store credentials: %w", err)
	}
	return nil
}
