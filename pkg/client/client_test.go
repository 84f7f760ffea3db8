package client

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/internal/testutil"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/models"
	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/session"
)

func newTestClient(t *testing.T, mock *testutil.MockAPI, cfg Config) *Client {
	t.Helper()

	cfg.BaseURL = mock.URL()
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "missing_base_url",
			config:  Config{},
			wantErr: true,
		},
		{
			name:    "valid",
			config:  Config{BaseURL: "http://localhost:8000/api"},
			wantErr: false,
		},
		{
			name:    "trailing_slash_trimmed",
			config:  Config{BaseURL: "http://localhost:8000/api/"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c.BaseURL() != "http://localhost:8000/api" {
				t.Errorf("Expected normalized base URL, got %q", c.BaseURL())
			}
		})
	}
}

func TestDo_AttachesToken(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetResponse("/customers/", testutil.NewJSONResponse(`[]`))

	store := session.NewMemoryStore()
	store.Save(context.Background(), session.Credentials{Token: "abc123"})

	c := newTestClient(t, mock, Config{Session: store})

	var out []models.Customer
	if err := c.Get(context.Background(), "/customers/", nil, &out); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if got := mock.GetLastAuthHeader(); got != "Token abc123" {
		t.Errorf("Expected Authorization 'Token abc123', got %q", got)
	}
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()

	c := newTestClient(t, mock, Config{})

	if err := c.Get(context.Background(), "/customers/", nil, nil); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if got := mock.GetLastAuthHeader(); got != "" {
		t.Errorf("Expected no Authorization header, got %q", got)
	}
}

func TestDo_UnauthorizedClearsCredentials(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetResponse("/orders/", testutil.NewUnauthorizedResponse())

	store := session.NewMemoryStore()
	store.Save(context.Background(), session.Credentials{
		Token: "stale-token",
		User:  &models.User{Email: "owner@example.com"},
	})

	var navigated atomic.Int32
	c := newTestClient(t, mock, Config{
		Session:        store,
		OnUnauthorized: func() { navigated.Add(1) },
	})

	err := c.Get(context.Background(), "/orders/", nil, nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}

	creds, _ := store.Load(context.Background())
	if !creds.Empty() {
		t.Error("Expected credentials to be cleared after 401")
	}
	if creds.User != nil {
		t.Error("Expected cached profile to be cleared after 401")
	}
	if navigated.Load() != 1 {
		t.Errorf("Expected OnUnauthorized to run once, ran %d times", navigated.Load())
	}
}

func TestDo_SubscriptionExpiredAlert(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetResponse("/orders/", testutil.NewSubscriptionExpiredResponse())

	var alerts atomic.Int32
	var lastMsg string
	c := newTestClient(t, mock, Config{
		OnForbidden: func(msg string) {
			alerts.Add(1)
			lastMsg = msg
		},
	})

	err := c.Get(context.Background(), "/orders/", nil, nil)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Expected ErrForbidden, got %v", err)
	}

	// Exactly one alert per failed call.
	if alerts.Load() != 1 {
		t.Errorf("Expected exactly 1 subscription alert, got %d", alerts.Load())
	}
	if lastMsg == "" {
		t.Error("Expected alert to carry the server message")
	}

	// A second failing call raises a second alert.
	c.Get(context.Background(), "/orders/", nil, nil)
	if alerts.Load() != 2 {
		t.Errorf("Expected 2 alerts after 2 calls, got %d", alerts.Load())
	}
}

func TestDo_PlainForbiddenNoAlert(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetResponse("/subscriptions/admin/stats/", testutil.MockResponse{
		StatusCode: http.StatusForbidden,
		Body:       `{"detail": "You do not have permission to perform this action."}`,
		Headers:    map[string]string{"Content-Type": "application/json"},
	})

	var alerts atomic.Int32
	c := newTestClient(t, mock, Config{
		OnForbidden: func(string) { alerts.Add(1) },
	})

	err := c.Get(context.Background(), "/subscriptions/admin/stats/", nil, nil)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Expected ErrForbidden, got %v", err)
	}
	if alerts.Load() != 0 {
		t.Errorf("Plain permission 403 must not raise a subscription alert, got %d", alerts.Load())
	}
}

func TestDo_ErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantClass ErrorClass
		wantErr   error
	}{
		{"unauthorized", 401, `{"detail": "Invalid token."}`, ErrorClassAuth, ErrUnauthorized},
		{"forbidden", 403, `{"detail": "Forbidden"}`, ErrorClassForbidden, ErrForbidden},
		{"not_found", 404, `{"detail": "Not found."}`, ErrorClassClient, ErrNotFound},
		{"validation", 400, `{"error": "Invalid delivery date"}`, ErrorClassClient, nil},
		{"server", 500, `{"error": "Internal server error"}`, ErrorClassServer, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockAPI()
			defer mock.Close()
			mock.SetResponse("/test/", testutil.MockResponse{
				StatusCode: tt.status,
				Body:       tt.body,
				Headers:    map[string]string{"Content-Type": "application/json"},
			})

			c := newTestClient(t, mock, Config{})
			err := c.Get(context.Background(), "/test/", nil, nil)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected *APIError, got %T", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, apiErr.StatusCode)
			}
			if apiErr.ErrorClass != tt.wantClass {
				t.Errorf("Expected class %s, got %s", tt.wantClass, apiErr.ErrorClass)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected errors.Is(%v), got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDo_NoRetry(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetResponse("/orders/", testutil.NewServerErrorResponse())

	c := newTestClient(t, mock, Config{})

	if err := c.Get(context.Background(), "/orders/", nil, nil); err == nil {
		t.Fatal("Expected error, got nil")
	}

	if got := mock.GetRequestCount(); got != 1 {
		t.Errorf("Expected exactly 1 request (no retry), got %d", got)
	}
}

func TestDo_DecodesResponse(t *testing.T) {
	mock := testutil.NewMockAPI()
	defer mock.Close()
	mock.SetResponse("/customers/", testutil.NewJSONResponse(
		`[{"name": "Asha Verma", "phone": "9876543210"}]`))

	c := newTestClient(t, mock, Config{})

	var out []models.Customer
	if err := c.Get(context.Background(), "/customers/", nil, &out); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Asha Verma" {
		t.Errorf("Unexpected decode result: %+v", out)
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error_field", `{"error": "boom"}`, "boom"},
		{"message_field", `{"message": "nope"}`, "nope"},
		{"detail_field", `{"detail": "missing"}`, "missing"},
		{"message_wins", `{"message": "msg", "error": "err"}`, "msg"},
		{"not_json", `<html>502</html>`, ""},
		{"empty", ``, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseErrorMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("parseErrorMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}
