// Package client provides the StitchDesk HTTP client adapter: token
// attachment, centralized 401/403 handling, and JSON encoding for every
// outbound call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/session"
)

// Prometheus metrics for API client operations.
var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stitchdesk_requests_total",
		Help: "Total API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "stitchdesk_request_duration_seconds",
		Help:    "API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	apiErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stitchdesk_errors_total",
		Help: "Total API errors by class",
	}, []string{"class"})

	forcedLogoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stitchdesk_forced_logouts_total",
		Help: "Total forced logouts triggered by 401 responses",
	})

	subscriptionAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stitchdesk_subscription_alerts_total",
		Help: "Total subscription alerts triggered by 403 responses",
	})
)

// ErrorClass represents a classification of HTTP errors.
type ErrorClass string

const (
	// ErrorClassAuth represents 401 authentication errors.
	ErrorClassAuth ErrorClass = "auth"

	// ErrorClassForbidden represents 403 authorization errors.
	ErrorClassForbidden ErrorClass = "forbidden"

	// ErrorClassClient represents other 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents network/transport errors.
	ErrorClassNetwork ErrorClass = "network"
)

// Client is the StitchDesk API client adapter. Services compose it; they
// never touch net/http directly.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     zerolog.Logger
}

// Config holds the client configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.stitchdesk.example/api".
	BaseURL string

	// Session supplies and persists the credential token. Defaults to an
	// in-memory store.
	Session session.Store

	// HTTPClient overrides the transport. The default has no timeout
	// beyond the transport's own; the application adds none.
	HTTPClient *http.Client

	// OnUnauthorized runs after a 401 has cleared the stored credentials.
	// The web client navigates to the login route here.
	OnUnauthorized func()

	// OnForbidden runs for a 403 whose message references an expired
	// subscription or read-only state. At most once per failed call.
	OnForbidden func(message string)
}

// New creates a new StitchDesk API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.Session == nil {
		cfg.Session = session.NewMemoryStore()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := log.With().Str("component", "api-client").Logger()

	return &Client{
		httpClient: httpClient,
		config:     cfg,
		logger:     logger,
	}, nil
}

// Session returns the credential store the client was configured with.
func (c *Client) Session() session.Store {
	return c.config.Session
}

// BaseURL returns the configured API root without a trailing slash.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Do performs one API request: builds the URL, attaches the stored token,
// sends the JSON body, and decodes the JSON response into out (when out is
// non-nil). It is the single choke point for auth failure handling. There is
// no retry: errors propagate to the calling page unmodified.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	data, err := c.doRaw(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// DoRaw performs one API request and returns the raw response body. Used for
// non-JSON payloads such as invoice PDF downloads.
func (c *Client) DoRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	return c.doRaw(ctx, method, path, query, body)
}

func (c *Client) doRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	endpoint := path

	startTime := time.Now()
	defer func() {
		apiRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	u := c.config.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s request: %w", path, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Attach the stored credential token if present.
	creds, err := c.config.Session.Load(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Session load failed, sending unauthenticated")
	} else if !creds.Empty() {
		req.Header.Set("Authorization", "Token "+creds.Token)
	}

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("method", method).
		Msg("Executing API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		apiErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		apiRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}

	apiRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		return nil, c.handleErrorResponse(ctx, endpoint, resp.StatusCode, respBody)
	}

	return respBody, nil
}

// handleErrorResponse applies the two universal cases (401 forced logout,
// 403 subscription alert) and wraps everything into an *APIError.
func (c *Client) handleErrorResponse(ctx context.Context, endpoint string, status int, body []byte) error {
	message := parseErrorMessage(body)
	class := classifyStatus(status)
	apiErrorsTotal.WithLabelValues(string(class)).Inc()

	c.logger.Warn().
		Str("endpoint", endpoint).
		Int("status", status).
		Str("error_class", string(class)).
		Msg("API request error")

	apiErr := &APIError{
		StatusCode: status,
		ErrorClass: class,
		Message:    message,
		Body:       body,
	}

	switch status {
	case http.StatusUnauthorized:
		apiErr.Err = ErrUnauthorized
		forcedLogoutsTotal.Inc()
		if err := c.config.Session.Clear(ctx); err != nil {
			c.logger.Error().Err(err).Msg("Failed to clear credentials after 401")
		}
		if c.config.OnUnauthorized != nil {
			c.config.OnUnauthorized()
		}
	case http.StatusForbidden:
		apiErr.Err = ErrForbidden
		if isSubscriptionMessage(message) {
			subscriptionAlertsTotal.Inc()
			if c.config.OnForbidden != nil {
				c.config.OnForbidden(message)
			}
		}
	case http.StatusNotFound:
		apiErr.Err = ErrNotFound
	}

	return apiErr
}

// classifyStatus categorizes an HTTP status for observability.
func classifyStatus(status int) ErrorClass {
	switch {
	case status == http.StatusUnauthorized:
		return ErrorClassAuth
	case status == http.StatusForbidden:
		return ErrorClassForbidden
	case status >= 400 && status < 500:
		return ErrorClassClient
	default:
		return ErrorClassServer
	}
}

// isSubscriptionMessage reports whether a 403 message references the
// subscription/read-only state that warrants an interrupting alert.
func isSubscriptionMessage(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "expired") ||
		strings.Contains(m, "subscription") ||
		strings.Contains(m, "read-only")
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
