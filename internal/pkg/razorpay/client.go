package razorpay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ManuelReschke/RazorSync/internal/pkg/config"
)

const (
	DefaultBaseURL  = "https://api.razorpay.com/v1"
	DefaultPageSize = 100
	maxPageSize     = 100
)

// APIError is returned for non-2xx responses.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Body        string
}

func (e *APIError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("razorpay request failed: status=%d code=%s description=%s", e.StatusCode, e.Code, e.Description)
	}
	return fmt.Sprintf("razorpay request failed: status=%d body=%s", e.StatusCode, e.Body)
}

// Client reads plans, customers and subscriptions from the Razorpay API.
// Each list call fetches a single page.
type Client struct {
	APIKey    string
	APISecret string
	BaseURL   string
	PageSize  int

	HTTPClient *http.Client
}

func NewClient(creds config.Credentials, cfg config.Razorpay) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		APIKey:    creds.APIKey,
		APISecret: creds.APISecret,
		BaseURL:   baseURL,
		PageSize:  cfg.PageSize,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) ListPlans(ctx context.Context) ([]Plan, error) {
	return list[Plan](ctx, c, "plans")
}

func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	return list[Customer](ctx, c, "customers")
}

func (c *Client) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	return list[Subscription](ctx, c, "subscriptions")
}

func list[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	body, err := c.get(ctx, resource)
	if err != nil {
		return nil, err
	}

	var out Collection[T]
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode razorpay %s: %w", resource, err)
	}
	return out.Items, nil
}

func (c *Client) get(ctx context.Context, resource string) ([]byte, error) {
	if strings.TrimSpace(c.APIKey) == "" || strings.TrimSpace(c.APISecret) == "" {
		return nil, config.ErrMissingCredentials
	}

	u, err := url.Parse(strings.TrimRight(c.BaseURL, "/") + "/" + resource)
	if err != nil {
		return nil, fmt.Errorf("invalid razorpay base url: %w", err)
	}
	q := u.Query()
	q.Set("count", strconv.Itoa(c.pageSize()))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.APIKey, c.APISecret)
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) pageSize() int {
	switch {
	case c.PageSize <= 0:
		return DefaultPageSize
	case c.PageSize > maxPageSize:
		return maxPageSize
	default:
		return c.PageSize
	}
}

func newAPIError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status, Body: string(body)}
	var raw struct {
		Error struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &raw); err == nil {
		apiErr.Code = raw.Error.Code
		apiErr.Description = raw.Error.Description
	}
	return apiErr
}

// IsAuthError reports whether err is a rejected key/secret pair.
func IsAuthError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
