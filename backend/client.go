// Package backend is the typed client for the external POS API that
// owns all business logic: menu content, order persistence, the status
// state machine, plan flags and the Google-auth session. This service
// is strictly a caller of these endpoints.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/ujjwalbarange/mesa-pos/models"
)

// ErrNotFound is returned when the backend answers 404 for a lookup,
// e.g. an order id that is no longer active.
var ErrNotFound = errors.New("backend: not found")

// Client is the upstream API surface the gateway consumes.
type Client interface {
	AuthStatus(ctx context.Context, cookie string) (phone string, err error)
	FetchMenu(ctx context.Context) ([]models.MenuItem, error)
	SystemStatus(ctx context.Context) (models.SystemFlags, error)
	ActiveOrders(ctx context.Context) ([]models.Order, error)
	OrderStatus(ctx context.Context, orderID string) (*models.Order, error)
	PlaceOrder(ctx context.Context, payload models.OrderPayload) (orderID int, err error)
	UpdateOrderStatus(ctx context.Context, orderID int, status models.OrderStatus) error
	LoginURL(next string) string
}

// HTTPClient implements Client over plain HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// AuthStatus returns the verified phone of the Google session carried
// by cookie, or "" when no session exists.
func (c *HTTPClient) AuthStatus(ctx context.Context, cookie string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/auth/status", nil)
	if err != nil {
		return "", err
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	var body struct {
		Phone string `json:"phone"`
	}
	if err := c.do(req, &body); err != nil {
		return "", err
	}
	return body.Phone, nil
}

// FetchMenu returns the menu as the backend serves it: a flat array of
// available items with category names inlined.
func (c *HTTPClient) FetchMenu(ctx context.Context) ([]models.MenuItem, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/menu", nil)
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := c.do(req, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) SystemStatus(ctx context.Context) (models.SystemFlags, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/system-status", nil)
	if err != nil {
		return nil, err
	}
	var flags models.SystemFlags
	if err := c.do(req, &flags); err != nil {
		return nil, err
	}
	return flags, nil
}

func (c *HTTPClient) ActiveOrders(ctx context.Context) ([]models.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/active-orders", nil)
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := c.do(req, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) OrderStatus(ctx context.Context, orderID string) (*models.Order, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/order-status/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := c.do(req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPClient) PlaceOrder(ctx context.Context, payload models.OrderPayload) (int, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/orders", payload)
	if err != nil {
		return 0, err
	}
	var body struct {
		Message string `json:"message"`
		OrderID int    `json:"order_id"`
	}
	if err := c.do(req, &body); err != nil {
		return 0, err
	}
	return body.OrderID, nil
}

func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, orderID int, status models.OrderStatus) error {
	path := fmt.Sprintf("/api/orders/%d/status", orderID)
	req, err := c.newRequest(ctx, http.MethodPut, path, map[string]string{"status": string(status)})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// LoginURL builds the redirect target that starts the Google sign-in
// and returns the browser to next afterwards.
func (c *HTTPClient) LoginURL(next string) string {
	return c.baseURL + "/api/auth/login?next=" + url.QueryEscape(next)
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Correlation id for tracing a gateway call through backend logs.
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("backend: %s (%d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("backend: unexpected status %d for %s", resp.StatusCode, req.URL.Path)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
