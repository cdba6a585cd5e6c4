// Package bridge posts events to the remote socket bridge that fans them out
// to connected storefront clients.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	applog "github.com/versocommerce/storefront/internal/platform/logging"
)

// Service errors
var (
	ErrNotConfigured = errors.New("socket bridge url not configured")
	ErrUpstream      = errors.New("socket bridge upstream error")
)

// UpstreamError reports a bridge that answered with a non-2xx status.
// Transport failures (bridge unreachable) surface as plain wrapped errors
// instead, so callers can tell the two apart.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("socket bridge error (status=%d): %s", e.Status, e.Body)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// Event is the envelope the bridge relays to connected clients.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// OrderUpdate is the payload of an order:update event.
type OrderUpdate struct {
	OrderID   string    `json:"orderId"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Notifier pushes events toward connected clients.
type Notifier interface {
	Emit(ctx context.Context, event string, data any) error
	EmitOrderUpdate(ctx context.Context, orderID, status string) error
}

// Client implements Notifier over the bridge's HTTP /emit endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a bridge client. baseURL may be empty; Emit then fails
// with ErrNotConfigured.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL}
}

// Emit posts one event envelope to the bridge.
func (c *Client) Emit(ctx context.Context, event string, data any) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emit", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to socket bridge: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		applog.LogWarn(ctx, "socket bridge rejected event",
			zap.String("event", event),
			zap.Int("status", resp.StatusCode),
		)
		return &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// EmitOrderUpdate sends an order:update event for the given order.
func (c *Client) EmitOrderUpdate(ctx context.Context, orderID, status string) error {
	return c.Emit(ctx, "order:update", OrderUpdate{
		OrderID:   orderID,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	})
}

// Compile-time interface check
var _ Notifier = (*Client)(nil)
