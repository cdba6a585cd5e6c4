// Package realtime maintains the persistent connection to the socket bridge
// and dispatches order-status events into the session state store.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"github.com/versocommerce/storefront/internal/notification"
	applog "github.com/versocommerce/storefront/internal/platform/logging"
	"github.com/versocommerce/storefront/internal/platform/timeutil"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
	pollTimeout    = 25 * time.Second
)

// Event is the envelope the bridge delivers.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Dispatch receives each decoded notification in arrival order. Delivery is
// in order per connection; events replayed across reconnects are not
// deduplicated.
type Dispatch func(notification.Item)

// Client holds one connection to the bridge for its lifetime. The primary
// transport is a websocket; when the dial fails the client degrades to HTTP
// long polling against the same endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	dispatch   Dispatch

	mu        sync.Mutex
	connected bool
	onChange  []func(bool)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the client used by the polling transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the given bridge base URL ("http://..." or
// "https://...").
func NewClient(baseURL string, dispatch Dispatch, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: pollTimeout + 5*time.Second},
		dispatch:   dispatch,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnConnectionChange registers a listener for connect/disconnect
// transitions.
func (c *Client) OnConnectionChange(fn func(connected bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

func (c *Client) setConnected(connected bool) {
	c.mu.Lock()
	if c.connected == connected {
		c.mu.Unlock()
		return
	}
	c.connected = connected
	listeners := make([]func(bool), len(c.onChange))
	copy(listeners, c.onChange)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(connected)
	}
}

// Connected reports the current transport state.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Run connects and reconnects until the context is canceled, with
// exponential backoff plus jitter between attempts. The backoff resets
// after every session that delivered at least one event.
func (c *Client) Run(ctx context.Context) {
	backoff := initialBackoff
	for {
		delivered, err := c.session(ctx)
		c.setConnected(false)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			applog.LogWarn(ctx, "realtime session ended", zap.Error(err))
		}
		if delivered {
			backoff = initialBackoff
		}

		jitter := time.Duration(rand.Int63n(int64(backoff) / 2))
		select {
		case <-time.After(backoff + jitter):
		case <-ctx.Done():
			return
		}
		if backoff *= 2; backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// session runs one connection on whichever transport comes up. It reports
// whether any event was delivered.
func (c *Client) session(ctx context.Context) (bool, error) {
	conn, err := c.dialWebsocket()
	if err != nil {
		applog.LogInfo(ctx, "websocket dial failed, falling back to polling", zap.Error(err))
		return c.pollSession(ctx)
	}
	defer func() { _ = conn.Close() }()

	c.setConnected(true)
	applog.LogInfo(ctx, "realtime connected", zap.String("transport", "websocket"))

	// Unblock the read loop on cancellation.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	delivered := false
	for {
		var ev Event
		if err := websocket.JSON.Receive(conn, &ev); err != nil {
			return delivered, err
		}
		if c.handle(ctx, ev) {
			delivered = true
		}
	}
}

func (c *Client) dialWebsocket() (*websocket.Conn, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing bridge url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return websocket.Dial(u.String(), "", c.baseURL)
}

// pollSession long-polls /poll until the transport errors or the context is
// canceled.
func (c *Client) pollSession(ctx context.Context) (bool, error) {
	c.setConnected(true)
	applog.LogInfo(ctx, "realtime connected", zap.String("transport", "polling"))

	delivered := false
	for {
		if ctx.Err() != nil {
			return delivered, ctx.Err()
		}

		events, err := c.pollOnce(ctx)
		if err != nil {
			return delivered, err
		}
		for _, ev := range events {
			if c.handle(ctx, ev) {
				delivered = true
			}
		}
	}
}

func (c *Client) pollOnce(ctx context.Context) ([]Event, error) {
	reqCtx, cancel := context.WithTimeout(ctx, pollTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, c.baseURL+"/poll", nil)
	if err != nil {
		return nil, fmt.Errorf("creating poll request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("polling bridge: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bridge poll status %d", resp.StatusCode)
	}

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding poll response: %w", err)
	}
	return events, nil
}

// handle decodes one bridge event and dispatches it. Unknown event names
// are logged and dropped.
func (c *Client) handle(ctx context.Context, ev Event) bool {
	switch ev.Event {
	case "order:update":
		item, err := orderUpdateItem(ev.Data)
		if err != nil {
			applog.LogWarn(ctx, "malformed order:update event", zap.Error(err))
			return false
		}
		c.dispatch(item)
		return true
	default:
		applog.LogInfo(ctx, "ignoring unknown realtime event", zap.String("event", ev.Event))
		return false
	}
}

func orderUpdateItem(data json.RawMessage) (notification.Item, error) {
	var payload struct {
		OrderID   string    `json:"orderId"`
		Status    string    `json:"status"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return notification.Item{}, err
	}
	if payload.OrderID == "" {
		return notification.Item{}, fmt.Errorf("order:update missing orderId")
	}

	when := payload.UpdatedAt
	if when.IsZero() {
		when = time.Now().UTC()
	}

	item := notification.Item{
		Type:    notification.KindOrder,
		Title:   "Order Update",
		Message: fmt.Sprintf("Order #%s is now %s", payload.OrderID, payload.Status),
		OrderID: payload.OrderID,
		Date:    timeutil.NewTime(when),
	}
	item.Defaults(when)
	return item, nil
}
