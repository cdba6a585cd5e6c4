// Package ntfy forwards operational alerts to an ntfy.sh topic as plain-text
// POST requests.
package ntfy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	applog "github.com/versocommerce/storefront/internal/platform/logging"
)

const (
	defaultBaseURL = "https://ntfy.sh"

	// DefaultTitle is used when the caller does not provide one.
	DefaultTitle = "Order Update"
	// DefaultPriority matches ntfy's own default level.
	DefaultPriority = "default"
)

// Service errors
var (
	ErrMissingTopic = errors.New("ntfy topic not configured")
	ErrUpstream     = errors.New("ntfy upstream error")
)

// UpstreamError carries the upstream status for error mapping.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ntfy upstream error (status=%d)", e.Status)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// PublishParams describes one alert. Message is required; everything else
// falls back to defaults.
type PublishParams struct {
	Message  string
	Title    string
	Priority string
	Topic    string
	Tags     []string
}

// Publisher publishes alerts. Satisfied by Client and by test fakes.
type Publisher interface {
	Publish(ctx context.Context, params PublishParams) error
}

// Client implements Publisher against the ntfy HTTP API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	defaultTopic string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithDefaultTopic sets the topic used when the caller supplies none.
func WithDefaultTopic(topic string) Option {
	return func(c *Client) {
		c.defaultTopic = topic
	}
}

// NewClient creates a new ntfy client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Publish posts the message body to the topic endpoint. Title and Priority
// travel as headers per the ntfy publish protocol.
func (c *Client) Publish(ctx context.Context, params PublishParams) error {
	topic := params.Topic
	if topic == "" {
		topic = c.defaultTopic
	}
	if topic == "" {
		return ErrMissingTopic
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/"+url.PathEscape(topic), strings.NewReader(params.Message))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	title := params.Title
	if title == "" {
		title = DefaultTitle
	}
	priority := params.Priority
	if priority == "" {
		priority = DefaultPriority
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Title", title)
	req.Header.Set("Priority", priority)
	if len(params.Tags) > 0 {
		req.Header.Set("Tags", strings.Join(params.Tags, ","))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("publishing alert: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		applog.LogWarn(ctx, "ntfy publish rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("topic", topic),
		)
		return &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// Compile-time interface check
var _ Publisher = (*Client)(nil)
