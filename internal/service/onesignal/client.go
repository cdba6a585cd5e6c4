package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	applog "github.com/versocommerce/storefront/internal/platform/logging"
)

const (
	defaultBaseURL = "https://api.onesignal.com"
	userAgent      = "storefront-gateway"

	// maxErrorBody bounds how much of an upstream error body is retained.
	maxErrorBody = 4 << 10
)

// Client implements Service using the OneSignal REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	restKey    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (useful for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithCredentials sets the app id and REST API key.
func WithCredentials(appID, restKey string) Option {
	return func(c *Client) {
		c.appID = appID
		c.restKey = restKey
	}
}

// NewClient creates a new OneSignal API client.
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

func (c *Client) checkCredentials() error {
	if c.appID == "" || c.restKey == "" {
		return ErrMissingCredentials
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Basic "+c.restKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

// readBody drains the response body so the raw provider payload can be
// passed through to callers.
func readBody(resp *http.Response) (json.RawMessage, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("reading onesignal response: %w", err)
	}
	if len(data) == 0 {
		data = []byte("null")
	}
	return json.RawMessage(data), nil
}

func upstreamErrorFromResponse(ctx context.Context, resp *http.Response) *UpstreamError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	kind := UpstreamErrorKindUpstream
	cause := ErrUpstream
	switch resp.StatusCode {
	case http.StatusNotFound:
		kind = UpstreamErrorKindNotFound
		cause = ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = UpstreamErrorKindUnauthorized
	}
	applog.LogWarn(ctx, "onesignal api error",
		zap.Int("status", resp.StatusCode),
		zap.String("kind", string(kind)),
	)
	return &UpstreamError{
		Kind:   kind,
		Status: resp.StatusCode,
		Body:   string(body),
		cause:  cause,
	}
}

func (c *Client) userByExternalID(ctx context.Context, externalID string) (*UserStatus, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	path := "/apps/" + url.PathEscape(c.appID) + "/users/by/external_id/" + url.PathEscape(externalID)
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching onesignal user: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		// Unknown external id is a valid answer, not a failure.
		return &UserStatus{Exists: false, Subscribed: false, Data: json.RawMessage("null")}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, upstreamErrorFromResponse(ctx, resp)
	}

	data, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	return &UserStatus{
		Exists:     true,
		Subscribed: anySubscriptionEnabled(data),
		Data:       data,
	}, nil
}

// anySubscriptionEnabled inspects the raw user payload for at least one
// enabled push subscription.
func anySubscriptionEnabled(data json.RawMessage) bool {
	var user struct {
		Subscriptions []struct {
			Type    string `json:"type"`
			Enabled bool   `json:"enabled"`
		} `json:"subscriptions"`
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return false
	}
	for _, s := range user.Subscriptions {
		if s.Enabled {
			return true
		}
	}
	return false
}

func (c *Client) CheckUser(ctx context.Context, externalID string) (*UserStatus, error) {
	return c.userByExternalID(ctx, externalID)
}

func (c *Client) ViewPlayer(ctx context.Context, externalID string) (*UserStatus, error) {
	return c.userByExternalID(ctx, externalID)
}

func (c *Client) ListMessages(ctx context.Context, params MessagesParams) (json.RawMessage, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	path := "/notifications"
	q := url.Values{"app_id": {c.appID}}
	if params.ID != "" {
		path += "/" + url.PathEscape(params.ID)
	} else {
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
		if params.Offset > 0 {
			q.Set("offset", strconv.Itoa(params.Offset))
		}
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching onesignal messages: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, upstreamErrorFromResponse(ctx, resp)
	}
	return readBody(resp)
}

func (c *Client) SendTest(ctx context.Context) (json.RawMessage, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"app_id":            c.appID,
		"included_segments": []string{"Subscribed Users"},
		"headings":          map[string]string{"en": "Test Notification"},
		"contents":          map[string]string{"en": "This is a test push from the storefront gateway."},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/notifications", nil, payload)
	if err != nil {
		return nil, fmt.Errorf("sending test notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, upstreamErrorFromResponse(ctx, resp)
	}
	return readBody(resp)
}

// Compile-time interface check
var _ Service = (*Client)(nil)
