// Package push manages the device's push-subscription lifecycle against the
// push provider: login (associate external user id), logout, and the
// permission prompt.
//
// The provider SDK may become ready only after the client is constructed.
// Instead of buffering commands into an unbounded queue, operations wait on
// an explicit ready gate and run a bounded number of attempts once it
// opens.
package push

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	applog "github.com/versocommerce/storefront/internal/platform/logging"
)

const (
	defaultMaxAttempts  = 3
	defaultReadyTimeout = 10 * time.Second
	defaultRetryBackoff = 500 * time.Millisecond
)

// Client drives a Provider. Login is idempotent per external id within the
// client's lifetime; a failed login resets the guard so the caller may
// retry.
type Client struct {
	provider Provider

	readyOnce sync.Once
	ready     chan struct{}

	mu         sync.Mutex
	loggedInAs string

	maxAttempts  int
	readyTimeout time.Duration
	retryBackoff time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithMaxAttempts bounds provider-call retries per operation.
func WithMaxAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithReadyTimeout bounds how long operations wait for the ready gate.
func WithReadyTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.readyTimeout = d
		}
	}
}

// WithRetryBackoff sets the base delay between retry attempts.
func WithRetryBackoff(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.retryBackoff = d
		}
	}
}

// NewClient creates a subscription client. The gate starts closed; call
// SetReady once the provider has initialized.
func NewClient(provider Provider, opts ...Option) *Client {
	c := &Client{
		provider:     provider,
		ready:        make(chan struct{}),
		maxAttempts:  defaultMaxAttempts,
		readyTimeout: defaultReadyTimeout,
		retryBackoff: defaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetReady opens the gate. Safe to call more than once.
func (c *Client) SetReady() {
	c.readyOnce.Do(func() { close(c.ready) })
}

// Ready exposes the gate so callers can await provider initialization.
func (c *Client) Ready() <-chan struct{} {
	return c.ready
}

func (c *Client) awaitReady(ctx context.Context) error {
	timer := time.NewTimer(c.readyTimeout)
	defer timer.Stop()
	select {
	case <-c.ready:
		return nil
	case <-timer.C:
		return context.DeadlineExceeded
	case <-ctx.Done():
		return ctx.Err()
	}
}

// withRetry runs fn up to maxAttempts times with linear backoff.
func (c *Client) withRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	var err error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		applog.LogWarn(ctx, "push provider call failed",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == c.maxAttempts {
			break
		}
		select {
		case <-time.After(time.Duration(attempt) * c.retryBackoff):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// Login associates the device with the external user identifier, then
// requests notification permission. A second call with the same id is a
// no-op; on failure the guard resets so a later call retries.
func (c *Client) Login(ctx context.Context, externalID string) error {
	c.mu.Lock()
	if c.loggedInAs == externalID {
		c.mu.Unlock()
		return nil
	}
	c.loggedInAs = externalID
	c.mu.Unlock()

	fail := func(err error) error {
		c.mu.Lock()
		if c.loggedInAs == externalID {
			c.loggedInAs = ""
		}
		c.mu.Unlock()
		applog.LogError(ctx, "push login failed", err, zap.String("externalId", externalID))
		return err
	}

	if err := c.awaitReady(ctx); err != nil {
		return fail(err)
	}

	if err := c.withRetry(ctx, "set_external_user_id", func(ctx context.Context) error {
		return c.provider.SetExternalUserID(ctx, externalID)
	}); err != nil {
		return fail(err)
	}

	// Permission is best effort: a dismissed prompt must not undo the
	// identity association.
	if err := c.provider.RequestPermission(ctx); err != nil {
		applog.LogWarn(ctx, "push permission request failed", zap.Error(err))
	}

	applog.LogAuditEvent(ctx, "login", externalID, "push_subscription", externalID, "success", nil)
	return nil
}

// Logout disassociates the device from any logged-in identifier.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.awaitReady(ctx); err != nil {
		return err
	}

	if err := c.withRetry(ctx, "remove_external_user_id", func(ctx context.Context) error {
		return c.provider.RemoveExternalUserID(ctx)
	}); err != nil {
		applog.LogError(ctx, "push logout failed", err)
		return err
	}

	c.mu.Lock()
	c.loggedInAs = ""
	c.mu.Unlock()
	return nil
}

// LoggedInAs reports the currently associated external id, if any.
func (c *Client) LoggedInAs() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loggedInAs
}
