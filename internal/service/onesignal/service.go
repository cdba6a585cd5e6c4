package onesignal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrMissingCredentials = errors.New("onesignal credentials not configured")
	ErrNotFound           = errors.New("onesignal resource not found")
	ErrUpstream           = errors.New("onesignal upstream error")
)

// UpstreamErrorKind classifies OneSignal upstream failures.
type UpstreamErrorKind string

const (
	UpstreamErrorKindNotFound     UpstreamErrorKind = "not_found"
	UpstreamErrorKindUnauthorized UpstreamErrorKind = "unauthorized"
	UpstreamErrorKindUpstream     UpstreamErrorKind = "upstream"
)

// UpstreamError includes OneSignal response metadata for error mapping.
type UpstreamError struct {
	Kind   UpstreamErrorKind
	Status int
	Body   string
	cause  error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "onesignal upstream error"
	}
	if e.cause == nil {
		return fmt.Sprintf("onesignal upstream error (kind=%s status=%d)", e.Kind, e.Status)
	}
	return fmt.Sprintf("onesignal upstream error (kind=%s status=%d): %v", e.Kind, e.Status, e.cause)
}

// Unwrap enables errors.Is/As against sentinel service errors.
func (e *UpstreamError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// UserStatus is the result of an external-id lookup against the provider.
type UserStatus struct {
	Exists     bool
	Subscribed bool
	// Data is the raw provider payload, passed through to the caller.
	Data json.RawMessage
}

// MessagesParams filters the provider's message history listing.
type MessagesParams struct {
	// ID selects a single message when set; Limit/Offset page the listing
	// otherwise.
	ID     string
	Limit  int
	Offset int
}

// Service defines the OneSignal operations the relay endpoints proxy.
type Service interface {
	// CheckUser looks up a user by external identifier. A provider 404 is
	// reported as Exists=false, not an error.
	CheckUser(ctx context.Context, externalID string) (*UserStatus, error)

	// ViewPlayer reports whether any device associated with the external
	// identifier holds an enabled push subscription. A provider 404 means
	// Subscribed=false.
	ViewPlayer(ctx context.Context, externalID string) (*UserStatus, error)

	// ListMessages returns the raw provider payload for message history.
	ListMessages(ctx context.Context, params MessagesParams) (json.RawMessage, error)

	// SendTest pushes the fixed smoke-test notification and returns the raw
	// provider response.
	SendTest(ctx context.Context) (json.RawMessage, error)
}
