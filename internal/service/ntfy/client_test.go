package ntfy

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

type capturedPublish struct {
	path     string
	body     string
	title    string
	priority string
	tags     string
}

func newCaptureServer(t *testing.T, status int, captured *capturedPublish) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("reading request body: %v", err)
		}
		captured.path = r.URL.Path
		captured.body = string(body)
		captured.title = r.Header.Get("Title")
		captured.priority = r.Header.Get("Priority")
		captured.tags = r.Header.Get("Tags")
		w.WriteHeader(status)
	}))
}

func TestPublishAppliesDefaults(t *testing.T) {
	var captured capturedPublish
	server := newCaptureServer(t, http.StatusOK, &captured)
	defer server.Close()

	client := NewClient(server.Client(),
		WithBaseURL(server.URL),
		WithDefaultTopic("storefront-ops"),
	)

	err := client.Publish(context.Background(), PublishParams{Message: "Order #1 shipped"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.path != "/storefront-ops" {
		t.Errorf("expected path /storefront-ops, got %s", captured.path)
	}
	if captured.body != "Order #1 shipped" {
		t.Errorf("expected message body, got %q", captured.body)
	}
	if captured.title != "Order Update" {
		t.Errorf("expected default title Order Update, got %q", captured.title)
	}
	if captured.priority != "default" {
		t.Errorf("expected default priority, got %q", captured.priority)
	}
	if captured.tags != "" {
		t.Errorf("expected no Tags header, got %q", captured.tags)
	}
}

func TestPublishExplicitFieldsWin(t *testing.T) {
	var captured capturedPublish
	server := newCaptureServer(t, http.StatusOK, &captured)
	defer server.Close()

	client := NewClient(server.Client(),
		WithBaseURL(server.URL),
		WithDefaultTopic("storefront-ops"),
	)

	err := client.Publish(context.Background(), PublishParams{
		Message:  "Payment failed",
		Title:    "Payment Alert",
		Priority: "urgent",
		Topic:    "payments",
		Tags:     []string{"warning", "card"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured.path != "/payments" {
		t.Errorf("expected path /payments, got %s", captured.path)
	}
	if captured.title != "Payment Alert" {
		t.Errorf("expected title Payment Alert, got %q", captured.title)
	}
	if captured.priority != "urgent" {
		t.Errorf("expected priority urgent, got %q", captured.priority)
	}
	if captured.tags != "warning,card" {
		t.Errorf("expected tags warning,card, got %q", captured.tags)
	}
}

func TestPublishMissingTopic(t *testing.T) {
	client := NewClient(http.DefaultClient)

	err := client.Publish(context.Background(), PublishParams{Message: "no topic anywhere"})
	if !errors.Is(err, ErrMissingTopic) {
		t.Fatalf("expected ErrMissingTopic, got %v", err)
	}
}

func TestPublishUpstreamRejection(t *testing.T) {
	var captured capturedPublish
	server := newCaptureServer(t, http.StatusTooManyRequests, &captured)
	defer server.Close()

	client := NewClient(server.Client(),
		WithBaseURL(server.URL),
		WithDefaultTopic("storefront-ops"),
	)

	err := client.Publish(context.Background(), PublishParams{Message: "rate limited"})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected *UpstreamError, got %T", err)
	}
	if upstreamErr.Status != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", upstreamErr.Status)
	}
}

func TestPublishTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := NewClient(http.DefaultClient,
		WithBaseURL(serverURL),
		WithDefaultTopic("storefront-ops"),
	)

	err := client.Publish(context.Background(), PublishParams{Message: "bridge down"})
	if err == nil {
		t.Fatal("expected transport error, got nil")
	}
	if errors.Is(err, ErrUpstream) {
		t.Errorf("transport failure must not report ErrUpstream: %v", err)
	}
}
