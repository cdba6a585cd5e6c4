package logging

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerBindsRequestID(t *testing.T) {
	var seenID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := RequestLogger()(handler)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(context.WithValue(req.Context(), chimiddleware.RequestIDKey, "req-789"))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if seenID != "req-789" {
		t.Fatalf("expected request id req-789 in context, got %q", seenID)
	}
}

func TestRequestLoggerWithoutRequestID(t *testing.T) {
	var logger *zap.Logger
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger = LoggerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := RequestLogger()(handler)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if logger == nil {
		t.Fatal("expected a logger in context even without a request id")
	}
}

func TestAccessLoggerWritesSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})

	// Bind the observed logger upstream of the access logger, the way
	// RequestLogger does in the real stack.
	withLogger := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(contextWithLogger(r.Context(), zap.New(core))))
		})
	}

	h := withLogger(AccessLogger()(handler))
	req := httptest.NewRequest(http.MethodPost, "/api/orders/update-status", nil)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 access log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "POST" {
		t.Errorf("expected method POST, got %v", fields["method"])
	}
	if fields["path"] != "/api/orders/update-status" {
		t.Errorf("expected path recorded, got %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusCreated) {
		t.Errorf("expected status 201, got %v", fields["status"])
	}
	if fields["bytes"] != int64(len("created")) {
		t.Errorf("expected bytes %d, got %v", len("created"), fields["bytes"])
	}
}
