package orders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/versocommerce/storefront/internal/service/bridge"
)

type stubNotifier struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (n *stubNotifier) Emit(context.Context, string, any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls++
	return n.err
}

func (n *stubNotifier) EmitOrderUpdate(ctx context.Context, _, _ string) error {
	return n.Emit(ctx, "order:update", nil)
}

var _ bridge.Notifier = (*stubNotifier)(nil)

func TestUpdateStatusSuccess(t *testing.T) {
	store := NewMemoryStore()
	notifier := &stubNotifier{}
	svc := NewService(store, notifier)

	result, err := svc.UpdateStatus(context.Background(), "ORD-1042", "shipped")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SocketError != "" {
		t.Errorf("expected empty socket error, got %q", result.SocketError)
	}
	if result.Order.Status != "shipped" {
		t.Errorf("expected status shipped, got %s", result.Order.Status)
	}

	stored, ok := store.Get(context.Background(), "ORD-1042")
	if !ok {
		t.Fatal("expected order to be persisted")
	}
	if stored.Status != "shipped" {
		t.Errorf("expected persisted status shipped, got %s", stored.Status)
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	svc := NewService(NewMemoryStore(), &stubNotifier{})

	if _, err := svc.UpdateStatus(context.Background(), "", "shipped"); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("missing orderID: expected ErrInvalidOrder, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "ORD-1", ""); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("missing status: expected ErrInvalidOrder, got %v", err)
	}
}

func TestUpdateStatusUnreachableBridgeIsPartialSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	store := NewMemoryStore()
	svc := NewService(store, bridge.NewClient(http.DefaultClient, serverURL))

	result, err := svc.UpdateStatus(context.Background(), "ORD-1042", "delivered")
	if err != nil {
		t.Fatalf("unreachable bridge must not fail the update, got %v", err)
	}
	if result.SocketError == "" {
		t.Fatal("expected socket error detail")
	}
	if !strings.Contains(result.SocketError, "unreachable") {
		t.Errorf("expected unreachable mention, got %q", result.SocketError)
	}
	if result.BridgeRejected {
		t.Error("a transport failure is not a rejection")
	}

	if _, ok := store.Get(context.Background(), "ORD-1042"); !ok {
		t.Error("expected order persisted despite bridge failure")
	}
}

func TestUpdateStatusBridgeRejectionIsPartialSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad event", http.StatusBadRequest)
	}))
	defer server.Close()

	svc := NewService(NewMemoryStore(), bridge.NewClient(server.Client(), server.URL))

	result, err := svc.UpdateStatus(context.Background(), "ORD-7", "processing")
	if err != nil {
		t.Fatalf("bridge rejection must not fail the update, got %v", err)
	}
	if !strings.Contains(result.SocketError, "status=400") {
		t.Errorf("expected upstream status in socket error, got %q", result.SocketError)
	}
	if !result.BridgeRejected {
		t.Error("expected BridgeRejected for a non-2xx bridge answer")
	}
}

func TestUpdateStatusCoalescesIdenticalSubmissions(t *testing.T) {
	notifier := &stubNotifier{}
	svc := NewService(NewMemoryStore(), notifier)

	// A mix of identical and distinct submissions; identical concurrent
	// ones may share a flight, distinct ones never do.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.UpdateStatus(context.Background(), "ORD-1", "shipped"); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	notifier.mu.Lock()
	calls := notifier.calls
	notifier.mu.Unlock()
	if calls < 1 || calls > 8 {
		t.Errorf("expected between 1 and 8 emits, got %d", calls)
	}
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store := NewMemoryStore()
	if _, ok := store.Get(context.Background(), "missing"); ok {
		t.Error("expected ok=false for unknown order")
	}
}
