// Package orders persists order-status changes and notifies connected
// clients through the socket bridge.
package orders

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/versocommerce/storefront/internal/service/bridge"
)

// Service errors
var (
	ErrInvalidOrder = errors.New("order id and status are required")
)

// Order is a persisted order-status record.
type Order struct {
	ID        string
	Status    string
	UpdatedAt time.Time
}

// Store persists order-status records.
type Store interface {
	Put(ctx context.Context, orderID, status string) (*Order, error)
	Get(ctx context.Context, orderID string) (*Order, bool)
}

// MemoryStore is the in-memory Store used until a real order database is
// wired behind this gateway.
type MemoryStore struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]*Order)}
}

func (s *MemoryStore) Put(_ context.Context, orderID, status string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := &Order{ID: orderID, Status: status, UpdatedAt: time.Now().UTC()}
	s.orders[orderID] = o
	return o, nil
}

func (s *MemoryStore) Get(_ context.Context, orderID string) (*Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[orderID]
	return o, ok
}

// Compile-time interface check
var _ Store = (*MemoryStore)(nil)

// Result reports an order-status update. SocketError is non-empty when the
// persistence write succeeded but the bridge could not be notified; the
// update is still a success in that case.
type Result struct {
	Order       *Order
	SocketError string
	// BridgeRejected is true when the bridge answered with a non-2xx
	// status, as opposed to being unreachable.
	BridgeRejected bool
}

// Service applies order-status updates.
type Service struct {
	store    Store
	notifier bridge.Notifier
	group    singleflight.Group
}

// NewService creates an order-status service.
func NewService(store Store, notifier bridge.Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// UpdateStatus writes the status change and then emits an order:update event
// to the socket bridge. Bridge failures of any kind degrade to a partial
// success carried in Result.SocketError; only a store failure is an error.
// Concurrent identical submissions share one flight.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (*Result, error) {
	if orderID == "" || status == "" {
		return nil, ErrInvalidOrder
	}

	v, err, _ := s.group.Do(orderID+"\x00"+status, func() (any, error) {
		order, err := s.store.Put(ctx, orderID, status)
		if err != nil {
			return nil, err
		}

		result := &Result{Order: order}
		if err := s.notifier.EmitOrderUpdate(ctx, orderID, status); err != nil {
			var ue *bridge.UpstreamError
			if errors.As(err, &ue) {
				result.SocketError = ue.Error()
				result.BridgeRejected = true
			} else {
				result.SocketError = "socket bridge was unreachable: " + err.Error()
			}
		}
		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}
