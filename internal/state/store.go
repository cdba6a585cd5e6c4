// Package state implements the session state store backing a storefront
// client: independent cart, profile, loading, alert, and notification slices
// behind a single synchronous dispatch lock, with change notifications for
// render subscribers.
package state

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Slice identifies an independently addressable partition of the store.
type Slice string

const (
	SliceCart          Slice = "cart"
	SliceProfile       Slice = "profile"
	SliceLoading       Slice = "loading"
	SliceAlert         Slice = "alert"
	SliceNotifications Slice = "notifications"
)

// Subscriber receives the name of the slice that changed. Callbacks run
// after the mutation completes and outside the store lock, in dispatch
// order.
type Subscriber func(Slice)

// Store is the process-wide reactive container. Every mutation is applied
// atomically under one lock, so slice updates never interleave and no
// dispatch observes a partially applied change.
type Store struct {
	mu sync.Mutex

	cart          cartState
	profile       ProfileState
	loading       LoadingState
	alert         *Alert
	notifications notificationState

	subMu sync.RWMutex
	subs  []Subscriber

	flight singleflight.Group
	deps   storeDeps
}

// storeDeps holds the collaborators the profile slice needs at fetch time.
type storeDeps struct {
	credentials CredentialSource
	fetcher     ProfileFetcher
}

// Option configures a Store.
type Option func(*Store)

// WithCredentialSource sets where the profile slice reads the bearer
// credential from.
func WithCredentialSource(src CredentialSource) Option {
	return func(s *Store) {
		s.deps.credentials = src
	}
}

// WithProfileFetcher sets the backend call used by the profile slice.
func WithProfileFetcher(f ProfileFetcher) Option {
	return func(s *Store) {
		s.deps.fetcher = f
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{}
	s.notifications.limit = defaultNotificationLimit
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a change listener. There is no unsubscribe; a store
// lives as long as the session it backs.
func (s *Store) Subscribe(fn Subscriber) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

// notify fans a slice-change event out to subscribers. Must be called
// without holding s.mu.
func (s *Store) notify(slice Slice) {
	s.subMu.RLock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.subMu.RUnlock()

	for _, fn := range subs {
		fn(slice)
	}
}
