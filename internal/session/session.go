// Package session assembles the client-side runtime for one storefront
// session: the state store, the push-subscription client, and the real-time
// event client whose order updates land in the store.
package session

import (
	"context"

	"github.com/versocommerce/storefront/internal/notification"
	"github.com/versocommerce/storefront/internal/push"
	"github.com/versocommerce/storefront/internal/realtime"
	"github.com/versocommerce/storefront/internal/state"
)

// Config collects the collaborators a session needs.
type Config struct {
	// BridgeURL is the socket bridge base URL the realtime client connects to.
	BridgeURL string
	// Provider backs the push-subscription client.
	Provider push.Provider

	StoreOptions    []state.Option
	RealtimeOptions []realtime.Option
	PushOptions     []push.Option
}

// Session owns the composed runtime. Each order:update the realtime client
// decodes is pushed onto the store's notification list and raises the
// transient alert, so subscribers render both.
type Session struct {
	Store    *state.Store
	Realtime *realtime.Client
	Push     *push.Client
}

// New builds the store, the push client, and the realtime client with a
// dispatch bound to the store.
func New(cfg Config) *Session {
	store := state.New(cfg.StoreOptions...)
	s := &Session{
		Store: store,
		Push:  push.NewClient(cfg.Provider, cfg.PushOptions...),
	}
	s.Realtime = realtime.NewClient(cfg.BridgeURL, func(item notification.Item) {
		store.PushNotification(item)
		store.ShowAlert(item.Message, alertSeverity(item.Status))
	}, cfg.RealtimeOptions...)
	return s
}

// Run drives the realtime connection until the context is canceled.
func (s *Session) Run(ctx context.Context) {
	s.Realtime.Run(ctx)
}

// alertSeverity maps a notification display status onto an alert severity.
func alertSeverity(status string) state.Severity {
	switch status {
	case string(state.SeveritySuccess):
		return state.SeveritySuccess
	case string(state.SeverityWarning):
		return state.SeverityWarning
	case string(state.SeverityError):
		return state.SeverityError
	default:
		return state.SeverityInfo
	}
}
