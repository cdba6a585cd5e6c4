package onesignal

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
)

// MockService implements Service in memory for tests and local development.
type MockService struct {
	mu    sync.RWMutex
	users map[string]bool // externalID -> subscribed
	sent  int
}

// NewMockService creates an empty mock provider.
func NewMockService() *MockService {
	return &MockService{users: make(map[string]bool)}
}

// AddUser registers an external id with the given subscription state.
func (m *MockService) AddUser(externalID string, subscribed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[externalID] = subscribed
}

func (m *MockService) CheckUser(_ context.Context, externalID string) (*UserStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	subscribed, ok := m.users[externalID]
	if !ok {
		return &UserStatus{Exists: false, Data: json.RawMessage("null")}, nil
	}
	return &UserStatus{
		Exists:     true,
		Subscribed: subscribed,
		Data:       json.RawMessage(`{"identity":{"external_id":` + strconv.Quote(externalID) + `}}`),
	}, nil
}

func (m *MockService) ViewPlayer(ctx context.Context, externalID string) (*UserStatus, error) {
	return m.CheckUser(ctx, externalID)
}

func (m *MockService) ListMessages(_ context.Context, _ MessagesParams) (json.RawMessage, error) {
	return json.RawMessage(`{"notifications":[],"total_count":0}`), nil
}

func (m *MockService) SendTest(_ context.Context) (json.RawMessage, error) {
	m.mu.Lock()
	m.sent++
	m.mu.Unlock()
	return json.RawMessage(`{"id":"mock-notification"}`), nil
}

// SentCount reports how many test sends have been issued.
func (m *MockService) SentCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sent
}

// Compile-time interface check
var _ Service = (*MockService)(nil)
