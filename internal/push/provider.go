package push

import (
	"context"
	"sync"
)

// Provider is the device-facing push SDK surface the subscription client
// drives: associate or clear the external user identifier and prompt for
// notification permission.
type Provider interface {
	SetExternalUserID(ctx context.Context, externalID string) error
	RemoveExternalUserID(ctx context.Context) error
	RequestPermission(ctx context.Context) error
}

// MockProvider records calls for tests. Errs are consumed one per
// SetExternalUserID call, which makes transient-failure retries easy to
// script.
type MockProvider struct {
	mu sync.Mutex

	ExternalID        string
	SetCalls          int
	RemoveCalls       int
	PermissionedCalls int
	Errs              []error
}

func (m *MockProvider) nextErr() error {
	if len(m.Errs) == 0 {
		return nil
	}
	err := m.Errs[0]
	m.Errs = m.Errs[1:]
	return err
}

func (m *MockProvider) SetExternalUserID(_ context.Context, externalID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if err := m.nextErr(); err != nil {
		return err
	}
	m.ExternalID = externalID
	return nil
}

func (m *MockProvider) RemoveExternalUserID(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls++
	m.ExternalID = ""
	return nil
}

func (m *MockProvider) RequestPermission(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PermissionedCalls++
	return nil
}

// Snapshot returns the current external id under the mock's lock.
func (m *MockProvider) Snapshot() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ExternalID
}

// Compile-time interface check
var _ Provider = (*MockProvider)(nil)
