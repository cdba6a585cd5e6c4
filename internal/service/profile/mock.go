package profile

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MockProfileService implements Service in memory for unit tests and local
// development.
type MockProfileService struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewMockProfileService creates a new mock service.
func NewMockProfileService() *MockProfileService {
	return &MockProfileService{
		profiles: make(map[string]*Profile),
	}
}

func (m *MockProfileService) Create(_ context.Context, userID string, params CreateParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.profiles[userID]; exists {
		return nil, ErrAlreadyExists
	}

	now := time.Now().UTC()
	p := &Profile{
		ID:        userID,
		Firstname: params.Firstname,
		Lastname:  params.Lastname,
		Email:     strings.ToLower(strings.TrimSpace(params.Email)),
		Phones:    normalizePhones(params.Phones),
		Addresses: append([]Address(nil), params.Addresses...),
		Marketing: params.Marketing,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.profiles[userID] = p
	return p, nil
}

func (m *MockProfileService) Get(_ context.Context, userID string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *MockProfileService) Update(_ context.Context, userID string, params UpdateParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}

	if params.Firstname != nil {
		p.Firstname = *params.Firstname
	}
	if params.Lastname != nil {
		p.Lastname = *params.Lastname
	}
	if params.Email != nil {
		p.Email = strings.ToLower(strings.TrimSpace(*params.Email))
	}
	if params.Phones != nil {
		p.Phones = normalizePhones(*params.Phones)
	}
	if params.Addresses != nil {
		p.Addresses = append([]Address(nil), (*params.Addresses)...)
	}
	if params.Marketing != nil {
		p.Marketing = *params.Marketing
	}
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

func (m *MockProfileService) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.profiles[userID]; !exists {
		return ErrNotFound
	}
	delete(m.profiles, userID)
	return nil
}

// Clear removes all profiles (useful for test cleanup).
func (m *MockProfileService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]*Profile)
}

// Compile-time interface check
var _ Service = (*MockProfileService)(nil)
