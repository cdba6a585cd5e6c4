package state

import (
	"context"
	"errors"

	applog "github.com/versocommerce/storefront/internal/platform/logging"
	"github.com/versocommerce/storefront/internal/service/profile"
)

// Fetch preconditions.
var (
	// ErrNoCredential means no auth token was available; the fetch
	// short-circuits before any network call is made.
	ErrNoCredential = errors.New("no auth credential available")

	// ErrNotConfigured means the store was built without a fetcher.
	ErrNotConfigured = errors.New("profile fetcher not configured")
)

// CredentialSource reads the bearer credential from durable client storage
// at call time.
type CredentialSource interface {
	AuthToken() (string, bool)
}

// CredentialFunc adapts a function to CredentialSource.
type CredentialFunc func() (string, bool)

func (f CredentialFunc) AuthToken() (string, bool) { return f() }

// ProfileFetcher loads the profile for a bearer credential from the backend.
type ProfileFetcher func(ctx context.Context, token string) (*profile.Profile, error)

// ProfileState is the profile slice. Error holds the user-displayable
// message of the last failed fetch; there is no automatic retry.
type ProfileState struct {
	IsLoading bool
	Profile   *profile.Profile
	Error     string
}

// Profile returns a snapshot of the profile slice.
func (s *Store) Profile() ProfileState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// FetchProfile runs the async profile-fetch contract: isLoading flips to
// true, the backend is called with the credential read at call time, and
// the slice lands on either the profile or the error message. A missing
// credential fails before the network is touched. Concurrent calls for the
// same credential share one in-flight request.
func (s *Store) FetchProfile(ctx context.Context) error {
	if s.deps.fetcher == nil {
		return ErrNotConfigured
	}

	token := ""
	if s.deps.credentials != nil {
		var ok bool
		token, ok = s.deps.credentials.AuthToken()
		if !ok || token == "" {
			s.setProfileError(ErrNoCredential.Error())
			return ErrNoCredential
		}
	} else {
		s.setProfileError(ErrNoCredential.Error())
		return ErrNoCredential
	}

	s.mu.Lock()
	s.profile.IsLoading = true
	s.mu.Unlock()
	s.notify(SliceProfile)

	v, err, shared := s.flight.Do("profile\x00"+token, func() (any, error) {
		return s.deps.fetcher(ctx, token)
	})
	if shared {
		applog.LogInfo(ctx, "profile fetch coalesced with in-flight request")
	}
	if err != nil {
		applog.LogError(ctx, "profile fetch failed", err)
		s.setProfileError(err.Error())
		return err
	}

	s.mu.Lock()
	s.profile = ProfileState{Profile: v.(*profile.Profile)}
	s.mu.Unlock()
	s.notify(SliceProfile)
	return nil
}

func (s *Store) setProfileError(msg string) {
	s.mu.Lock()
	s.profile.IsLoading = false
	s.profile.Error = msg
	s.mu.Unlock()
	s.notify(SliceProfile)
}

// ClearProfile resets the profile slice, e.g. on logout.
func (s *Store) ClearProfile() {
	s.mu.Lock()
	s.profile = ProfileState{}
	s.mu.Unlock()
	s.notify(SliceProfile)
}
