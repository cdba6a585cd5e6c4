package state

import (
	"errors"
	"time"

	"github.com/versocommerce/storefront/internal/service/profile"
)

// ErrProfileIncomplete is returned by CommitTemporary when the owning
// profile has no phone number or no address on file.
var ErrProfileIncomplete = errors.New("profile needs a phone number and an address before checkout items can be saved")

// CartEntry is one product line in the cart.
type CartEntry struct {
	ID        string
	Name      string
	Price     float64
	Quantity  int
	Timestamp time.Time
}

// Product is the subset of catalog data the cart needs.
type Product struct {
	ID    string
	Name  string
	Price float64
}

// cartState holds the permanent cart plus the temporary holding area for
// entries added before the profile gate is satisfied.
type cartState struct {
	items     []CartEntry
	temporary []CartEntry
}

// CartSnapshot is a copy of the cart slice, safe to read after return.
type CartSnapshot struct {
	Items     []CartEntry
	Temporary []CartEntry
}

func copyEntries(entries []CartEntry) []CartEntry {
	out := make([]CartEntry, len(entries))
	copy(out, entries)
	return out
}

// Cart returns a snapshot of the cart slice.
func (s *Store) Cart() CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartSnapshot{
		Items:     copyEntries(s.cart.items),
		Temporary: copyEntries(s.cart.temporary),
	}
}

// AddTemporary puts a product into the temporary holding area. Adding the
// same product again increases its quantity rather than duplicating the
// line.
func (s *Store) AddTemporary(p Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}

	s.mu.Lock()
	added := false
	for i := range s.cart.temporary {
		if s.cart.temporary[i].ID == p.ID {
			s.cart.temporary[i].Quantity += quantity
			added = true
			break
		}
	}
	if !added {
		s.cart.temporary = append(s.cart.temporary, CartEntry{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  quantity,
			Timestamp: time.Now().UTC(),
		})
	}
	s.mu.Unlock()

	s.notify(SliceCart)
}

// Clear empties the permanent cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.cart.items = nil
	s.mu.Unlock()

	s.notify(SliceCart)
}

// ClearTemporary drops the holding area without touching the permanent
// cart.
func (s *Store) ClearTemporary() {
	s.mu.Lock()
	s.cart.temporary = nil
	s.mu.Unlock()

	s.notify(SliceCart)
}

// CommitTemporary merges the holding area into the permanent cart and
// empties it. The profile must be complete (at least one phone and one
// address) at commit time; this is a precondition gate, and on failure no
// state changes. Committing an empty holding area is a no-op that still
// succeeds.
func (s *Store) CommitTemporary(p *profile.Profile) error {
	s.mu.Lock()
	if len(s.cart.temporary) == 0 {
		s.mu.Unlock()
		return nil
	}
	if !p.Complete() {
		s.mu.Unlock()
		return ErrProfileIncomplete
	}

	for _, entry := range s.cart.temporary {
		merged := false
		for i := range s.cart.items {
			if s.cart.items[i].ID == entry.ID {
				s.cart.items[i].Quantity += entry.Quantity
				merged = true
				break
			}
		}
		if !merged {
			s.cart.items = append(s.cart.items, entry)
		}
	}
	s.cart.temporary = nil
	s.mu.Unlock()

	s.notify(SliceCart)
	return nil
}
