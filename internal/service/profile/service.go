package profile

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

// Address is one stored shipping address.
type Address struct {
	Label      string
	Street     string
	City       string
	PostalCode string
	Country    string
}

// Profile represents stored customer data.
type Profile struct {
	ID        string
	Firstname string
	Lastname  string
	Email     string
	Phones    []string
	Addresses []Address
	Marketing bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Complete reports whether the profile can receive a committed cart: at
// least one phone number and one address must be on file.
func (p *Profile) Complete() bool {
	return p != nil && len(p.Phones) > 0 && len(p.Addresses) > 0
}

// CreateParams for creating a profile.
type CreateParams struct {
	Firstname string
	Lastname  string
	Email     string
	Phones    []string
	Addresses []Address
	Marketing bool
}

// UpdateParams for updating a profile. Nil fields are left untouched;
// Phones and Addresses replace the stored lists wholesale when present.
type UpdateParams struct {
	Firstname *string
	Lastname  *string
	Email     *string
	Phones    *[]string
	Addresses *[]Address
	Marketing *bool
}

// Service defines profile operations.
//
// Implementations must normalize input data:
//   - Email: lowercase and trim whitespace
//   - Phones: trim whitespace per entry, drop empties
type Service interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Profile, error)
	Get(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, userID string, params UpdateParams) (*Profile, error)
	Delete(ctx context.Context, userID string) error
}
