package profile

import "github.com/versocommerce/storefront/internal/platform/timeutil"

// Profile is the HTTP representation of a stored customer profile.
type Profile struct {
	ID        string        `json:"id"        doc:"User identifier"       example:"test-user-123"`
	Firstname string        `json:"firstname" doc:"First name"            example:"John"`
	Lastname  string        `json:"lastname"  doc:"Last name"             example:"Doe"`
	Email     string        `json:"email"     doc:"Email address"         example:"john@example.com"`
	Phones    []string      `json:"phones"    doc:"Phone numbers"`
	Addresses []AddressBody `json:"addresses" doc:"Shipping addresses"`
	Marketing bool          `json:"marketing" doc:"Marketing opt-in"      example:"true"`
	Complete  bool          `json:"complete"  doc:"Whether the profile can receive a committed cart" example:"true"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Creation timestamp"    example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt timeutil.Time `json:"updatedAt" doc:"Last update timestamp" example:"2024-01-15T10:30:00.000Z"`
}

// ProfileCreateOutput is the response wrapper for POST /profile.
type ProfileCreateOutput struct {
	Location string `header:"Location" doc:"URL of the created profile"`
	Body     Profile
}

// ProfileGetOutput is the response wrapper for GET /profile.
type ProfileGetOutput struct {
	Body Profile
}

// ProfileUpdateOutput is the response wrapper for PATCH /profile.
type ProfileUpdateOutput struct {
	Body Profile
}
