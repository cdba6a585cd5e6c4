package profile

// AddressBody is one shipping address in request and response bodies.
type AddressBody struct {
	Label      string `json:"label"      maxLength:"50"  doc:"Address label"    example:"home"`
	Street     string `json:"street"     minLength:"1" maxLength:"200" doc:"Street address" example:"Mannerheimintie 1"`
	City       string `json:"city"       minLength:"1" maxLength:"100" doc:"City"           example:"Helsinki"`
	PostalCode string `json:"postalCode" minLength:"1" maxLength:"20"  doc:"Postal code"    example:"00100"`
	Country    string `json:"country"    minLength:"2" maxLength:"2"   doc:"ISO 3166-1 alpha-2 country" example:"FI"`
}

// ProfileCreateInput for POST /profile
type ProfileCreateInput struct {
	Body struct {
		Firstname string        `json:"firstname" minLength:"1" maxLength:"100" required:"true" doc:"First name"    example:"John"`
		Lastname  string        `json:"lastname"  minLength:"1" maxLength:"100" required:"true" doc:"Last name"     example:"Doe"`
		Email     string        `json:"email"     format:"email"                required:"true" doc:"Email address" example:"john@example.com"`
		Phones    []string      `json:"phones,omitempty"    maxItems:"5"  doc:"Phone numbers (E.164)" example:"[\"+358401234567\"]"`
		Addresses []AddressBody `json:"addresses,omitempty" maxItems:"10" doc:"Shipping addresses"`
		Marketing bool          `json:"marketing,omitempty"               doc:"Marketing opt-in, defaults to false" example:"true"`
	}
}

// ProfileGetInput for GET /profile (no body needed)
type ProfileGetInput struct{}

// ProfileUpdateInput for PATCH /profile
type ProfileUpdateInput struct {
	Body struct {
		Firstname *string        `json:"firstname,omitempty" minLength:"1" maxLength:"100" doc:"First name"    example:"John"`
		Lastname  *string        `json:"lastname,omitempty"  minLength:"1" maxLength:"100" doc:"Last name"     example:"Doe"`
		Email     *string        `json:"email,omitempty"     format:"email"                doc:"Email address" example:"john@example.com"`
		Phones    *[]string      `json:"phones,omitempty"    maxItems:"5"  doc:"Replacement phone list"`
		Addresses *[]AddressBody `json:"addresses,omitempty" maxItems:"10" doc:"Replacement address list"`
		Marketing *bool          `json:"marketing,omitempty"               doc:"Marketing opt-in" example:"true"`
	}
}

// ProfileDeleteInput for DELETE /profile (no body needed)
type ProfileDeleteInput struct{}
