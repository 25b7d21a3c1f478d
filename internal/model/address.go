package model

// Address belongs to exactly one contact; ContactID is immutable after
// creation.
type Address struct {
	ID         string  `json:"id"`
	ContactID  string  `json:"-"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postalCode"`
}

// CreateAddressRequest is the body of POST /api/contacts/{id}/addresses.
type CreateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,min=2,max=200"`
	City       *string `json:"city" validate:"omitempty,min=2,max=100"`
	Province   *string `json:"province" validate:"omitempty,min=2,max=100"`
	Country    string  `json:"country" validate:"required,min=2,max=100"`
	PostalCode *string `json:"postalCode" validate:"omitempty,min=2,max=10"`
}

// UpdateAddressRequest allows partial updates, except country which must be
// supplied on every update request regardless of the stored value.
type UpdateAddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,min=2,max=200"`
	City       *string `json:"city" validate:"omitempty,min=2,max=100"`
	Province   *string `json:"province" validate:"omitempty,min=2,max=100"`
	Country    string  `json:"country" validate:"required,min=2,max=100"`
	PostalCode *string `json:"postalCode" validate:"omitempty,min=2,max=10"`
}

// AddressResponse is the public projection of an address.
type AddressResponse struct {
	ID         string  `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postalCode"`
}
