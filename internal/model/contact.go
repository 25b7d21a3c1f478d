package model

// Contact belongs to exactly one user; Username is immutable after creation.
type Contact struct {
	ID        string  `json:"id"`
	Username  string  `json:"-"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
}

// CreateContactRequest is the body of POST /api/contacts.
type CreateContactRequest struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=3,max=100"`
	Phone     string  `json:"phone" validate:"required,min=6,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,min=5,max=100"`
}

// UpdateContactRequest allows partial updates; nil fields are left untouched.
type UpdateContactRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=3,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,min=3,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,min=6,max=100"`
	Email     *string `json:"email" validate:"omitempty,email,min=5,max=100"`
}

// SearchContactRequest carries the query parameters of GET /api/contacts.
// Unset criteria are not matched against anything.
type SearchContactRequest struct {
	Name  *string
	Email *string
	Phone *string
	Page  int
	Size  int
}

// ContactResponse is the public projection of a contact.
type ContactResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
}
