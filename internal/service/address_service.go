package service

import (
	"context"
	"errors"
	"fmt"

	"contact_book/internal/model"
	"contact_book/internal/repository"
	"contact_book/internal/validation"

	"github.com/google/uuid"
)

var ErrAddressNotFound = errors.New("Address not found")

// AddressService provides CRUD over the addresses nested under a contact.
// Every operation resolves the parent contact through the owner-scoped
// lookup first, so the contact check always precedes any address lookup.
type AddressService interface {
	Create(ctx context.Context, user *model.User, contactID string, req model.CreateAddressRequest) (*model.AddressResponse, error)
	Get(ctx context.Context, user *model.User, contactID, addressID string) (*model.AddressResponse, error)
	Update(ctx context.Context, user *model.User, contactID, addressID string, req model.UpdateAddressRequest) (*model.AddressResponse, error)
	Delete(ctx context.Context, user *model.User, contactID, addressID string) error
	GetByContact(ctx context.Context, user *model.User, contactID string) ([]model.AddressResponse, error)
}

type addressService struct {
	contactRepo repository.ContactRepository
	addressRepo repository.AddressRepository
}

// NewAddressService creates a new AddressService
func NewAddressService(contactRepo repository.ContactRepository, addressRepo repository.AddressRepository) AddressService {
	return &addressService{
		contactRepo: contactRepo,
		addressRepo: addressRepo,
	}
}

func toAddressResponse(a *model.Address) *model.AddressResponse {
	return &model.AddressResponse{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}

func (s *addressService) resolveContact(ctx context.Context, user *model.User, contactID string) (*model.Contact, error) {
	contact, err := s.contactRepo.FindByUserAndID(ctx, user.Username, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve parent contact: %w", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// Create attaches a new address to the resolved contact.
func (s *addressService) Create(ctx context.Context, user *model.User, contactID string, req model.CreateAddressRequest) (*model.AddressResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}

	address := &model.Address{
		ID:         uuid.NewString(),
		ContactID:  contact.ID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to create address in repository: %w", err)
	}
	return toAddressResponse(address), nil
}

// Get fetches one address scoped to the resolved contact.
func (s *addressService) Get(ctx context.Context, user *model.User, contactID, addressID string) (*model.AddressResponse, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}

	address, err := s.addressRepo.FindByContactAndID(ctx, contact.ID, addressID)
	if err != nil {
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	return toAddressResponse(address), nil
}

// Update overwrites the supplied fields. Country is required on every update
// request: the required-check runs against the request object, not the
// stored row.
func (s *addressService) Update(ctx context.Context, user *model.User, contactID, addressID string, req model.UpdateAddressRequest) (*model.AddressResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}

	address, err := s.addressRepo.FindByContactAndID(ctx, contact.ID, addressID)
	if err != nil {
		return nil, fmt.Errorf("failed to find address for update: %w", err)
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}

	if req.Street != nil {
		address.Street = req.Street
	}
	if req.City != nil {
		address.City = req.City
	}
	if req.Province != nil {
		address.Province = req.Province
	}
	if req.Country != "" {
		address.Country = req.Country
	}
	if req.PostalCode != nil {
		address.PostalCode = req.PostalCode
	}

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to update address in repository: %w", err)
	}
	return toAddressResponse(address), nil
}

// Delete removes one address scoped to the resolved contact.
func (s *addressService) Delete(ctx context.Context, user *model.User, contactID, addressID string) error {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return err
	}

	address, err := s.addressRepo.FindByContactAndID(ctx, contact.ID, addressID)
	if err != nil {
		return fmt.Errorf("failed to find address for deletion: %w", err)
	}
	if address == nil {
		return ErrAddressNotFound
	}

	if err := s.addressRepo.Delete(ctx, address.ID); err != nil {
		return fmt.Errorf("failed to delete address in repository: %w", err)
	}
	return nil
}

// GetByContact lists every address of the resolved contact; ownership is
// already enforced by the parent lookup.
func (s *addressService) GetByContact(ctx context.Context, user *model.User, contactID string) ([]model.AddressResponse, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.FindAllByContact(ctx, contact.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	responses := make([]model.AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, *toAddressResponse(&addresses[i]))
	}
	return responses, nil
}
