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

var ErrContactNotFound = errors.New("Contact not found")

// ContactService provides CRUD and paginated search over a user's contacts
type ContactService interface {
	Create(ctx context.Context, user *model.User, req model.CreateContactRequest) (*model.ContactResponse, error)
	Get(ctx context.Context, user *model.User, contactID string) (*model.ContactResponse, error)
	Update(ctx context.Context, user *model.User, contactID string, req model.UpdateContactRequest) (*model.ContactResponse, error)
	Delete(ctx context.Context, user *model.User, contactID string) error
	Search(ctx context.Context, user *model.User, req model.SearchContactRequest) ([]model.ContactResponse, *model.PagingResponse, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func toContactResponse(c *model.Contact) *model.ContactResponse {
	return &model.ContactResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
	}
}

// Create stores a new contact owned by the given user.
func (s *contactService) Create(ctx context.Context, user *model.User, req model.CreateContactRequest) (*model.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		ID:        uuid.NewString(),
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact in repository: %w", err)
	}
	return toContactResponse(contact), nil
}

// Get fetches a contact filtered by both owner and id in one lookup; the id
// alone never grants access.
func (s *contactService) Get(ctx context.Context, user *model.User, contactID string) (*model.ContactResponse, error) {
	contact, err := s.contactRepo.FindByUserAndID(ctx, user.Username, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return toContactResponse(contact), nil
}

// Update overwrites only the supplied fields. The lookup is by id only and
// does not re-check ownership, unlike Get and Search; whether it should is an
// open product question, kept as-is for now.
func (s *contactService) Update(ctx context.Context, user *model.User, contactID string, req model.UpdateContactRequest) (*model.ContactResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	contact, err := s.contactRepo.FindByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to find contact for update: %w", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if req.FirstName != nil {
		contact.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		contact.LastName = req.LastName
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Email != nil {
		contact.Email = req.Email
	}

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact in repository: %w", err)
	}
	return toContactResponse(contact), nil
}

// Delete hard-deletes a contact; the storage layer cascades to its addresses.
// Same id-only lookup as Update.
func (s *contactService) Delete(ctx context.Context, user *model.User, contactID string) error {
	contact, err := s.contactRepo.FindByID(ctx, contactID)
	if err != nil {
		return fmt.Errorf("failed to find contact for deletion: %w", err)
	}
	if contact == nil {
		return ErrContactNotFound
	}

	if err := s.contactRepo.Delete(ctx, contact.ID); err != nil {
		return fmt.Errorf("failed to delete contact in repository: %w", err)
	}
	return nil
}

// Search returns one page of the user's contacts matching the optional
// criteria, always filtered to the owner, plus the paging metadata.
func (s *contactService) Search(ctx context.Context, user *model.User, req model.SearchContactRequest) ([]model.ContactResponse, *model.PagingResponse, error) {
	contacts, total, err := s.contactRepo.Search(ctx, user.Username, req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search contacts: %w", err)
	}

	responses := make([]model.ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, *toContactResponse(&contacts[i]))
	}

	totalPage := 0
	if req.Size > 0 {
		totalPage = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	paging := &model.PagingResponse{
		CurrentPage: req.Page,
		TotalPage:   totalPage,
		Size:        req.Size,
	}
	return responses, paging, nil
}
