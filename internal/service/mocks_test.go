package service

import (
	"context"

	"contact_book/internal/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type mockContactRepository struct {
	mock.Mock
}

func (m *mockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *mockContactRepository) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*model.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContactRepository) FindByUserAndID(ctx context.Context, username, id string) (*model.Contact, error) {
	args := m.Called(ctx, username, id)
	if c := args.Get(0); c != nil {
		return c.(*model.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContactRepository) Update(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockContactRepository) Search(ctx context.Context, username string, req model.SearchContactRequest) ([]model.Contact, int64, error) {
	args := m.Called(ctx, username, req)
	var contacts []model.Contact
	if c := args.Get(0); c != nil {
		contacts = c.([]model.Contact)
	}
	return contacts, args.Get(1).(int64), args.Error(2)
}

type mockAddressRepository struct {
	mock.Mock
}

func (m *mockAddressRepository) Create(ctx context.Context, address *model.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *mockAddressRepository) FindByContactAndID(ctx context.Context, contactID, id string) (*model.Address, error) {
	args := m.Called(ctx, contactID, id)
	if a := args.Get(0); a != nil {
		return a.(*model.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressRepository) FindAllByContact(ctx context.Context, contactID string) ([]model.Address, error) {
	args := m.Called(ctx, contactID)
	if a := args.Get(0); a != nil {
		return a.([]model.Address), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressRepository) Update(ctx context.Context, address *model.Address) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *mockAddressRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
