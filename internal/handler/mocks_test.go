package handler

import (
	"context"

	"contact_book/internal/middleware"
	"contact_book/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, req model.LoginUserRequest) (*model.TokenResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*model.TokenResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if u := args.Get(0); u != nil {
		return u.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, req model.RegisterUserRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockUserService) Get(user *model.User) *model.UserResponse {
	args := m.Called(user)
	return args.Get(0).(*model.UserResponse)
}

func (m *mockUserService) Update(ctx context.Context, user *model.User, req model.UpdateUserRequest) (*model.UserResponse, error) {
	args := m.Called(ctx, user, req)
	if r := args.Get(0); r != nil {
		return r.(*model.UserResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockContactService struct {
	mock.Mock
}

func (m *mockContactService) Create(ctx context.Context, user *model.User, req model.CreateContactRequest) (*model.ContactResponse, error) {
	args := m.Called(ctx, user, req)
	if r := args.Get(0); r != nil {
		return r.(*model.ContactResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContactService) Get(ctx context.Context, user *model.User, contactID string) (*model.ContactResponse, error) {
	args := m.Called(ctx, user, contactID)
	if r := args.Get(0); r != nil {
		return r.(*model.ContactResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContactService) Update(ctx context.Context, user *model.User, contactID string, req model.UpdateContactRequest) (*model.ContactResponse, error) {
	args := m.Called(ctx, user, contactID, req)
	if r := args.Get(0); r != nil {
		return r.(*model.ContactResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContactService) Delete(ctx context.Context, user *model.User, contactID string) error {
	args := m.Called(ctx, user, contactID)
	return args.Error(0)
}

func (m *mockContactService) Search(ctx context.Context, user *model.User, req model.SearchContactRequest) ([]model.ContactResponse, *model.PagingResponse, error) {
	args := m.Called(ctx, user, req)
	var responses []model.ContactResponse
	if r := args.Get(0); r != nil {
		responses = r.([]model.ContactResponse)
	}
	var paging *model.PagingResponse
	if p := args.Get(1); p != nil {
		paging = p.(*model.PagingResponse)
	}
	return responses, paging, args.Error(2)
}

type mockAddressService struct {
	mock.Mock
}

func (m *mockAddressService) Create(ctx context.Context, user *model.User, contactID string, req model.CreateAddressRequest) (*model.AddressResponse, error) {
	args := m.Called(ctx, user, contactID, req)
	if r := args.Get(0); r != nil {
		return r.(*model.AddressResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressService) Get(ctx context.Context, user *model.User, contactID, addressID string) (*model.AddressResponse, error) {
	args := m.Called(ctx, user, contactID, addressID)
	if r := args.Get(0); r != nil {
		return r.(*model.AddressResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressService) Update(ctx context.Context, user *model.User, contactID, addressID string, req model.UpdateAddressRequest) (*model.AddressResponse, error) {
	args := m.Called(ctx, user, contactID, addressID, req)
	if r := args.Get(0); r != nil {
		return r.(*model.AddressResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAddressService) Delete(ctx context.Context, user *model.User, contactID, addressID string) error {
	args := m.Called(ctx, user, contactID, addressID)
	return args.Error(0)
}

func (m *mockAddressService) GetByContact(ctx context.Context, user *model.User, contactID string) ([]model.AddressResponse, error) {
	args := m.Called(ctx, user, contactID)
	if r := args.Get(0); r != nil {
		return r.([]model.AddressResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// injectUser is a stand-in for the token middleware in handler tests.
func injectUser(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AuthUserKey, user)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
