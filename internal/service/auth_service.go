package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contact_book/internal/model"
	"contact_book/internal/repository"
	"contact_book/internal/utils"
	"contact_book/internal/validation"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a caller cannot tell which one occurred.
	ErrInvalidCredentials = errors.New("Invalid username or password")
	// ErrUnauthenticated is returned for a missing, unknown or expired token.
	ErrUnauthenticated = errors.New("Unauthorized")
)

// AuthService provides login, logout and token resolution
type AuthService interface {
	Login(ctx context.Context, req model.LoginUserRequest) (*model.TokenResponse, error)
	Logout(ctx context.Context, user *model.User) error
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo: userRepo,
		tokenTTL: tokenTTL,
	}
}

// Login verifies the credentials and issues a fresh opaque session token
// with an absolute expiry, persisted on the user record.
func (s *authService) Login(ctx context.Context, req model.LoginUserRequest) (*model.TokenResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	expiredAt := time.Now().Add(s.tokenTTL).UnixMilli()
	user.Token = &token
	user.TokenExpiredAt = &expiredAt

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist session token: %w", err)
	}

	return &model.TokenResponse{Token: token, TokenExpiresIn: expiredAt}, nil
}

// Logout clears the session token and its expiry. Idempotent.
func (s *authService) Logout(ctx context.Context, user *model.User) error {
	user.Token = nil
	user.TokenExpiredAt = nil

	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}

// Authenticate resolves a raw token value to the acting user. It is the only
// mechanism producing an authenticated principal; every protected operation
// receives the result as an explicit parameter. Read-only: an expired token
// is rejected but not cleared.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error finding user by token: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}

	if user.TokenExpiredAt == nil || *user.TokenExpiredAt <= time.Now().UnixMilli() {
		return nil, ErrUnauthenticated
	}

	return user, nil
}
