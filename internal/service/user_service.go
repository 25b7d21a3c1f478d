package service

import (
	"context"
	"errors"
	"fmt"

	"contact_book/internal/model"
	"contact_book/internal/repository"
	"contact_book/internal/utils"
	"contact_book/internal/validation"
)

var ErrUsernameTaken = errors.New("Username already exists")

// UserService provides registration and account management
type UserService interface {
	Register(ctx context.Context, req model.RegisterUserRequest) error
	Get(user *model.User) *model.UserResponse
	Update(ctx context.Context, user *model.User, req model.UpdateUserRequest) (*model.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Register creates a new account with a hashed password and no session token.
// The username check is a case-sensitive exact match.
func (s *userService) Register(ctx context.Context, req model.RegisterUserRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username: req.Username,
		Password: hashedPassword,
		Name:     req.Name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user in repository: %w", err)
	}
	return nil
}

// Get projects the authenticated principal to its public view. Pure, no
// lookups.
func (s *userService) Get(user *model.User) *model.UserResponse {
	return &model.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
}

// Update overwrites only the supplied fields; a new password is re-hashed
// before storing.
func (s *userService) Update(ctx context.Context, user *model.User, req model.UpdateUserRequest) (*model.UserResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user in repository: %w", err)
	}

	return &model.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}, nil
}
