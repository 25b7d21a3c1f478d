package repository

import (
	"context"
	"errors"
	"fmt"

	"contact_book/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByToken(ctx context.Context, token string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password, name, token, token_expired_at)
            VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, sql, user.Username, user.Password, user.Name, user.Token, user.TokenExpiredAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update persists every mutable attribute of the user, token fields included
func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	sql := `UPDATE users SET password = $1, name = $2, token = $3, token_expired_at = $4
            WHERE username = $5`
	cmdTag, err := r.db.Exec(ctx, sql, user.Password, user.Name, user.Token, user.TokenExpiredAt, user.Username)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found for update")
	}
	return nil
}

// FindByUsername retrieves a user by username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT username, password, name, token, token_expired_at FROM users WHERE username = $1`
	err := r.db.QueryRow(ctx, sql, username).Scan(&user.Username, &user.Password, &user.Name, &user.Token, &user.TokenExpiredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, service layer decides
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, nil
}

// FindByToken retrieves the user whose stored session token equals token
func (r *userRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT username, password, name, token, token_expired_at FROM users WHERE token = $1`
	err := r.db.QueryRow(ctx, sql, token).Scan(&user.Username, &user.Password, &user.Name, &user.Token, &user.TokenExpiredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}
	return user, nil
}

// ExistsByUsername reports whether a user with the given username exists
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	sql := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	if err := r.db.QueryRow(ctx, sql, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}
