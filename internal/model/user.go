package model

// User represents a registered account. Token and TokenExpiredAt are set
// together on login and cleared together on logout, never one without the
// other.
type User struct {
	Username       string  `json:"username"`
	Password       string  `json:"-"` // bcrypt digest, never exposed
	Name           string  `json:"name"`
	Token          *string `json:"-"`
	TokenExpiredAt *int64  `json:"-"` // epoch millis
}

// RegisterUserRequest is the body of POST /api/users/register.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginUserRequest is the body of POST /api/users/login.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,min=6,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// UpdateUserRequest allows partial updates; nil fields are left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Password *string `json:"password" validate:"omitempty,min=2,max=100"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token          string `json:"token"`
	TokenExpiresIn int64  `json:"tokenExpiresIn"` // epoch millis
}
