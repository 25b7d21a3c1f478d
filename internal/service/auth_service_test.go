package service

import (
	"context"
	"testing"
	"time"

	"contact_book/internal/model"
	"contact_book/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTokenTTL = 240 * time.Hour // 10 days

func hashedUser(t *testing.T, username, password string) *model.User {
	t.Helper()
	digest, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &model.User{Username: username, Password: digest, Name: "Test User"}
}

func TestAuthService_Login_IssuesTenDayToken(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewAuthService(userRepo, testTokenTTL)

	user := hashedUser(t, "johndoe", "secretpw")
	userRepo.On("FindByUsername", mock.Anything, "johndoe").Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	before := time.Now().Add(testTokenTTL).UnixMilli()
	resp, err := svc.Login(context.Background(), model.LoginUserRequest{Username: "johndoe", Password: "secretpw"})
	after := time.Now().Add(testTokenTTL).UnixMilli()

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.GreaterOrEqual(t, resp.TokenExpiresIn, before)
	assert.LessOrEqual(t, resp.TokenExpiresIn, after)

	// Token and expiry are persisted together on the user record.
	require.NotNil(t, user.Token)
	assert.Equal(t, resp.Token, *user.Token)
	require.NotNil(t, user.TokenExpiredAt)
	assert.Equal(t, resp.TokenExpiresIn, *user.TokenExpiredAt)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewAuthService(userRepo, testTokenTTL)

	userRepo.On("FindByUsername", mock.Anything, "missing1").Return(nil, nil)
	_, errUnknown := svc.Login(context.Background(), model.LoginUserRequest{Username: "missing1", Password: "secretpw"})

	user := hashedUser(t, "johndoe", "secretpw")
	userRepo.On("FindByUsername", mock.Anything, "johndoe").Return(user, nil)
	_, errWrongPw := svc.Login(context.Background(), model.LoginUserRequest{Username: "johndoe", Password: "wrongpass"})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestAuthService_Login_ValidationFailure(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewAuthService(userRepo, testTokenTTL)

	_, err := svc.Login(context.Background(), model.LoginUserRequest{Username: "ab", Password: ""})
	assert.Error(t, err)
	userRepo.AssertNotCalled(t, "FindByUsername")
}

func TestAuthService_Logout_ClearsTokenAndExpiry(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewAuthService(userRepo, testTokenTTL)

	token := "session-token"
	expiredAt := time.Now().Add(time.Hour).UnixMilli()
	user := &model.User{Username: "johndoe", Token: &token, TokenExpiredAt: &expiredAt}

	userRepo.On("Update", mock.Anything, user).Return(nil)

	require.NoError(t, svc.Logout(context.Background(), user))
	assert.Nil(t, user.Token)
	assert.Nil(t, user.TokenExpiredAt)

	// Idempotent: a second logout persists the same cleared state.
	require.NoError(t, svc.Logout(context.Background(), user))
	userRepo.AssertExpectations(t)
}

func TestAuthService_Authenticate(t *testing.T) {
	token := "session-token"
	valid := time.Now().Add(time.Hour).UnixMilli()
	expired := time.Now().Add(-time.Hour).UnixMilli()

	tests := []struct {
		name    string
		token   string
		stored  *model.User
		wantErr bool
	}{
		{
			name:   "valid token",
			token:  token,
			stored: &model.User{Username: "johndoe", Token: &token, TokenExpiredAt: &valid},
		},
		{
			name:    "missing header",
			token:   "",
			wantErr: true,
		},
		{
			name:    "unknown token",
			token:   "unknown",
			stored:  nil,
			wantErr: true,
		},
		{
			name:    "expired token",
			token:   token,
			stored:  &model.User{Username: "johndoe", Token: &token, TokenExpiredAt: &expired},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			svc := NewAuthService(userRepo, testTokenTTL)

			if tt.token != "" {
				userRepo.On("FindByToken", mock.Anything, tt.token).Return(tt.stored, nil)
			}

			user, err := svc.Authenticate(context.Background(), tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnauthenticated)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.stored.Username, user.Username)
			}
		})
	}
}

func TestAuthService_Authenticate_DoesNotClearExpiredToken(t *testing.T) {
	userRepo := new(mockUserRepository)
	svc := NewAuthService(userRepo, testTokenTTL)

	token := "stale-token"
	expired := time.Now().Add(-time.Minute).UnixMilli()
	stored := &model.User{Username: "johndoe", Token: &token, TokenExpiredAt: &expired}
	userRepo.On("FindByToken", mock.Anything, token).Return(stored, nil)

	_, err := svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	userRepo.AssertNotCalled(t, "Update")
}
