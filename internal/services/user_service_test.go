package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gleamgallery/internal/models"
	"gleamgallery/internal/store"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	seed, err := store.SeedUsers()
	require.NoError(t, err)
	return NewUserService(store.NewUserStore(seed), zerolog.Nop())
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	s := newUserService(t)

	user, err := s.Register(&models.RegisterRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleUser), user.Role)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	// Case-insensitive duplicate is rejected.
	_, err = s.Register(&models.RegisterRequest{Username: "Alice", Password: "whatever1"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	logged, err := s.Authenticate(&models.LoginRequest{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleUser), logged.Role)
	assert.Equal(t, user.ID, logged.ID)
}

func TestAuthenticateRejectsBadPassword(t *testing.T) {
	s := newUserService(t)

	_, err := s.Authenticate(&models.LoginRequest{Username: "testuser", Password: "wrongpassword"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	s := newUserService(t)

	_, err := s.Authenticate(&models.LoginRequest{Username: "nobody", Password: "whatever1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeededAdminCanAuthenticate(t *testing.T) {
	s := newUserService(t)

	admin, err := s.Authenticate(&models.LoginRequest{Username: "admin", Password: "adminpassword"})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleAdmin), admin.Role)
}

func TestRegisteredAccountsAreAlwaysPlainUsers(t *testing.T) {
	s := newUserService(t)

	user, err := s.Register(&models.RegisterRequest{Username: "mallory", Password: "letmein1"})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleUser), user.Role)
}
