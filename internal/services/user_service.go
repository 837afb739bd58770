package services

import (
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"gleamgallery/internal/models"
	"gleamgallery/internal/store"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	users  *store.UserStore
	logger zerolog.Logger
}

func NewUserService(users *store.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Register creates a user-role account. New accounts are always plain
// users; the admin account is seeded at startup. Credential format is
// checked upstream by the validation layer.
func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	user, ok := s.users.Add(req.Username, string(hash), models.RoleUser)
	if !ok {
		return nil, ErrUsernameTaken
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User registered successfully")
	return &user, nil
}

// Authenticate verifies a username/password pair. The username match is
// case-insensitive. A bad username and a bad password are reported
// identically.
func (s *UserService) Authenticate(req *models.LoginRequest) (*models.User, error) {
	user, ok := s.users.ByUsername(req.Username)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn().Str("username", req.Username).Msg("Failed authentication attempt")
		return nil, ErrInvalidCredentials
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User authenticated successfully")
	return &user, nil
}

func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, ok := s.users.ByID(id)
	if !ok {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
