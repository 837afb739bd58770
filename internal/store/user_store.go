package store

import (
	"strings"
	"sync"

	"gleamgallery/internal/models"
)

// UserStore holds the registered accounts for the process lifetime.
// Usernames are unique case-insensitively.
type UserStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewUserStore(seed []models.User) *UserStore {
	users := make([]models.User, len(seed))
	copy(users, seed)
	return &UserStore{users: users}
}

// ByUsername looks a user up case-insensitively.
func (s *UserStore) ByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byUsernameLocked(username)
}

func (s *UserStore) byUsernameLocked(username string) (models.User, bool) {
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *UserStore) ByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Add creates a new account unless the username is already taken
// (case-insensitively). The duplicate check and the append happen under
// one lock so two concurrent registrations cannot both succeed.
func (s *UserStore) Add(username, passwordHash string, role models.UserRole) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUsernameLocked(username); exists {
		return models.User{}, false
	}

	user := models.User{
		ID:           newID("user"),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         string(role),
	}
	s.users = append(s.users, user)
	return user, true
}
