package repository

import (
	"strings"
	"sync"

	"github.com/iliyamo/license-activation/internal/model"
	"github.com/iliyamo/license-activation/internal/utils"
)

// UserStore is the in-memory credential store. The mutex covers both the
// uniqueness check and the insert, so concurrent registrations of the same
// email cannot both succeed. Contents are lost on restart; durable storage
// is out of scope and a different implementation would slot in behind the
// same methods.
type UserStore struct {
	mu      sync.RWMutex
	byEmail map[string]*model.User
	nextID  uint64
}

func NewUserStore() *UserStore {
	return &UserStore{byEmail: make(map[string]*model.User), nextID: 1}
}

// Create hashes the password and inserts a new user, returning its id.
// The email is normalized to lowercase before the uniqueness check so
// "A@b.com" and "a@b.com" are the same account.
func (s *UserStore) Create(email, password string, cost int) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	// Hash outside the lock; bcrypt is deliberately slow.
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[email]; ok {
		return 0, ErrEmailExists
	}
	u := &model.User{ID: s.nextID, Email: email, PasswordHash: hash}
	s.nextID++
	s.byEmail[email] = u
	return u.ID, nil
}

// GetByEmail fetches a user by normalized email.
func (s *UserStore) GetByEmail(email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.byEmail[email]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return *u, nil
}
