package profile

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore is an in-process Store. State lives only as long as the
// process, matching the mock nature of the auth flow.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]*User
	byEmail map[string]string // normalized email -> id
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[string]*User),
		byEmail: make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser adds a user, rejecting duplicate emails.
func (s *MemoryStore) CreateUser(_ context.Context, user *User) error {
	email := normalizeEmail(user.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return ErrEmailExists
	}

	stored := *user
	s.byID[user.ID] = &stored
	s.byEmail[email] = user.ID
	return nil
}

// GetUserByEmail looks a user up by email, case-insensitively.
func (s *MemoryStore) GetUserByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return s.copyOf(id)
}

// GetUserByID looks a user up by id.
func (s *MemoryStore) GetUserByID(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyOf(id)
}

// UpdateFinancial merges a partial financial update into a user's profile
// and returns the updated user.
func (s *MemoryStore) UpdateFinancial(_ context.Context, id string, data Financial) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}

	user.Financial.Merge(data)

	updated := *user
	return &updated, nil
}

// DeleteUser removes a user; deleting a missing user is not an error.
func (s *MemoryStore) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil
	}
	delete(s.byEmail, normalizeEmail(user.Email))
	delete(s.byID, id)
	return nil
}

// copyOf returns a copy of the stored user so callers cannot mutate
// store state. Callers must hold at least a read lock.
func (s *MemoryStore) copyOf(id string) (*User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}
