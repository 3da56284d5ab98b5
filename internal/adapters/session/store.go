// Package session persists the authentication context across runs, the
// way a browser client keeps token, role and username in local storage.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"navkar-inquiry/internal/core/domain"
)

// Store keeps the session in a JSON file. The zero session (no token)
// means logged out; the file is removed on Clear.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Establish durably stores token, role and display name.
func (s *Store) Establish(token string, role domain.Role, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(domain.Session{
		Token:       token,
		Role:        role,
		DisplayName: displayName,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the stored session. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Current reads the stored session. Any read or decode failure yields the
// logged-out session; there is no client-side expiry check.
func (s *Store) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Session{}
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return domain.Session{}
	}
	return sess
}
