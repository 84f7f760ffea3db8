// Package session stores the client-side credentials: the API token and a
// cached copy of the authenticated user profile. This is the only state the
// client persists; everything else lives in the query cache and is
// discardable.
package session

import (
	"context"
	"sync"

	"github.com/remnowwebdevelopmentprojects/Stitch-Desk-sub001/pkg/models"
)

// Credentials is the persisted session state.
type Credentials struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// Empty reports whether no token is stored.
func (c Credentials) Empty() bool {
	return c.Token == ""
}

// Store persists credentials between requests. A missing session is not an
// error: Load returns zero Credentials.
type Store interface {
	Load(ctx context.Context) (Credentials, error)
	Save(ctx context.Context, creds Credentials) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps credentials in process memory. It is the default store
// and the right choice for short-lived tools and tests.
type MemoryStore struct {
	mu    sync.RWMutex
	creds Credentials
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (s *MemoryStore) Load(_ context.Context) (Credentials, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds, nil
}

// Save implements Store.
func (s *MemoryStore) Save(_ context.Context, creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = creds
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = Credentials{}
	return nil
}
