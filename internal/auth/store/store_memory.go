package store

import (
	"context"
	"fmt"
	"sync"

	"phonebook/internal/auth"
	"phonebook/pkg/platform/sentinel"
)

// InMemoryClientStore holds registered OAuth clients. The client set is small
// and seeded from configuration at startup, so memory is the only backend.
type InMemoryClientStore struct {
	mu      sync.RWMutex
	clients map[string]*auth.Client
}

// NewInMemoryClientStore constructs a store seeded with the given clients.
func NewInMemoryClientStore(clients ...*auth.Client) *InMemoryClientStore {
	s := &InMemoryClientStore{clients: make(map[string]*auth.Client, len(clients))}
	for _, client := range clients {
		if client != nil {
			s.clients[client.ID] = client
		}
	}
	return s
}

// FindByID returns the client with the given ID.
func (s *InMemoryClientStore) FindByID(_ context.Context, id string) (*auth.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if client, ok := s.clients[id]; ok {
		copied := *client
		return &copied, nil
	}
	return nil, fmt.Errorf("client %s: %w", id, sentinel.ErrNotFound)
}
