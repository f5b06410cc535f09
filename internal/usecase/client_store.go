package usecase

import (
	"context"
	"strings"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/domain/validation"
	"orcafacil/internal/usecase/interfaces"
)

// ClientStore caches the client collection and orchestrates mutations
// against the storage backend. Same action contract as BudgetStore.

type ClientStore struct {
	storeState
	storage interfaces.IStorageService

	clients []entities.Client
}

func NewClientStore(storage interfaces.IStorageService) *ClientStore {
	return &ClientStore{storage: storage}
}

// Clients returns a copy of the cached collection.
func (s *ClientStore) Clients() []entities.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// GetClientByID looks a client up in the cache.
func (s *ClientStore) GetClientByID(id int) (entities.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Client{}, false
}

// FetchClients replaces the cache with the persisted collection.
func (s *ClientStore) FetchClients(ctx context.Context) ([]entities.Client, error) {
	s.begin()
	defer s.finish()

	clients, err := s.storage.GetClients(ctx)
	if err != nil {
		s.fail("Failed to fetch clients")
		return nil, err
	}

	s.mu.Lock()
	s.clients = clients
	s.mu.Unlock()
	return s.Clients(), nil
}

// SearchClients returns the persisted clients whose name or company contains
// the query, case-insensitively. An empty query returns everything.
func (s *ClientStore) SearchClients(ctx context.Context, query string) ([]entities.Client, error) {
	s.begin()
	defer s.finish()

	clients, err := s.storage.GetClients(ctx)
	if err != nil {
		s.fail("Failed to search clients")
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return clients, nil
	}
	matches := make([]entities.Client, 0, len(clients))
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Company), query) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}

// FindByName resolves a client by exact (case-insensitive) name. A zero
// client means no match.
func (s *ClientStore) FindByName(ctx context.Context, name string) (entities.Client, error) {
	s.begin()
	defer s.finish()

	client, err := s.storage.GetClientByName(ctx, name)
	if err != nil {
		s.fail("Failed to fetch client")
		return entities.Client{}, err
	}
	return client, nil
}

// CreateClient persists a new client and appends it to the cache. The phone
// number is normalized to display form before saving; the storage backend
// assigns the id.
func (s *ClientStore) CreateClient(ctx context.Context, client entities.Client) (entities.Client, error) {
	s.begin()
	defer s.finish()

	client.Phone = validation.FormatPhone(client.Phone)

	saved, err := s.storage.SaveClient(ctx, client)
	if err != nil {
		s.fail("Error creating client")
		return entities.Client{}, err
	}

	s.mu.Lock()
	s.clients = append(s.clients, saved)
	s.mu.Unlock()
	return saved, nil
}

// UpdateClient persists the client and replaces the cached entry. A missing
// id is a silent no-op at the storage layer.
func (s *ClientStore) UpdateClient(ctx context.Context, client entities.Client) (entities.Client, error) {
	s.begin()
	defer s.finish()

	client.Phone = validation.FormatPhone(client.Phone)

	updated, err := s.storage.UpdateClient(ctx, client)
	if err != nil {
		s.fail("Error updating client")
		return entities.Client{}, err
	}
	if updated.ID == 0 {
		return updated, nil
	}

	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == updated.ID {
			s.clients[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteClient removes the client by id and splices it out of the cache.
// Budgets keep their embedded client snapshot untouched.
func (s *ClientStore) DeleteClient(ctx context.Context, id int) error {
	s.begin()
	defer s.finish()

	if err := s.storage.DeleteClient(ctx, id); err != nil {
		s.fail("Error deleting client")
		return err
	}

	s.mu.Lock()
	kept := s.clients[:0]
	for _, c := range s.clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.clients = kept
	s.mu.Unlock()
	return nil
}

// ValidateClient runs the validation engine without touching storage.
func (s *ClientStore) ValidateClient(client entities.Client) []string {
	return validation.ValidateClient(client)
}
