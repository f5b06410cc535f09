// Package localfile persists each collection as a JSON array in its own file
// under a data directory: one fixed key per collection, full-collection
// rewrite on every mutation.
//
// Known limitation: ids come from scanning the current collection, so two
// processes writing the same directory can collide (last write wins). The
// dynamo backend removes that by issuing ids server-side.
package localfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase/interfaces"
	"orcafacil/pkg/idgen"

	"github.com/rs/zerolog/log"
)

const (
	keyClients   = "clients"
	keyBudgets   = "budgets"
	keyMaterials = "materials"
	keyUsers     = "users"
)

// StorageService implements interfaces.IStorageService (and
// interfaces.IUserRepository) over JSON files.

type StorageService struct {
	dir string
	mu  sync.Mutex
}

var (
	_ interfaces.IStorageService = (*StorageService)(nil)
	_ interfaces.IUserRepository = (*StorageService)(nil)
)

func New(dir string) (*StorageService, error) {
	if dir == "" {
		return nil, errors.New("localfile: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localfile: creating data directory: %w", err)
	}
	return &StorageService{dir: dir}, nil
}

func (s *StorageService) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// readCollection loads a collection, treating a missing or unparsable file
// as empty. Corrupt storage fails open instead of taking the app down.
func readCollection[T any](s *StorageService, key string) []T {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("corrupt collection file, reading as empty")
		return []T{}
	}
	return items
}

func writeCollection[T any](s *StorageService, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("localfile: encoding %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), raw, 0o644); err != nil {
		return fmt.Errorf("localfile: writing %s: %w", key, err)
	}
	return nil
}

// Clientes

func (s *StorageService) SaveClient(ctx context.Context, client entities.Client) (entities.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := readCollection[entities.Client](s, keyClients)
	client.ID = idgen.Next(clients, func(c entities.Client) int { return c.ID })
	clients = append(clients, client)
	if err := writeCollection(s, keyClients, clients); err != nil {
		return entities.Client{}, err
	}
	return client, nil
}

func (s *StorageService) GetClients(ctx context.Context) ([]entities.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[entities.Client](s, keyClients), nil
}

func (s *StorageService) GetClientByName(ctx context.Context, name string) (entities.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range readCollection[entities.Client](s, keyClients) {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (s *StorageService) UpdateClient(ctx context.Context, client entities.Client) (entities.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := readCollection[entities.Client](s, keyClients)
	for i := range clients {
		if clients[i].ID == client.ID {
			clients[i] = client
			if err := writeCollection(s, keyClients, clients); err != nil {
				return entities.Client{}, err
			}
			return client, nil
		}
	}
	// Missing id: silent no-op.
	return entities.Client{}, nil
}

func (s *StorageService) DeleteClient(ctx context.Context, clientID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := readCollection[entities.Client](s, keyClients)
	kept := clients[:0]
	for _, c := range clients {
		if c.ID != clientID {
			kept = append(kept, c)
		}
	}
	return writeCollection(s, keyClients, kept)
}

// Orçamentos

func (s *StorageService) SaveBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := readCollection[entities.Budget](s, keyBudgets)
	budget.ID = idgen.Next(budgets, func(b entities.Budget) int { return b.ID })
	budgets = append(budgets, budget)
	if err := writeCollection(s, keyBudgets, budgets); err != nil {
		return entities.Budget{}, err
	}
	return budget, nil
}

// SaveBudgets replaces the whole persisted collection.
func (s *StorageService) SaveBudgets(ctx context.Context, budgets []entities.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if budgets == nil {
		budgets = []entities.Budget{}
	}
	return writeCollection(s, keyBudgets, budgets)
}

func (s *StorageService) GetBudgets(ctx context.Context) ([]entities.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[entities.Budget](s, keyBudgets), nil
}

func (s *StorageService) UpdateBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := readCollection[entities.Budget](s, keyBudgets)
	for i := range budgets {
		if budgets[i].ID == budget.ID {
			budgets[i] = budget
			if err := writeCollection(s, keyBudgets, budgets); err != nil {
				return entities.Budget{}, err
			}
			return budget, nil
		}
	}
	return entities.Budget{}, nil
}

func (s *StorageService) DeleteBudget(ctx context.Context, budgetID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	budgets := readCollection[entities.Budget](s, keyBudgets)
	kept := budgets[:0]
	for _, b := range budgets {
		if b.ID != budgetID {
			kept = append(kept, b)
		}
	}
	return writeCollection(s, keyBudgets, kept)
}

// Materiais

func (s *StorageService) SaveMaterial(ctx context.Context, material entities.Material) (entities.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	materials := readCollection[entities.Material](s, keyMaterials)
	material.ID = idgen.Next(materials, func(m entities.Material) int { return m.ID })
	materials = append(materials, material)
	if err := writeCollection(s, keyMaterials, materials); err != nil {
		return entities.Material{}, err
	}
	return material, nil
}

func (s *StorageService) GetMaterials(ctx context.Context) ([]entities.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readCollection[entities.Material](s, keyMaterials), nil
}

func (s *StorageService) UpdateMaterial(ctx context.Context, materialID int, patch entities.MaterialPatch) (entities.Material, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	materials := readCollection[entities.Material](s, keyMaterials)
	for i := range materials {
		if materials[i].ID == materialID {
			materials[i] = patch.Apply(materials[i])
			if err := writeCollection(s, keyMaterials, materials); err != nil {
				return entities.Material{}, err
			}
			return materials[i], nil
		}
	}
	return entities.Material{}, nil
}

func (s *StorageService) DeleteMaterial(ctx context.Context, materialID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	materials := readCollection[entities.Material](s, keyMaterials)
	kept := materials[:0]
	for _, m := range materials {
		if m.ID != materialID {
			kept = append(kept, m)
		}
	}
	return writeCollection(s, keyMaterials, kept)
}

// Usuários

func (s *StorageService) SaveUser(ctx context.Context, user entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := readCollection[storedUser](s, keyUsers)
	user.ID = idgen.Next(users, func(u storedUser) int { return u.ID })
	users = append(users, toStoredUser(user))
	if err := writeCollection(s, keyUsers, users); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (s *StorageService) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range readCollection[storedUser](s, keyUsers) {
		if strings.EqualFold(u.Email, email) {
			return u.toEntity(), nil
		}
	}
	return entities.User{}, nil
}
