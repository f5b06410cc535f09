package usecase

import (
	"context"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/domain/validation"
	"orcafacil/internal/usecase/interfaces"
)

// MaterialStore caches the material catalog. Same action contract as
// BudgetStore.

type MaterialStore struct {
	storeState
	storage interfaces.IStorageService

	materials []entities.Material
}

func NewMaterialStore(storage interfaces.IStorageService) *MaterialStore {
	return &MaterialStore{storage: storage}
}

// Materials returns a copy of the cached catalog.
func (s *MaterialStore) Materials() []entities.Material {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Material, len(s.materials))
	copy(out, s.materials)
	return out
}

// FetchMaterials replaces the cache with the persisted catalog.
func (s *MaterialStore) FetchMaterials(ctx context.Context) ([]entities.Material, error) {
	s.begin()
	defer s.finish()

	materials, err := s.storage.GetMaterials(ctx)
	if err != nil {
		s.fail("Error fetching materials")
		return nil, err
	}

	s.mu.Lock()
	s.materials = materials
	s.mu.Unlock()
	return s.Materials(), nil
}

// CreateMaterial persists a new material with its total recomputed and
// appends it to the cache.
func (s *MaterialStore) CreateMaterial(ctx context.Context, material entities.Material) (entities.Material, error) {
	s.begin()
	defer s.finish()

	material.Total = validation.CalculateTotalPrice(material.UnitPrice, material.Quantity)

	saved, err := s.storage.SaveMaterial(ctx, material)
	if err != nil {
		s.fail("Error creating material")
		return entities.Material{}, err
	}

	s.mu.Lock()
	s.materials = append(s.materials, saved)
	s.mu.Unlock()
	return saved, nil
}

// UpdateMaterial applies a partial patch and replaces the cached entry. A
// missing id is a silent no-op at the storage layer.
func (s *MaterialStore) UpdateMaterial(ctx context.Context, id int, patch entities.MaterialPatch) (entities.Material, error) {
	s.begin()
	defer s.finish()

	updated, err := s.storage.UpdateMaterial(ctx, id, patch)
	if err != nil {
		s.fail("Error updating material")
		return entities.Material{}, err
	}
	if updated.ID == 0 {
		return updated, nil
	}

	s.mu.Lock()
	for i := range s.materials {
		if s.materials[i].ID == updated.ID {
			s.materials[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteMaterial removes the material by id and splices it out of the cache.
func (s *MaterialStore) DeleteMaterial(ctx context.Context, id int) error {
	s.begin()
	defer s.finish()

	if err := s.storage.DeleteMaterial(ctx, id); err != nil {
		s.fail("Error deleting material")
		return err
	}

	s.mu.Lock()
	kept := s.materials[:0]
	for _, m := range s.materials {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.materials = kept
	s.mu.Unlock()
	return nil
}

// ValidateMaterial runs the validation engine without touching storage.
func (s *MaterialStore) ValidateMaterial(material entities.Material) []string {
	return validation.ValidateMaterial(material)
}
