package usecase

import (
	"context"
	"errors"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/domain/validation"
	"orcafacil/internal/usecase/interfaces"
	"orcafacil/pkg/format"
)

var (
	ErrBudgetNotFound           = errors.New("budget not found")
	ErrUnknownBudgetStatus      = errors.New("unknown budget status")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrNoCurrentBudget          = errors.New("no current budget")
	ErrCurrentBudgetItemMissing = errors.New("item not found in current budget")
)

// BudgetStore caches the budget collection and orchestrates mutations
// against the storage backend.
//
// Action contract:
//   - loading is raised and the previous error cleared before the call;
//   - on success the cache is patched in place (append/replace/splice),
//     never refetched;
//   - on failure a display message is recorded, the cache is left untouched
//     and the original error is returned to the caller;
//   - loading is dropped on the way out regardless of outcome.
//
// The store also keeps a current-budget working copy for incremental item
// editing before submission, mirroring how budgets are drafted.

type BudgetStore struct {
	storeState
	storage interfaces.IStorageService

	budgets []entities.Budget
	current *entities.Budget
}

func NewBudgetStore(storage interfaces.IStorageService) *BudgetStore {
	return &BudgetStore{storage: storage}
}

// Budgets returns a copy of the cached collection.
func (s *BudgetStore) Budgets() []entities.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// GetBudgetByID looks a budget up in the cache.
func (s *BudgetStore) GetBudgetByID(id int) (entities.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.budgets {
		if b.ID == id {
			return b, true
		}
	}
	return entities.Budget{}, false
}

// FetchBudgets replaces the cache with the persisted collection. Budgets
// persisted without a status read back as Pendente.
func (s *BudgetStore) FetchBudgets(ctx context.Context) ([]entities.Budget, error) {
	s.begin()
	defer s.finish()

	budgets, err := s.storage.GetBudgets(ctx)
	if err != nil {
		s.fail("Error fetching budgets")
		return nil, err
	}
	for i := range budgets {
		if budgets[i].Status == "" {
			budgets[i].Status = entities.BudgetStatusPendente
		}
	}

	s.mu.Lock()
	s.budgets = budgets
	s.mu.Unlock()
	return s.Budgets(), nil
}

// CreateBudget persists a new budget and appends it to the cache. Totals are
// recomputed, the status defaults to Pendente and an empty display number is
// filled from the cached sequence; the storage backend assigns the id.
func (s *BudgetStore) CreateBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error) {
	s.begin()
	defer s.finish()

	budget.RecomputeTotals()
	if budget.Status == "" {
		budget.Status = entities.BudgetStatusPendente
	}
	if budget.Number == "" {
		budget.Number = s.NextProposalNumber()
	}
	now := time.Now().UTC()
	budget.CreatedAt = now
	budget.UpdatedAt = now

	saved, err := s.storage.SaveBudget(ctx, budget)
	if err != nil {
		s.fail("Error creating budget")
		return entities.Budget{}, err
	}

	s.mu.Lock()
	s.budgets = append(s.budgets, saved)
	s.mu.Unlock()
	return saved, nil
}

// UpdateBudget persists the full aggregate and replaces the cached entry.
// A missing id is a silent no-op at the storage layer; the cache is only
// touched when the backend reports an affected row.
func (s *BudgetStore) UpdateBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error) {
	s.begin()
	defer s.finish()

	budget.RecomputeTotals()
	budget.UpdatedAt = time.Now().UTC()

	updated, err := s.storage.UpdateBudget(ctx, budget)
	if err != nil {
		s.fail("Error updating budget")
		return entities.Budget{}, err
	}
	if updated.ID == 0 {
		return updated, nil
	}

	s.mu.Lock()
	for i := range s.budgets {
		if s.budgets[i].ID == updated.ID {
			s.budgets[i] = updated
			break
		}
	}
	if s.current != nil && s.current.ID == updated.ID {
		cp := updated
		s.current = &cp
	}
	s.mu.Unlock()
	return updated, nil
}

// ReplaceBudgets overwrites the whole persisted collection, ids included,
// and mirrors it into the cache. Used by bulk import and sync flows.
func (s *BudgetStore) ReplaceBudgets(ctx context.Context, budgets []entities.Budget) error {
	s.begin()
	defer s.finish()

	for i := range budgets {
		budgets[i].RecomputeTotals()
		if budgets[i].Status == "" {
			budgets[i].Status = entities.BudgetStatusPendente
		}
	}

	if err := s.storage.SaveBudgets(ctx, budgets); err != nil {
		s.fail("Error saving budgets")
		return err
	}

	s.mu.Lock()
	s.budgets = budgets
	s.mu.Unlock()
	return nil
}

// DeleteBudget removes the budget by id and splices it out of the cache.
func (s *BudgetStore) DeleteBudget(ctx context.Context, id int) error {
	s.begin()
	defer s.finish()

	if err := s.storage.DeleteBudget(ctx, id); err != nil {
		s.fail("Error deleting budget")
		return err
	}

	s.mu.Lock()
	kept := s.budgets[:0]
	for _, b := range s.budgets {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.budgets = kept
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	s.mu.Unlock()
	return nil
}

// ChangeStatus moves a budget through the workflow, enforcing the
// Pendente -> Aprovado|Rejeitado -> Concluído machine before persisting.
func (s *BudgetStore) ChangeStatus(ctx context.Context, id int, status entities.BudgetStatus) (entities.Budget, error) {
	if !status.IsValid() {
		return entities.Budget{}, ErrUnknownBudgetStatus
	}

	budget, ok := s.GetBudgetByID(id)
	if !ok {
		if _, err := s.FetchBudgets(ctx); err != nil {
			return entities.Budget{}, err
		}
		if budget, ok = s.GetBudgetByID(id); !ok {
			return entities.Budget{}, ErrBudgetNotFound
		}
	}
	if !budget.Status.CanTransition(status) {
		return entities.Budget{}, ErrInvalidStatusTransition
	}

	budget.Status = status
	return s.UpdateBudget(ctx, budget)
}

// NextProposalNumber derives the next display number from the last cached
// budget, zero-padded to 4 digits. Display convenience only: the id actually
// assigned on save wins, and nothing here is race-free.
func (s *BudgetStore) NextProposalNumber() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.budgets) == 0 {
		return format.ID(1)
	}
	return format.ID(s.budgets[len(s.budgets)-1].ID + 1)
}

// ValidateBudget runs the validation engine without touching storage.
func (s *BudgetStore) ValidateBudget(budget entities.Budget) []string {
	return validation.ValidateBudget(budget)
}

// ResetCurrent starts a fresh working copy owned by the given user.
func (s *BudgetStore) ResetCurrent(createdBy int) {
	now := time.Now().UTC()
	s.mu.Lock()
	s.current = &entities.Budget{
		Status:    entities.BudgetStatusPendente,
		Items:     []entities.Material{},
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Unlock()
}

// ClearCurrent drops the working copy.
func (s *BudgetStore) ClearCurrent() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Current returns a copy of the working budget.
func (s *BudgetStore) Current() (entities.Budget, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return entities.Budget{}, false
	}
	return *s.current, true
}

// AddItem appends a line item to the working budget and refreshes totals.
func (s *BudgetStore) AddItem(item entities.Material) (entities.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return entities.Budget{}, ErrNoCurrentBudget
	}
	item.Total = validation.CalculateTotalPrice(item.UnitPrice, item.Quantity)
	s.current.Items = append(s.current.Items, item)
	s.current.RecomputeTotals()
	return *s.current, nil
}

// UpdateItem patches a line item of the working budget by id and refreshes
// totals.
func (s *BudgetStore) UpdateItem(itemID int, patch entities.MaterialPatch) (entities.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return entities.Budget{}, ErrNoCurrentBudget
	}
	for i := range s.current.Items {
		if s.current.Items[i].ID == itemID {
			s.current.Items[i] = patch.Apply(s.current.Items[i])
			s.current.RecomputeTotals()
			return *s.current, nil
		}
	}
	return entities.Budget{}, ErrCurrentBudgetItemMissing
}
