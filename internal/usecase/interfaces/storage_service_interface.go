package interfaces

import (
	"context"

	"orcafacil/internal/domain/entities"
)

// IStorageService abstracts persistence for the three budget collections.
// The concrete backend (JSON files, DynamoDB, remote API) is chosen at
// startup; every implementation must keep the same external semantics:
//
//   - Save* allocates a fresh identifier and overwrites any id supplied by
//     the caller.
//   - Update*/Delete* on a missing identifier are silent no-ops: a zero-value
//     entity (ID == 0) and a nil error, never a "not found" failure.
//   - GetClientByName returns a zero-value client when no record matches.
//   - Errors are transport/storage failures only; callers translate them at
//     the store boundary.

type IStorageService interface {
	// Clientes
	SaveClient(ctx context.Context, client entities.Client) (entities.Client, error)
	GetClients(ctx context.Context) ([]entities.Client, error)
	GetClientByName(ctx context.Context, name string) (entities.Client, error)
	UpdateClient(ctx context.Context, client entities.Client) (entities.Client, error)
	DeleteClient(ctx context.Context, clientID int) error

	// Orçamentos
	SaveBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error)
	SaveBudgets(ctx context.Context, budgets []entities.Budget) error
	GetBudgets(ctx context.Context) ([]entities.Budget, error)
	UpdateBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error)
	DeleteBudget(ctx context.Context, budgetID int) error

	// Materiais
	SaveMaterial(ctx context.Context, material entities.Material) (entities.Material, error)
	GetMaterials(ctx context.Context) ([]entities.Material, error)
	UpdateMaterial(ctx context.Context, materialID int, patch entities.MaterialPatch) (entities.Material, error)
	DeleteMaterial(ctx context.Context, materialID int) error
}
