package dynamo

import (
	"context"

	"orcafacil/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func (s *StorageService) SaveBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error) {
	id, err := s.nextID(ctx, "budgets")
	if err != nil {
		return entities.Budget{}, err
	}
	budget.ID = id
	if err := s.putNew(ctx, s.budgetsTable, toBudgetRecord(budget)); err != nil {
		return entities.Budget{}, err
	}
	return budget, nil
}

func (s *StorageService) GetBudgets(ctx context.Context) ([]entities.Budget, error) {
	records, err := scanAll[budgetRecord](ctx, s, s.budgetsTable)
	if err != nil {
		return nil, err
	}
	budgets := make([]entities.Budget, len(records))
	for i, r := range records {
		budgets[i] = r.toEntity()
	}
	return budgets, nil
}

func (s *StorageService) UpdateBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error) {
	found, err := s.putExisting(ctx, s.budgetsTable, toBudgetRecord(budget))
	if err != nil {
		return entities.Budget{}, err
	}
	if !found {
		return entities.Budget{}, nil
	}
	return budget, nil
}

func (s *StorageService) DeleteBudget(ctx context.Context, budgetID int) error {
	return s.deleteByID(ctx, s.budgetsTable, budgetID)
}

// SaveBudgets replaces the whole persisted collection: incoming budgets are
// written and rows absent from the new set are deleted. Ids missing from the
// input are allocated so the collection stays addressable.
func (s *StorageService) SaveBudgets(ctx context.Context, budgets []entities.Budget) error {
	existing, err := scanAll[budgetRecord](ctx, s, s.budgetsTable)
	if err != nil {
		return err
	}

	keep := make(map[int]bool, len(budgets))
	var writes []types.WriteRequest
	for i := range budgets {
		if budgets[i].ID == 0 {
			id, err := s.nextID(ctx, "budgets")
			if err != nil {
				return err
			}
			budgets[i].ID = id
		}
		keep[budgets[i].ID] = true

		av, err := attributevalue.MarshalMap(toBudgetRecord(budgets[i]))
		if err != nil {
			return err
		}
		writes = append(writes, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	for _, r := range existing {
		if !keep[r.ID] {
			writes = append(writes, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: numericKey(r.ID)},
			})
		}
	}

	for start := 0; start < len(writes); start += batchWriteChunk {
		end := min(start+batchWriteChunk, len(writes))
		batch := writes[start:end]
		for len(batch) > 0 {
			out, err := s.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{s.budgetsTable: batch},
			})
			if err != nil {
				return err
			}
			batch = out.UnprocessedItems[s.budgetsTable]
		}
	}
	return nil
}
