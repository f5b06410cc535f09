package response

import (
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/pkg/format"
)

type BudgetResponse struct {
	ID                  int                `json:"id"`
	Number              string             `json:"number"`
	Client              ClientResponse     `json:"client"`
	Items               []MaterialResponse `json:"items"`
	Subtotal            float64            `json:"subtotal"`
	Total               float64            `json:"total"`
	TotalFormatted      string             `json:"total_formatted"`
	Status              string             `json:"status"`
	CreatedBy           int                `json:"created_by"`
	ValidUntil          time.Time          `json:"valid_until"`
	ValidUntilFormatted string             `json:"valid_until_formatted"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	validUntilFormatted := ""
	if !b.ValidUntil.IsZero() {
		validUntilFormatted = format.Date(b.ValidUntil)
	}
	return BudgetResponse{
		ID:                  b.ID,
		Number:              b.Number,
		Client:              FromClient(b.Client),
		Items:               FromMaterials(b.Items),
		Subtotal:            b.Subtotal,
		Total:               b.Total,
		TotalFormatted:      format.Currency(b.Total),
		Status:              string(b.Status),
		CreatedBy:           b.CreatedBy,
		ValidUntil:          b.ValidUntil,
		ValidUntilFormatted: validUntilFormatted,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
