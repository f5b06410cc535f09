package request

import (
	"time"

	"orcafacil/internal/domain/entities"
)

// BudgetClientRequest is the client snapshot embedded in a budget. The id is
// kept so the snapshot can point back at the canonical record.
type BudgetClientRequest struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

// BudgetItemRequest is a line item. Item ids are local to the budget and may
// be supplied by the caller; totals are always recomputed server-side.
type BudgetItemRequest struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

type BudgetRequest struct {
	Number     string              `json:"number"`
	Client     BudgetClientRequest `json:"client"`
	Items      []BudgetItemRequest `json:"items"`
	Status     string              `json:"status"`
	CreatedBy  int                 `json:"created_by"`
	ValidUntil time.Time           `json:"valid_until"`
}

func (r BudgetRequest) ToEntity() entities.Budget {
	items := make([]entities.Material, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.Material{
			ID:        it.ID,
			Name:      it.Name,
			Brand:     it.Brand,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
		})
	}
	return entities.Budget{
		Number: r.Number,
		Client: entities.Client{
			ID:      r.Client.ID,
			Name:    r.Client.Name,
			Company: r.Client.Company,
			Phone:   r.Client.Phone,
		},
		Items:      items,
		Status:     entities.BudgetStatus(r.Status),
		CreatedBy:  r.CreatedBy,
		ValidUntil: r.ValidUntil,
	}
}

// BudgetStatusRequest is the payload for workflow transitions.
type BudgetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
