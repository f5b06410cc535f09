package entities

import "time"

// BudgetStatus represents the lifecycle of a budget (orçamento).
//
// Domain notes:
//   - A budget is born Pendente.
//   - Transitions are enforced by CanTransition; there is no backwards move.

type BudgetStatus string

const (
	BudgetStatusPendente  BudgetStatus = "Pendente"
	BudgetStatusAprovado  BudgetStatus = "Aprovado"
	BudgetStatusRejeitado BudgetStatus = "Rejeitado"
	BudgetStatusConcluido BudgetStatus = "Concluído"
)

// IsValid reports whether s is one of the known statuses.
func (s BudgetStatus) IsValid() bool {
	switch s {
	case BudgetStatusPendente, BudgetStatusAprovado, BudgetStatusRejeitado, BudgetStatusConcluido:
		return true
	}
	return false
}

// CanTransition reports whether a budget may move from s to next.
// Allowed moves: Pendente -> Aprovado | Rejeitado, Aprovado -> Concluído.
// Writing the current status again is accepted so retried requests stay
// idempotent. Rejeitado and Concluído are terminal.
func (s BudgetStatus) CanTransition(next BudgetStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case BudgetStatusPendente:
		return next == BudgetStatusAprovado || next == BudgetStatusRejeitado
	case BudgetStatusAprovado:
		return next == BudgetStatusConcluido
	}
	return false
}

// Budget is the aggregate root: a client snapshot, line items and derived
// totals under a sequential display number.
//
// Ownership:
//   - Client and Items are held by value. Editing the canonical client or
//     material records later does not rewrite budgets already issued.

type Budget struct {
	ID         int          `json:"id"`
	Number     string       `json:"number"`
	Client     Client       `json:"client"`
	Items      []Material   `json:"items"`
	Subtotal   float64      `json:"subtotal"`
	Total      float64      `json:"total"`
	Status     BudgetStatus `json:"status"`
	CreatedBy  int          `json:"created_by"`
	ValidUntil time.Time    `json:"valid_until"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// RecomputeTotals rewrites every item total and the budget subtotal/total
// from unit prices and quantities. Caller-supplied totals are never trusted.
func (b *Budget) RecomputeTotals() {
	sum := 0.0
	for i := range b.Items {
		b.Items[i].Total = b.Items[i].UnitPrice * b.Items[i].Quantity
		sum += b.Items[i].Total
	}
	b.Subtotal = sum
	b.Total = sum
}
