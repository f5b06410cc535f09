package entities

import "testing"

func TestBudgetStatusCanTransition(t *testing.T) {
	cases := []struct {
		from, to BudgetStatus
		want     bool
	}{
		{BudgetStatusPendente, BudgetStatusAprovado, true},
		{BudgetStatusPendente, BudgetStatusRejeitado, true},
		{BudgetStatusPendente, BudgetStatusConcluido, false},
		{BudgetStatusAprovado, BudgetStatusConcluido, true},
		{BudgetStatusAprovado, BudgetStatusRejeitado, false},
		{BudgetStatusRejeitado, BudgetStatusConcluido, false},
		{BudgetStatusRejeitado, BudgetStatusPendente, false},
		{BudgetStatusConcluido, BudgetStatusPendente, false},
		{BudgetStatusAprovado, BudgetStatusAprovado, true},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestBudgetStatusIsValid(t *testing.T) {
	if !BudgetStatusAprovado.IsValid() {
		t.Fatal("Aprovado should be valid")
	}
	if BudgetStatus("Cancelado").IsValid() {
		t.Fatal("unknown status should be invalid")
	}
}

func TestBudgetRecomputeTotals(t *testing.T) {
	b := Budget{
		Items: []Material{
			{UnitPrice: 10.5, Quantity: 2, Total: 999},
			{UnitPrice: 3, Quantity: 0.5, Total: -1},
		},
		Subtotal: 123,
		Total:    456,
	}
	b.RecomputeTotals()

	if b.Items[0].Total != 21 {
		t.Errorf("item 0 total: got %v, want 21", b.Items[0].Total)
	}
	if b.Items[1].Total != 1.5 {
		t.Errorf("item 1 total: got %v, want 1.5", b.Items[1].Total)
	}
	if b.Subtotal != 22.5 || b.Total != 22.5 {
		t.Errorf("subtotal/total: got %v/%v, want 22.5", b.Subtotal, b.Total)
	}
}

func TestMaterialPatchApply(t *testing.T) {
	name := "Cimento CP-II"
	qty := 4.0
	m := Material{ID: 7, Name: "Cimento", Brand: "Votoran", Quantity: 2, Unit: "saco", UnitPrice: 32.9, Total: 65.8}

	out := MaterialPatch{Name: &name, Quantity: &qty}.Apply(m)

	if out.Name != name || out.Quantity != qty {
		t.Fatalf("patch not applied: %+v", out)
	}
	if out.Brand != "Votoran" || out.Unit != "saco" || out.UnitPrice != 32.9 {
		t.Fatalf("untouched fields changed: %+v", out)
	}
	if out.Total != 32.9*4 {
		t.Fatalf("total not recomputed: %v", out.Total)
	}
}
