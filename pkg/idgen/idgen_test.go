package idgen

import "testing"

type row struct{ id int }

func TestNext(t *testing.T) {
	ident := func(r row) int { return r.id }

	if got := Next([]row{{3}, {7}, {2}}, ident); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
	if got := Next(nil, ident); got != 1 {
		t.Fatalf("empty collection: got %d, want 1", got)
	}
	if got := Next([]row{{1}}, ident); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestNextIgnoresGaps(t *testing.T) {
	ident := func(r row) int { return r.id }
	// Deleted rows leave holes; allocation never reuses them.
	if got := Next([]row{{1}, {5}}, ident); got != 6 {
		t.Fatalf("got %d, want 6", got)
	}
}
