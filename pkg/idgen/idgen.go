// Package idgen derives the next integer identifier from an in-memory
// collection: highest existing id plus one, starting at 1.
//
// The scheme is only monotonic for a single writer that persists before
// allocating again. Two writers racing on the same collection can hand out
// the same id; backends with server-issued ids (see the dynamo storage) do
// not use this package.
package idgen

// Next returns the next unused identifier for items, reading each item's id
// through the accessor.
func Next[T any](items []T, id func(T) int) int {
	max := 0
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}
