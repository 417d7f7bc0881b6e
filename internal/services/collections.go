package services

import "slices"

// Filter returns the items for which keep reports true, preserving order.
// The input slice is not modified.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// SortBy returns a stably sorted copy of items ordered by cmp.
// The input slice is not modified.
func SortBy[T any](items []T, cmp func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, cmp)
	return out
}
