package content

import (
	"cmp"
	"slices"
)

// SortByOrder returns a copy sorted ascending by order, missing order as 0,
// keeping fetch order among equal orders.
func SortByOrder[T Ordered](items []T) []T {
	sorted := slices.Clone(items)

	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(a.SortOrder(), b.SortOrder())
	})

	return sorted
}
