package compare

import (
	"cmp"
	"slices"
)

// Container is implemented by anything that can answer membership queries, such as
// utils.OrderedSet.
type Container[T any] interface {
	Contains(T) bool
}

// Missing returns the values of source that target does not contain, in source order.
// Duplicates in source are preserved.
//
// Example:
//
//	target := utils.NewOrderedSet("a", "c")
//	compare.Missing([]string{"a", "b", "c", "d"}, target) // [b d]
func Missing[T any](source []T, target Container[T]) []T {
	var out []T
	for _, v := range source {
		if !target.Contains(v) {
			out = append(out, v)
		}
	}

	return out
}

// MissingBy returns key(v) for every value of source that target does not contain.
// It is used to map a missing child (e.g. a column) to the thing that owns it.
//
// Example:
//
//	owners := compare.MissingBy(columns, targetColumns, func(c Column) string {
//	    return c.Table
//	})
func MissingBy[T, K any](source []T, target Container[T], key func(T) K) []K {
	var out []K
	for _, v := range source {
		if !target.Contains(v) {
			out = append(out, key(v))
		}
	}

	return out
}

// SortedUnion concatenates the given slices, sorts the result and removes duplicates.
//
// Example:
//
//	compare.SortedUnion([]string{"b", "a"}, []string{"a", "c"}) // [a b c]
func SortedUnion[T cmp.Ordered](sets ...[]T) []T {
	var out []T
	for _, s := range sets {
		out = append(out, s...)
	}

	slices.Sort(out)
	return slices.Compact(out)
}
