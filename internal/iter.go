package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// SortedKeys iterates over the keys of a map in ascending order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) iter.Seq[K] {
	return slices.Values(slices.Sorted(maps.Keys(m)))
}

// SortedAll iterates over the entries of a map in ascending key order.
func SortedAll[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for key := range SortedKeys(m) {
			if !yield(key, m[key]) {
				return // Stop if the consumer stops
			}
		}
	}
}
