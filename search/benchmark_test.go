package search_test

import (
	"slices"
	"testing"

	"seek/search"
)

const benchSize = 1_000_000

func getBenchData() []int {
	data := make([]int, benchSize)
	for i := 0; i < benchSize; i++ {
		data[i] = i
	}
	return data
}

// BenchmarkSearch compares the linear scan, this package's binary search and
// the standard library on the same sorted input. Targets near the end are the
// linear scan's worst case.
func BenchmarkSearch(b *testing.B) {
	data := getBenchData()
	target := benchSize - 7

	b.Run("Contains", func(b *testing.B) {
		for b.Loop() {
			_ = search.Contains(data, target)
		}
	})

	b.Run("BinarySearch", func(b *testing.B) {
		for b.Loop() {
			_, _ = search.BinarySearch(data, target)
		}
	})

	b.Run("BinarySearchFunc", func(b *testing.B) {
		cmp := func(e, t int) int { return e - t }
		for b.Loop() {
			_, _ = search.BinarySearchFunc(data, target, cmp)
		}
	})

	b.Run("Stdlib_BinarySearch", func(b *testing.B) {
		for b.Loop() {
			_, _ = slices.BinarySearch(data, target)
		}
	})
}
