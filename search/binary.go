package search

import "cmp"

// BinarySearch looks for target in sorted, which must be in ascending order.
// It returns the index of a matching element and true, or -1 and false when
// no element equals target.
func BinarySearch[T cmp.Ordered](sorted []T, target T) (int, bool) {
	low, high := 0, len(sorted)-1
	for low <= high {
		// Overflow-safe floor of (low+high)/2.
		mid := int(uint(low+high) >> 1)
		switch v := sorted[mid]; {
		case v == target:
			return mid, true
		case v < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return -1, false
}

// BinarySearchFunc works like [BinarySearch] but orders elements with cmp.
// cmp(e, target) must return a negative number when e sorts before target,
// zero when they match and a positive number when e sorts after target.
// The slice must be sorted in increasing order as defined by cmp.
func BinarySearchFunc[E, T any](sorted []E, target T, cmp func(E, T) int) (int, bool) {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		c := cmp(sorted[mid], target)
		if c == 0 {
			return mid, true
		}
		if c < 0 {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return -1, false
}
