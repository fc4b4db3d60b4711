package search

import "iter"

// Contains reports whether target is equal to some element of collection.
// Elements are visited in order and the scan stops at the first match.
func Contains[T comparable](collection []T, target T) bool {
	return IndexOf(collection, target) >= 0
}

// IndexOf returns the index of the first element equal to target, or -1.
func IndexOf[T comparable](collection []T, target T) int {
	if len(collection) == 0 {
		return -1
	}
	_ = collection[len(collection)-1] // BCE hint
	for i, v := range collection {
		if v == target {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether any element satisfies the predicate.
// Useful for non-comparable types or custom matching logic.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	if len(collection) == 0 {
		return false
	}
	_ = collection[len(collection)-1]

	for _, item := range collection {
		if predicate(item) {
			return true
		}
	}
	return false
}

// ContainsSeq is the iterator form of [Contains]. It stops pulling from seq
// as soon as a match is seen, so it is safe on unbounded sequences that
// eventually yield target.
func ContainsSeq[T comparable](seq iter.Seq[T], target T) bool {
	for v := range seq {
		if v == target {
			return true
		}
	}
	return false
}
