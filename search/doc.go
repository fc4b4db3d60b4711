/*
Package search finds values in slices and iterators.

Two families are provided:

  - **Linear**: [Contains], [ContainsFunc], [IndexOf] and [ContainsSeq] scan in
    order and stop at the first match. No ordering is assumed.
  - **Binary**: [BinarySearch] and [BinarySearchFunc] halve an ascending slice
    until the target is hit or the range is empty.

# Absent values

Binary search reports absence through the comma-ok form rather than a magic
index:

	if i, ok := search.BinarySearch(sorted, 5); ok {
		use(sorted[i])
	}

When ok is false the returned index is -1.

# Sorted input

Binary search does not check that its input is sorted. On unsorted input the
result is unspecified but the call never panics. Callers that cannot trust
their input should check with [slices.IsSorted] first.

# Duplicates

With repeated values, [BinarySearch] returns whichever matching index the
midpoint sequence reaches first. Use [slices.BinarySearch] when the leftmost
match is required.
*/
package search
