// SPDX-License-Identifier: MIT
// Package: recurrence/division
//
// mergesort.go — top-down merge sort, the a = b^k case.
//
// Contract:
//   • The input slice is never mutated; a new slice is returned.
//   • Stable: among equal keys, elements keep their input order.
//   • nil in → nil out; empty non-nil in → empty non-nil out.

package division

import (
	"golang.org/x/exp/constraints"
)

// MergeSort returns the elements of s in non-decreasing order.
// Recurrence: T(n) = 2·T(n/2) + Θ(n), a = 2 = b^k, Θ(n log n).
// Complexity: O(n log n) time, O(n log n) transient allocations.
func MergeSort[T constraints.Ordered](s []T) []T {
	return MergeSortFunc(s, compareOrdered[T])
}

// compareOrdered is the natural three-way order of T.
func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MergeSortFunc sorts s by compare (negative when a < b, zero when equal,
// positive when a > b) and returns a new slice. Elements comparing equal keep
// their relative order.
func MergeSortFunc[T any](s []T, compare func(a, b T) int) []T {
	// 1. Base case: zero or one element is already sorted
	if len(s) <= 1 {
		if s == nil {
			return nil
		}
		out := make([]T, len(s))
		copy(out, s)

		return out
	}

	// 2. Divide: left gets ⌊n/2⌋, right gets ⌈n/2⌉
	mid := len(s) / 2

	// 3. Conquer: a = 2 independent half-size sorts
	left := MergeSortFunc(s[:mid], compare)
	right := MergeSortFunc(s[mid:], compare)

	// 4. Combine in Θ(n)
	return merge(left, right, compare)
}

// merge interleaves two sorted slices into a new one. Ties take the left
// element first, which is what makes the sort stable.
func merge[T any](left, right []T, compare func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			out = append(out, left[i]) // left wins ties
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	// one side is exhausted; drain the other
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
