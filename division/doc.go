// SPDX-License-Identifier: MIT
// Package: recurrence/division
//
// Package division implements the three canonical division-type recurrences,
// T(n) = a·T(n/b) + Θ(n^k), one per Master-theorem case.
//
// What:
//
//   - MergeSort / MergeSortFunc (a = b^k; a=2, b=2, k=1):
//     a real, stable divide-and-conquer sort. Θ(n log n).
//   - QuickSelectCostModel (a < b^k; a=1, b=2, k=1):
//     the operation count of an average-case quickselect that partitions in
//     O(n) and recurses into one half. Θ(n).
//   - NaiveMultiplyCostModel (a > b^k; a=4, b=2, k=1):
//     the operation count of schoolbook divide-and-conquer multiplication,
//     four half-width products combined in O(n). Θ(n²).
//
// Cost models:
//
//	QuickSelectCostModel and NaiveMultiplyCostModel are cost simulations.
//	They return the number of "virtual" operations the algorithm would
//	perform and do not select or multiply anything. QuickSelectCostModel
//	recurses on a zero-valued placeholder half, never on a real partition.
//	NaiveMultiplyCostModel fails with ErrOverflow once the count leaves the
//	int64 range (widths just above 2^31).
//
// Recursion depth:
//
//	All three recurse ⌈log₂ n⌉ levels deep, so no depth budget is needed.
//
// Concurrency:
//
//	Functions hold no shared state and are safe for concurrent use.
//	MergeSort never mutates its input.
package division
