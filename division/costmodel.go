// SPDX-License-Identifier: MIT
// Package: recurrence/division
//
// costmodel.go — operation-count simulations for the a < b^k and a > b^k cases.
//
// Contract (strict):
//   • Both functions return a synthetic operation count, never an element or
//     a product. They are models of an algorithm's cost, not the algorithm.
//   • Base cases cost exactly 1.
//   • Results are deterministic and depend only on the input size.
//   • NaiveMultiplyCostModel reports ErrOverflow rather than wrapping.

package division

import (
	"fmt"
	"math"
)

// QuickSelectCostModel returns the simulated operation count of an
// average-case quickselect for the k-th smallest element of s.
// Recurrence: T(n) = T(n/2) + Θ(n), a = 1 < b^k = 2, Θ(n).
//
// Each level pays len(s) for the partition pass and recurses into one
// placeholder half of length ⌊len(s)/2⌋. The placeholder holds zero values,
// not a real partition, and k is never read: it is accepted only so the
// signature matches a real selection routine. For length n the result is
// n + ⌊n/2⌋ + ⌊n/4⌋ + … with the final level of length ≤ 1 contributing 1.
func QuickSelectCostModel[T any](s []T, k int) int64 {
	// 1. Base case: nothing left to partition
	if len(s) <= 1 {
		return 1
	}

	// 2. Simulated partition pass over every element: O(n)
	partitionCost := int64(len(s))

	// 3. Simulated single-branch recursion (a = 1, b = 2)
	half := make([]T, len(s)/2)

	return partitionCost + QuickSelectCostModel(half, k)
}

// NaiveMultiplyCostModel returns the simulated operation count of multiplying
// two bitWidth-bit integers by splitting each into high and low halves and
// computing the four half-width products recursively.
// Recurrence: T(n) = 4·T(n/2) + Θ(n), a = 4 > b^k = 2, Θ(n^log₂4) = Θ(n²).
//
// bitWidth ≤ 1 costs 1. No operands are taken: the cost depends only on the
// width. A cost that does not fit in an int64 fails with ErrOverflow; the
// largest accepted width is 2147516555, just above 2^31.
func NaiveMultiplyCostModel(bitWidth int) (int64, error) {
	cost, ok := naiveMultiplyCost(bitWidth)
	if !ok {
		return 0, fmt.Errorf("NaiveMultiplyCostModel(bitWidth=%d): %w", bitWidth, ErrOverflow)
	}

	return cost, nil
}

// naiveMultiplyCost evaluates the recurrence and reports false as soon as a
// level would overflow.
func naiveMultiplyCost(bitWidth int) (int64, bool) {
	// 1. Single-bit product: O(1)
	if bitWidth <= 1 {
		return 1, true
	}

	// 2. Four recursive half-width products
	sub, ok := naiveMultiplyCost(bitWidth / 2)
	if !ok {
		return 0, false
	}

	// 3. Combine cost: additions and shifts over the full width, O(n)
	combineCost := int64(bitWidth)
	if sub > (math.MaxInt64-combineCost)/4 {
		return 0, false
	}

	return combineCost + 4*sub, true
}
