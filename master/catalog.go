// SPDX-License-Identifier: MIT
// Package: recurrence/master
//
// catalog.go — the six case studies and their recurrence parameters.

package master

// Catalog returns the recurrences demonstrated by the subtraction and division
// packages, in case order 1..6. A fresh slice is returned on every call.
func Catalog() []Recurrence {
	return []Recurrence{
		{
			Name:    "LinearAccumulate",
			Family:  Subtraction,
			A:       1,
			B:       1,
			K:       0,
			Formula: "T(n) = T(n-1) + c",
		},
		{
			Name:    "HanoiMoves",
			Family:  Subtraction,
			A:       2,
			B:       1,
			K:       0,
			Formula: "T(n) = 2T(n-1) + 1",
		},
		{
			Name:    "ProbabilisticDescent",
			Family:  Subtraction,
			A:       0.5,
			B:       1,
			K:       0,
			Formula: "T(n) = 0.5T(n-1) + 1 (expected)",
		},
		{
			Name:    "MergeSort",
			Family:  Division,
			A:       2,
			B:       2,
			K:       1,
			Formula: "T(n) = 2T(n/2) + n",
		},
		{
			Name:    "QuickSelectCostModel",
			Family:  Division,
			A:       1,
			B:       2,
			K:       1,
			Formula: "T(n) = T(n/2) + n",
		},
		{
			Name:    "NaiveMultiplyCostModel",
			Family:  Division,
			A:       4,
			B:       2,
			K:       1,
			Formula: "T(n) = 4T(n/2) + n",
		},
	}
}
