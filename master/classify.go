// SPDX-License-Identifier: MIT
// Package: recurrence/master
//
// classify.go — case selection and bound rendering for both families.
//
// Contract:
//   • Classify* validate their parameters and return ErrInvalidParameter
//     (wrapped with the offending values) instead of guessing.
//   • a = b^k is decided with a relative tolerance, so parameters that are
//     equal up to floating-point rounding (e.g. 8 vs 2^3) land in the
//     balanced case.

package master

import (
	"fmt"
	"math"
	"strconv"
)

// equalityTolerance is the relative tolerance used to decide a = b^k.
const equalityTolerance = 1e-9

// ClassifyDivision selects the Master-theorem case of T(n) = a·T(n/b) + Θ(n^k).
// Requires a ≥ 1, b > 1, k ≥ 0, all finite.
func ClassifyDivision(a, b, k float64) (Case, error) {
	// 1. Validate domain
	if !finite(a, b, k) || a < 1 || b <= 1 || k < 0 {
		return 0, fmt.Errorf("ClassifyDivision(a=%g, b=%g, k=%g): need a≥1, b>1, k≥0: %w", a, b, k, ErrInvalidParameter)
	}

	// 2. Compare a against b^k
	bk := math.Pow(b, k)
	switch {
	case nearlyEqual(a, bk):
		return DivisionLeafBalanced, nil
	case a < bk:
		return DivisionRootHeavy, nil
	default:
		return DivisionLeafHeavy, nil
	}
}

// ClassifySubtraction selects the case of T(n) = a·T(n−c) + Θ(n^k).
// Requires a > 0, c ≥ 1, k ≥ 0, all finite.
func ClassifySubtraction(a, c, k float64) (Case, error) {
	if !finite(a, c, k) || a <= 0 || c < 1 || k < 0 {
		return 0, fmt.Errorf("ClassifySubtraction(a=%g, c=%g, k=%g): need a>0, c≥1, k≥0: %w", a, c, k, ErrInvalidParameter)
	}

	switch {
	case nearlyEqual(a, 1):
		return SubtractionLinear, nil
	case a < 1:
		return SubtractionDecaying, nil
	default:
		return SubtractionExponential, nil
	}
}

// CriticalExponent returns log_b(a), the exponent of the leaf work n^(log_b a)
// in a division recurrence.
func CriticalExponent(a, b float64) float64 {
	if b == 2 {
		return math.Log2(a) // exact for powers of two
	}

	return math.Log(a) / math.Log(b)
}

// Bound renders the asymptotic bound of case c for parameters a, b (the step
// c for subtraction), and k. Division bounds are tight (Θ); subtraction bounds
// are upper bounds (O).
func Bound(c Case, a, b, k float64) string {
	switch c {
	case DivisionRootHeavy:
		return "Θ(" + power("n", k) + ")"
	case DivisionLeafBalanced:
		if k == 0 {
			return "Θ(log n)"
		}
		return "Θ(" + power("n", k) + " log n)"
	case DivisionLeafHeavy:
		return "Θ(" + power("n", CriticalExponent(a, b)) + ")"
	case SubtractionDecaying:
		return "O(" + power("n", k) + ")"
	case SubtractionLinear:
		return "O(" + power("n", k+1) + ")"
	case SubtractionExponential:
		growth := num(a) + "^n"
		if b != 1 {
			growth = num(a) + "^(n/" + num(b) + ")"
		}
		if k != 0 {
			growth += "·" + power("n", k)
		}
		return "O(" + growth + ")"
	default:
		return "?"
	}
}

// power renders base^exp with the trivial exponents 0 and 1 simplified.
func power(base string, exp float64) string {
	switch exp {
	case 0:
		return "1"
	case 1:
		return base
	default:
		return base + "^" + num(exp)
	}
}

// num renders x with at most four significant digits.
func num(x float64) string {
	return strconv.FormatFloat(x, 'g', 4, 64)
}

// nearlyEqual reports whether x and y agree within equalityTolerance (relative).
func nearlyEqual(x, y float64) bool {
	scale := math.Max(math.Abs(x), math.Abs(y))
	return math.Abs(x-y) <= equalityTolerance*scale
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
