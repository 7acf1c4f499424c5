// SPDX-License-Identifier: MIT
// Package: recurrence/master
//
// types.go — families, cases, the Recurrence descriptor and sentinel errors.

package master

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates recurrence parameters outside the domain of
// their family (e.g. b ≤ 1 for a division recurrence).
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject input */ }.
var ErrInvalidParameter = errors.New("master: invalid parameter")

// Family distinguishes how the problem size shrinks per call.
type Family int

const (
	// Subtraction recurrences shrink the input by a constant: n → n−c.
	Subtraction Family = iota
	// Division recurrences shrink the input by a constant factor: n → n/b.
	Division
)

// String implements fmt.Stringer.
func (f Family) String() string {
	switch f {
	case Subtraction:
		return "subtraction"
	case Division:
		return "division"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Case identifies which branch of its family's theorem a recurrence falls in.
type Case int

const (
	// SubtractionDecaying: a < 1.
	SubtractionDecaying Case = iota + 1
	// SubtractionLinear: a = 1.
	SubtractionLinear
	// SubtractionExponential: a > 1.
	SubtractionExponential
	// DivisionRootHeavy: a < b^k, the top-level work dominates.
	DivisionRootHeavy
	// DivisionLeafBalanced: a = b^k, every level does equal work.
	DivisionLeafBalanced
	// DivisionLeafHeavy: a > b^k, the leaves dominate.
	DivisionLeafHeavy
)

// String implements fmt.Stringer.
func (c Case) String() string {
	switch c {
	case SubtractionDecaying:
		return "SubtractionDecaying"
	case SubtractionLinear:
		return "SubtractionLinear"
	case SubtractionExponential:
		return "SubtractionExponential"
	case DivisionRootHeavy:
		return "DivisionRootHeavy"
	case DivisionLeafBalanced:
		return "DivisionLeafBalanced"
	case DivisionLeafHeavy:
		return "DivisionLeafHeavy"
	default:
		return fmt.Sprintf("Case(%d)", int(c))
	}
}

// Condition returns the textbook condition selecting the case, e.g. "a<b^k".
func (c Case) Condition() string {
	switch c {
	case SubtractionDecaying:
		return "a<1"
	case SubtractionLinear:
		return "a=1"
	case SubtractionExponential:
		return "a>1"
	case DivisionRootHeavy:
		return "a<b^k"
	case DivisionLeafBalanced:
		return "a=b^k"
	case DivisionLeafHeavy:
		return "a>b^k"
	default:
		return "?"
	}
}

// Family reports which family the case belongs to.
func (c Case) Family() Family {
	if c >= DivisionRootHeavy {
		return Division
	}

	return Subtraction
}

// Recurrence describes T(n) = A·T(n∘B) + Θ(n^K), where ∘ is "−" for the
// subtraction family (B is the step c) and "/" for the division family
// (B is the divisor b).
type Recurrence struct {
	Name    string  // function demonstrating the recurrence
	Family  Family  // subtraction or division
	A       float64 // number (or expected weight) of recursive calls
	B       float64 // step c (subtraction) or divisor b (division)
	K       float64 // exponent of the non-recursive work n^K
	Formula string  // human-readable recurrence
}

// Classify returns the case of r within its family.
func (r Recurrence) Classify() (Case, error) {
	switch r.Family {
	case Subtraction:
		return ClassifySubtraction(r.A, r.B, r.K)
	case Division:
		return ClassifyDivision(r.A, r.B, r.K)
	default:
		return 0, fmt.Errorf("Classify(%s): unknown family %d: %w", r.Name, int(r.Family), ErrInvalidParameter)
	}
}

// Bound returns the asymptotic bound of r, e.g. "Θ(n log n)".
func (r Recurrence) Bound() (string, error) {
	c, err := r.Classify()
	if err != nil {
		return "", err
	}

	return Bound(c, r.A, r.B, r.K), nil
}
