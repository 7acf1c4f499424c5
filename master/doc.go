// SPDX-License-Identifier: MIT
// Package: recurrence/master
//
// Package master classifies recurrences and states their asymptotic bounds.
//
// Two families are covered:
//
//	Subtraction:  T(n) = a·T(n−c) + Θ(n^k),  c ≥ 1
//	  a < 1  →  O(n^k)
//	  a = 1  →  O(n^(k+1))
//	  a > 1  →  O(a^(n/c) · n^k)
//
//	Division:     T(n) = a·T(n/b) + Θ(n^k),  a ≥ 1, b > 1
//	  a < b^k  →  Θ(n^k)
//	  a = b^k  →  Θ(n^k · log n)
//	  a > b^k  →  Θ(n^(log_b a))
//
// Catalog lists the six case studies implemented by the subtraction and
// division packages together with their parameters, so each function can be
// labelled with the case it demonstrates.
//
// Errors:
//
//   - ErrInvalidParameter  parameters outside the family's domain, or NaN/Inf.
package master
