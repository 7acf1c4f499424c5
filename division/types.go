// SPDX-License-Identifier: MIT
// Package: recurrence/division
//
// types.go — sentinel errors.

package division

import "errors"

// ErrOverflow indicates that a simulated cost does not fit in an int64.
// Usage: if errors.Is(err, ErrOverflow) { /* reject width */ }.
var ErrOverflow = errors.New("division: result overflows int64")
