package subtraction

import "fmt"

// maxHanoiDisks is the largest disk count whose move count 2^n − 1 fits in an int64.
const maxHanoiDisks = 63

// HanoiMoves returns the number of moves needed to transfer n disks in the
// Towers of Hanoi: move n−1 disks aside, move the largest, move n−1 back on top.
// Recurrence: T(n) = 2·T(n−1) + 1, case a > 1, value 2^n − 1.
//
// The recurrence has no base case below one disk, so n ≤ 0 fails with
// ErrInvalidArgument. n > 63 fails with ErrOverflow.
func HanoiMoves(n int, opts ...Option) (int64, error) {
	// 1. Domain checks
	if n <= 0 {
		return 0, fmt.Errorf("HanoiMoves(n=%d): need at least one disk: %w", n, ErrInvalidArgument)
	}
	if n > maxHanoiDisks {
		return 0, fmt.Errorf("HanoiMoves(n=%d): %w", n, ErrOverflow)
	}

	// 2. Stack budget
	o := resolveOptions(opts)
	if n > o.MaxDepth {
		return 0, fmt.Errorf("HanoiMoves(n=%d, max depth %d): %w", n, o.MaxDepth, ErrDepthExceeded)
	}

	return hanoiMoves(n), nil
}

// hanoiMoves evaluates the recurrence for n ≥ 1. Both n−1 sub-towers cost
// the same, so one recursive call is doubled instead of made twice.
func hanoiMoves(n int) int64 {
	if n == 1 {
		return 1 // move a single disk
	}
	sub := hanoiMoves(n - 1)

	return sub + 1 + sub
}

// HanoiMovesIter returns the same value as HanoiMoves without recursion.
func HanoiMovesIter(n int) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("HanoiMovesIter(n=%d): need at least one disk: %w", n, ErrInvalidArgument)
	}
	if n > maxHanoiDisks {
		return 0, fmt.Errorf("HanoiMovesIter(n=%d): %w", n, ErrOverflow)
	}

	moves := int64(1)
	for i := 2; i <= n; i++ {
		moves = 2*moves + 1
	}

	return moves, nil
}
