package subtraction

import "fmt"

// maxLinearN is the largest n for which n(n+1)/2 fits in an int64.
const maxLinearN = 1<<32 - 1

// LinearAccumulate returns 1 + 2 + … + n by plain recursion.
// Recurrence: T(n) = T(n−1) + O(1), case a = 1, complexity O(n).
//
// n ≤ 0 yields 0 and is not an error. The recursion uses n frames, so inputs
// above the recursion budget fail with ErrDepthExceeded; LinearAccumulateIter
// has no such limit.
func LinearAccumulate(n int, opts ...Option) (int64, error) {
	// 1. Empty sum
	if n <= 0 {
		return 0, nil
	}

	// 2. Validate result range and stack budget before descending
	if int64(n) > maxLinearN {
		return 0, fmt.Errorf("LinearAccumulate(n=%d): %w", n, ErrOverflow)
	}
	o := resolveOptions(opts)
	if n > o.MaxDepth {
		return 0, fmt.Errorf("LinearAccumulate(n=%d, max depth %d): %w", n, o.MaxDepth, ErrDepthExceeded)
	}

	return linearAccumulate(n), nil
}

// linearAccumulate is the unguarded recurrence.
func linearAccumulate(n int) int64 {
	if n <= 0 {
		return 0 // base case
	}

	return int64(n) + linearAccumulate(n-1)
}

// LinearAccumulateIter returns the same value as LinearAccumulate using a
// loop, for inputs beyond the recursion budget.
func LinearAccumulateIter(n int) (int64, error) {
	if n <= 0 {
		return 0, nil
	}
	if int64(n) > maxLinearN {
		return 0, fmt.Errorf("LinearAccumulateIter(n=%d): %w", n, ErrOverflow)
	}

	var sum int64
	for i := 1; i <= n; i++ {
		sum += int64(i)
	}

	return sum, nil
}
