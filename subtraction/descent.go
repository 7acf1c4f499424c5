package subtraction

import "fmt"

// descentWalker carries the sampler and depth budget through one evaluation.
type descentWalker struct {
	sampler  UniformSampler
	maxDepth int
}

// ProbabilisticDescent simulates a randomized algorithm that, at each level,
// solves the problem with probability 0.5 (cost 1) and otherwise pays 1 and
// recurses on n−1. It returns the number of levels visited.
// Recurrence: T(n) = 0.5·T(n−1) + O(1) in expectation, case a < 1.
//
// The result is always in [0, n]; n ≤ 0 yields 0. The expected value is
// 2 − 2^(1−n), see ExpectedDescent. Each non-terminal level consumes exactly
// one sample. The sampler is taken from WithSampler or WithSeed; without
// either a private time-seeded source is used.
//
// Depth is random with worst case n. A walk that reaches Options.MaxDepth
// fails with ErrDepthExceeded.
func ProbabilisticDescent(n int, opts ...Option) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	o := resolveOptions(opts)
	w := &descentWalker{sampler: o.sampler(), maxDepth: o.MaxDepth}

	return w.descend(n, 1)
}

// descend evaluates level depth of the walk with n elements remaining.
func (w *descentWalker) descend(n, depth int) (int, error) {
	// 1. Base case
	if n <= 0 {
		return 0, nil
	}

	// 2. Stack budget
	if depth > w.maxDepth {
		return 0, fmt.Errorf("ProbabilisticDescent: depth %d, max depth %d: %w", depth, w.maxDepth, ErrDepthExceeded)
	}

	// 3. Coin flip: resolve here
	if w.sampler.Float64() < descentThreshold {
		return 1, nil
	}

	// 4. Unfavorable outcome: pay one level and recurse on n−1
	rest, err := w.descend(n-1, depth+1)
	if err != nil {
		return 0, err
	}

	return 1 + rest, nil
}

// ProbabilisticDescentIter returns the same value as ProbabilisticDescent for
// the same sampler state, drawing samples in the same order, without recursion.
// WithMaxDepth has no effect on it.
func ProbabilisticDescentIter(n int, opts ...Option) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	o := resolveOptions(opts)
	s := o.sampler()

	levels := 0
	for remaining := n; remaining > 0; remaining-- {
		levels++
		if s.Float64() < descentThreshold {
			break // resolved at this level
		}
	}

	return levels, nil
}
