// Package subtraction implements the three canonical subtraction-type
// recurrences, T(n) = a·T(n−c) + f(n), as small recursive functions.
//
// What:
//
//   - LinearAccumulate (a = 1): T(n) = T(n−1) + O(1), sums 1..n.
//     Complexity O(n).
//   - HanoiMoves (a > 1): T(n) = 2·T(n−1) + 1, the Towers of Hanoi move
//     count. The value grows as 2^n − 1.
//   - ProbabilisticDescent (a < 1 in expectation): with probability 0.5 the
//     current level solves the problem, otherwise it recurses on n−1.
//     Expected depth 2 − 2^(1−n), bounded by 2 regardless of n.
//
// Why:
//   - Each function is the smallest program whose running time obeys one
//     case of the subtraction recurrence, so the recurrence can be read off
//     the code and checked against its closed form.
//
// Key Types & Constants:
//
//   - UniformSampler: source of samples in [0,1); *rand.Rand satisfies it.
//   - Option / Options: functional options (sampler, seed, recursion budget).
//   - DefaultMaxDepth: recursion budget used when WithMaxDepth is not given.
//   - Summary: statistics of repeated ProbabilisticDescent runs.
//
// Recursion budget:
//
//	Every recursive form consumes one stack frame per level. Inputs whose
//	depth would exceed Options.MaxDepth (DefaultMaxDepth = 1<<20 frames)
//	fail with ErrDepthExceeded instead of exhausting the goroutine stack.
//	The *Iter variants return identical values without recursion and have
//	no depth limit.
//
// Errors:
//
//   - ErrInvalidArgument  HanoiMoves(n ≤ 0), DescentStats(trials < 1)
//   - ErrDepthExceeded    input deeper than the recursion budget
//   - ErrOverflow         result does not fit int64
//
// Concurrency:
//
//	All functions are safe for concurrent use. They hold no package state;
//	a sampler passed via WithSampler is used only by the call it is given to
//	and must not be shared between goroutines unless it is itself safe.
package subtraction
