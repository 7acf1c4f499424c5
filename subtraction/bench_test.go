package subtraction_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/recurrence/subtraction"
)

// BenchmarkLinearAccumulate_10000 measures the recursive form at depth 10,000.
// Complexity: O(n) time, O(n) stack.
func BenchmarkLinearAccumulate_10000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = subtraction.LinearAccumulate(10000)
	}
}

// BenchmarkLinearAccumulateIter_10000 measures the loop form on the same input.
func BenchmarkLinearAccumulateIter_10000(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = subtraction.LinearAccumulateIter(10000)
	}
}

// BenchmarkHanoiMoves_63 measures the deepest non-overflowing tower.
func BenchmarkHanoiMoves_63(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = subtraction.HanoiMoves(63)
	}
}

// BenchmarkProbabilisticDescent_1e6 shows that cost does not depend on n:
// the expected depth stays below 2 for any input size.
func BenchmarkProbabilisticDescent_1e6(b *testing.B) {
	// 1. One seeded source for the whole run
	opt := subtraction.WithSampler(rand.New(rand.NewSource(1)))

	// 2. Exclude option setup
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = subtraction.ProbabilisticDescent(1_000_000, opt)
	}
}
