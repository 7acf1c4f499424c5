package subtraction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of repeated ProbabilisticDescent results.
type Summary struct {
	N      int     // input size of every trial
	Trials int     // number of runs
	Mean   float64 // sample mean
	StdDev float64 // unbiased sample standard deviation (0 for one trial)
	Min    int     // smallest observed result
	Max    int     // largest observed result
}

// DescentStats runs ProbabilisticDescent(n) trials times with one shared
// sampler (from opts) and summarizes the results. Use WithSeed for a
// reproducible summary.
//
// trials < 1 fails with ErrInvalidArgument; errors from the individual
// runs (ErrDepthExceeded) are returned wrapped with the trial index.
func DescentStats(n, trials int, opts ...Option) (Summary, error) {
	// 1. Validate trial count
	if trials < 1 {
		return Summary{}, fmt.Errorf("DescentStats(trials=%d): %w", trials, ErrInvalidArgument)
	}

	// 2. Pin one sampler so every trial continues the same stream
	o := resolveOptions(opts)
	pinned := []Option{WithSampler(o.sampler()), WithMaxDepth(o.MaxDepth)}

	// 3. Collect samples
	samples := make([]float64, trials)
	for i := range samples {
		v, err := ProbabilisticDescent(n, pinned...)
		if err != nil {
			return Summary{}, fmt.Errorf("DescentStats: trial %d: %w", i, err)
		}
		samples[i] = float64(v)
	}

	// 4. Summarize
	sum := Summary{
		N:      n,
		Trials: trials,
		Min:    int(floats.Min(samples)),
		Max:    int(floats.Max(samples)),
	}
	if trials == 1 {
		sum.Mean = samples[0]
		return sum, nil
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(samples, nil)

	return sum, nil
}

// ExpectedDescent returns the exact expected value of ProbabilisticDescent(n):
// E(n) = 1 + E(n−1)/2 with E(0) = 0, i.e. 2 − 2^(1−n). It is 0 for n ≤ 0 and
// approaches 2 as n grows.
func ExpectedDescent(n int) float64 {
	if n <= 0 {
		return 0
	}

	return 2 - math.Pow(2, float64(1-n))
}
