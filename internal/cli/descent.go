package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/recurrence/subtraction"
)

// descentCmd represents the descent command
var descentCmd = &cobra.Command{
	Use:   "descent",
	Short: "Sample the probabilistic descent and summarize it",
	Long: `Descent runs the probabilistic case many times and compares the sample
mean with the exact expectation 2 - 2^(1-n).`,
	Args: cobra.NoArgs,
	RunE: runDescent,
}

func init() {
	rootCmd.AddCommand(descentCmd)

	descentCmd.Flags().Int("n", 10, "input size")
	descentCmd.Flags().Int("trials", 10000, "number of runs")
	descentCmd.Flags().Int64("seed", 0, "random seed (0 = random)")
}

func runDescent(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	n, _ := flags.GetInt("n")
	trials, _ := flags.GetInt("trials")
	seed, _ := flags.GetInt64("seed")

	opts := []subtraction.Option{subtraction.WithMaxDepth(cfg.Demo.MaxDepth)}
	if seed != 0 {
		opts = append(opts, subtraction.WithSeed(seed))
	}

	sum, err := subtraction.DescentStats(n, trials, opts...)
	if err != nil {
		return err
	}

	logger.Debug("descent sampled",
		zap.Int("n", n),
		zap.Int("trials", trials),
		zap.Float64("mean", sum.Mean))

	_, err = fmt.Fprintf(cmd.OutOrStdout(),
		"n=%d trials=%d mean=%.4f expected=%.4f stddev=%.4f min=%d max=%d\n",
		sum.N, sum.Trials, sum.Mean, subtraction.ExpectedDescent(n), sum.StdDev, sum.Min, sum.Max)
	return err
}
