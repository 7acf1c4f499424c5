package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/recurrence/master"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a recurrence and print its bound",
	Long: `Classify reports which case a recurrence falls in and its asymptotic bound.

  division:     T(n) = a·T(n/b) + Θ(n^k)   (--b is the divisor)
  subtraction:  T(n) = a·T(n-c) + Θ(n^k)   (--b is the step c)

Example:
  recurrence classify --a 4 --b 2 --k 1`,
	Args: cobra.NoArgs,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().Float64("a", 2, "number of recursive calls (a)")
	classifyCmd.Flags().Float64("b", 2, "divisor b (division) or step c (subtraction)")
	classifyCmd.Flags().Float64("k", 1, "exponent of the non-recursive work n^k")
	classifyCmd.Flags().String("family", master.Division.String(), "recurrence family (division, subtraction)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	a, _ := flags.GetFloat64("a")
	b, _ := flags.GetFloat64("b")
	k, _ := flags.GetFloat64("k")
	name, _ := flags.GetString("family")

	var family master.Family
	switch name {
	case master.Division.String():
		family = master.Division
	case master.Subtraction.String():
		family = master.Subtraction
	default:
		return fmt.Errorf("unknown family %q, must be 'division' or 'subtraction'", name)
	}

	r := master.Recurrence{Name: "custom", Family: family, A: a, B: b, K: k}
	c, err := r.Classify()
	if err != nil {
		return err
	}
	bound, err := r.Bound()
	if err != nil {
		return err
	}

	logger.Debug("recurrence classified",
		zap.String("family", family.String()),
		zap.Float64("a", a), zap.Float64("b", b), zap.Float64("k", k),
		zap.Stringer("case", c))

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", c, c.Condition(), bound)
	return err
}
