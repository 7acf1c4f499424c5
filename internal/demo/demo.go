// Package demo runs the six recurrence case studies on sample inputs and
// renders one result per case.
package demo

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/recurrence/division"
	"github.com/katalvlaran/recurrence/master"
	"github.com/katalvlaran/recurrence/subtraction"
)

// ErrUnknownCase is returned when the catalog names a case this driver cannot evaluate.
var ErrUnknownCase = errors.New("demo: unknown case")

// Inputs holds the sample input of every case.
type Inputs struct {
	LinearN      int
	HanoiDisks   int
	DescentN     int
	DescentSeed  int64 // 0 = fresh random source
	MergeInput   []int
	SelectInput  []int
	SelectK      int
	MultiplyBits int
	MaxDepth     int // recursion budget for cases 1–3; ≤ 0 keeps subtraction.DefaultMaxDepth
}

// DefaultInputs returns the classic sample inputs.
func DefaultInputs() Inputs {
	return Inputs{
		LinearN:      5,
		HanoiDisks:   3,
		DescentN:     10,
		MergeInput:   []int{5, 3, 8, 1, 9, 2},
		SelectInput:  []int{10, 4, 5, 8, 6, 11, 26},
		SelectK:      3,
		MultiplyBits: 16,
	}
}

// Result is the outcome of one case study.
type Result struct {
	Case      int    `json:"case" yaml:"case"`
	Name      string `json:"name" yaml:"name"`
	Family    string `json:"family" yaml:"family"`
	Condition string `json:"condition" yaml:"condition"`
	Formula   string `json:"formula" yaml:"formula"`
	Bound     string `json:"bound" yaml:"bound"`
	Input     string `json:"input" yaml:"input"`
	Value     any    `json:"value" yaml:"value"`
}

// Report collects the results of one run.
type Report struct {
	RunID   string   `json:"run_id" yaml:"run_id"`
	Results []Result `json:"results" yaml:"results"`
}

// evaluator computes one case and describes the input it used.
type evaluator func(in Inputs, opts []subtraction.Option) (input string, value any, err error)

// evaluators maps catalog names to their evaluation.
var evaluators = map[string]evaluator{
	"LinearAccumulate": func(in Inputs, opts []subtraction.Option) (string, any, error) {
		v, err := subtraction.LinearAccumulate(in.LinearN, opts...)
		return fmt.Sprint(in.LinearN), v, err
	},
	"HanoiMoves": func(in Inputs, opts []subtraction.Option) (string, any, error) {
		v, err := subtraction.HanoiMoves(in.HanoiDisks, opts...)
		return fmt.Sprint(in.HanoiDisks), v, err
	},
	"ProbabilisticDescent": func(in Inputs, opts []subtraction.Option) (string, any, error) {
		if in.DescentSeed != 0 {
			opts = append(opts[:len(opts):len(opts)], subtraction.WithSeed(in.DescentSeed))
		}
		v, err := subtraction.ProbabilisticDescent(in.DescentN, opts...)
		return fmt.Sprint(in.DescentN), v, err
	},
	"MergeSort": func(in Inputs, _ []subtraction.Option) (string, any, error) {
		return fmt.Sprint(in.MergeInput), division.MergeSort(in.MergeInput), nil
	},
	"QuickSelectCostModel": func(in Inputs, _ []subtraction.Option) (string, any, error) {
		return fmt.Sprintf("len=%d, k=%d", len(in.SelectInput), in.SelectK),
			division.QuickSelectCostModel(in.SelectInput, in.SelectK), nil
	},
	"NaiveMultiplyCostModel": func(in Inputs, _ []subtraction.Option) (string, any, error) {
		v, err := division.NaiveMultiplyCostModel(in.MultiplyBits)
		return fmt.Sprint(in.MultiplyBits), v, err
	},
}

// Run evaluates every case of master.Catalog in order. The first failing case
// aborts the run; its error is returned wrapped with the case number.
// A nil logger is replaced by zap.NewNop().
func Run(in Inputs, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 1. Shared options for the subtraction cases
	var opts []subtraction.Option
	if in.MaxDepth > 0 {
		opts = append(opts, subtraction.WithMaxDepth(in.MaxDepth))
	}

	report := &Report{RunID: uuid.New().String()}
	logger = logger.With(zap.String("run_id", report.RunID))
	logger.Info("starting demonstration run")

	// 2. Evaluate each case in catalog order
	for i, rec := range master.Catalog() {
		caseNo := i + 1

		eval, ok := evaluators[rec.Name]
		if !ok {
			return nil, fmt.Errorf("case %d (%s): %w", caseNo, rec.Name, ErrUnknownCase)
		}
		c, err := rec.Classify()
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", caseNo, rec.Name, err)
		}
		bound, err := rec.Bound()
		if err != nil {
			return nil, fmt.Errorf("case %d (%s): %w", caseNo, rec.Name, err)
		}

		start := time.Now()
		input, value, err := eval(in, opts)
		elapsed := time.Since(start)
		if err != nil {
			logger.Error("case failed",
				zap.Int("case", caseNo),
				zap.String("name", rec.Name),
				zap.String("input", input),
				zap.Error(err))
			return nil, fmt.Errorf("case %d (%s): %w", caseNo, rec.Name, err)
		}

		logger.Debug("case evaluated",
			zap.Int("case", caseNo),
			zap.String("name", rec.Name),
			zap.String("input", input),
			zap.Any("result", value),
			zap.Duration("elapsed", elapsed))

		report.Results = append(report.Results, Result{
			Case:      caseNo,
			Name:      rec.Name,
			Family:    rec.Family.String(),
			Condition: c.Condition(),
			Formula:   rec.Formula,
			Bound:     bound,
			Input:     input,
			Value:     value,
		})
	}

	logger.Info("demonstration run finished", zap.Int("cases", len(report.Results)))

	return report, nil
}
