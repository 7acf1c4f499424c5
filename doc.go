// Package recurrence is a small catalog of recursive algorithms, one for each
// case of the subtraction and division master theorems.
//
// 🚀 What is in here?
//
//	Six case studies, each paired with the recurrence it realizes:
//		• subtraction/ : LinearAccumulate, HanoiMoves, ProbabilisticDescent
//		• division/    : MergeSort, QuickSelectCostModel, NaiveMultiplyCostModel
//		• master/      : the catalog, case classification and Θ/O bounds
//
// ✨ Why does it exist?
//
//   - Every function is a literal transcription of its recurrence, so the
//     call tree is the proof of the bound.
//   - Recursion depth is bounded; deep inputs fail with an error instead of
//     overflowing the stack. The subtraction functions also have Iter forms
//     with no depth limit.
//   - Results that do not fit in an int64 fail with ErrOverflow.
//   - Randomness is injected through a sampler, so tests are deterministic.
//
// Under the hood, the command-line tool lives under cmd/ and internal/:
//
//	cmd/recurrence/    — entry point
//	internal/cli/      — cobra commands: run, classify, descent, version
//	internal/config/   — viper-backed YAML/env configuration
//	internal/demo/     — evaluates the catalog and renders text, YAML or JSON
//	internal/logging/  — zap logger construction
//
// Quick example:
//
//	T(n) = 4·T(n/2) + Θ(n)   →   a=4 > b^k=2   →   Θ(n^2)
//
//	go run ./cmd/recurrence classify --a 4 --b 2 --k 1
package recurrence
