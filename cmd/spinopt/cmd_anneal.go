package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spinopt/anneal"
)

var (
	annealSortResults bool
	annealShowAll     bool
)

// annealCmd runs simulated annealing over a problem file
var annealCmd = &cobra.Command{
	Use:   "anneal [problem.yaml]",
	Short: "Anneal a problem file and report the best state found",
	Long: `Reads a YAML problem file and runs simulated annealing.

A minimal problem file:

  domain: spin
  terms:
    - vars: [a, b]
      coeff: -1
    - vars: [b, c]
      coeff: -1
  anneals: 10
  seed: 7

Optional keys: duration, workers, kind (geometric|linear),
order (inorder|random), temperature: {hot, cold}, initial_state
(label map) or initial_list (positional, sorted label order), and an
explicit schedule of {t, sweeps} stages.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnneal,
}

func init() {
	annealCmd.Flags().BoolVar(&annealSortResults, "sort", false, "sort results by value before printing")
	annealCmd.Flags().BoolVar(&annealShowAll, "all", false, "print every anneal, not just the best")
}

func runAnneal(cmd *cobra.Command, args []string) error {
	problem, err := LoadProblem(args[0])
	if err != nil {
		return err
	}

	model := problem.model()
	logger.Info("problem loaded",
		zap.String("file", args[0]),
		zap.String("domain", model.Domain().String()),
		zap.Int("variables", model.NumVariables()),
		zap.Int("terms", model.NumTerms()),
		zap.Int("degree", model.Degree()),
	)

	opts, err := problem.annealOptions(model)
	if err != nil {
		return err
	}

	var res anneal.Results
	if problem.spin() {
		res, err = anneal.Spin(model, opts...)
	} else {
		res, err = anneal.Boolean(model, opts...)
	}
	if err != nil {
		return fmt.Errorf("annealing failed: %w", err)
	}
	if res.Len() == 0 {
		return fmt.Errorf("no anneals were run; set anneals to at least 1")
	}

	best, err := res.Best()
	if err != nil {
		return err
	}
	logger.Info("annealing finished",
		zap.Int("anneals", res.Len()),
		zap.Float64("best_value", best.Value),
	)

	if annealSortResults {
		res.Sort()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "best value: %v\n", best.Value)
	fmt.Fprintf(out, "best state: %v\n", formatState(best.State))
	if annealShowAll {
		for i, r := range res.All {
			fmt.Fprintf(out, "anneal %d: value %v state %v\n", i, r.Value, formatState(r.State))
		}
	}
	return nil
}
