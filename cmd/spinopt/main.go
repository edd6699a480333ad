// Command spinopt anneals and exactly solves PUBO/PUSO polynomial
// models described by YAML problem files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "spinopt",
	Short: "spinopt - simulated annealing for boolean and spin polynomials",
	Long: `spinopt minimizes polynomial unconstrained boolean/spin optimization
models (PUBO, QUBO, PUSO, QUSO) with Metropolis simulated annealing.

Problems are YAML files listing the model terms plus optional annealing
parameters; see the anneal subcommand for the format. Small models can
also be solved exactly with the exact subcommand.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(annealCmd)
	rootCmd.AddCommand(exactCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
