// Package main implements the sanlab CLI, a browser and launcher for the
// defect demonstration catalog. The catalog itself never runs anything
// unasked; this binary is the explicit way to fire a single routine under
// whatever instrumentation the binary was built with.
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
	Use:   "sanlab",
	Short: "sanlab - a catalog of sanitizer-detectable defect demonstrations",
	Long: `sanlab is a teaching catalog of intentionally buggy routines.

Each routine performs exactly one invalid operation: an addressing error,
an unsynchronized data race, an uninitialized-memory read, or an operation
C leaves undefined. Detection is the job of the toolchain instrumentation
the binary is built with (-asan, -race, -msan); this code only arranges the
conditions.

Run 'sanlab list' to see the catalog and the build mode each category needs,
then 'sanlab run <routine>' to fire exactly one.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
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
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
