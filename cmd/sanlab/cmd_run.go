package main

import (
	"fmt"
	"strings"

	"sanlab/internal/catalog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd fires exactly one catalog routine. One per invocation: a crashing
// routine preempts everything after it, so batching would mask later
// demonstrations.
var runCmd = &cobra.Command{
	Use:   "run <routine>",
	Short: "Run exactly one catalog routine by name",
	Long: `Run exactly one catalog routine by name.

The routine's defect is only reported if this binary was built with the
instrumentation mode for its category (see 'sanlab list'). Expect crashes:
that is the product, not a malfunction.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoutine,
}

func runRoutine(cmd *cobra.Command, args []string) error {
	name := args[0]

	r, ok := catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown routine '%s' (valid: %s)", name, strings.Join(routineNames(), ", "))
	}

	log := logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("running routine",
		zap.String("run_id", uuid.NewString()),
		zap.String("routine", r.Name),
		zap.String("category", string(r.Category)),
		zap.String("build_mode", catalog.BuildMode(r.Category)),
	)

	r.Run()

	// Only reached if the routine did not take the process down.
	log.Debug("routine returned", zap.String("routine", r.Name))
	return nil
}

func routineNames() []string {
	entries := catalog.Entries()
	names := make([]string, 0, len(entries))
	for _, r := range entries {
		names = append(names, r.Name)
	}
	return names
}
