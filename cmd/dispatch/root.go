package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/dispatch/internal/classify"
	"github.com/ShayCichocki/dispatch/internal/config"
	"github.com/ShayCichocki/dispatch/internal/decompose"
	"github.com/ShayCichocki/dispatch/internal/logging"
	"github.com/ShayCichocki/dispatch/internal/orchestrator"
	"github.com/ShayCichocki/dispatch/internal/selector"
	"github.com/ShayCichocki/dispatch/internal/tracker"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Agent delegation planner",
	Long: `Dispatch coordinates delegation of work across AI coding agents.

It classifies tasks, estimates complexity, breaks large tasks into
dependency-linked subtasks, resolves issue dependency graphs into
execution plans, and routes each issue to the best-fit agent while
balancing load across the roster.

Dispatch plans; it never executes tasks or spawns agent processes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(logging.Config{Level: logLevel, Format: "console"})
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(agentsCmd)
	rootCmd.AddCommand(decomposeCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// core bundles the wired delegation components for one command invocation.
type core struct {
	tunables   config.Tunables
	classifier *classify.Classifier
	estimator  *classify.Estimator
	registry   *selector.Registry
	selector   *selector.Selector
	tracker    *tracker.Tracker
	decomposer *decompose.Decomposer
	pipeline   *orchestrator.Pipeline
}

// buildCore loads tunables and wires the delegation components.
func buildCore() (*core, error) {
	tun, err := config.Load()
	if err != nil {
		return nil, err
	}

	classifier := classify.NewClassifier(tun.Classification)
	estimator := classify.NewEstimator(tun.Complexity)
	registry := selector.NewRegistry()
	sel := selector.New(registry, classifier)
	tr := tracker.New(sel, tun.Assignment, logging.Component("tracker"))
	decomposer := decompose.New(classifier, estimator)
	pipeline := orchestrator.New(decomposer, tr, logging.Component("pipeline"))

	return &core{
		tunables:   tun,
		classifier: classifier,
		estimator:  estimator,
		registry:   registry,
		selector:   sel,
		tracker:    tr,
		decomposer: decomposer,
		pipeline:   pipeline,
	}, nil
}
