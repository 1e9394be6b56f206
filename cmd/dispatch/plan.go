package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/dispatch/internal/graph"
)

var planFile string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Resolve an issue batch into an execution plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		issues, err := loadIssues(planFile)
		if err != nil {
			return err
		}

		g := graph.Build(issues)

		printHeader(fmt.Sprintf("Dependency graph (%d issues)", g.Size()))

		cycles := g.DetectCycles()
		if len(cycles) > 0 {
			for _, cycle := range cycles {
				printStatus("✗", fmt.Sprintf("cycle: %s", strings.Join(cycle, " -> ")), color.FgRed)
			}
			return fmt.Errorf("issue batch has %d dependency cycle(s)", len(cycles))
		}
		printStatus("✓", "no dependency cycles", color.FgGreen)

		order := g.TopologicalSort()

		fmt.Println()
		printHeader("Execution order")
		for i, id := range order.Sequential {
			issue, _ := g.Issue(id)
			fmt.Printf("  %2d. %s  %s\n", i+1, id, dimStyle.Render(issue.Title))
		}

		fmt.Println()
		printHeader("Parallel layers")
		for i, layer := range order.Parallel {
			fmt.Printf("  layer %d: %s\n", i, strings.Join(layer, ", "))
		}

		fmt.Println()
		printHeader("Critical path")
		fmt.Printf("  %s %s\n",
			strings.Join(order.CriticalPath, " -> "),
			dimStyle.Render(fmt.Sprintf("(length %d)", len(order.CriticalPath))))

		return nil
	},
}

func init() {
	planCmd.Flags().StringVarP(&planFile, "file", "f", "", "YAML issue batch to plan")
	planCmd.MarkFlagRequired("file")
}
