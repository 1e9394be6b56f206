package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/dispatch/pkg/models"
)

var (
	runDescription string
	runType        string
	runBalance     bool
)

var runCmd = &cobra.Command{
	Use:   "run <title>",
	Short: "Decompose a task and plan the resulting issues end to end",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}

		spec := models.TaskSpec{
			Title:       args[0],
			Description: runDescription,
			Type:        runType,
		}
		plan, err := c.pipeline.Run(spec, runBalance)
		if err != nil {
			return err
		}

		printHeader(fmt.Sprintf("Subtasks (%d)", len(plan.Decomposition.Subtasks)))
		var rows [][]string
		for _, st := range plan.Decomposition.Subtasks {
			rows = append(rows, []string{
				strconv.Itoa(st.Index),
				st.Title,
				string(st.Category),
				formatIndices(st.DependsOn),
			})
		}
		renderTable([]string{"#", "TITLE", "CATEGORY", "DEPENDS ON"}, rows)

		fmt.Println()
		printHeader("Execution plan")
		byID := make(map[string]models.Issue, len(plan.Issues))
		for _, issue := range plan.Issues {
			byID[issue.ID] = issue
		}
		rows = rows[:0]
		for _, p := range plan.Assignments {
			rows = append(rows, []string{
				p.Issue.Title,
				string(p.Assignment.Agent),
				fmt.Sprintf("%.2f", p.Assignment.Confidence),
			})
		}
		renderTable([]string{"ISSUE", "AGENT", "CONFIDENCE"}, rows)

		fmt.Println()
		critical := make([]string, 0, len(plan.Order.CriticalPath))
		for _, id := range plan.Order.CriticalPath {
			critical = append(critical, byID[id].Title)
		}
		printField("Critical path", strings.Join(critical, " -> "))
		printField("Layers", strconv.Itoa(len(plan.Order.Parallel)))

		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runDescription, "description", "d", "", "Task description")
	runCmd.Flags().StringVarP(&runType, "type", "t", "", "Task type hint (feature, bug, research, ...)")
	runCmd.Flags().BoolVar(&runBalance, "balance", false, "Spread assignments across fitting agents")
}
