package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	assignFile    string
	assignBalance bool
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Assign an agent to every issue in a batch",
	RunE: func(cmd *cobra.Command, args []string) error {
		issues, err := loadIssues(assignFile)
		if err != nil {
			return err
		}

		c, err := buildCore()
		if err != nil {
			return err
		}

		plan, err := c.pipeline.PlanIssues(issues, assignBalance)
		if err != nil {
			return err
		}

		printHeader(fmt.Sprintf("Assignments (%d issues)", len(plan.Assignments)))
		var rows [][]string
		for _, p := range plan.Assignments {
			rows = append(rows, []string{
				p.Issue.ID,
				p.Issue.Title,
				string(p.Assignment.Agent),
				fmt.Sprintf("%.2f", p.Assignment.Confidence),
			})
		}
		renderTable([]string{"ISSUE", "TITLE", "AGENT", "CONFIDENCE"}, rows)

		fmt.Println()
		printHeader("Workloads")
		rows = rows[:0]
		for _, w := range c.tracker.Workloads() {
			rows = append(rows, []string{
				string(w.Agent),
				strconv.Itoa(w.AssignedTasks),
			})
		}
		renderTable([]string{"AGENT", "ASSIGNED"}, rows)

		stats := c.tracker.Stats()
		fmt.Println()
		printField("Total assignments", strconv.Itoa(stats.TotalAssignments))

		return nil
	},
}

func init() {
	assignCmd.Flags().StringVarP(&assignFile, "file", "f", "", "YAML issue batch to assign")
	assignCmd.Flags().BoolVar(&assignBalance, "balance", false, "Spread assignments across fitting agents")
	assignCmd.MarkFlagRequired("file")
}
