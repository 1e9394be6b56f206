package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List agent capability profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}

		var rows [][]string
		for _, p := range c.registry.Profiles() {
			cats := make([]string, len(p.Categories))
			for i, cat := range p.Categories {
				cats[i] = string(cat)
			}
			rows = append(rows, []string{
				string(p.Agent),
				strings.Join(cats, ", "),
				fmt.Sprintf("%d/5", p.QualityRating),
				fmt.Sprintf("%d/5", p.SpeedRating),
			})
		}

		renderTable([]string{"AGENT", "CATEGORIES", "QUALITY", "SPEED"}, rows)
		return nil
	},
}

var agentsCompareCmd = &cobra.Command{
	Use:   "compare <title> [description]",
	Short: "Rank all agents for a task",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}

		description := ""
		if len(args) > 1 {
			description = args[1]
		}

		scores := c.selector.Compare(args[0], description)

		var rows [][]string
		for i, s := range scores {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				string(s.Agent),
				fmt.Sprintf("%.1f", s.Score),
				s.Reasoning,
			})
		}
		renderTable([]string{"RANK", "AGENT", "SCORE", "REASONING"}, rows)
		return nil
	},
}

func init() {
	agentsCmd.AddCommand(agentsCompareCmd)
}
