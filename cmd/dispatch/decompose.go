package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/dispatch/pkg/models"
)

var (
	decomposeDescription string
	decomposeType        string
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <title>",
	Short: "Break a task into dependency-linked subtasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}

		spec := models.TaskSpec{
			Title:       args[0],
			Description: decomposeDescription,
			Type:        decomposeType,
		}
		d, err := c.decomposer.Decompose(spec)
		if err != nil {
			return err
		}

		printHeader(fmt.Sprintf("Decomposition (%d subtasks)", len(d.Subtasks)))
		var rows [][]string
		for _, st := range d.Subtasks {
			rows = append(rows, []string{
				strconv.Itoa(st.Index),
				st.Title,
				string(st.Category),
				strconv.Itoa(st.Priority),
				formatIndices(st.DependsOn),
			})
		}
		renderTable([]string{"#", "TITLE", "CATEGORY", "PRIORITY", "DEPENDS ON"}, rows)

		fmt.Println()
		printHeader("Parallel layers")
		for i, group := range d.ParallelGroups {
			fmt.Printf("  layer %d: %s\n", i, formatIndices(group))
		}
		return nil
	},
}

func formatIndices(indices []int) string {
	if len(indices) == 0 {
		return "-"
	}
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ", ")
}

func init() {
	decomposeCmd.Flags().StringVarP(&decomposeDescription, "description", "d", "", "Task description")
	decomposeCmd.Flags().StringVarP(&decomposeType, "type", "t", "", "Task type hint (feature, bug, research, ...)")
}
