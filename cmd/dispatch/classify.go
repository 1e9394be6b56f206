package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <title> [description]",
	Short: "Classify a task and estimate its complexity",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := buildCore()
		if err != nil {
			return err
		}

		title := args[0]
		description := ""
		if len(args) > 1 {
			description = args[1]
		}

		classification := c.classifier.Classify(title, description)
		estimate := c.estimator.Estimate(title, description)

		printHeader("Classification")
		printField("Category", string(classification.Category))
		printField("Confidence", fmt.Sprintf("%.0f%%", classification.Confidence*100))
		printField("Keywords", joinOr(classification.Keywords, "none matched"))
		printField("Reasoning", classification.Reasoning)

		fmt.Println()
		printHeader("Complexity")
		printField("Level", string(estimate.Level))
		printField("Score", fmt.Sprintf("%.1f", estimate.Score))
		printField("Factors", joinOr(estimate.Factors, "none detected"))

		if strings.TrimSpace(description) == "" {
			fmt.Println()
			fmt.Println(dimStyle.Render("Tip: pass a description as the second argument for a better estimate."))
		}
		return nil
	},
}
