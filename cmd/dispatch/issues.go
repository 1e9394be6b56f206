package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ShayCichocki/dispatch/pkg/models"
)

// issueFile is the on-disk shape of an issue batch.
type issueFile struct {
	Issues []models.Issue `yaml:"issues"`
}

// loadIssues reads an issue batch from a YAML file. The file holds either a
// top-level issues list or a bare sequence of issues.
func loadIssues(path string) ([]models.Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading issue file: %w", err)
	}

	var file issueFile
	if err := yaml.Unmarshal(data, &file); err == nil && len(file.Issues) > 0 {
		return validateIssues(file.Issues, path)
	}

	var bare []models.Issue
	if err := yaml.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("parsing issue file %s: %w", path, err)
	}
	return validateIssues(bare, path)
}

func validateIssues(issues []models.Issue, path string) ([]models.Issue, error) {
	if len(issues) == 0 {
		return nil, fmt.Errorf("issue file %s contains no issues", path)
	}
	seen := make(map[string]bool, len(issues))
	for i, issue := range issues {
		if issue.ID == "" {
			return nil, fmt.Errorf("issue file %s: issue %d has no id", path, i)
		}
		if seen[issue.ID] {
			return nil, fmt.Errorf("issue file %s: duplicate issue id %s", path, issue.ID)
		}
		seen[issue.ID] = true
	}
	return issues, nil
}
