// Package classify provides keyword-driven task classification and
// complexity estimation. All functions are pure and deterministic.
package classify

import (
	"fmt"
	"strings"

	"github.com/ShayCichocki/dispatch/internal/config"
	"github.com/ShayCichocki/dispatch/pkg/models"
)

// rule is one row of the classification table: a category, the keywords
// that vote for it, and the weight each matched keyword contributes.
type rule struct {
	category models.TaskCategory
	keywords []string
	weight   float64
}

// classificationRules is the single source of truth for category keywords.
// The table is ordered: when two rules tie on matched weight, the earlier
// rule wins. Specialist categories come before the broad ones.
var classificationRules = []rule{
	{
		category: models.CategoryResearch,
		keywords: []string{"research", "investigate", "explore", "analyze", "compare", "evaluate", "study", "understand"},
		weight:   1.0,
	},
	{
		category: models.CategoryTesting,
		keywords: []string{"test", "tests", "testing", "coverage", "unit test", "integration test", "regression", "flaky"},
		weight:   1.0,
	},
	{
		category: models.CategoryReview,
		keywords: []string{"review", "audit", "critique", "assess", "code review", "approve"},
		weight:   1.0,
	},
	{
		category: models.CategoryDocumentation,
		keywords: []string{"document", "documentation", "docs", "readme", "changelog", "guide", "tutorial"},
		weight:   1.0,
	},
	{
		category: models.CategoryRefactoring,
		keywords: []string{"refactor", "restructure", "reorganize", "clean up", "cleanup", "simplify", "extract", "decouple"},
		weight:   1.0,
	},
	{
		category: models.CategoryComplexCode,
		keywords: []string{"implement", "architecture", "design", "integration", "migration", "feature", "build", "api", "database", "system", "complex"},
		weight:   1.0,
	},
	{
		category: models.CategoryQuickFix,
		keywords: []string{"typo", "fix", "quick", "small", "minor", "trivial", "bug", "broken", "patch", "hotfix"},
		weight:   1.0,
	},
}

// Classifier maps free task text to a task category.
type Classifier struct {
	tun config.ClassificationTunables
}

// NewClassifier creates a Classifier with the given tunables.
func NewClassifier(tun config.ClassificationTunables) *Classifier {
	return &Classifier{tun: tun}
}

// Classify evaluates the rule table against the lower-cased concatenation of
// title and description. The category with the highest matched weight wins;
// when no rule clears the minimum threshold the result falls back to the
// general category with a low but non-zero confidence.
func (c *Classifier) Classify(title, description string) models.ClassificationResult {
	text := strings.ToLower(title + " " + description)

	var (
		best        *rule
		bestWeight  float64
		bestMatches []string
	)

	for i := range classificationRules {
		r := &classificationRules[i]
		var matched []string
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, kw)
			}
		}
		weight := r.weight * float64(len(matched))
		if len(matched) > 0 && weight > bestWeight {
			best = r
			bestWeight = weight
			bestMatches = matched
		}
	}

	if best == nil || bestWeight < c.tun.MinMatchWeight {
		return models.ClassificationResult{
			Category:   models.CategoryGeneral,
			Confidence: c.tun.FallbackConfidence,
			Keywords:   nil,
			Reasoning:  fmt.Sprintf("classified as %s based on keywords: no rule matched", models.CategoryGeneral),
		}
	}

	// Normalize against the rule's maximum attainable weight so a fuller
	// keyword match reports higher confidence.
	maxAttainable := best.weight * float64(len(best.keywords))
	confidence := bestWeight / maxAttainable
	if confidence <= 0 {
		confidence = c.tun.FallbackConfidence
	}
	if confidence > 1 {
		confidence = 1
	}

	return models.ClassificationResult{
		Category:   best.category,
		Confidence: confidence,
		Keywords:   bestMatches,
		Reasoning: fmt.Sprintf("classified as %s based on keywords: %s",
			best.category, strings.Join(bestMatches, ", ")),
	}
}
