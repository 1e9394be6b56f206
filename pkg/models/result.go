package models

// ClassificationResult is the outcome of classifying a task's text.
type ClassificationResult struct {
	// Category is the winning task category.
	Category TaskCategory `json:"category"`
	// Confidence is how certain the classification is, in (0, 1].
	Confidence float64 `json:"confidence"`
	// Keywords lists the terms that matched the winning rule.
	Keywords []string `json:"keywords"`
	// Reasoning is a human-readable explanation naming the category.
	Reasoning string `json:"reasoning"`
}

// ComplexityLevel buckets a complexity score.
type ComplexityLevel string

const (
	// ComplexityLow is for narrow, single-concern work.
	ComplexityLow ComplexityLevel = "low"
	// ComplexityMedium is for typical implementation work.
	ComplexityMedium ComplexityLevel = "medium"
	// ComplexityHigh is for cross-cutting, multi-concern work.
	ComplexityHigh ComplexityLevel = "high"
)

// Valid returns true if the level is a known value.
func (l ComplexityLevel) Valid() bool {
	switch l {
	case ComplexityLow, ComplexityMedium, ComplexityHigh:
		return true
	default:
		return false
	}
}

// ComplexityEstimate is the outcome of scoring a task's difficulty.
type ComplexityEstimate struct {
	// Score is the raw additive complexity score.
	Score float64 `json:"score"`
	// Level buckets the score into low, medium, or high.
	Level ComplexityLevel `json:"level"`
	// Factors names the signals that moved the score.
	Factors []string `json:"factors"`
}

// AgentSelectionResult is the outcome of picking an agent for some work.
type AgentSelectionResult struct {
	// Recommended is the best-fit agent.
	Recommended Agent `json:"recommended"`
	// Confidence is how certain the selection is, in (0, 1].
	Confidence float64 `json:"confidence"`
	// Alternatives lists the remaining candidates by descending fit.
	// Never contains Recommended.
	Alternatives []Agent `json:"alternatives"`
	// Reasoning is a human-readable explanation naming the recommended agent.
	Reasoning string `json:"reasoning"`
}

// AgentScore is one entry in a full-roster agent comparison.
type AgentScore struct {
	// Agent is the backend being scored.
	Agent Agent `json:"agent"`
	// Score is the fit score on the registry's rating scale.
	Score float64 `json:"score"`
	// Reasoning explains the score. Never empty.
	Reasoning string `json:"reasoning"`
}

// AgentAssignment is the outcome of routing one issue to an agent.
type AgentAssignment struct {
	// Agent is the backend the issue was routed to.
	Agent Agent `json:"agent"`
	// Confidence is the combined routing confidence, in (0, 1].
	Confidence float64 `json:"confidence"`
	// Reasoning explains the routing decision.
	Reasoning string `json:"reasoning"`
}
