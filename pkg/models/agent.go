package models

// Agent identifies one of the interchangeable AI coding backends.
type Agent string

const (
	// AgentClaude is the Claude Code backend.
	AgentClaude Agent = "claude"
	// AgentGemini is the Gemini CLI backend.
	AgentGemini Agent = "gemini"
	// AgentCodex is the Codex CLI backend.
	AgentCodex Agent = "codex"
	// AgentOpencode is the OpenCode backend.
	AgentOpencode Agent = "opencode"
)

// Valid returns true if the agent is a known value.
func (a Agent) Valid() bool {
	switch a {
	case AgentClaude, AgentGemini, AgentCodex, AgentOpencode:
		return true
	default:
		return false
	}
}

// AllAgents returns every known agent in a stable order.
func AllAgents() []Agent {
	return []Agent{AgentClaude, AgentGemini, AgentCodex, AgentOpencode}
}

// AgentCapabilityProfile describes what one agent is good and bad at.
// Profiles are static: one immutable entry per agent lives in the registry.
type AgentCapabilityProfile struct {
	// Agent is the backend this profile describes.
	Agent Agent `json:"agent"`
	// Categories lists the task categories the agent can serve. Never empty.
	Categories []TaskCategory `json:"categories"`
	// Strengths are free-form notes on what the agent excels at. Never empty.
	Strengths []string `json:"strengths"`
	// Weaknesses are free-form notes on where the agent struggles. Never empty.
	Weaknesses []string `json:"weaknesses"`
	// SpeedRating ranks raw turnaround from 1 (slow) to 5 (fast).
	SpeedRating int `json:"speed_rating"`
	// QualityRating ranks output quality from 1 (rough) to 5 (excellent).
	QualityRating int `json:"quality_rating"`
}

// HasCategory returns true if the profile covers the given category.
func (p AgentCapabilityProfile) HasCategory(c TaskCategory) bool {
	for _, cat := range p.Categories {
		if cat == c {
			return true
		}
	}
	return false
}
