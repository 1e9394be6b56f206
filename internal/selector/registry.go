// Package selector provides agent capability lookup and agent selection
// for classified work.
package selector

import (
	"errors"
	"fmt"

	"github.com/ShayCichocki/dispatch/pkg/models"
)

// ErrUnknownAgent indicates a capability lookup for an agent not in the registry.
var ErrUnknownAgent = errors.New("unknown agent")

// Registry is the static table of per-agent capability profiles.
// Profiles are fixed at construction and never mutated.
type Registry struct {
	profiles map[models.Agent]models.AgentCapabilityProfile
	order    []models.Agent
}

// NewRegistry creates the registry with the built-in capability profiles.
func NewRegistry() *Registry {
	profiles := []models.AgentCapabilityProfile{
		{
			Agent: models.AgentClaude,
			Categories: []models.TaskCategory{
				models.CategoryComplexCode,
				models.CategoryReview,
				models.CategoryRefactoring,
				models.CategoryGeneral,
			},
			Strengths:     []string{"deep multi-file reasoning", "careful refactors", "thorough code review"},
			Weaknesses:    []string{"slower on trivial edits", "highest cost per task"},
			SpeedRating:   2,
			QualityRating: 5,
		},
		{
			Agent: models.AgentGemini,
			Categories: []models.TaskCategory{
				models.CategoryResearch,
				models.CategoryDocumentation,
				models.CategoryGeneral,
			},
			Strengths:     []string{"large context window", "fast codebase exploration", "summarization"},
			Weaknesses:    []string{"less reliable on intricate code edits"},
			SpeedRating:   4,
			QualityRating: 4,
		},
		{
			Agent: models.AgentCodex,
			Categories: []models.TaskCategory{
				models.CategoryQuickFix,
				models.CategoryTesting,
				models.CategoryGeneral,
			},
			Strengths:     []string{"fast turnaround", "small focused diffs", "test scaffolding"},
			Weaknesses:    []string{"shallow on cross-module design"},
			SpeedRating:   5,
			QualityRating: 3,
		},
		{
			Agent: models.AgentOpencode,
			Categories: []models.TaskCategory{
				models.CategoryGeneral,
				models.CategoryQuickFix,
				models.CategoryTesting,
				models.CategoryDocumentation,
			},
			Strengths:     []string{"open tooling", "cheap to run"},
			Weaknesses:    []string{"weakest on complex architecture work"},
			SpeedRating:   3,
			QualityRating: 3,
		},
	}

	r := &Registry{profiles: make(map[models.Agent]models.AgentCapabilityProfile, len(profiles))}
	for _, p := range profiles {
		r.profiles[p.Agent] = p
		r.order = append(r.order, p.Agent)
	}
	return r
}

// Capabilities returns the profile for the given agent.
// An unknown agent is a caller error, never a silent default.
func (r *Registry) Capabilities(agent models.Agent) (models.AgentCapabilityProfile, error) {
	p, ok := r.profiles[agent]
	if !ok {
		return models.AgentCapabilityProfile{}, fmt.Errorf("%w: %s", ErrUnknownAgent, agent)
	}
	return p, nil
}

// Profiles returns all capability profiles in a stable order.
func (r *Registry) Profiles() []models.AgentCapabilityProfile {
	out := make([]models.AgentCapabilityProfile, 0, len(r.order))
	for _, a := range r.order {
		out = append(out, r.profiles[a])
	}
	return out
}
