package selector

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ShayCichocki/dispatch/internal/classify"
	"github.com/ShayCichocki/dispatch/pkg/models"
)

// ErrNoAvailableAgent indicates that no candidate agent can serve the
// requested category. Callers must treat this as a hard failure.
var ErrNoAvailableAgent = errors.New("no available agent")

// Fit scoring on the registry's rating scale. Category membership dominates:
// an agent whose profile covers the category always clears categoryBonus,
// while ratings only separate agents within the same membership class.
const (
	categoryBonus = 3.0
	qualityWeight = 0.4
	speedWeight   = 0.2
)

// maxFitScore is the best attainable fit score, used to normalize confidence.
const maxFitScore = categoryBonus + qualityWeight*5 + speedWeight*5

// Selector ranks agents for classified work.
type Selector struct {
	registry   *Registry
	classifier *classify.Classifier
}

// New creates a Selector over the given registry and classifier.
func New(registry *Registry, classifier *classify.Classifier) *Selector {
	return &Selector{registry: registry, classifier: classifier}
}

// candidate pairs an agent profile with its fit score for one category.
type candidate struct {
	profile models.AgentCapabilityProfile
	score   float64
}

// fitScore computes how well a profile fits a category.
func fitScore(p models.AgentCapabilityProfile, category models.TaskCategory) float64 {
	score := qualityWeight*float64(p.QualityRating) + speedWeight*float64(p.SpeedRating)
	if p.HasCategory(category) {
		score += categoryBonus
	}
	return score
}

// rank scores and orders the given agents for a category, best first.
// Ties break on quality, then speed, then the registry's stable order.
func (s *Selector) rank(category models.TaskCategory, agents []models.Agent) ([]candidate, error) {
	candidates := make([]candidate, 0, len(agents))
	for _, a := range agents {
		p, err := s.registry.Capabilities(a)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate{profile: p, score: fitScore(p, category)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ci, cj := candidates[i], candidates[j]
		if ci.score != cj.score {
			return ci.score > cj.score
		}
		if ci.profile.QualityRating != cj.profile.QualityRating {
			return ci.profile.QualityRating > cj.profile.QualityRating
		}
		return ci.profile.SpeedRating > cj.profile.SpeedRating
	})
	return candidates, nil
}

// SelectForCategory picks the best-fit agent for a category.
// When available is non-nil, candidates are restricted to it; an empty or
// category-incompatible restriction yields ErrNoAvailableAgent.
func (s *Selector) SelectForCategory(category models.TaskCategory, available []models.Agent) (models.AgentSelectionResult, error) {
	pool := available
	if pool == nil {
		pool = models.AllAgents()
	}
	if len(pool) == 0 {
		return models.AgentSelectionResult{}, fmt.Errorf("%w: empty candidate list", ErrNoAvailableAgent)
	}

	candidates, err := s.rank(category, pool)
	if err != nil {
		return models.AgentSelectionResult{}, err
	}

	top := candidates[0]
	if !top.profile.HasCategory(category) {
		return models.AgentSelectionResult{}, fmt.Errorf("%w: no candidate covers category %s", ErrNoAvailableAgent, category)
	}

	alternatives := make([]models.Agent, 0, len(candidates)-1)
	for _, c := range candidates[1:] {
		alternatives = append(alternatives, c.profile.Agent)
	}

	return models.AgentSelectionResult{
		Recommended:  top.profile.Agent,
		Confidence:   top.score / maxFitScore,
		Alternatives: alternatives,
		Reasoning: fmt.Sprintf("%s covers %s (quality %d/5, speed %d/5): %s",
			top.profile.Agent, category, top.profile.QualityRating,
			top.profile.SpeedRating, strings.Join(top.profile.Strengths, ", ")),
	}, nil
}

// Select classifies the task text and picks the best-fit agent for the
// resulting category. The combined confidence is the product of the
// classification and selection confidences, floored above zero.
func (s *Selector) Select(title, description string, available []models.Agent) (models.AgentSelectionResult, error) {
	classification := s.classifier.Classify(title, description)

	result, err := s.SelectForCategory(classification.Category, available)
	if err != nil {
		return models.AgentSelectionResult{}, err
	}

	combined := classification.Confidence * result.Confidence
	if combined <= 0 {
		combined = 0.01
	}
	result.Confidence = combined
	result.Reasoning = fmt.Sprintf("%s; %s", classification.Reasoning, result.Reasoning)
	return result, nil
}

// Compare ranks all four agents for the task's classified category,
// best first. Every entry carries its own reasoning.
func (s *Selector) Compare(title, description string) []models.AgentScore {
	classification := s.classifier.Classify(title, description)

	candidates, err := s.rank(classification.Category, models.AllAgents())
	if err != nil {
		// The full roster is always known to the registry.
		panic(fmt.Sprintf("ranking full roster: %v", err))
	}

	scores := make([]models.AgentScore, len(candidates))
	for i, c := range candidates {
		fit := "does not cover"
		if c.profile.HasCategory(classification.Category) {
			fit = "covers"
		}
		scores[i] = models.AgentScore{
			Agent: c.profile.Agent,
			Score: c.score,
			Reasoning: fmt.Sprintf("%s %s %s; quality %d/5, speed %d/5",
				c.profile.Agent, fit, classification.Category,
				c.profile.QualityRating, c.profile.SpeedRating),
		}
	}
	return scores
}
