package classify

import (
	"strings"

	"github.com/ShayCichocki/dispatch/internal/config"
	"github.com/ShayCichocki/dispatch/pkg/models"
)

// signalGroup is one family of complexity signals. A group contributes its
// factor at most once no matter how many of its keywords match.
type signalGroup struct {
	factor   string
	keywords []string
}

// raisingSignals push the complexity score up.
var raisingSignals = []signalGroup{
	{
		factor:   "integration work",
		keywords: []string{"integration", "integrate", "api", "cross-component", "interface", "webhook", "third-party"},
	},
	{
		factor:   "database changes",
		keywords: []string{"database", "migration", "schema", "persistence", "storage", "sql"},
	},
	{
		factor:   "multiple components",
		keywords: []string{"multiple", "modules", "components", "across", "system-wide", "end-to-end"},
	},
	{
		factor:   "security surface",
		keywords: []string{"security", "auth", "authentication", "authorization", "encryption", "credentials"},
	},
	{
		factor:   "performance constraints",
		keywords: []string{"performance", "optimization", "optimize", "latency", "scalability", "throughput"},
	},
}

// loweringSignals pull the complexity score down.
var loweringSignals = []signalGroup{
	{
		factor:   "limited scope",
		keywords: []string{"typo", "single", "small", "minor", "trivial", "one-line", "quick", "simple", "rename"},
	},
}

// baseScore is the starting score before any signal is applied, putting
// signal-free tasks in the medium band.
const baseScore = 1.0

// Estimator scores free task text for implementation difficulty.
type Estimator struct {
	tun config.ComplexityTunables
}

// NewEstimator creates an Estimator with the given tunables.
func NewEstimator(tun config.ComplexityTunables) *Estimator {
	return &Estimator{tun: tun}
}

// Estimate scans title and description for complexity-raising and
// complexity-lowering signals. Each detected group appends its named factor
// and moves the score; the final score is bucketed into low, medium, or high.
func (e *Estimator) Estimate(title, description string) models.ComplexityEstimate {
	text := strings.ToLower(title + " " + description)

	score := baseScore
	var factors []string

	for _, g := range raisingSignals {
		if g.matches(text) {
			score += e.tun.RaiseWeight
			factors = append(factors, g.factor)
		}
	}
	for _, g := range loweringSignals {
		if g.matches(text) {
			score -= e.tun.LowerWeight
			factors = append(factors, g.factor)
		}
	}

	var level models.ComplexityLevel
	switch {
	case score < e.tun.LowCeiling:
		level = models.ComplexityLow
	case score > e.tun.HighFloor:
		level = models.ComplexityHigh
	default:
		level = models.ComplexityMedium
	}

	return models.ComplexityEstimate{
		Score:   score,
		Level:   level,
		Factors: factors,
	}
}

func (g signalGroup) matches(text string) bool {
	for _, kw := range g.keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
