// Package decompose breaks a task spec into dependency-linked subtasks
// with parallel execution layers.
package decompose

import (
	"fmt"
	"strings"

	"github.com/ShayCichocki/dispatch/internal/classify"
	"github.com/ShayCichocki/dispatch/pkg/models"
)

// concern is one identifiable unit of work implied by the task text.
type concern struct {
	key      string
	title    string
	desc     string
	keywords []string
}

// implementation concerns, in dependency order: schema before api before ui.
var implementationConcerns = []concern{
	{
		key:      "schema",
		title:    "Design and apply persistence changes",
		desc:     "Define the schema or storage changes the task requires and write the migration.",
		keywords: []string{"database", "schema", "migration", "persistence", "storage", "sql", "model"},
	},
	{
		key:      "api",
		title:    "Implement the backend endpoint",
		desc:     "Build the server-side handler, wiring, and validation for the task.",
		keywords: []string{"api", "endpoint", "backend", "server", "service", "handler", "route"},
	},
	{
		key:      "ui",
		title:    "Build the UI component",
		desc:     "Implement the user-facing component and connect it to the backend.",
		keywords: []string{"ui", "frontend", "page", "screen", "component", "form", "dashboard", "view"},
	},
}

// Decomposer expands a task spec into an ordered, partially-parallel
// set of subtasks.
type Decomposer struct {
	classifier *classify.Classifier
	estimator  *classify.Estimator
}

// New creates a Decomposer using the given classifier and estimator.
func New(classifier *classify.Classifier, estimator *classify.Estimator) *Decomposer {
	return &Decomposer{classifier: classifier, estimator: estimator}
}

// Decompose produces one subtask per identifiable unit of work in the task:
// detected implementation concerns (persistence, backend, UI), plus tests and
// docs, framed by design and review subtasks when the work is complex enough.
// Higher estimated complexity always yields strictly more subtasks.
func (d *Decomposer) Decompose(spec models.TaskSpec) (models.TaskDecomposition, error) {
	text := strings.ToLower(spec.Title + " " + spec.Description)
	estimate := d.estimator.Estimate(spec.Title, spec.Description)

	b := &builder{decomposer: d}

	research := -1
	if spec.Type == "research" || strings.Contains(text, "research") || strings.Contains(text, "investigate") {
		research = b.add(
			fmt.Sprintf("Research approach for: %s", spec.Title),
			"Explore the codebase and prior art; record findings for the implementation subtasks.",
		)
	}

	design := -1
	hasDesign := estimate.Level == models.ComplexityHigh
	if hasDesign {
		design = b.addWithDeps(
			fmt.Sprintf("Design the approach for: %s", spec.Title),
			"Settle the structure, interfaces, and migration order before implementation starts.",
			depsIf(research >= 0, research),
		)
	}

	frameDeps := func() []int {
		switch {
		case design >= 0:
			return []int{design}
		case research >= 0:
			return []int{research}
		default:
			return nil
		}
	}

	// Detected implementation units, chained schema -> api -> ui.
	var implUnits []int
	prev := -1
	for _, c := range implementationConcerns {
		if !matchesAny(text, c.keywords) {
			continue
		}
		deps := frameDeps()
		if prev >= 0 {
			deps = []int{prev}
		}
		idx := b.addWithDeps(c.title, c.desc, deps)
		implUnits = append(implUnits, idx)
		prev = idx
	}

	// Nothing concern-specific detected: one core implementation subtask.
	if len(implUnits) == 0 {
		idx := b.addWithDeps(
			fmt.Sprintf("Implement: %s", spec.Title),
			strings.TrimSpace(spec.Description),
			frameDeps(),
		)
		implUnits = append(implUnits, idx)
	}

	// Tests cover every implementation unit. Low-complexity work skips the
	// dedicated testing subtask unless the text asks for tests.
	var tests int
	hasTests := estimate.Level != models.ComplexityLow || strings.Contains(text, "test")
	if hasTests {
		tests = b.addWithDeps(
			"Write tests for the changes",
			"Cover the new behavior with unit tests, including the failure paths.",
			append([]int(nil), implUnits...),
		)
	}

	// Docs close out medium and high complexity work.
	if estimate.Level != models.ComplexityLow || matchesAny(text, []string{"document", "docs", "readme"}) {
		docDeps := append([]int(nil), implUnits...)
		if hasTests {
			docDeps = append(docDeps, tests)
		}
		b.addWithDeps(
			"Update documentation",
			"Document the new behavior and any changed configuration.",
			docDeps,
		)
	}

	if hasDesign {
		b.addWithDeps(
			"Review the combined changes",
			"Cross-check the implementation against the design before handing off.",
			b.allPriorIndices(),
		)
	}

	subtasks := b.finish()
	groups, err := parallelGroups(subtasks)
	if err != nil {
		return models.TaskDecomposition{}, fmt.Errorf("layering subtasks: %w", err)
	}

	return models.TaskDecomposition{
		Subtasks:       subtasks,
		ParallelGroups: groups,
	}, nil
}

// builder accumulates subtasks, classifying each and deriving priority
// from dependency depth.
type builder struct {
	decomposer *Decomposer
	subtasks   []models.Subtask
}

func (b *builder) add(title, desc string) int {
	return b.addWithDeps(title, desc, nil)
}

func (b *builder) addWithDeps(title, desc string, deps []int) int {
	idx := len(b.subtasks)
	depth := 0
	for _, dep := range deps {
		if d := b.subtasks[dep].Priority; d > depth {
			depth = d
		}
	}
	classification := b.decomposer.classifier.Classify(title, desc)
	b.subtasks = append(b.subtasks, models.Subtask{
		Index:       idx,
		Title:       title,
		Description: desc,
		Category:    classification.Category,
		Priority:    depth + 1,
		DependsOn:   deps,
	})
	return idx
}

// allPriorIndices returns every index added so far.
func (b *builder) allPriorIndices() []int {
	indices := make([]int, len(b.subtasks))
	for i := range b.subtasks {
		indices[i] = i
	}
	return indices
}

func (b *builder) finish() []models.Subtask {
	return b.subtasks
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func depsIf(cond bool, dep int) []int {
	if cond {
		return []int{dep}
	}
	return nil
}
