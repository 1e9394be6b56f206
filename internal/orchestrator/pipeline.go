// Package orchestrator wires the delegation core end to end: decompose a
// task spec, materialize issues, resolve the dependency graph, and assign
// an agent to each issue in execution order.
package orchestrator

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ShayCichocki/dispatch/internal/decompose"
	"github.com/ShayCichocki/dispatch/internal/graph"
	"github.com/ShayCichocki/dispatch/internal/tracker"
	"github.com/ShayCichocki/dispatch/pkg/models"
)

// Pipeline orchestrates one decompose-plan-assign pass.
type Pipeline struct {
	decomposer *decompose.Decomposer
	tracker    *tracker.Tracker
	log        zerolog.Logger
}

// New creates a Pipeline over the given decomposer and tracker.
func New(decomposer *decompose.Decomposer, tr *tracker.Tracker, log zerolog.Logger) *Pipeline {
	return &Pipeline{decomposer: decomposer, tracker: tr, log: log}
}

// PlannedIssue pairs an issue with the agent routed to it.
type PlannedIssue struct {
	Issue      models.Issue
	Assignment models.AgentAssignment
}

// Plan is the full output of a pipeline pass.
type Plan struct {
	// Decomposition is set only when the plan started from a task spec.
	Decomposition *models.TaskDecomposition
	// Issues is the batch the plan covers.
	Issues []models.Issue
	// Order is the execution plan over the batch.
	Order graph.TopoOrder
	// Assignments routes each schedulable issue, in execution order.
	Assignments []PlannedIssue
}

// Run decomposes a task spec, materializes its subtasks as issues, and
// plans the resulting batch.
func (p *Pipeline) Run(spec models.TaskSpec, balanceLoad bool) (*Plan, error) {
	decomposition, err := p.decomposer.Decompose(spec)
	if err != nil {
		return nil, fmt.Errorf("decomposing %q: %w", spec.Title, err)
	}
	p.log.Info().
		Str("task", spec.Title).
		Int("subtasks", len(decomposition.Subtasks)).
		Int("layers", len(decomposition.ParallelGroups)).
		Msg("decomposed task")

	issues := MaterializeIssues(decomposition, spec.Type)

	plan, err := p.PlanIssues(issues, balanceLoad)
	if err != nil {
		return nil, err
	}
	plan.Decomposition = &decomposition
	return plan, nil
}

// PlanIssues resolves an externally supplied issue batch and assigns an
// agent to every schedulable issue. A cyclic batch is rejected: callers
// must fix the dependency links before planning.
func (p *Pipeline) PlanIssues(issues []models.Issue, balanceLoad bool) (*Plan, error) {
	g := graph.Build(issues)

	if cycles := g.DetectCycles(); len(cycles) > 0 {
		return nil, fmt.Errorf("issue batch has %d dependency cycle(s), first: %v", len(cycles), cycles[0])
	}

	order := g.TopologicalSort()

	plan := &Plan{Issues: issues, Order: order}
	for _, id := range order.Sequential {
		issue, ok := g.Issue(id)
		if !ok {
			continue
		}
		assignment, err := p.tracker.Assign(issue, tracker.AssignOptions{BalanceLoad: balanceLoad})
		if err != nil {
			return nil, fmt.Errorf("assigning issue %s: %w", id, err)
		}
		plan.Assignments = append(plan.Assignments, PlannedIssue{Issue: issue, Assignment: assignment})
	}

	p.log.Info().
		Int("issues", len(issues)).
		Int("layers", len(order.Parallel)).
		Int("critical_path", len(order.CriticalPath)).
		Msg("planned issue batch")

	return plan, nil
}

// MaterializeIssues turns a decomposition's subtasks into issue records,
// mapping index-based dependencies onto generated ids.
func MaterializeIssues(d models.TaskDecomposition, taskType string) []models.Issue {
	now := time.Now()

	ids := make([]string, len(d.Subtasks))
	for i := range d.Subtasks {
		ids[i] = uuid.New().String()
	}

	issues := make([]models.Issue, len(d.Subtasks))
	for i, st := range d.Subtasks {
		deps := make([]string, 0, len(st.DependsOn))
		for _, dep := range st.DependsOn {
			deps = append(deps, ids[dep])
		}
		issues[i] = models.Issue{
			ID:          ids[i],
			Title:       st.Title,
			Description: st.Description,
			Status:      "open",
			Priority:    st.Priority,
			Type:        taskType,
			DependsOn:   deps,
			CreatedAt:   now,
		}
	}
	return issues
}
