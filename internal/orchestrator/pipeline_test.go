package orchestrator

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ShayCichocki/dispatch/internal/classify"
	"github.com/ShayCichocki/dispatch/internal/config"
	"github.com/ShayCichocki/dispatch/internal/decompose"
	"github.com/ShayCichocki/dispatch/internal/selector"
	"github.com/ShayCichocki/dispatch/internal/tracker"
	"github.com/ShayCichocki/dispatch/pkg/models"
)

func newTestPipeline() *Pipeline {
	tun := config.Default()
	classifier := classify.NewClassifier(tun.Classification)
	estimator := classify.NewEstimator(tun.Complexity)
	sel := selector.New(selector.NewRegistry(), classifier)
	tr := tracker.New(sel, tun.Assignment, zerolog.Nop())
	return New(decompose.New(classifier, estimator), tr, zerolog.Nop())
}

func TestRun_EndToEnd(t *testing.T) {
	p := newTestPipeline()

	plan, err := p.Run(models.TaskSpec{
		Title:       "Add user profiles",
		Description: "Database schema, backend API endpoint, and a profile UI page across multiple modules",
		Type:        "feature",
	}, false)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if plan.Decomposition == nil || len(plan.Decomposition.Subtasks) == 0 {
		t.Fatal("plan is missing its decomposition")
	}
	if len(plan.Issues) != len(plan.Decomposition.Subtasks) {
		t.Errorf("materialized %d issues from %d subtasks", len(plan.Issues), len(plan.Decomposition.Subtasks))
	}
	if len(plan.Assignments) != len(plan.Issues) {
		t.Errorf("assigned %d of %d issues", len(plan.Assignments), len(plan.Issues))
	}
	for _, pi := range plan.Assignments {
		if !pi.Assignment.Agent.Valid() {
			t.Errorf("issue %q routed to invalid agent %q", pi.Issue.Title, pi.Assignment.Agent)
		}
	}

	// Execution order respects materialized dependency links.
	position := make(map[string]int)
	for i, pi := range plan.Assignments {
		position[pi.Issue.ID] = i
	}
	for _, pi := range plan.Assignments {
		for _, dep := range pi.Issue.DependsOn {
			if position[dep] >= position[pi.Issue.ID] {
				t.Errorf("issue %q scheduled before its dependency", pi.Issue.Title)
			}
		}
	}
}

func TestPlanIssues_RejectsCyclicBatch(t *testing.T) {
	p := newTestPipeline()

	issues := []models.Issue{
		{ID: "A", Title: "first", DependsOn: []string{"B"}},
		{ID: "B", Title: "second", DependsOn: []string{"A"}},
	}
	if _, err := p.PlanIssues(issues, false); err == nil {
		t.Error("PlanIssues() with cyclic batch: expected error, got nil")
	}
}

func TestMaterializeIssues_MapsDependencies(t *testing.T) {
	d := models.TaskDecomposition{
		Subtasks: []models.Subtask{
			{Index: 0, Title: "base", Priority: 1},
			{Index: 1, Title: "dependent", Priority: 2, DependsOn: []int{0}},
		},
		ParallelGroups: [][]int{{0}, {1}},
	}

	issues := MaterializeIssues(d, "feature")

	if len(issues) != 2 {
		t.Fatalf("materialized %d issues, want 2", len(issues))
	}
	if issues[0].ID == issues[1].ID {
		t.Error("issues share an id")
	}
	if len(issues[1].DependsOn) != 1 || issues[1].DependsOn[0] != issues[0].ID {
		t.Errorf("dependent issue DependsOn = %v, want [%s]", issues[1].DependsOn, issues[0].ID)
	}
	if issues[0].Status != "open" || issues[0].Type != "feature" {
		t.Errorf("issue defaults wrong: status=%q type=%q", issues[0].Status, issues[0].Type)
	}
}
