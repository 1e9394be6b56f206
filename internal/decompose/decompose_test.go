package decompose

import (
	"testing"

	"github.com/ShayCichocki/dispatch/internal/classify"
	"github.com/ShayCichocki/dispatch/internal/config"
	"github.com/ShayCichocki/dispatch/pkg/models"
)

func dependsOn(st models.Subtask, idx int) bool {
	for _, dep := range st.DependsOn {
		if dep == idx {
			return true
		}
	}
	return false
}

func newTestDecomposer() *Decomposer {
	tun := config.Default()
	return New(classify.NewClassifier(tun.Classification), classify.NewEstimator(tun.Complexity))
}

func TestDecompose_SimpleTask(t *testing.T) {
	d := newTestDecomposer()

	got, err := d.Decompose(models.TaskSpec{Title: "Fix typo", Description: "Update single word"})
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}

	if len(got.Subtasks) != 1 {
		t.Fatalf("simple task produced %d subtasks, want 1: %+v", len(got.Subtasks), got.Subtasks)
	}
	if len(got.Subtasks[0].DependsOn) != 0 {
		t.Errorf("only subtask has dependencies: %v", got.Subtasks[0].DependsOn)
	}
}

func TestDecompose_FullStackFeature(t *testing.T) {
	d := newTestDecomposer()

	got, err := d.Decompose(models.TaskSpec{
		Title:       "Add user profiles",
		Description: "New database schema, backend API endpoint, and a profile UI page with integration across modules",
		Type:        "feature",
	})
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}

	byTitle := make(map[string]models.Subtask)
	for _, st := range got.Subtasks {
		byTitle[st.Title] = st
	}

	schema, ok := byTitle["Design and apply persistence changes"]
	if !ok {
		t.Fatal("missing persistence subtask")
	}
	api, ok := byTitle["Implement the backend endpoint"]
	if !ok {
		t.Fatal("missing backend subtask")
	}
	ui, ok := byTitle["Build the UI component"]
	if !ok {
		t.Fatal("missing UI subtask")
	}

	// UI depends on API, API depends on schema.
	if !dependsOn(api, schema.Index) {
		t.Errorf("API subtask deps = %v, want to include schema index %d", api.DependsOn, schema.Index)
	}
	if !dependsOn(ui, api.Index) {
		t.Errorf("UI subtask deps = %v, want to include API index %d", ui.DependsOn, api.Index)
	}

	if _, ok := byTitle["Write tests for the changes"]; !ok {
		t.Error("missing testing subtask")
	}
	if _, ok := byTitle["Update documentation"]; !ok {
		t.Error("missing documentation subtask")
	}
}

func TestDecompose_ComplexityMonotonic(t *testing.T) {
	d := newTestDecomposer()

	simple, err := d.Decompose(models.TaskSpec{Title: "Fix typo", Description: "Update single word"})
	if err != nil {
		t.Fatalf("Decompose(simple) error = %v", err)
	}
	complexSpec := models.TaskSpec{
		Title:       "Refactor authentication with security and performance optimization",
		Description: "Multiple modules need database migration and API integration",
	}
	complexOut, err := d.Decompose(complexSpec)
	if err != nil {
		t.Fatalf("Decompose(complex) error = %v", err)
	}

	if len(complexOut.Subtasks) <= len(simple.Subtasks) {
		t.Errorf("complex task produced %d subtasks, simple produced %d; want strictly more",
			len(complexOut.Subtasks), len(simple.Subtasks))
	}
}

func TestDecompose_ParallelGroupsConsistent(t *testing.T) {
	d := newTestDecomposer()

	got, err := d.Decompose(models.TaskSpec{
		Title:       "Build reporting dashboard",
		Description: "Backend API over the database plus a dashboard UI, with tests and documentation across multiple components",
	})
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}

	// Groups partition all indices.
	seen := make(map[int]int)
	total := 0
	for _, group := range got.ParallelGroups {
		for _, idx := range group {
			seen[idx]++
			total++
		}
	}
	if total != len(got.Subtasks) {
		t.Fatalf("groups cover %d indices, want %d", total, len(got.Subtasks))
	}
	for idx, count := range seen {
		if count != 1 {
			t.Errorf("index %d appears in %d groups, want exactly 1", idx, count)
		}
	}

	// Group 0 is exactly the dependency-free subtasks.
	for _, idx := range got.ParallelGroups[0] {
		if len(got.Subtasks[idx].DependsOn) != 0 {
			t.Errorf("group 0 contains subtask %d with deps %v", idx, got.Subtasks[idx].DependsOn)
		}
	}

	// Every subtask's deps sit in strictly earlier groups.
	groupOf := make(map[int]int)
	for g, group := range got.ParallelGroups {
		for _, idx := range group {
			groupOf[idx] = g
		}
	}
	for _, st := range got.Subtasks {
		for _, dep := range st.DependsOn {
			if groupOf[dep] >= groupOf[st.Index] {
				t.Errorf("subtask %d (group %d) depends on %d (group %d)",
					st.Index, groupOf[st.Index], dep, groupOf[dep])
			}
		}
	}
}

func TestDecompose_SubtasksClassified(t *testing.T) {
	d := newTestDecomposer()

	got, err := d.Decompose(models.TaskSpec{
		Title:       "Add search endpoint",
		Description: "Backend API with tests",
	})
	if err != nil {
		t.Fatalf("Decompose() error = %v", err)
	}

	for _, st := range got.Subtasks {
		if !st.Category.Valid() {
			t.Errorf("subtask %d has invalid category %q", st.Index, st.Category)
		}
		if st.Priority < 1 {
			t.Errorf("subtask %d priority = %d, want >= 1", st.Index, st.Priority)
		}
		for _, dep := range st.DependsOn {
			if dep >= st.Index {
				t.Errorf("subtask %d depends on non-earlier index %d", st.Index, dep)
			}
		}
	}
}

func TestValidate_RejectsBadReferences(t *testing.T) {
	tests := []struct {
		name     string
		subtasks []models.Subtask
	}{
		{
			"out of range",
			[]models.Subtask{{Index: 0, DependsOn: []int{5}}},
		},
		{
			"forward reference",
			[]models.Subtask{
				{Index: 0, DependsOn: []int{1}},
				{Index: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.subtasks); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}
