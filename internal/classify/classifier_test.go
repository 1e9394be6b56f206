package classify

import (
	"strings"
	"testing"

	"github.com/ShayCichocki/dispatch/internal/config"
	"github.com/ShayCichocki/dispatch/pkg/models"
)

func newTestClassifier() *Classifier {
	return NewClassifier(config.Default().Classification)
}

func TestClassify_Categories(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name        string
		title       string
		description string
		want        models.TaskCategory
	}{
		{"typo fix", "Fix typo in error message", "Single word change", models.CategoryQuickFix},
		{"research task", "Research caching strategies", "Investigate and compare options", models.CategoryResearch},
		{"testing task", "Add unit tests for parser", "Improve test coverage", models.CategoryTesting},
		{"review task", "Review the auth PR", "Code review for the login change", models.CategoryReview},
		{"docs task", "Update README", "Documentation for the new flags", models.CategoryDocumentation},
		{"refactor task", "Refactor session handling", "Extract and simplify the setup path", models.CategoryRefactoring},
		{"complex feature", "Implement billing API", "New feature with database integration", models.CategoryComplexCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.title, tt.description)
			if got.Category != tt.want {
				t.Errorf("Classify(%q, %q).Category = %q, want %q", tt.title, tt.description, got.Category, tt.want)
			}
			if got.Confidence <= 0 || got.Confidence > 1 {
				t.Errorf("Confidence = %v, want in (0, 1]", got.Confidence)
			}
			if len(got.Keywords) == 0 {
				t.Error("Keywords is empty, want matched terms")
			}
		})
	}
}

func TestClassify_Fallback(t *testing.T) {
	c := newTestClassifier()

	tests := []struct {
		name        string
		title       string
		description string
	}{
		{"no keywords", "Lorem ipsum", "dolor sit amet"},
		{"empty input", "", ""},
		{"numbers only", "12345", "67890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.title, tt.description)
			if got.Category != models.CategoryGeneral {
				t.Errorf("Category = %q, want %q", got.Category, models.CategoryGeneral)
			}
			if got.Confidence <= 0 {
				t.Errorf("Confidence = %v, want > 0 even on fallback", got.Confidence)
			}
		})
	}
}

func TestClassify_Reasoning(t *testing.T) {
	c := newTestClassifier()

	inputs := []struct {
		title       string
		description string
	}{
		{"Fix typo", ""},
		{"Research caching", "compare options"},
		{"no match at all", ""},
	}

	for _, in := range inputs {
		got := c.Classify(in.title, in.description)
		if !strings.Contains(got.Reasoning, string(got.Category)) {
			t.Errorf("Reasoning %q does not name category %q", got.Reasoning, got.Category)
		}
		if !strings.Contains(got.Reasoning, "based on keywords") {
			t.Errorf("Reasoning %q missing phrase %q", got.Reasoning, "based on keywords")
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := newTestClassifier()

	first := c.Classify("Implement payment API", "database integration across modules")
	for i := 0; i < 5; i++ {
		again := c.Classify("Implement payment API", "database integration across modules")
		if again.Category != first.Category || again.Confidence != first.Confidence {
			t.Fatalf("Classify is not deterministic: run %d got (%v, %v), want (%v, %v)",
				i, again.Category, again.Confidence, first.Category, first.Confidence)
		}
	}
}

func TestClassify_MoreMatchesRaiseConfidence(t *testing.T) {
	c := newTestClassifier()

	weak := c.Classify("Add a test", "")
	strong := c.Classify("Add unit tests and improve test coverage", "regression testing for the parser")

	if weak.Category != models.CategoryTesting || strong.Category != models.CategoryTesting {
		t.Fatalf("both inputs should classify as testing, got %q and %q", weak.Category, strong.Category)
	}
	if strong.Confidence <= weak.Confidence {
		t.Errorf("fuller keyword match confidence %v not above sparse match %v", strong.Confidence, weak.Confidence)
	}
}
