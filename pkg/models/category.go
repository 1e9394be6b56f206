package models

// TaskCategory represents the kind of work a task calls for.
type TaskCategory string

const (
	// CategoryResearch is for exploration, investigation, and analysis tasks.
	CategoryResearch TaskCategory = "research"
	// CategoryComplexCode is for multi-file implementation and architecture work.
	CategoryComplexCode TaskCategory = "complex_code"
	// CategoryQuickFix is for small, narrowly scoped corrections.
	CategoryQuickFix TaskCategory = "quick_fix"
	// CategoryTesting is for writing or repairing tests.
	CategoryTesting TaskCategory = "testing"
	// CategoryReview is for code review and quality assessment.
	CategoryReview TaskCategory = "review"
	// CategoryDocumentation is for docs, comments, and READMEs.
	CategoryDocumentation TaskCategory = "documentation"
	// CategoryRefactoring is for restructuring without behavior change.
	CategoryRefactoring TaskCategory = "refactoring"
	// CategoryGeneral is the fallback when no other category matches.
	CategoryGeneral TaskCategory = "general"
)

// Valid returns true if the category is a known value.
func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryResearch, CategoryComplexCode, CategoryQuickFix, CategoryTesting,
		CategoryReview, CategoryDocumentation, CategoryRefactoring, CategoryGeneral:
		return true
	default:
		return false
	}
}

// AllCategories returns every known task category in a stable order.
func AllCategories() []TaskCategory {
	return []TaskCategory{
		CategoryResearch,
		CategoryComplexCode,
		CategoryQuickFix,
		CategoryTesting,
		CategoryReview,
		CategoryDocumentation,
		CategoryRefactoring,
		CategoryGeneral,
	}
}
