package models

import "testing"

func TestTaskCategory_Valid(t *testing.T) {
	tests := []struct {
		name     string
		category TaskCategory
		want     bool
	}{
		{"research is valid", CategoryResearch, true},
		{"complex_code is valid", CategoryComplexCode, true},
		{"quick_fix is valid", CategoryQuickFix, true},
		{"testing is valid", CategoryTesting, true},
		{"review is valid", CategoryReview, true},
		{"documentation is valid", CategoryDocumentation, true},
		{"refactoring is valid", CategoryRefactoring, true},
		{"general is valid", CategoryGeneral, true},
		{"empty string is invalid", TaskCategory(""), false},
		{"unknown category is invalid", TaskCategory("deploy"), false},
		{"typo category is invalid", TaskCategory("reserch"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.category.Valid(); got != tt.want {
				t.Errorf("TaskCategory(%q).Valid() = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestAllCategories(t *testing.T) {
	cats := AllCategories()
	if len(cats) != 8 {
		t.Fatalf("AllCategories() returned %d categories, want 8", len(cats))
	}
	seen := make(map[TaskCategory]bool)
	for _, c := range cats {
		if !c.Valid() {
			t.Errorf("AllCategories() contains invalid category %q", c)
		}
		if seen[c] {
			t.Errorf("AllCategories() contains duplicate category %q", c)
		}
		seen[c] = true
	}
}
