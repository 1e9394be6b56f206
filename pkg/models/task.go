package models

import "time"

// TaskSpec is a unit of work as described by the planning collaborator,
// before decomposition.
type TaskSpec struct {
	// Title is a short imperative summary of the work.
	Title string `json:"title" yaml:"title"`
	// Description elaborates on the work. May be empty.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Type is a free-form task type hint (feature, bug, chore, ...).
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Subtask is one decomposition-internal unit of work, addressed by its
// index within the decomposition rather than an external id.
type Subtask struct {
	// Index is the position of this subtask within the decomposition.
	Index int `json:"index"`
	// Title is a short imperative summary.
	Title string `json:"title"`
	// Description elaborates on the subtask.
	Description string `json:"description"`
	// Category is the classified task category for this subtask.
	Category TaskCategory `json:"category"`
	// Priority orders subtasks for scheduling; lower runs earlier.
	Priority int `json:"priority"`
	// DependsOn lists indices of subtasks that must complete first.
	// Only earlier indices are referenced.
	DependsOn []int `json:"depends_on"`
}

// TaskDecomposition is the result of breaking a task spec into subtasks.
type TaskDecomposition struct {
	// Subtasks holds every generated unit of work, in index order.
	Subtasks []Subtask `json:"subtasks"`
	// ParallelGroups partitions subtask indices into execution layers.
	// Group 0 holds subtasks with no dependencies; group k holds subtasks
	// whose dependencies are all in groups 0..k-1.
	ParallelGroups [][]int `json:"parallel_groups"`
}

// Issue is an externally tracked unit of work with dependency links.
// Issues are supplied by the issue-tracking collaborator and treated as
// read-only by this module.
type Issue struct {
	// ID is the tracker-assigned identifier.
	ID string `json:"id" yaml:"id"`
	// Title is a short summary.
	Title string `json:"title" yaml:"title"`
	// Description elaborates on the issue. May be empty.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// Status is the tracker-side lifecycle state. Not interpreted here.
	Status string `json:"status" yaml:"status"`
	// Priority is the tracker-side priority. Not interpreted here.
	Priority int `json:"priority" yaml:"priority"`
	// Type is the tracker-side issue type. Not interpreted here.
	Type string `json:"type" yaml:"type"`
	// DependsOn lists ids of issues this issue depends on.
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
	// BlockedBy lists ids of issues blocking this issue.
	BlockedBy []string `json:"blocked_by,omitempty" yaml:"blocked_by,omitempty"`
	// CreatedAt is when the issue was filed.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
