package decompose

import (
	"fmt"

	"github.com/gammazero/toposort"

	"github.com/ShayCichocki/dispatch/pkg/models"
)

// Validate checks a generated decomposition for structural soundness:
// in-range backward-only dependency references and an acyclic dependency
// relation (verified by running a topological sort over the edges).
func Validate(subtasks []models.Subtask) error {
	var edges []toposort.Edge
	for _, st := range subtasks {
		if len(st.DependsOn) == 0 {
			edges = append(edges, toposort.Edge{nil, st.Index})
			continue
		}
		for _, dep := range st.DependsOn {
			if dep < 0 || dep >= len(subtasks) {
				return fmt.Errorf("subtask %d depends on out-of-range index %d", st.Index, dep)
			}
			if dep >= st.Index {
				return fmt.Errorf("subtask %d depends on non-earlier index %d", st.Index, dep)
			}
			edges = append(edges, toposort.Edge{dep, st.Index})
		}
	}

	if _, err := toposort.Toposort(edges); err != nil {
		return fmt.Errorf("subtask dependencies contain a cycle: %w", err)
	}
	return nil
}

// parallelGroups layers subtask indices: group 0 holds subtasks with no
// dependencies; each later group holds subtasks whose dependencies all sit
// in earlier groups. Errors if the subtasks cannot be fully layered.
func parallelGroups(subtasks []models.Subtask) ([][]int, error) {
	if err := Validate(subtasks); err != nil {
		return nil, err
	}

	placed := make(map[int]bool, len(subtasks))
	var groups [][]int

	for len(placed) < len(subtasks) {
		var group []int
		for _, st := range subtasks {
			if placed[st.Index] {
				continue
			}
			ready := true
			for _, dep := range st.DependsOn {
				if !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				group = append(group, st.Index)
			}
		}
		if len(group) == 0 {
			return nil, fmt.Errorf("cannot layer subtasks: %d of %d unplaceable", len(subtasks)-len(placed), len(subtasks))
		}
		for _, idx := range group {
			placed[idx] = true
		}
		groups = append(groups, group)
	}

	return groups, nil
}
