// Package graph provides dependency graph resolution for issue batches:
// construction, cycle detection, topological ordering, and critical path.
package graph

import (
	"sort"

	"github.com/ShayCichocki/dispatch/pkg/models"
)

// DependencyGraph is a directed graph over an issue batch. Nodes are issue
// ids; edges[x] holds the ids x depends on, as given by the tracker.
// Dependency ids that reference issues outside the batch are retained in the
// edge sets but never become nodes. The graph is read-only after Build, so
// one graph can back any number of TopologicalSort and DetectCycles calls.
type DependencyGraph struct {
	// nodes maps issue id to the issue itself.
	nodes map[string]models.Issue
	// edges maps issue id to the ids it depends on, dangling refs included.
	edges map[string][]string
	// ids holds all node ids sorted ascending, for deterministic iteration.
	ids []string
}

// Build constructs a dependency graph from an issue batch.
// Edges come from each issue's DependsOn list verbatim.
func Build(issues []models.Issue) *DependencyGraph {
	g := &DependencyGraph{
		nodes: make(map[string]models.Issue, len(issues)),
		edges: make(map[string][]string, len(issues)),
	}

	for _, issue := range issues {
		g.nodes[issue.ID] = issue
		g.edges[issue.ID] = append([]string(nil), issue.DependsOn...)
	}

	g.ids = make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		g.ids = append(g.ids, id)
	}
	sort.Strings(g.ids)

	return g
}

// Size returns the number of issues in the graph.
func (g *DependencyGraph) Size() int {
	return len(g.nodes)
}

// Nodes returns all issue ids sorted ascending.
func (g *DependencyGraph) Nodes() []string {
	return append([]string(nil), g.ids...)
}

// Issue returns the issue for an id and whether it is in the batch.
func (g *DependencyGraph) Issue(id string) (models.Issue, bool) {
	issue, ok := g.nodes[id]
	return issue, ok
}

// Dependencies returns the ids an issue depends on, dangling refs included.
func (g *DependencyGraph) Dependencies(id string) []string {
	return append([]string(nil), g.edges[id]...)
}

// localDeps returns only the dependencies of id that are nodes in this batch.
// External references count as already satisfied.
func (g *DependencyGraph) localDeps(id string) []string {
	var deps []string
	for _, dep := range g.edges[id] {
		if _, ok := g.nodes[dep]; ok {
			deps = append(deps, dep)
		}
	}
	return deps
}

// DetectCycles finds every distinct dependency cycle in the graph using
// depth-first search with recursion-stack marking. Each cycle is reported
// exactly once, rotated so it starts at its smallest id. Self-loops are
// single-element cycles. An empty result means the graph is a DAG and
// TopologicalSort output can be trusted as a total order.
func (g *DependencyGraph) DetectCycles() [][]string {
	// Color states: 0 = white (unvisited), 1 = gray (on stack), 2 = black (done).
	colors := make(map[string]int, len(g.nodes))
	var path []string
	var cycles [][]string
	seen := make(map[string]bool)

	var visit func(id string)
	visit = func(id string) {
		colors[id] = 1
		path = append(path, id)

		for _, dep := range g.localDeps(id) {
			switch colors[dep] {
			case 1:
				// Back edge: the cycle is the path segment from dep onward.
				start := 0
				for i, p := range path {
					if p == dep {
						start = i
						break
					}
				}
				cycle := normalizeCycle(path[start:])
				key := cycleKey(cycle)
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, cycle)
				}
			case 0:
				visit(dep)
			}
		}

		path = path[:len(path)-1]
		colors[id] = 2
	}

	for _, id := range g.ids {
		if colors[id] == 0 {
			visit(id)
		}
	}

	return cycles
}

// normalizeCycle rotates a cycle so its smallest id comes first.
func normalizeCycle(cycle []string) []string {
	if len(cycle) == 0 {
		return nil
	}
	min := 0
	for i, id := range cycle {
		if id < cycle[min] {
			min = i
		}
	}
	out := make([]string, 0, len(cycle))
	out = append(out, cycle[min:]...)
	out = append(out, cycle[:min]...)
	return out
}

func cycleKey(cycle []string) string {
	key := ""
	for _, id := range cycle {
		key += id + "\x00"
	}
	return key
}
