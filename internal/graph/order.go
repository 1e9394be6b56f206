package graph

import "sort"

// TopoOrder is an execution plan for an issue batch.
type TopoOrder struct {
	// Sequential is one global order respecting all in-batch edges.
	// On a cyclic graph it is partial: cycle members are omitted.
	Sequential []string
	// Parallel groups ids into layers; every id in layer k has all its
	// in-batch dependencies in layers 0..k-1.
	Parallel [][]string
	// CriticalPath is the longest dependency chain by edge count, listed
	// root to leaf. Ties break toward the lowest id.
	CriticalPath []string
}

// TopologicalSort orders the graph with Kahn's algorithm, bucketing nodes
// removed in the same round into one parallel layer. Dependencies on issues
// outside the batch count as already satisfied. The sort never loops on a
// cyclic graph: when no node is removable the remainder is dropped and the
// returned order is partial. Run DetectCycles before trusting Sequential as
// a total order.
func (g *DependencyGraph) TopologicalSort() TopoOrder {
	remaining := make(map[string]int, len(g.nodes))
	for _, id := range g.ids {
		remaining[id] = len(g.localDeps(id))
	}

	scheduled := make(map[string]bool, len(g.nodes))
	var order TopoOrder

	for len(scheduled) < len(g.nodes) {
		var layer []string
		for _, id := range g.ids {
			if !scheduled[id] && remaining[id] == 0 {
				layer = append(layer, id)
			}
		}
		if len(layer) == 0 {
			// Every unscheduled node is on or behind a cycle.
			break
		}

		for _, id := range layer {
			scheduled[id] = true
		}
		// Decrement dependents of the removed layer.
		for _, id := range g.ids {
			if scheduled[id] {
				continue
			}
			for _, dep := range g.localDeps(id) {
				if contains(layer, dep) {
					remaining[id]--
				}
			}
		}

		order.Sequential = append(order.Sequential, layer...)
		order.Parallel = append(order.Parallel, layer)
	}

	order.CriticalPath = g.criticalPath(order.Sequential)
	return order
}

// criticalPath computes the longest dependency chain over the acyclic part
// of the graph, given a valid topological order of that part.
func (g *DependencyGraph) criticalPath(sequential []string) []string {
	if len(sequential) == 0 {
		return nil
	}

	inOrder := make(map[string]bool, len(sequential))
	for _, id := range sequential {
		inOrder[id] = true
	}

	// depth[id] is the length in nodes of the longest chain ending at id;
	// pred[id] is the dependency that chain arrives through.
	depth := make(map[string]int, len(sequential))
	pred := make(map[string]string, len(sequential))

	for _, id := range sequential {
		depth[id] = 1
		best := ""
		for _, dep := range g.localDeps(id) {
			if !inOrder[dep] {
				continue
			}
			d := depth[dep] + 1
			if d > depth[id] || (d == depth[id] && best != "" && dep < best) {
				depth[id] = d
				best = dep
			}
		}
		if best != "" {
			pred[id] = best
		}
	}

	// Deepest endpoint wins; ties break toward the lowest id.
	endpoints := append([]string(nil), sequential...)
	sort.Strings(endpoints)
	end := endpoints[0]
	for _, id := range endpoints {
		if depth[id] > depth[end] {
			end = id
		}
	}

	var path []string
	for id := end; ; {
		path = append(path, id)
		next, ok := pred[id]
		if !ok {
			break
		}
		id = next
	}

	// Reverse into root-to-leaf order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
