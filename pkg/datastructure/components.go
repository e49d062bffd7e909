package datastructure

import "sort"

// ConnectedComponents. labels every vertex with the id of its connected component and returns the
// components, largest first. the labels are kept for VerticesAreConnected until the next mutation.
// it writes to the graph: call it while building, not concurrently with searches.
func (g *Graph) ConnectedComponents() [][]string {
	labels, components := g.labelComponents()
	g.components = labels

	sort.SliceStable(components, func(i, j int) bool {
		return len(components[i]) > len(components[j])
	})
	return components
}

// labelComponents. iterative dfs over the undirected adjacency, components in discovery order.
func (g *Graph) labelComponents() (map[string]int, [][]string) {
	components := make([][]string, 0, 1)
	labels := make(map[string]int, len(g.order))

	stack := make([]string, 0, 16)
	for _, s := range g.order {
		if _, visited := labels[s]; visited {
			continue
		}

		c := len(components)
		component := make([]string, 0, 16)
		labels[s] = c
		stack = append(stack[:0], s)

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, v)

			for _, adj := range g.adjacent[v] {
				if _, visited := labels[adj.to]; visited {
					continue
				}
				labels[adj.to] = c
				stack = append(stack, adj.to)
			}
		}
		components = append(components, component)
	}
	return labels, components
}

// VerticesAreConnected. true if u and v are in the same connected component. impassable vertices are not
// taken into account, so a connected pair can still have no route.
// read-only: uses the labels of the last ConnectedComponents call, or labels a private copy when there are none.
func (g *Graph) VerticesAreConnected(u, v string) bool {
	labels := g.components
	if labels == nil {
		labels, _ = g.labelComponents()
	}
	cu, ok := labels[u]
	if !ok {
		return false
	}
	cv, ok := labels[v]
	if !ok {
		return false
	}
	return cu == cv
}
