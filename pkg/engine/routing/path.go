package routing

import (
	"github.com/Monocerum/escolar/pkg/geo"
	"github.com/Monocerum/escolar/pkg/util"
)

// reconstructPath follows parents from destination back to the vertex without parent and returns the ids and
// coordinates origin first. a parent that is not in the graph stops the walk: the partial path is returned
// and a DANGLING_PARENT diagnostic is emitted.
func (as *AStar) reconstructPath(origin, destination string) ([]string, []geo.Coordinate) {
	graph := as.engine.graph
	vertices := make([]string, 0, 16)
	path := make([]geo.Coordinate, 0, 16)

	// a parent chain can never be longer than the graph, anything longer is a cycle
	maxSteps := graph.NumberOfVertices()

	cur := destination
	for step := 0; step <= maxSteps; step++ {
		v, ok := graph.GetVertex(cur)
		if !ok {
			as.engine.emit(Diagnostic{
				Kind:        DANGLING_PARENT,
				Origin:      origin,
				Destination: destination,
				Vertex:      cur,
			})
			break
		}
		vertices = append(vertices, cur)
		path = append(path, v.GetCoordinate())

		vi, ok := as.info[cur]
		if !ok {
			break
		}
		parent, hasParent := vi.GetParent()
		if !hasParent {
			break
		}
		cur = parent
	}

	return util.ReverseG(vertices), util.ReverseG(path)
}
