package routing

import (
	"github.com/Monocerum/escolar/pkg/geo"
)

// Route. result of one search. an empty path means no route exists.
type Route struct {
	origin          string
	destination     string
	vertices        []string
	path            []geo.Coordinate
	cost            float64
	distance        float64
	found           bool
	numSettledNodes int
}

func newRoute(origin, destination string, vertices []string, path []geo.Coordinate, cost float64,
	numSettledNodes int) *Route {
	return &Route{
		origin:          origin,
		destination:     destination,
		vertices:        vertices,
		path:            path,
		cost:            cost,
		distance:        geo.PathLength(path),
		found:           true,
		numSettledNodes: numSettledNodes,
	}
}

func newEmptyRoute(origin, destination string, numSettledNodes int) *Route {
	return &Route{
		origin:          origin,
		destination:     destination,
		vertices:        []string{},
		path:            []geo.Coordinate{},
		numSettledNodes: numSettledNodes,
	}
}

func (r *Route) GetOrigin() string {
	return r.origin
}

func (r *Route) GetDestination() string {
	return r.destination
}

// GetPath. coordinates from origin to destination. routes are shared through the route cache, so the
// caller gets its own copy.
func (r *Route) GetPath() []geo.Coordinate {
	path := make([]geo.Coordinate, len(r.path))
	copy(path, r.path)
	return path
}

// GetVertexIDs. vertex ids from origin to destination, a copy like GetPath.
func (r *Route) GetVertexIDs() []string {
	vertices := make([]string, len(r.vertices))
	copy(vertices, r.vertices)
	return vertices
}

// GetCost. search cost of the route: edge lengths plus the vulnerability and avoidance penalties that were paid.
func (r *Route) GetCost() float64 {
	return r.cost
}

// GetDistance. length of the route in meter.
func (r *Route) GetDistance() float64 {
	return r.distance
}

func (r *Route) IsFound() bool {
	return r.found
}

func (r *Route) GetNumSettledNodes() int {
	return r.numSettledNodes
}

// Routes. primary route and the alternative that was searched with a penalty on the primary's vertices.
// the alternative may be identical to the primary.
type Routes struct {
	Primary     *Route
	Alternative *Route
}
