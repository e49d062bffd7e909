package datastructure

import (
	"errors"
	"fmt"
	"math"

	"github.com/Monocerum/escolar/pkg"
	"github.com/Monocerum/escolar/pkg/geo"
)

var (
	ErrVertexNotFound       = errors.New("vertex not found")
	ErrDuplicateVertex      = errors.New("vertex already exists")
	ErrEmptyVertexID        = errors.New("vertex id is empty")
	ErrSelfLoop             = errors.New("self-loop edge")
	ErrNegativeWeight       = errors.New("negative edge weight")
	ErrInvalidVulnerability = errors.New("invalid vulnerability level")
)

// Vertex. a location on the campus pedestrian network. immutable once added to the graph.
type Vertex struct {
	id            string
	name          string
	class         pkg.PlaceClass
	lat           float64
	lon           float64
	x             float64 // projected
	y             float64 // projected
	vulnerability float64
}

func NewVertex(id string, lat, lon, x, y, vulnerability float64) *Vertex {
	return &Vertex{
		id:            id,
		name:          id,
		lat:           lat,
		lon:           lon,
		x:             x,
		y:             y,
		vulnerability: vulnerability,
	}
}

func (v *Vertex) GetID() string {
	return v.id
}

func (v *Vertex) GetName() string {
	return v.name
}

func (v *Vertex) GetClass() pkg.PlaceClass {
	return v.class
}

func (v *Vertex) GetLat() float64 {
	return v.lat
}

func (v *Vertex) GetLon() float64 {
	return v.lon
}

func (v *Vertex) GetCoordinate() geo.Coordinate {
	return geo.NewCoordinate(v.lat, v.lon)
}

func (v *Vertex) GetX() float64 {
	return v.x
}

func (v *Vertex) GetY() float64 {
	return v.y
}

func (v *Vertex) GetVulnerability() float64 {
	return v.vulnerability
}

// IsImpassable. vertices at the maximum vulnerability level are never entered as a neighbor,
// they can still be the origin or the destination of a route.
func (v *Vertex) IsImpassable() bool {
	return v.vulnerability >= pkg.IMPASSABLE_VULNERABILITY
}

// AdjacentVertex. one direction of an undirected edge.
type AdjacentVertex struct {
	to   string
	cost float64
}

func (a AdjacentVertex) GetTo() string {
	return a.to
}

func (a AdjacentVertex) GetCost() float64 {
	return a.cost
}

// Graph. undirected weighted graph of the campus. every edge is stored twice, once per adjacency direction.
// Graph holds no search state: it is safe for concurrent searches as long as nobody adds vertices or edges
// or calls ConnectedComponents. all three belong to the build phase.
type Graph struct {
	vertices map[string]*Vertex
	order    []string
	adjacent map[string][]AdjacentVertex
	numEdges int

	components map[string]int
}

func NewGraph() *Graph {
	return NewGraphWithSize(0)
}

func NewGraphWithSize(n int) *Graph {
	return &Graph{
		vertices: make(map[string]*Vertex, n),
		order:    make([]string, 0, n),
		adjacent: make(map[string][]AdjacentVertex, n),
	}
}

// AddVertex registers a vertex with an empty adjacency list.
func (g *Graph) AddVertex(id string, lat, lon, x, y, vulnerability float64) error {
	return g.AddPlace(id, id, pkg.UNKNOWN_PLACE, lat, lon, x, y, vulnerability)
}

// AddPlace. AddVertex with the display name and place class of the vertex.
func (g *Graph) AddPlace(id, name string, class pkg.PlaceClass, lat, lon, x, y, vulnerability float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateVertex, id)
	}
	if math.IsNaN(vulnerability) || vulnerability < pkg.MIN_VULNERABILITY {
		return fmt.Errorf("%w: vertex %s has vulnerability %v", ErrInvalidVulnerability, id, vulnerability)
	}

	v := NewVertex(id, lat, lon, x, y, vulnerability)
	if name != "" {
		v.name = name
	}
	v.class = class

	g.vertices[id] = v
	g.order = append(g.order, id)
	g.adjacent[id] = make([]AdjacentVertex, 0, 4)
	g.components = nil
	return nil
}

// AddEdge adds the undirected edge (a,b). both endpoints must already exist.
// duplicate edges are accepted and only produce redundant adjacency entries.
func (g *Graph) AddEdge(a, b string, cost float64) error {
	if _, ok := g.vertices[a]; !ok {
		return fmt.Errorf("%w: edge (%s,%s) references %s", ErrVertexNotFound, a, b, a)
	}
	if _, ok := g.vertices[b]; !ok {
		return fmt.Errorf("%w: edge (%s,%s) references %s", ErrVertexNotFound, a, b, b)
	}
	if a == b {
		return fmt.Errorf("%w: %s", ErrSelfLoop, a)
	}
	if math.IsNaN(cost) || cost < 0 {
		return fmt.Errorf("%w: edge (%s,%s) has cost %v", ErrNegativeWeight, a, b, cost)
	}

	g.adjacent[a] = append(g.adjacent[a], AdjacentVertex{to: b, cost: cost})
	g.adjacent[b] = append(g.adjacent[b], AdjacentVertex{to: a, cost: cost})
	g.numEdges++
	g.components = nil
	return nil
}

// Neighbors. adjacency list of id, empty for isolated or unknown vertices. callers must not modify it.
func (g *Graph) Neighbors(id string) []AdjacentVertex {
	return g.adjacent[id]
}

func (g *Graph) GetVertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

func (g *Graph) NumberOfVertices() int {
	return len(g.order)
}

// NumberOfEdges. number of undirected edges, duplicates included.
func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

// ForVertices iterates the vertices in insertion order.
func (g *Graph) ForVertices(handle func(v *Vertex)) {
	for _, id := range g.order {
		handle(g.vertices[id])
	}
}

func (g *Graph) GetVertexIDs() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

func (g *Graph) GetVerticesByClass(classes ...pkg.PlaceClass) []*Vertex {
	vs := make([]*Vertex, 0)
	g.ForVertices(func(v *Vertex) {
		for _, class := range classes {
			if v.class == class {
				vs = append(vs, v)
				return
			}
		}
	})
	return vs
}
