package routing

import (
	"errors"
	"testing"

	da "github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testVertex struct {
	id   string
	x, y float64
	vuln float64
}

type testEdge struct {
	a, b string
	cost float64
}

func buildGraph(t *testing.T, vertices []testVertex, edges []testEdge) *da.Graph {
	t.Helper()
	g := da.NewGraph()
	for _, v := range vertices {
		// lat/lon only matter for the returned coordinates
		require.NoError(t, g.AddVertex(v.id, 14.59+v.y*0.001, 121.0+v.x*0.001, v.x, v.y, v.vuln))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.a, e.b, e.cost))
	}
	return g
}

// A(0,0) - B(1,0) - C(1,1) - D(0,1) - A
func squareGraph(t *testing.T) *da.Graph {
	return buildGraph(t,
		[]testVertex{{"A", 0, 0, 0}, {"B", 1, 0, 0}, {"C", 1, 1, 0}, {"D", 0, 1, 0}},
		[]testEdge{{"A", "B", 1}, {"B", "C", 1}, {"C", "D", 1}, {"D", "A", 1}},
	)
}

// direct edge A-B of cost 5 and a detour through the impassable X of total cost 2
func impassableGraph(t *testing.T) *da.Graph {
	return buildGraph(t,
		[]testVertex{{"A", 0, 0, 0}, {"X", 1, 0, 3}, {"B", 2, 0, 0}},
		[]testEdge{{"A", "B", 5}, {"A", "X", 1}, {"X", "B", 1}},
	)
}

func coordOf(t *testing.T, g *da.Graph, id string) geo.Coordinate {
	t.Helper()
	v, ok := g.GetVertex(id)
	require.True(t, ok)
	return v.GetCoordinate()
}

func TestFindRoutesSquare(t *testing.T) {
	g := squareGraph(t)

	routes, err := FindRoutes(g, "A", "C")
	require.NoError(t, err)

	primary := routes.Primary.GetVertexIDs()
	alternative := routes.Alternative.GetVertexIDs()

	assert.True(t, routes.Primary.IsFound())
	assert.Contains(t, [][]string{{"A", "B", "C"}, {"A", "D", "C"}}, primary)
	assert.InDelta(t, 2.0, routes.Primary.GetCost(), 1e-9)

	assert.True(t, routes.Alternative.IsFound())
	assert.Len(t, alternative, 3)
	assert.NotEqual(t, primary[1], alternative[1], "alternative must take the other side of the square")
	assert.Equal(t, "A", alternative[0])
	assert.Equal(t, "C", alternative[2])

	path := routes.Primary.GetPath()
	require.Len(t, path, 3)
	assert.Equal(t, coordOf(t, g, "A"), path[0])
	assert.Equal(t, coordOf(t, g, "C"), path[2])
	assert.Greater(t, routes.Primary.GetDistance(), 0.0)
}

func TestFindRoutesImpassableVertex(t *testing.T) {
	g := impassableGraph(t)

	routes, err := FindRoutes(g, "A", "B")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, routes.Primary.GetVertexIDs())
	assert.InDelta(t, 5.0, routes.Primary.GetCost(), 1e-9)

	// only one passable route exists, the alternative pays the penalty and takes it anyway
	assert.Equal(t, []string{"A", "B"}, routes.Alternative.GetVertexIDs())
	assert.InDelta(t, 5.0+100.0, routes.Alternative.GetCost(), 1e-9)
}

func TestShortestPathSearch(t *testing.T) {
	tests := []struct {
		name         string
		vertices     []testVertex
		edges        []testEdge
		origin       string
		destination  string
		wantFound    bool
		wantVertices []string
		wantCost     float64
	}{
		{
			name:         "origin equals destination",
			vertices:     []testVertex{{"A", 0, 0, 0}, {"B", 1, 0, 0}},
			edges:        []testEdge{{"A", "B", 1}},
			origin:       "A",
			destination:  "A",
			wantFound:    true,
			wantVertices: []string{"A"},
			wantCost:     0,
		},
		{
			name:         "unreachable destination",
			vertices:     []testVertex{{"A", 0, 0, 0}, {"B", 1, 0, 0}, {"Z", 5, 5, 0}},
			edges:        []testEdge{{"A", "B", 1}},
			origin:       "A",
			destination:  "Z",
			wantFound:    false,
			wantVertices: []string{},
		},
		{
			name:         "destination behind impassable vertex",
			vertices:     []testVertex{{"A", 0, 0, 0}, {"X", 1, 0, 3}, {"B", 2, 0, 0}},
			edges:        []testEdge{{"A", "X", 1}, {"X", "B", 1}},
			origin:       "A",
			destination:  "B",
			wantFound:    false,
			wantVertices: []string{},
		},
		{
			name:         "impassable origin can still leave",
			vertices:     []testVertex{{"X", 0, 0, 3}, {"B", 1, 0, 0}},
			edges:        []testEdge{{"X", "B", 1}},
			origin:       "X",
			destination:  "B",
			wantFound:    true,
			wantVertices: []string{"X", "B"},
			wantCost:     1,
		},
		{
			name: "vulnerability outweighs distance",
			vertices: []testVertex{
				{"A", 0, 0, 0}, {"R", 1, 0, 2}, {"S", 1, 1, 0}, {"B", 2, 0, 0},
			},
			edges:        []testEdge{{"A", "R", 1}, {"R", "B", 1}, {"A", "S", 3}, {"S", "B", 3}},
			origin:       "A",
			destination:  "B",
			wantFound:    true,
			wantVertices: []string{"A", "S", "B"},
			wantCost:     6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildGraph(t, tt.vertices, tt.edges)
			as := NewAStar(NewRoutingEngine(g, nil), nil)

			route, err := as.ShortestPathSearch(tt.origin, tt.destination)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFound, route.IsFound())
			assert.Equal(t, tt.wantVertices, route.GetVertexIDs())
			assert.Len(t, route.GetPath(), len(tt.wantVertices))
			if tt.wantFound {
				assert.Equal(t, FOUND, as.GetStatus())
				assert.InDelta(t, tt.wantCost, route.GetCost(), 1e-9)
				assert.Equal(t, coordOf(t, g, tt.origin), route.GetPath()[0])
				assert.Equal(t, coordOf(t, g, tt.destination), route.GetPath()[len(route.GetPath())-1])
			} else {
				assert.Equal(t, EXHAUSTED, as.GetStatus())
				assert.Empty(t, route.GetPath())
			}
		})
	}
}

func TestFindRoutesUnreachableBothEmpty(t *testing.T) {
	g := buildGraph(t,
		[]testVertex{{"A", 0, 0, 0}, {"B", 1, 0, 0}, {"Z", 5, 5, 0}},
		[]testEdge{{"A", "B", 1}},
	)

	routes, err := FindRoutes(g, "A", "Z")
	require.NoError(t, err)
	assert.False(t, routes.Primary.IsFound())
	assert.False(t, routes.Alternative.IsFound())
	assert.Empty(t, routes.Primary.GetPath())
	assert.Empty(t, routes.Alternative.GetPath())
}

func TestFindRoutesUnknownVertex(t *testing.T) {
	g := squareGraph(t)

	_, err := FindRoutes(g, "nowhere", "C")
	assert.True(t, errors.Is(err, da.ErrVertexNotFound))

	_, err = FindRoutes(g, "A", "nowhere")
	assert.True(t, errors.Is(err, da.ErrVertexNotFound))
}

func TestFindRoutesIdempotent(t *testing.T) {
	g := squareGraph(t)
	re := NewRoutingEngine(g, nil)

	first, err := re.FindRoutes("A", "C")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := re.FindRoutes("A", "C")
		require.NoError(t, err)
		assert.Equal(t, first.Primary.GetVertexIDs(), again.Primary.GetVertexIDs())
		assert.Equal(t, first.Alternative.GetVertexIDs(), again.Alternative.GetVertexIDs())
	}
}

func TestAStarReusable(t *testing.T) {
	g := squareGraph(t)
	as := NewAStar(NewRoutingEngine(g, nil), nil)

	r1, err := as.ShortestPathSearch("A", "C")
	require.NoError(t, err)
	r2, err := as.ShortestPathSearch("B", "D")
	require.NoError(t, err)
	r3, err := as.ShortestPathSearch("A", "C")
	require.NoError(t, err)

	assert.Len(t, r2.GetVertexIDs(), 3)
	assert.Equal(t, r1.GetVertexIDs(), r3.GetVertexIDs())
	assert.Equal(t, r1.GetNumSettledNodes(), r3.GetNumSettledNodes())
}

func TestSearchBudget(t *testing.T) {
	g := squareGraph(t)

	_, err := FindRoutes(g, "A", "C", WithMaxSettledNodes(1))
	assert.True(t, errors.Is(err, ErrSearchBudgetExceeded))

	routes, err := FindRoutes(g, "A", "C", WithMaxSettledNodes(100))
	require.NoError(t, err)
	assert.True(t, routes.Primary.IsFound())
}

// A-B-C along the bottom, the detour A-D-E-C along the top
func detourGraph(t *testing.T) *da.Graph {
	return buildGraph(t,
		[]testVertex{{"A", 0, 0, 0}, {"B", 1, 0, 0}, {"C", 2, 0, 0}, {"D", 0, 1, 0}, {"E", 2, 1, 0}},
		[]testEdge{{"A", "B", 1}, {"B", "C", 1}, {"A", "D", 1}, {"D", "E", 2}, {"E", "C", 1}},
	)
}

func TestSearchBudgetKeepsPrimaryRoute(t *testing.T) {
	g := detourGraph(t)

	unbounded, err := FindRoutes(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, unbounded.Primary.GetVertexIDs())
	require.Equal(t, []string{"A", "D", "E", "C"}, unbounded.Alternative.GetVertexIDs())
	require.Equal(t, 3, unbounded.Primary.GetNumSettledNodes())
	require.Greater(t, unbounded.Alternative.GetNumSettledNodes(), 3)

	// enough for the primary, too little for the detour
	routes, err := FindRoutes(g, "A", "C", WithMaxSettledNodes(3))
	require.NoError(t, err)
	assert.True(t, routes.Primary.IsFound())
	assert.Equal(t, []string{"A", "B", "C"}, routes.Primary.GetVertexIDs())
	assert.False(t, routes.Alternative.IsFound())
	assert.Empty(t, routes.Alternative.GetPath())
	assert.Equal(t, 3, routes.Alternative.GetNumSettledNodes())

	_, err = FindRoutes(g, "A", "C", WithMaxSettledNodes(2))
	assert.ErrorIs(t, err, ErrSearchBudgetExceeded)
}

func TestHeuristicNotAdmissibleDiagnostic(t *testing.T) {
	// the destination's own vulnerability is counted by h but nothing is left to pay once there
	g := buildGraph(t,
		[]testVertex{{"A", 0, 0, 0}, {"B", 1, 0, 1}},
		[]testEdge{{"A", "B", 1}},
	)

	var diagnostics []Diagnostic
	re := NewRoutingEngine(g, nil, WithDiagnostics(func(d Diagnostic) {
		diagnostics = append(diagnostics, d)
	}))

	route, err := NewAStar(re, nil).ShortestPathSearch("A", "B")
	require.NoError(t, err)
	require.True(t, route.IsFound())
	assert.InDelta(t, 1.0+10.0, route.GetCost(), 1e-9)

	require.Len(t, diagnostics, 1)
	d := diagnostics[0]
	assert.Equal(t, HEURISTIC_NOT_ADMISSIBLE, d.Kind)
	assert.Equal(t, "B", d.Vertex)
	assert.InDelta(t, 10.0, d.Heuristic, 1e-9)
	assert.InDelta(t, 0.0, d.Remaining, 1e-9)
}

func TestNoDiagnosticWhenHeuristicHolds(t *testing.T) {
	g := squareGraph(t)

	called := false
	re := NewRoutingEngine(g, nil, WithDiagnostics(func(d Diagnostic) {
		called = true
	}))
	_, err := NewAStar(re, nil).ShortestPathSearch("A", "C")
	require.NoError(t, err)
	assert.False(t, called)
}

func TestReconstructPathDanglingParent(t *testing.T) {
	g := squareGraph(t)

	var diagnostics []Diagnostic
	re := NewRoutingEngine(g, nil, WithDiagnostics(func(d Diagnostic) {
		diagnostics = append(diagnostics, d)
	}))
	as := NewAStar(re, nil)

	// C <- B <- ghost, ghost is not a vertex of the graph
	as.getInfo("C").update("B", 2, 0)
	as.getInfo("B").update("ghost", 1, 1)

	vertices, path := as.reconstructPath("A", "C")
	assert.Equal(t, []string{"B", "C"}, vertices)
	require.Len(t, path, 2)
	assert.Equal(t, coordOf(t, g, "C"), path[1])

	require.Len(t, diagnostics, 1)
	assert.Equal(t, DANGLING_PARENT, diagnostics[0].Kind)
	assert.Equal(t, "ghost", diagnostics[0].Vertex)
}

func TestReconstructPathCycleBounded(t *testing.T) {
	g := squareGraph(t)
	as := NewAStar(NewRoutingEngine(g, nil), nil)

	as.getInfo("C").update("B", 2, 0)
	as.getInfo("B").update("C", 1, 1)

	vertices, _ := as.reconstructPath("A", "C")
	assert.LessOrEqual(t, len(vertices), g.NumberOfVertices()+1)
}

func TestDuplicateQueueEntries(t *testing.T) {
	// D is first reached through the expensive edge from A, then improved through B while still queued
	g := buildGraph(t,
		[]testVertex{{"A", 0, 0, 0}, {"B", 1, 0, 0}, {"D", 2, 0, 0}, {"T", 3, 0, 0}},
		[]testEdge{{"A", "B", 1}, {"A", "D", 10}, {"B", "D", 1}, {"D", "T", 1}},
	)
	as := NewAStar(NewRoutingEngine(g, nil), nil)

	route, err := as.ShortestPathSearch("A", "T")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "T"}, route.GetVertexIDs())
	assert.Equal(t, 1, as.GetNumDuplicateEntries())
	assert.InDelta(t, 3.0, route.GetCost(), 1e-9)
}

func TestHeuristic(t *testing.T) {
	a := da.NewVertex("a", 0, 0, 0, 0, 2)
	b := da.NewVertex("b", 0, 0, 3, 4, 0)

	assert.InDelta(t, 5.0+20.0, Heuristic(a, b), 1e-9)
	assert.InDelta(t, 5.0, Heuristic(b, a), 1e-9)
}
