package routing

import (
	"fmt"

	da "github.com/Monocerum/escolar/pkg/datastructure"
)

// adjustment for floating point error when comparing path costs
const admissibilityEpsilon = 1e-9

// AStar. one best-first search run over the engine graph: vertices are settled in order of
// f = g + h where g also charges the vulnerability of every entered vertex.
// an AStar must not be shared between goroutines.
type AStar struct {
	engine *RoutingEngine

	info     map[string]*VertexInfo
	explored map[string]struct{}
	pq       *da.MinHeap[string]

	avoid map[string]struct{} // soft penalty only, never blocks a vertex

	status              SearchStatus
	numSettledNodes     int
	numDuplicateEntries int
}

func NewAStar(engine *RoutingEngine, avoid map[string]struct{}) *AStar {
	n := engine.graph.NumberOfVertices()
	pq := da.NewBinaryHeap[string]()
	pq.Preallocate(n)
	return &AStar{
		engine:   engine,
		info:     make(map[string]*VertexInfo, n),
		explored: make(map[string]struct{}, n),
		pq:       pq,
		avoid:    avoid,
		status:   INITIALIZED,
	}
}

func (as *AStar) GetStatus() SearchStatus {
	return as.status
}

func (as *AStar) GetNumSettledNodes() int {
	return as.numSettledNodes
}

// GetNumDuplicateEntries. number of improvements that pushed a vertex already waiting in the queue.
func (as *AStar) GetNumDuplicateEntries() int {
	return as.numDuplicateEntries
}

func (as *AStar) reset() {
	as.info = make(map[string]*VertexInfo, len(as.info))
	as.explored = make(map[string]struct{}, len(as.explored))
	as.pq.Clear()
	as.status = INITIALIZED
	as.numSettledNodes = 0
	as.numDuplicateEntries = 0
}

func (as *AStar) getInfo(id string) *VertexInfo {
	vi, ok := as.info[id]
	if !ok {
		vi = NewVertexInfo()
		as.info[id] = vi
	}
	return vi
}

// ShortestPathSearch. searches origin -> destination. an unreachable destination is not an error:
// the returned route has found == false and an empty path.
// unknown ids return da.ErrVertexNotFound, a search that settles more than the engine budget
// returns ErrSearchBudgetExceeded.
func (as *AStar) ShortestPathSearch(origin, destination string) (*Route, error) {
	graph := as.engine.graph
	s, ok := graph.GetVertex(origin)
	if !ok {
		return nil, fmt.Errorf("%w: origin %s", da.ErrVertexNotFound, origin)
	}
	t, ok := graph.GetVertex(destination)
	if !ok {
		return nil, fmt.Errorf("%w: destination %s", da.ErrVertexNotFound, destination)
	}

	as.reset()

	sInfo := as.getInfo(origin)
	sInfo.gScore = 0
	sInfo.hScore = Heuristic(s, t)
	sInfo.fScore = sInfo.hScore
	as.pq.Insert(origin, sInfo.fScore)
	as.status = EXPLORING

	for !as.pq.IsEmpty() {
		top, _ := as.pq.ExtractMin()
		current := top.GetItem()
		if _, settled := as.explored[current]; settled {
			// stale entry from an earlier improvement
			continue
		}
		as.explored[current] = struct{}{}
		as.numSettledNodes++

		if current == destination {
			as.status = FOUND
			break
		}

		if budget := as.engine.maxSettledNodes; budget > 0 && as.numSettledNodes >= budget {
			as.status = ABORTED
			return nil, fmt.Errorf("%w: settled %d vertices searching %s -> %s", ErrSearchBudgetExceeded,
				as.numSettledNodes, origin, destination)
		}

		as.relax(current, t)
	}

	if as.status != FOUND {
		as.status = EXHAUSTED
		return newEmptyRoute(origin, destination, as.numSettledNodes), nil
	}

	vertices, path := as.reconstructPath(origin, destination)
	as.checkAdmissibility(origin, destination, vertices)

	return newRoute(origin, destination, vertices, path, as.info[destination].gScore, as.numSettledNodes), nil
}

func (as *AStar) relax(current string, t *da.Vertex) {
	graph := as.engine.graph
	cur := as.info[current]

	for _, e := range graph.Neighbors(current) {
		to := e.GetTo()
		if _, settled := as.explored[to]; settled {
			continue
		}
		adj, ok := graph.GetVertex(to)
		if !ok || adj.IsImpassable() {
			continue
		}

		_, avoided := as.avoid[to]
		tentativeG := cur.gScore + traversalCost(e.GetCost(), adj, avoided)

		adjInfo := as.getInfo(to)
		if tentativeG >= adjInfo.gScore {
			continue
		}

		adjInfo.update(current, tentativeG, Heuristic(adj, t))
		if as.pq.Contains(to) {
			as.numDuplicateEntries++
		}
		as.pq.Insert(to, adjInfo.fScore)
	}
}

// checkAdmissibility compares h(v) of every vertex on the found path with the cost the path still pays after v.
func (as *AStar) checkAdmissibility(origin, destination string, vertices []string) {
	dInfo, ok := as.info[destination]
	if !ok {
		return
	}
	for _, v := range vertices {
		vi, ok := as.info[v]
		if !ok {
			continue
		}
		remaining := dInfo.gScore - vi.gScore
		if vi.hScore > remaining+admissibilityEpsilon {
			as.engine.emit(Diagnostic{
				Kind:        HEURISTIC_NOT_ADMISSIBLE,
				Origin:      origin,
				Destination: destination,
				Vertex:      v,
				Heuristic:   vi.hScore,
				Remaining:   remaining,
			})
		}
	}
}
