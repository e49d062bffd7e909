package routing

import (
	"errors"

	da "github.com/Monocerum/escolar/pkg/datastructure"
	"go.uber.org/zap"
)

// FindRoutes. runs the unconstrained search and then the alternative search that charges AVOIDANCE_PENALTY
// for entering any vertex of the primary route. both runs use fresh search state.
// when the primary search finds nothing the alternative is not attempted and both routes are empty.
// a budget exceeded by the alternative search only leaves the alternative empty.
func (re *RoutingEngine) FindRoutes(origin, destination string) (*Routes, error) {
	primary, err := NewAStar(re, nil).ShortestPathSearch(origin, destination)
	if err != nil {
		return nil, err
	}

	if !primary.IsFound() {
		return &Routes{
			Primary:     primary,
			Alternative: newEmptyRoute(origin, destination, 0),
		}, nil
	}

	avoid := make(map[string]struct{}, len(primary.vertices))
	for _, id := range primary.vertices {
		avoid[id] = struct{}{}
	}

	alt := NewAStar(re, avoid)
	alternative, err := alt.ShortestPathSearch(origin, destination)
	if errors.Is(err, ErrSearchBudgetExceeded) {
		// the primary is still a valid answer
		re.logger.Warn("alternative search gave up, serving the primary route only",
			zap.String("origin", origin), zap.String("destination", destination),
			zap.Int("settled", alt.GetNumSettledNodes()))
		alternative = newEmptyRoute(origin, destination, alt.GetNumSettledNodes())
	} else if err != nil {
		return nil, err
	}

	return &Routes{
		Primary:     primary,
		Alternative: alternative,
	}, nil
}

// FindRoutes. one-off FindRoutes over graph without logging.
func FindRoutes(graph *da.Graph, origin, destination string, opts ...Option) (*Routes, error) {
	return NewRoutingEngine(graph, zap.NewNop(), opts...).FindRoutes(origin, destination)
}
