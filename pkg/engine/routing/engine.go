package routing

import (
	da "github.com/Monocerum/escolar/pkg/datastructure"
	"go.uber.org/zap"
)

// RoutingEngine. read-only view over a campus graph. it keeps no per-query state, every search allocates
// its own AStar, so one engine can serve concurrent queries as long as the graph is not mutated.
type RoutingEngine struct {
	graph           *da.Graph
	logger          *zap.Logger
	maxSettledNodes int
	onDiagnostic    DiagnosticFunc
}

type Option func(re *RoutingEngine)

// WithMaxSettledNodes bounds the number of vertices a single search may settle. n <= 0 means unbounded.
func WithMaxSettledNodes(n int) Option {
	return func(re *RoutingEngine) {
		re.maxSettledNodes = n
	}
}

// WithDiagnostics replaces the default diagnostic handler (a zap warning).
func WithDiagnostics(f DiagnosticFunc) Option {
	return func(re *RoutingEngine) {
		re.onDiagnostic = f
	}
}

func NewRoutingEngine(graph *da.Graph, logger *zap.Logger, opts ...Option) *RoutingEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	re := &RoutingEngine{
		graph:  graph,
		logger: logger,
	}
	re.onDiagnostic = re.LogDiagnostic
	for _, opt := range opts {
		opt(re)
	}
	return re
}

func (re *RoutingEngine) GetGraph() *da.Graph {
	return re.graph
}

func (re *RoutingEngine) GetMaxSettledNodes() int {
	return re.maxSettledNodes
}

func (re *RoutingEngine) emit(d Diagnostic) {
	if re.onDiagnostic != nil {
		re.onDiagnostic(d)
	}
}

// LogDiagnostic. default diagnostic handler, one zap warning per diagnostic.
func (re *RoutingEngine) LogDiagnostic(d Diagnostic) {
	switch d.Kind {
	case HEURISTIC_NOT_ADMISSIBLE:
		re.logger.Warn("heuristic overestimates remaining cost",
			zap.String("origin", d.Origin), zap.String("destination", d.Destination),
			zap.String("vertex", d.Vertex), zap.Float64("heuristic", d.Heuristic),
			zap.Float64("remaining", d.Remaining))
	case DANGLING_PARENT:
		re.logger.Warn("path reconstruction stopped at an unknown vertex, route truncated",
			zap.String("origin", d.Origin), zap.String("destination", d.Destination),
			zap.String("vertex", d.Vertex))
	}
}
