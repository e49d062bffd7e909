package engine

import (
	"context"

	"github.com/Monocerum/escolar/pkg/campus"
	da "github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/engine/routing"
	"github.com/Monocerum/escolar/pkg/metrics"
	"github.com/Monocerum/escolar/pkg/osmparser"
	"github.com/Monocerum/escolar/pkg/spatialindex"
	"go.uber.org/zap"
)

// default vulnerability of osm nodes without an evacuation:vulnerability tag
const defaultOSMVulnerability = 1.0

type Engine struct {
	routingEngine *routing.RoutingEngine
	source        *campus.Source
	rtree         *spatialindex.Rtree
}

func (e *Engine) GetRoutingEngine() *routing.RoutingEngine {
	return e.routingEngine
}

func (e *Engine) GetGraph() *da.Graph {
	return e.routingEngine.GetGraph()
}

func (e *Engine) GetSource() *campus.Source {
	return e.source
}

func (e *Engine) GetSpatialIndex() *spatialindex.Rtree {
	return e.rtree
}

// LoadSource reads a campus file of any supported format: json, hcl, bzip2 snapshot or an openstreetmap extract.
func LoadSource(ctx context.Context, filename string, logger *zap.Logger) (*campus.Source, error) {
	if osmparser.IsOSMFile(filename) {
		return osmparser.NewOSMParser(logger, defaultOSMVulnerability).Parse(ctx, filename)
	}
	return campus.Open(filename)
}

func NewEngine(ctx context.Context, campusFile string, width, height float64, logger *zap.Logger,
	metric *metrics.Metric, opts ...routing.Option) (*Engine, error) {

	logger.Info("Reading campus from ", zap.String("campusFile", campusFile))
	src, err := LoadSource(ctx, campusFile, logger)
	if err != nil {
		return nil, err
	}
	return NewEngineFromSource(src, width, height, logger, metric, opts...)
}

func NewEngineFromSource(src *campus.Source, width, height float64, logger *zap.Logger,
	metric *metrics.Metric, opts ...routing.Option) (*Engine, error) {

	proj, err := src.NewProjection(width, height)
	if err != nil {
		return nil, err
	}

	logger.Info("Building campus graph...", zap.String("campus", src.Name))
	graph, err := campus.Build(src, proj)
	if err != nil {
		return nil, err
	}
	logger.Info("Campus graph built.", zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()))

	components := graph.ConnectedComponents()
	if len(components) > 1 {
		sizes := make([]int, 0, len(components))
		for _, c := range components {
			sizes = append(sizes, len(c))
		}
		logger.Warn("campus graph is disconnected, some places cannot reach each other",
			zap.Int("components", len(components)), zap.Ints("sizes", sizes))
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(graph, logger)

	var re *routing.RoutingEngine
	diagnostics := routing.WithDiagnostics(func(d routing.Diagnostic) {
		re.LogDiagnostic(d)
		if metric != nil {
			metric.IncDiagnostic(d.Kind.String())
		}
	})
	re = routing.NewRoutingEngine(graph, logger, append([]routing.Option{diagnostics}, opts...)...)

	return &Engine{
		routingEngine: re,
		source:        src,
		rtree:         rtree,
	}, nil
}
