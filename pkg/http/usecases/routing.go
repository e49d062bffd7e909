package usecases

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	da "github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/engine/routing"
	"github.com/Monocerum/escolar/pkg/metrics"
	"github.com/Monocerum/escolar/pkg/util"
	"go.uber.org/zap"
)

type routeKey struct {
	origin      string
	destination string
}

type RoutingService struct {
	log            *zap.Logger
	engine         RoutingEngine
	spatialIndex   SpatialIndex
	metric         *metrics.Metric
	cache          *lru.Cache[routeKey, *routing.Routes]
	searchRadius   float64
	evacuationArea string
	numWorkers     int
}

// NewRoutingService. searchRadius in km, cacheSize <= 0 disables the route cache. metric may be nil.
func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialIndex SpatialIndex, metric *metrics.Metric,
	searchRadius float64, evacuationArea string, numWorkers, cacheSize int) (*RoutingService, error) {
	rs := &RoutingService{
		log:            log,
		engine:         engine,
		spatialIndex:   spatialIndex,
		metric:         metric,
		searchRadius:   searchRadius,
		evacuationArea: evacuationArea,
		numWorkers:     numWorkers,
	}
	if cacheSize > 0 {
		cache, err := lru.New[routeKey, *routing.Routes](cacheSize)
		if err != nil {
			return nil, err
		}
		rs.cache = cache
	}
	return rs, nil
}

func (rs *RoutingService) GetEvacuationArea() string {
	return rs.evacuationArea
}

// FindRoutes. primary and alternative route from origin to destination, an empty destination means the
// evacuation area. an unreachable destination is not an error, both routes come back empty.
func (rs *RoutingService) FindRoutes(ctx context.Context, origin, destination string) (*routing.Routes, error) {
	if origin == "" {
		return nil, util.WrapErrorf(ErrEmptyOrigin, util.ErrBadParamInput, "origin is required")
	}
	if destination == "" {
		destination = rs.evacuationArea
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := routeKey{origin: origin, destination: destination}
	if rs.cache != nil {
		routes, ok := rs.cache.Get(key)
		rs.observeCache(ok)
		if ok {
			return routes, nil
		}
	}

	start := time.Now()
	routes, err := rs.engine.FindRoutes(origin, destination)
	if err != nil {
		rs.observeQuery("routes", metrics.RESULT_ERROR, start)
		return nil, rs.wrapSearchError(err, origin, destination)
	}

	if routes.Primary.IsFound() {
		rs.observeQuery("routes", metrics.RESULT_FOUND, start)
	} else {
		rs.observeQuery("routes", metrics.RESULT_NOT_FOUND, start)
	}
	if rs.metric != nil {
		rs.metric.ObserveSettledNodes("primary", routes.Primary.GetNumSettledNodes())
		rs.metric.ObserveSettledNodes("alternative", routes.Alternative.GetNumSettledNodes())
	}

	if rs.cache != nil {
		rs.cache.Add(key, routes)
	}
	return routes, nil
}

// FindRoutesFromCoordinates snaps (lat, lon) to the nearest campus vertex within the search radius and
// routes from there. returns the id of the snapped origin.
func (rs *RoutingService) FindRoutesFromCoordinates(ctx context.Context, lat, lon float64,
	destination string) (string, *routing.Routes, error) {
	candidate, ok := rs.spatialIndex.NearestVertex(lat, lon, rs.searchRadius)
	if !ok {
		return "", nil, util.WrapErrorf(ErrNoNearbyVertex, util.ErrNotFound,
			"no campus place within %.0f m of %f,%f", rs.searchRadius*1000, lat, lon)
	}
	rs.log.Debug("snapped origin", zap.Float64("lat", lat), zap.Float64("lon", lon),
		zap.String("vertex", candidate.GetID()), zap.Float64("distance", candidate.GetDistance()))

	routes, err := rs.FindRoutes(ctx, candidate.GetID(), destination)
	if err != nil {
		return "", nil, err
	}
	return candidate.GetID(), routes, nil
}

// Places. campus vertices of the given classes in insertion order, every vertex when no class is given.
func (rs *RoutingService) Places(classes ...string) []*da.Vertex {
	graph := rs.engine.GetGraph()
	if len(classes) == 0 {
		places := make([]*da.Vertex, 0, graph.NumberOfVertices())
		graph.ForVertices(func(v *da.Vertex) {
			places = append(places, v)
		})
		return places
	}
	return graph.GetVerticesByClass(placeClasses(classes)...)
}

func (rs *RoutingService) wrapSearchError(err error, origin, destination string) error {
	switch {
	case errors.Is(err, da.ErrVertexNotFound):
		return util.WrapErrorf(err, util.ErrNotFound, "unknown place in route %s -> %s", origin, destination)
	case errors.Is(err, routing.ErrSearchBudgetExceeded):
		return util.WrapErrorf(err, util.ErrInternalServerError, "route search %s -> %s gave up", origin, destination)
	default:
		return util.WrapErrorf(err, util.ErrInternalServerError, "%s", util.MessageInternalServerError)
	}
}

func (rs *RoutingService) observeQuery(kind, result string, start time.Time) {
	if rs.metric != nil {
		rs.metric.ObserveQuery(kind, result, time.Since(start))
	}
}

func (rs *RoutingService) observeCache(hit bool) {
	if rs.metric != nil {
		rs.metric.IncCache(hit)
	}
}
