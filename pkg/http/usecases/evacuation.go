package usecases

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Monocerum/escolar/pkg"
	"github.com/Monocerum/escolar/pkg/concurrent"
	da "github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/engine/routing"
	"github.com/Monocerum/escolar/pkg/metrics"
	"github.com/Monocerum/escolar/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrNoNearbyVertex = errors.New("no campus vertex near the given coordinates")
	ErrEmptyOrigin    = errors.New("empty origin")
)

// EvacuationPlanEntry. routes of one building or exit to the evacuation area. Err is set when the search
// itself failed, an unreachable evacuation area only leaves both routes empty.
type EvacuationPlanEntry struct {
	Origin string
	Routes *routing.Routes
	Err    error
}

// EvacuationPlan routes every building and exit of the campus to destination (the evacuation area when
// empty) with a pool of workers. entries are sorted by origin id.
func (rs *RoutingService) EvacuationPlan(ctx context.Context, destination string) ([]EvacuationPlanEntry, error) {
	if destination == "" {
		destination = rs.evacuationArea
	}
	graph := rs.engine.GetGraph()
	if !graph.HasVertex(destination) {
		return nil, util.WrapErrorf(da.ErrVertexNotFound, util.ErrNotFound, "unknown evacuation area %s", destination)
	}

	origins := make([]string, 0)
	for _, v := range graph.GetVerticesByClass(pkg.BUILDING, pkg.EXIT) {
		if v.GetID() != destination {
			origins = append(origins, v.GetID())
		}
	}

	start := time.Now()
	entries, err := concurrent.Run(ctx, rs.numWorkers, origins,
		func(ctx context.Context, origin string) EvacuationPlanEntry {
			routes, err := rs.FindRoutes(ctx, origin, destination)
			return EvacuationPlanEntry{Origin: origin, Routes: routes, Err: err}
		})
	if err != nil {
		rs.observeQuery("evacuation_plan", metrics.RESULT_ERROR, start)
		return nil, err
	}
	rs.observeQuery("evacuation_plan", metrics.RESULT_FOUND, start)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Origin < entries[j].Origin
	})

	unreachable := 0
	for _, e := range entries {
		if e.Err == nil && !e.Routes.Primary.IsFound() {
			unreachable++
		}
	}
	rs.log.Info("evacuation plan computed", zap.String("destination", destination),
		zap.Int("origins", len(entries)), zap.Int("unreachable", unreachable),
		zap.Duration("took", time.Since(start)))
	return entries, nil
}

func placeClasses(classes []string) []pkg.PlaceClass {
	pcs := make([]pkg.PlaceClass, 0, len(classes))
	for _, c := range classes {
		pcs = append(pcs, pkg.GetPlaceClass(c))
	}
	return pcs
}
