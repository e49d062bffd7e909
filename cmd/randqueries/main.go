package main

import (
	"context"
	"flag"
	"sort"
	"time"

	"github.com/Monocerum/escolar/pkg/concurrent"
	"github.com/Monocerum/escolar/pkg/engine"
	"github.com/Monocerum/escolar/pkg/engine/routing"
	log "github.com/Monocerum/escolar/pkg/logger"
	"github.com/Monocerum/escolar/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	numQueries = flag.Int("n", 10000, "number of random origin/destination pairs")
	seed       = flag.Uint64("seed", 42, "random seed")
	workers    = flag.Int("workers", 4, "number of query workers")
)

type query struct {
	origin      string
	destination string
	connected   bool
}

type queryResult struct {
	query
	found bool
	took  time.Duration
	err   error
}

// randqueries runs random route queries over the campus and checks every answer against the connected
// components of the graph.
func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	ctx := context.Background()
	e, err := engine.NewEngine(ctx, viper.GetString("CAMPUS_FILE"), viper.GetFloat64("PROJECTION_WIDTH"),
		viper.GetFloat64("PROJECTION_HEIGHT"), logger, nil,
		routing.WithDiagnostics(func(routing.Diagnostic) {}))
	if err != nil {
		panic(err)
	}
	g := e.GetGraph()
	ids := g.GetVertexIDs()

	r := rand.New(rand.NewSource(*seed))
	queries := make([]query, 0, *numQueries)
	for i := 0; i < *numQueries; i++ {
		s, t := ids[r.Intn(len(ids))], ids[r.Intn(len(ids))]
		queries = append(queries, query{origin: s, destination: t, connected: g.VerticesAreConnected(s, t)})
	}

	re := e.GetRoutingEngine()
	start := time.Now()
	results, err := concurrent.Run(ctx, *workers, queries, func(ctx context.Context, q query) queryResult {
		qStart := time.Now()
		routes, err := re.FindRoutes(q.origin, q.destination)
		res := queryResult{query: q, took: time.Since(qStart), err: err}
		if err == nil {
			res.found = routes.Primary.IsFound()
		}
		return res
	})
	if err != nil {
		panic(err)
	}
	total := time.Since(start)

	latencies := make([]time.Duration, 0, len(results))
	found, mismatch := 0, 0
	for _, res := range results {
		if res.err != nil {
			logger.Error("query failed", zap.String("origin", res.origin), zap.String("destination", res.destination),
				zap.Error(res.err))
			continue
		}
		latencies = append(latencies, res.took)
		if res.found {
			found++
		}
		// impassable vertices can cut a connected pair apart, never the other way round
		if res.found && !res.connected {
			mismatch++
			logger.Error("route found between disconnected places", zap.String("origin", res.origin),
				zap.String("destination", res.destination))
		}
	}
	if len(latencies) == 0 {
		logger.Warn("no successful queries")
		return
	}

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}

	logger.Info("random queries done",
		zap.Int("queries", len(queries)),
		zap.Int("found", found),
		zap.Int("mismatch", mismatch),
		zap.Duration("total", total),
		zap.Duration("mean", sum/time.Duration(len(latencies))),
		zap.Duration("p50", latencies[len(latencies)/2]),
		zap.Duration("p99", latencies[len(latencies)*99/100]),
	)
}
