package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/Monocerum/escolar/pkg/engine"
	"github.com/Monocerum/escolar/pkg/engine/routing"
	"github.com/Monocerum/escolar/pkg/http"
	"github.com/Monocerum/escolar/pkg/http/usecases"
	"github.com/Monocerum/escolar/pkg/logger"
	"github.com/Monocerum/escolar/pkg/metrics"
	"github.com/Monocerum/escolar/pkg/util"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	campusFile   = flag.String("campus", "", "campus file (json, hcl, bzip2 snapshot, .osm or .osm.pbf), overrides CAMPUS_FILE")
	useRateLimit = flag.Bool("rate_limit", true, "limit requests to RATE_LIMIT_RPS")
)

func main() {
	flag.Parse()
	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	if *campusFile != "" {
		viper.Set("CAMPUS_FILE", *campusFile)
	}

	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck // ignore

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metric := metrics.NewMetric(prometheus.DefaultRegisterer)

	evacuationEngine, err := engine.NewEngine(ctx, viper.GetString("CAMPUS_FILE"),
		viper.GetFloat64("PROJECTION_WIDTH"), viper.GetFloat64("PROJECTION_HEIGHT"), logger, metric,
		routing.WithMaxSettledNodes(viper.GetInt("MAX_SETTLED_NODES")))
	if err != nil {
		logger.Fatal("failed to load campus", zap.Error(err))
	}

	routingService, err := usecases.NewRoutingService(logger, evacuationEngine.GetRoutingEngine(),
		evacuationEngine.GetSpatialIndex(), metric, viper.GetFloat64("SNAP_RADIUS_KM"),
		viper.GetString("EVACUATION_AREA"), viper.GetInt("EVACUATION_WORKERS"), viper.GetInt("ROUTE_CACHE_SIZE"))
	if err != nil {
		logger.Fatal("failed to create routing service", zap.Error(err))
	}

	api := http.NewServer(logger)
	err = api.Use(ctx, *useRateLimit, routingService, prometheus.DefaultGatherer)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Escolar server failed", zap.Error(err))
		return
	}

	logger.Info("Escolar Evacuation Routing Engine Server Stopped")
}
