package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Monocerum/escolar/pkg/engine"
	"github.com/Monocerum/escolar/pkg/engine/routing"
	"github.com/Monocerum/escolar/pkg/http/usecases"
	"github.com/Monocerum/escolar/pkg/logger"
	"github.com/Monocerum/escolar/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	campusFile  = flag.String("campus", "", "campus file, overrides CAMPUS_FILE")
	origin      = flag.String("origin", "", "origin place id")
	destination = flag.String("destination", "", "destination place id, defaults to EVACUATION_AREA")
	plan        = flag.Bool("plan", false, "print the evacuation plan of every building and exit")
)

// evacuate prints evacuation routes to stdout.
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

	ctx := context.Background()
	e, err := engine.NewEngine(ctx, viper.GetString("CAMPUS_FILE"), viper.GetFloat64("PROJECTION_WIDTH"),
		viper.GetFloat64("PROJECTION_HEIGHT"), logger, nil)
	if err != nil {
		logger.Fatal("failed to load campus", zap.Error(err))
	}
	rs, err := usecases.NewRoutingService(logger, e.GetRoutingEngine(), e.GetSpatialIndex(), nil,
		viper.GetFloat64("SNAP_RADIUS_KM"), viper.GetString("EVACUATION_AREA"), viper.GetInt("EVACUATION_WORKERS"), 0)
	if err != nil {
		logger.Fatal("failed to create routing service", zap.Error(err))
	}

	if *plan {
		entries, err := rs.EvacuationPlan(ctx, *destination)
		if err != nil {
			logger.Fatal("evacuation plan failed", zap.Error(err))
		}
		for _, entry := range entries {
			if entry.Err != nil {
				fmt.Printf("%s: %v\n", entry.Origin, entry.Err)
				continue
			}
			printRoute(entry.Origin, "primary", entry.Routes.Primary)
		}
		return
	}

	if *origin == "" {
		flag.Usage()
		os.Exit(2)
	}
	routes, err := rs.FindRoutes(ctx, *origin, *destination)
	if err != nil {
		logger.Fatal("route search failed", zap.Error(err))
	}
	printRoute(*origin, "primary", routes.Primary)
	printRoute(*origin, "alternative", routes.Alternative)
}

func printRoute(origin, kind string, route *routing.Route) {
	if !route.IsFound() {
		fmt.Printf("%s %s: no route to %s\n", origin, kind, route.GetDestination())
		return
	}
	fmt.Printf("%s %s: %s (cost %.4f, %.1f m)\n", origin, kind, strings.Join(route.GetVertexIDs(), " -> "),
		route.GetCost(), route.GetDistance())
}
