package http

import (
	"context"

	http_router "github.com/Monocerum/escolar/pkg/http/router"
	"github.com/Monocerum/escolar/pkg/http/router/controllers"
	http_server "github.com/Monocerum/escolar/pkg/http/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use runs the evacuation API and blocks until ctx is canceled or the server stops.
func (s *Server) Use(
	ctx context.Context,

	useRateLimit bool,
	routingService controllers.RoutingService,
	gatherer prometheus.Gatherer,
) error {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}

	server := http_router.NewAPI(s.Log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, config, useRateLimit, routingService, gatherer)
	})

	return g.Wait()
}
