package controllers

import (
	"context"

	"github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/engine/routing"
	"github.com/Monocerum/escolar/pkg/http/usecases"
)

type RoutingService interface {
	FindRoutes(ctx context.Context, origin, destination string) (*routing.Routes, error)
	FindRoutesFromCoordinates(ctx context.Context, lat, lon float64, destination string) (string, *routing.Routes, error)
	EvacuationPlan(ctx context.Context, destination string) ([]usecases.EvacuationPlanEntry, error)
	Places(classes ...string) []*datastructure.Vertex
}
