package usecases

import (
	da "github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/engine/routing"
	"github.com/Monocerum/escolar/pkg/spatialindex"
)

type RoutingEngine interface {
	GetGraph() *da.Graph
	FindRoutes(origin, destination string) (*routing.Routes, error)
}

type SpatialIndex interface {
	NearestVertex(lat, lon, radius float64) (spatialindex.Candidate, bool)
}
