package controllers

import (
	"github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/engine/routing"
	"github.com/Monocerum/escolar/pkg/geo"
	"github.com/Monocerum/escolar/pkg/http/usecases"
	"github.com/Monocerum/escolar/pkg/util"
)

type computeRoutesRequest struct {
	Origin      string `json:"origin" validate:"required,max=64"`
	Destination string `json:"destination" validate:"omitempty,max=64"`
}

// lat/lon 0 is a valid coordinate, so no required tag on them.
type coordinatesRoutesRequest struct {
	Lat         float64 `json:"lat" validate:"min=-90,max=90"`
	Lon         float64 `json:"lon" validate:"min=-180,max=180"`
	Destination string  `json:"destination" validate:"omitempty,max=64"`
}

type evacuationPlanRequest struct {
	Destination string `json:"destination" validate:"omitempty,max=64"`
}

type placesRequest struct {
	Classes []string `json:"class" validate:"dive,oneof=bn en dn gn in lin min"`
}

type coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type routeResponse struct {
	Found           bool         `json:"found"`
	Vertices        []string     `json:"vertices"`
	Path            []coordinate `json:"path"`
	Polyline        string       `json:"polyline"`
	Cost            float64      `json:"cost"`
	Distance        float64      `json:"distance"`
	NumSettledNodes int          `json:"num_settled_nodes"`
}

func NewRouteResponse(route *routing.Route) routeResponse {
	path := make([]coordinate, 0, len(route.GetPath()))
	for _, c := range route.GetPath() {
		path = append(path, coordinate{Lat: c.Lat, Lon: c.Lon})
	}
	vertices := route.GetVertexIDs()
	if vertices == nil {
		vertices = []string{}
	}
	return routeResponse{
		Found:           route.IsFound(),
		Vertices:        vertices,
		Path:            path,
		Polyline:        geo.PolylineFromCoords(route.GetPath()),
		Cost:            util.RoundFloat(route.GetCost(), 4),
		Distance:        util.RoundFloat(route.GetDistance(), 2),
		NumSettledNodes: route.GetNumSettledNodes(),
	}
}

type routesResponse struct {
	Origin      string        `json:"origin"`
	Destination string        `json:"destination"`
	Primary     routeResponse `json:"primary"`
	Alternative routeResponse `json:"alternative"`
}

func NewRoutesResponse(routes *routing.Routes) routesResponse {
	return routesResponse{
		Origin:      routes.Primary.GetOrigin(),
		Destination: routes.Primary.GetDestination(),
		Primary:     NewRouteResponse(routes.Primary),
		Alternative: NewRouteResponse(routes.Alternative),
	}
}

type evacuationPlanEntryResponse struct {
	Origin string          `json:"origin"`
	Routes *routesResponse `json:"routes,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func NewEvacuationPlanResponse(entries []usecases.EvacuationPlanEntry) []evacuationPlanEntryResponse {
	resp := make([]evacuationPlanEntryResponse, 0, len(entries))
	for _, e := range entries {
		entry := evacuationPlanEntryResponse{Origin: e.Origin}
		if e.Err != nil {
			entry.Error = e.Err.Error()
		} else {
			routes := NewRoutesResponse(e.Routes)
			entry.Routes = &routes
		}
		resp = append(resp, entry)
	}
	return resp
}

type placeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Class         string  `json:"class"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Vulnerability float64 `json:"vulnerability"`
}

func NewPlacesResponse(vs []*datastructure.Vertex) []placeResponse {
	resp := make([]placeResponse, 0, len(vs))
	for _, v := range vs {
		resp = append(resp, placeResponse{
			ID:            v.GetID(),
			Name:          v.GetName(),
			Class:         v.GetClass().String(),
			Lat:           v.GetLat(),
			Lon:           v.GetLon(),
			Vulnerability: v.GetVulnerability(),
		})
	}
	return resp
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
