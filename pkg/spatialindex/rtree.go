package spatialindex

import (
	"math"
	"sort"

	da "github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[string]
}

// Candidate. vertex near a query point, dist in meter.
type Candidate struct {
	id   string
	dist float64
}

func (c Candidate) GetID() string {
	return c.id
}

func (c Candidate) GetDistance() float64 {
	return c.dist
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[string]
	return &Rtree{
		tr: &tr,
	}
}

// Build. one point leaf per campus vertex, keyed by (lon, lat).
func (rt *Rtree) Build(graph *da.Graph, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")
	graph.ForVertices(func(v *da.Vertex) {
		p := [2]float64{v.GetLon(), v.GetLat()}
		rt.tr.Insert(p, p, v.GetID())
	})
	log.Info("R-tree spatial index built.", zap.Int("vertices", rt.tr.Len()))
}

func (rt *Rtree) Len() int {
	return rt.tr.Len()
}

// SearchWithinRadius search for all vertices within radius (in km) from the query point (qLat, qLon),
// nearest first.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []Candidate {
	// corners of the square circumscribing the search circle
	diagonal := radius * math.Sqrt2
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, diagonal)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, diagonal)

	q := geo.NewCoordinate(qLat, qLon)
	radiusMeter := radius * 1000

	results := make([]Candidate, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, id string) bool {
			dist := geo.GreatCircleDistance(q, geo.NewCoordinate(min[1], min[0]))
			if dist <= radiusMeter {
				results = append(results, Candidate{id: id, dist: dist})
			}
			return true
		})

	sort.Slice(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].id < results[j].id
		}
		return results[i].dist < results[j].dist
	})
	return results
}

// NearestVertex. closest vertex within radius (in km), false when there is none.
func (rt *Rtree) NearestVertex(qLat, qLon, radius float64) (Candidate, bool) {
	results := rt.SearchWithinRadius(qLat, qLon, radius)
	if len(results) == 0 {
		return Candidate{}, false
	}
	return results[0], true
}
