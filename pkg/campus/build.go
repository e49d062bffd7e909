package campus

import (
	"fmt"
	"math"

	"github.com/Monocerum/escolar/pkg"
	da "github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/geo"
)

// NewProjection. cropped mercator projection of a width x height map covering the source bounds.
func (s *Source) NewProjection(width, height float64) (*geo.MercatorProjection, error) {
	b, err := s.GetBounds()
	if err != nil {
		return nil, err
	}
	return geo.NewMercatorProjection(width, height, b.LeftLon, b.RightLon, b.BottomLat)
}

// Build materializes the campus graph: every vertex is projected with proj and every edge gets the
// minkowski distance (order 2) between its projected endpoints as cost.
// vulnerability must lie in [0, 3]; an edge referencing an unknown vertex fails with da.ErrVertexNotFound.
// the returned graph already carries its component labels.
func Build(src *Source, proj geo.Projection) (*da.Graph, error) {
	g := da.NewGraphWithSize(len(src.Vertices))

	for _, v := range src.Vertices {
		if math.IsNaN(v.Vulnerability) || v.Vulnerability < pkg.MIN_VULNERABILITY ||
			v.Vulnerability > pkg.IMPASSABLE_VULNERABILITY {
			return nil, fmt.Errorf("%w: vertex %s has vulnerability %v, want [%v, %v]", da.ErrInvalidVulnerability,
				v.ID, v.Vulnerability, pkg.MIN_VULNERABILITY, pkg.IMPASSABLE_VULNERABILITY)
		}

		x, y := proj.Project(v.Lat, v.Lon)
		err := g.AddPlace(v.ID, v.Name, pkg.GetPlaceClass(v.Class), v.Lat, v.Lon, x, y, v.Vulnerability)
		if err != nil {
			return nil, err
		}
	}

	for _, e := range src.Edges {
		a, ok := g.GetVertex(e[0])
		if !ok {
			return nil, fmt.Errorf("%w: edge (%s,%s) references %s", da.ErrVertexNotFound, e[0], e[1], e[0])
		}
		b, ok := g.GetVertex(e[1])
		if !ok {
			return nil, fmt.Errorf("%w: edge (%s,%s) references %s", da.ErrVertexNotFound, e[0], e[1], e[1])
		}

		cost := geo.MinkowskiDistance(a.GetX(), a.GetY(), b.GetX(), b.GetY(), pkg.MINKOWSKI_ORDER)
		if err := g.AddEdge(e[0], e[1], cost); err != nil {
			return nil, err
		}
	}

	g.ConnectedComponents()
	return g, nil
}
