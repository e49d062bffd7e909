package geo

import (
	"github.com/golang/geo/s2"
)

const earthRadiusMeter = earthRadiusKM * 1000

// GreatCircleDistance. distance between two coordinates on the sphere, in meter.
func GreatCircleDistance(a, b Coordinate) float64 {
	aLL := s2.LatLngFromDegrees(a.Lat, a.Lon)
	bLL := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return aLL.Distance(bLL).Radians() * earthRadiusMeter
}

// PathLength. length of a polyline in meter.
func PathLength(coords []Coordinate) float64 {
	if len(coords) < 2 {
		return 0
	}
	points := make([]s2.Point, 0, len(coords))
	for _, c := range coords {
		points = append(points, s2.PointFromLatLng(s2.LatLngFromDegrees(c.Lat, c.Lon)))
	}
	pl := s2.Polyline(points)
	return pl.Length().Radians() * earthRadiusMeter
}
