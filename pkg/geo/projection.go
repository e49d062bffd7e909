package geo

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidProjection = errors.New("geo: invalid projection parameters")

// Projection maps geographic coordinates onto the plane the edge costs are measured in.
type Projection interface {
	Project(lat, lon float64) (float64, float64)
}

// MercatorProjection. mercator projection cropped to the campus map area: a width x height canvas
// whose left and right edges are leftLon and rightLon and whose bottom edge is bottomLat.
// y grows downwards, like screen coordinates.
type MercatorProjection struct {
	width, height     float64
	leftLon, rightLon float64
	bottomLat         float64

	mapWidth float64
	offsetY  float64
}

func NewMercatorProjection(width, height, leftLon, rightLon, bottomLat float64) (*MercatorProjection, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas %vx%v", ErrInvalidProjection, width, height)
	}
	if rightLon <= leftLon {
		return nil, fmt.Errorf("%w: right longitude %v must be greater than left longitude %v",
			ErrInvalidProjection, rightLon, leftLon)
	}
	if bottomLat <= -90 || bottomLat >= 90 {
		return nil, fmt.Errorf("%w: bottom latitude %v", ErrInvalidProjection, bottomLat)
	}

	lonSpan := rightLon - leftLon
	mapWidth := ((width / lonSpan) * 360) / (2 * math.Pi)

	return &MercatorProjection{
		width:     width,
		height:    height,
		leftLon:   leftLon,
		rightLon:  rightLon,
		bottomLat: bottomLat,
		mapWidth:  mapWidth,
		offsetY:   (mapWidth / 2) * mercatorY(degToRad(bottomLat)),
	}, nil
}

func mercatorY(latRad float64) float64 {
	sin := math.Sin(latRad)
	return math.Log((1 + sin) / (1 - sin))
}

func (p *MercatorProjection) Project(lat, lon float64) (float64, float64) {
	x := (lon - p.leftLon) * (p.width / (p.rightLon - p.leftLon))
	y := p.height - ((p.mapWidth/2)*mercatorY(degToRad(lat)) - p.offsetY)
	return x, y
}

func (p *MercatorProjection) GetWidth() float64 {
	return p.width
}

func (p *MercatorProjection) GetHeight() float64 {
	return p.height
}
