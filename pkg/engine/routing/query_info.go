package routing

import "math"

// VertexInfo. search label of a vertex, owned by one search run.
type VertexInfo struct {
	gScore    float64
	hScore    float64
	fScore    float64
	parent    string
	hasParent bool
}

func NewVertexInfo() *VertexInfo {
	return &VertexInfo{
		gScore: math.Inf(1),
		hScore: 0,
		fScore: math.Inf(1),
	}
}

func (vi *VertexInfo) GetGScore() float64 {
	return vi.gScore
}

func (vi *VertexInfo) GetHScore() float64 {
	return vi.hScore
}

func (vi *VertexInfo) GetFScore() float64 {
	return vi.fScore
}

// GetParent. predecessor on the best known path, false when the vertex has none (the origin, or not reached).
func (vi *VertexInfo) GetParent() (string, bool) {
	return vi.parent, vi.hasParent
}

func (vi *VertexInfo) update(parent string, gScore, hScore float64) {
	vi.parent = parent
	vi.hasParent = true
	vi.gScore = gScore
	vi.hScore = hScore
	vi.fScore = gScore + hScore
}
