package routing

import (
	"github.com/Monocerum/escolar/pkg"
	da "github.com/Monocerum/escolar/pkg/datastructure"
	"github.com/Monocerum/escolar/pkg/geo"
)

// Heuristic. estimated remaining cost from node to destination: the planar euclidean distance plus the
// vulnerability penalty of node itself.
// it is not admissible: node's own penalty was already paid when node was entered, so h can exceed the true
// remaining cost (it always does at the destination when its vulnerability is > 0). searches report it through
// HEURISTIC_NOT_ADMISSIBLE diagnostics instead of correcting it.
func Heuristic(node, destination *da.Vertex) float64 {
	distance := geo.EuclideanDistance(node.GetX(), node.GetY(), destination.GetX(), destination.GetY())
	return distance*pkg.DISTANCE_WEIGHT + node.GetVulnerability()*pkg.VULNERABILITY_WEIGHT
}

// traversalCost. cost of entering adj over an edge of length edgeCost.
func traversalCost(edgeCost float64, adj *da.Vertex, avoided bool) float64 {
	cost := edgeCost + adj.GetVulnerability()*pkg.VULNERABILITY_WEIGHT
	if avoided {
		cost += pkg.AVOIDANCE_PENALTY
	}
	return cost
}
