package osmparser

type NodeType uint8

const (
	END_NODE NodeType = iota
	BETWEEN_NODE
	JUNCTION_NODE
)

type nodeCoord struct {
	lat float64
	lon float64
}

// place. osm node kept as a campus vertex.
type place struct {
	id            int64
	ref           string
	name          string
	class         string
	vulnerability float64
	coord         nodeCoord
}

const (
	// node tags carrying the evacuation attributes of a place
	VULNERABILITY_TAG = "evacuation:vulnerability"
	CLASS_TAG         = "evacuation:class"
	ID_TAG            = "evacuation:id"
)

var (
	// walkable ways of a campus
	acceptedHighway = map[string]struct{}{
		"footway":       {},
		"path":          {},
		"pedestrian":    {},
		"steps":         {},
		"corridor":      {},
		"cycleway":      {},
		"living_street": {},
		"service":       {},
		"residential":   {},
		"track":         {},
		"unclassified":  {},
		"tertiary":      {},
		"secondary":     {},
		"primary":       {},
	}
)
