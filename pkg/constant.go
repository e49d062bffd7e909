package pkg

// enum of campus place classes, taken from the marker legend of the campus map
type PlaceClass string

const (
	BUILDING           PlaceClass = "bn"
	EXIT               PlaceClass = "en"
	EVACUATION_AREA    PlaceClass = "dn"
	GATE               PlaceClass = "gn"
	INTERSECTION       PlaceClass = "in"
	LANE_INTERSECTION  PlaceClass = "lin"
	MINOR_INTERSECTION PlaceClass = "min"
	UNKNOWN_PLACE      PlaceClass = ""
)

const (
	DISTANCE_WEIGHT          = 1.0
	VULNERABILITY_WEIGHT     = 10.0
	AVOIDANCE_PENALTY        = 100.0
	MINKOWSKI_ORDER          = 2.0
	IMPASSABLE_VULNERABILITY = 3.0
	MIN_VULNERABILITY        = 0.0

	DEFAULT_EVACUATION_AREA = "Oval"
)

func GetPlaceClass(class string) PlaceClass {
	switch class {
	case "bn":
		return BUILDING
	case "en":
		return EXIT
	case "dn":
		return EVACUATION_AREA
	case "gn":
		return GATE
	case "in":
		return INTERSECTION
	case "lin":
		return LANE_INTERSECTION
	case "min":
		return MINOR_INTERSECTION
	default:
		return PlaceClass(class)
	}
}

func (c PlaceClass) String() string {
	switch c {
	case BUILDING:
		return "building"
	case EXIT:
		return "exit"
	case EVACUATION_AREA:
		return "evacuation_area"
	case GATE:
		return "gate"
	case INTERSECTION:
		return "intersection"
	case LANE_INTERSECTION:
		return "lane_intersection"
	case MINOR_INTERSECTION:
		return "minor_intersection"
	default:
		return "unknown"
	}
}
