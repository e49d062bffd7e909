package routing

type DiagnosticKind uint8

const (
	// HEURISTIC_NOT_ADMISSIBLE. the heuristic of a vertex on the found path exceeds the cost that path still
	// had to pay from that vertex.
	HEURISTIC_NOT_ADMISSIBLE DiagnosticKind = iota
	// DANGLING_PARENT. path reconstruction met a parent that is not a vertex of the graph; the path was truncated.
	DANGLING_PARENT
)

func (k DiagnosticKind) String() string {
	switch k {
	case HEURISTIC_NOT_ADMISSIBLE:
		return "heuristic_not_admissible"
	case DANGLING_PARENT:
		return "dangling_parent"
	default:
		return "unknown"
	}
}

type Diagnostic struct {
	Kind        DiagnosticKind
	Origin      string
	Destination string
	Vertex      string
	Heuristic   float64 // HEURISTIC_NOT_ADMISSIBLE only
	Remaining   float64 // HEURISTIC_NOT_ADMISSIBLE only
}

// DiagnosticFunc receives diagnostics while a search runs. it is called synchronously from the search goroutine.
type DiagnosticFunc func(d Diagnostic)
