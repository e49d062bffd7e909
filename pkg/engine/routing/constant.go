package routing

import "errors"

// SearchStatus. state of a single search run: INITIALIZED -> EXPLORING -> {FOUND, EXHAUSTED}.
type SearchStatus uint8

const (
	INITIALIZED SearchStatus = iota
	EXPLORING
	FOUND
	EXHAUSTED
	ABORTED
)

func (s SearchStatus) String() string {
	switch s {
	case INITIALIZED:
		return "initialized"
	case EXPLORING:
		return "exploring"
	case FOUND:
		return "found"
	case EXHAUSTED:
		return "exhausted"
	case ABORTED:
		return "aborted"
	default:
		return "unknown"
	}
}

var ErrSearchBudgetExceeded = errors.New("search budget exceeded")
