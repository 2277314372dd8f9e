package fwtypes

// Ordering selects the row order of the Walsh matrix a transform produces.
type Ordering uint32

const (
	// OrderSequency sorts Walsh functions by number of sign changes
	// (Manz ordering).
	OrderSequency Ordering = iota
	// OrderHadamard follows the recursive Hadamard construction
	// (natural or dyadic ordering).
	OrderHadamard
)

// String returns a human-readable name for the ordering.
func (o Ordering) String() string {
	switch o {
	case OrderSequency:
		return "sequency"
	case OrderHadamard:
		return "hadamard"
	default:
		return "unknown"
	}
}

// Valid reports whether o is a known ordering.
func (o Ordering) Valid() bool {
	return o == OrderSequency || o == OrderHadamard
}

// ParseOrdering maps a name produced by String back to an Ordering.
func ParseOrdering(name string) (Ordering, bool) {
	switch name {
	case "sequency", "walsh", "manz":
		return OrderSequency, true
	case "hadamard", "natural", "dyadic":
		return OrderHadamard, true
	default:
		return 0, false
	}
}
