package algofwt

import (
	"fmt"

	"github.com/cwbudde/algo-fwt/internal/fwtypes"
)

// Number is the element type constraint of the transforms: any integer or
// floating-point type. Integer arithmetic wraps on overflow.
// The canonical definition is in internal/fwtypes.
type Number = fwtypes.Number

// Ordering selects sequency or Hadamard ordering of the output coefficients.
type Ordering = fwtypes.Ordering

const (
	// OrderSequency orders coefficients by number of sign changes of the
	// corresponding Walsh function.
	OrderSequency = fwtypes.OrderSequency
	// OrderHadamard orders coefficients as the rows of the naturally
	// constructed Hadamard matrix.
	OrderHadamard = fwtypes.OrderHadamard
)

// ParseOrdering returns the Ordering for a name such as "sequency" or
// "hadamard".
func ParseOrdering(name string) (Ordering, error) {
	o, ok := fwtypes.ParseOrdering(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOrdering, name)
	}

	return o, nil
}
