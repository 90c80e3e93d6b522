package qsim

import "github.com/pkg/errors"

// Sentinel errors for every failure class the solvers can surface.
// Call sites wrap these with errors.Wrapf so callers can test with
// errors.Is while the message stays descriptive.
var (
	// ErrDimensionExceeded signals a basis or Hilbert-space dimension
	// above the configured maximum.
	ErrDimensionExceeded = errors.New("dimension exceeds the maximum allowed dimension")

	// ErrTypeMismatch signals an operator of the wrong domain type.
	ErrTypeMismatch = errors.New("operator type does not match the solver domain")

	// ErrArityMismatch signals an operator whose register length does
	// not match the wires it is applied to.
	ErrArityMismatch = errors.New("operator size does not match the target wires")

	// ErrShapeMismatch signals sizes that disagree with the circuit:
	// wire counts not divisible by the species count, operator
	// registers differing from the circuit size, or probability
	// vectors of the wrong length.
	ErrShapeMismatch = errors.New("shape does not match the circuit dimensions")

	// ErrStateMissing signals an initial occupation vector that is
	// absent from the constructed basis.
	ErrStateMissing = errors.New("initial state is not contained in the basis")

	// ErrShotsUnset signals a measurement request on a solver that was
	// built without a shot count.
	ErrShotsUnset = errors.New("the number of shots has to be set before drawing measurements")
)
