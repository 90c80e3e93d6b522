package qsim

import (
	"math"
	"math/big"

	"github.com/pkg/errors"

	"github.com/spinchain/qsim/mat"
)

// SpinAxis labels the spin operator component of an action.
type SpinAxis int

const (
	SpinX SpinAxis = iota
	SpinY
	SpinZ
)

func (a SpinAxis) String() string {
	switch a {
	case SpinX:
		return "X"
	case SpinY:
		return "Y"
	case SpinZ:
		return "Z"
	}
	return "?"
}

// SpinAction is one spin operator component raised to a power, acting
// on a single wire. A zero Power is normalized to 1 at construction.
type SpinAction struct {
	Axis  SpinAxis
	Index int
	Power int
}

// SpinTerm is an ordered product of spin actions with a complex
// coefficient.
type SpinTerm struct {
	Actions []SpinAction
	Coeff   complex128
}

// SpinOp is a sum of spin terms over a register of numSpins spins,
// each of length spin.
type SpinOp struct {
	terms    []SpinTerm
	spin     *big.Rat
	numSpins int
}

// NewSpinOp builds a spin operator, validating the spin length and the
// action indices.
func NewSpinOp(terms []SpinTerm, spin *big.Rat, numSpins int) (*SpinOp, error) {
	if err := validateSpin(spin); err != nil {
		return nil, err
	}

	normalized := make([]SpinTerm, len(terms))
	for t, term := range terms {
		actions := make([]SpinAction, len(term.Actions))
		for a, action := range term.Actions {
			if action.Index < 0 || action.Index >= numSpins {
				return nil, errors.Wrapf(ErrShapeMismatch,
					"spin index %d outside register of length %d", action.Index, numSpins)
			}
			if action.Power < 0 {
				return nil, errors.Wrapf(ErrShapeMismatch,
					"negative power %d on spin action %s_%d", action.Power, action.Axis, action.Index)
			}
			if action.Power == 0 {
				action.Power = 1
			}
			actions[a] = action
		}
		normalized[t] = SpinTerm{Actions: actions, Coeff: term.Coeff}
	}

	return &SpinOp{terms: normalized, spin: spin, numSpins: numSpins}, nil
}

// validateSpin checks that spin is a positive integer or half-odd-integer.
func validateSpin(spin *big.Rat) error {
	if spin.Sign() <= 0 || !spin.Denom().IsInt64() || (spin.Denom().Int64() != 1 && spin.Denom().Int64() != 2) {
		return errors.Wrapf(ErrShapeMismatch,
			"spin must be a positive half-integer (integer or half-odd-integer), not %s", spin)
	}
	return nil
}

// levelCount is the per-wire level count 2S+1.
func levelCount(spin *big.Rat) int {
	d := new(big.Rat).Add(new(big.Rat).Mul(big.NewRat(2, 1), spin), big.NewRat(1, 1))
	return int(d.Num().Int64() / d.Denom().Int64())
}

func (op *SpinOp) RegisterLength() int {
	return op.numSpins
}

// Spin is the spin length S of each wire.
func (op *SpinOp) Spin() *big.Rat {
	return op.spin
}

// Terms returns the operator's terms. The slice is shared; callers
// must not mutate it.
func (op *SpinOp) Terms() []SpinTerm {
	return op.terms
}

/*
ToMatrix computes the dense-in-structure matrix of the operator over
the full register.

Levels are ordered so that level 0 is the lowest weight state m = -S;
wire 0 is the fastest-varying index, contributing level*d^0 to the
basis index (d = 2S+1). This is the same convention the spin solver's
shot decoding uses.
*/
func (op *SpinOp) ToMatrix() (*mat.Sparse, error) {
	d := levelCount(op.spin)
	dim := intPow(d, op.numSpins)
	result := mat.Zeros(dim, dim)

	for _, term := range op.terms {
		// Collapse the term's actions into one matrix per wire.
		site := make([]*mat.Sparse, op.numSpins)
		for _, action := range term.Actions {
			component := spinMatrix(action.Axis, op.spin).Pow(action.Power)
			if site[action.Index] == nil {
				site[action.Index] = component
			} else {
				site[action.Index] = site[action.Index].Mul(component)
			}
		}

		full := mat.Identity(1)
		for w := op.numSpins - 1; w >= 0; w-- {
			factor := site[w]
			if factor == nil {
				factor = mat.Identity(d)
			}
			full = mat.Kron(full, factor)
		}

		result = result.AddMat(full.Scale(term.Coeff))
	}

	return result, nil
}

// intPow computes base^exp for non-negative exp.
func intPow(base, exp int) int {
	out := 1
	for i := 0; i < exp; i++ {
		out *= base
	}
	return out
}

// spinMatrix builds the single-site spin-S matrix for one axis from
// the ladder operators S+ and S-.
func spinMatrix(axis SpinAxis, spin *big.Rat) *mat.Sparse {
	d := levelCount(spin)
	s, _ := spin.Float64()

	raise := mat.Zeros(d, d)
	lower := mat.Zeros(d, d)
	for level := 0; level < d-1; level++ {
		m := float64(level) - s
		v := complex(math.Sqrt(s*(s+1)-m*(m+1)), 0)
		raise.Set(level+1, level, v)
		lower.Set(level, level+1, v)
	}

	switch axis {
	case SpinX:
		return raise.AddMat(lower).Scale(0.5)
	case SpinY:
		return raise.AddMat(lower.Scale(-1)).Scale(complex(0, -0.5))
	default:
		z := mat.Zeros(d, d)
		for level := 0; level < d; level++ {
			z.Set(level, level, complex(float64(level)-s, 0))
		}
		return z
	}
}
