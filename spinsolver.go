package qsim

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/spinchain/qsim/mat"
)

/*
SpinSolver performs numerical simulations of spin systems by exactly
computing the time evolution under unitary operations generated by
exponentiating spin Hamiltonians.

Every wire carries a spin of length S, so a circuit over N wires lives
in a Hilbert space of dimension (2S+1)^N. Spin circuits always start
from the canonical reference configuration of basis index 0 (every
spin in its lowest level), so no basis bookkeeping is needed.
*/
type SpinSolver struct {
	baseSolver
	spin *big.Rat
}

// NewSpinSolver builds a solver for spins of length spin, which must
// be a positive integer or half-odd-integer.
func NewSpinSolver(spin *big.Rat, opts ...SolverOption) (*SpinSolver, error) {
	if err := validateSpin(spin); err != nil {
		return nil, err
	}

	return &SpinSolver{
		baseSolver: newBaseSolver(opts...),
		spin:       spin,
	}, nil
}

// Spin is the spin length S of each wire.
func (s *SpinSolver) Spin() *big.Rat {
	return s.spin
}

// dimension computes (2S+1)^numWires, watching the configured ceiling
// so the power cannot overflow.
func (s *SpinSolver) dimension(numWires int) (int, error) {
	base := levelCount(s.spin)
	dim := 1
	for i := 0; i < numWires; i++ {
		dim *= base
		if dim > s.maxDim {
			return 0, errors.Wrapf(ErrDimensionExceeded,
				"dimension %d^%d exceeds the maximum allowed dimension %d",
				base, numWires, s.maxDim)
		}
	}
	return dim, nil
}

// PreprocessCircuit fixes the Hilbert-space dimension (2S+1)^N for the
// given circuit.
func (s *SpinSolver) PreprocessCircuit(c *Circuit) error {
	dim, err := s.dimension(c.NumWires)
	if err != nil {
		return err
	}
	return s.setDim(dim)
}

// InitialState returns the reference configuration as a column vector:
// a unit amplitude at basis index 0.
func (s *SpinSolver) InitialState(c *Circuit) (mat.Vector, error) {
	dim, err := s.dimension(c.NumWires)
	if err != nil {
		return nil, err
	}
	return mat.UnitVector(dim, 0), nil
}

// EmbedOperator turns a SpinOp acting on the wires given in qargs into
// an operator acting on the entire register by relabeling each
// action's wire index through qargs.
func (s *SpinSolver) EmbedOperator(op Generator, numWires int, qargs []int) (Generator, error) {
	spinOp, ok := op.(*SpinOp)
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch,
			"expected SpinOp; got %T instead", op)
	}

	if spinOp.spin.Cmp(s.spin) != 0 {
		return nil, errors.Wrapf(ErrTypeMismatch,
			"operator spin %s does not match solver spin %s", spinOp.spin, s.spin)
	}

	if spinOp.RegisterLength() != len(qargs) {
		return nil, errors.Wrapf(ErrArityMismatch,
			"operator size %d does not match qargs %v of the gate",
			spinOp.RegisterLength(), qargs)
	}

	embedded := make([]SpinTerm, len(spinOp.terms))
	for t, term := range spinOp.terms {
		actions := make([]SpinAction, len(term.Actions))
		for a, action := range term.Actions {
			action.Index = qargs[action.Index]
			actions[a] = action
		}
		embedded[t] = SpinTerm{Actions: actions, Coeff: term.Coeff}
	}

	return NewSpinOp(embedded, s.spin, numWires)
}

// OperatorToMat converts a spin operator to its sparse matrix.
func (s *SpinSolver) OperatorToMat(op Generator) (*mat.Sparse, error) {
	spinOp, ok := op.(*SpinOp)
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch,
			"expected SpinOp; got %T instead", op)
	}

	return spinOp.ToMatrix()
}

/*
DrawShots samples shot outcomes from the measurement distribution.

Each drawn basis index is decoded into its base-(2S+1) digits across
the register, least significant digit first, and rendered as a
space-delimited string "a1 a2 a3 ..." where each a_i ranges from 0 to
2S. The digit order reflects the little-endian wire convention.
*/
func (s *SpinSolver) DrawShots(distribution []float64) ([]string, error) {
	if err := s.checkSampling(len(distribution)); err != nil {
		return nil, err
	}

	base := levelCount(s.spin)
	numWires := 0
	for dim := 1; dim < len(distribution); numWires++ {
		dim *= base
		if dim > len(distribution) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"the length of the measurement distribution %d is not compatible with the spin length %s of the solver",
				len(distribution), s.spin)
		}
	}

	memory := make([]string, s.shots)
	digits := make([]string, numWires)
	for i := range memory {
		index := s.sampleIndex(distribution)
		for w := 0; w < numWires; w++ {
			digits[w] = strconv.Itoa(index % base)
			index /= base
		}
		memory[i] = strings.Join(digits, " ")
	}

	return memory, nil
}
