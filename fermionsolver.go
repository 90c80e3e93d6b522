package qsim

import (
	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"

	"github.com/spinchain/qsim/mat"
)

/*
FermionSolver numerically simulates fermionic systems by exactly
computing the time evolution under unitaries generated by fermionic
Hamiltonians.

When numSpecies > 1 the solver checks for conservation of the particle
number per fermionic species in order to reduce the Hilbert-space
dimension of the simulation.
*/
type FermionSolver struct {
	baseSolver
	numSpecies int
	basis      *FermionicBasis
}

// NewFermionSolver builds a solver for numSpecies fermionic species;
// 1 means a single type of (spinless) fermions, 2 spin-1/2 fermions
// and so on.
func NewFermionSolver(numSpecies int, opts ...SolverOption) *FermionSolver {
	return &FermionSolver{
		baseSolver: newBaseSolver(opts...),
		numSpecies: numSpecies,
	}
}

// Basis is the occupation-number basis fixed by the last
// PreprocessCircuit call.
func (s *FermionSolver) Basis() *FermionicBasis {
	return s.basis
}

// setBasis assigns the simulation basis, checking its dimension
// against the configured ceiling.
func (s *FermionSolver) setBasis(basis *FermionicBasis) error {
	if err := s.setDim(basis.Dimension()); err != nil {
		return err
	}
	s.basis = basis
	return nil
}

// PreprocessCircuit sets up the basis for the simulation by extracting
// the size, particle number and spin conservation from the circuit.
func (s *FermionSolver) PreprocessCircuit(c *Circuit) error {
	state, err := initialFermionicState(c, s.numSpecies)
	if err != nil {
		return err
	}

	particleConservation, spinConservation, err := s.CheckConservations(c)
	if err != nil {
		return err
	}

	basis, err := NewFermionicBasis(state, particleConservation, spinConservation)
	if err != nil {
		return err
	}

	errnie.Info(
		"PreprocessCircuit - %d wires, %d species, basis dimension %d",
		c.NumWires,
		s.numSpecies,
		basis.Dimension(),
	)

	return s.setBasis(basis)
}

// InitialState returns the circuit's initial condition as a column
// vector with a unit amplitude at the basis index of the initial
// occupations.
func (s *FermionSolver) InitialState(c *Circuit) (mat.Vector, error) {
	if s.basis == nil {
		return nil, errors.Wrap(ErrStateMissing,
			"no basis set; preprocess the circuit first")
	}

	state, err := initialFermionicState(c, s.numSpecies)
	if err != nil {
		return nil, err
	}

	index, ok := s.basis.Index(state.OccupationsFlat())
	if !ok {
		return nil, errors.Wrapf(ErrStateMissing,
			"initial occupations %v not found in the basis", state.OccupationsFlat())
	}

	return mat.UnitVector(s.basis.Dimension(), index), nil
}

// EmbedOperator turns a FermionicOp acting on the wires given in qargs
// into an operator acting on the entire register by relabeling each
// term's mode indices through qargs.
func (s *FermionSolver) EmbedOperator(op Generator, numWires int, qargs []int) (Generator, error) {
	fermionicOp, ok := op.(*FermionicOp)
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch,
			"expected FermionicOp; got %T instead", op)
	}

	if fermionicOp.RegisterLength() != len(qargs) {
		return nil, errors.Wrapf(ErrArityMismatch,
			"operator size %d does not match qargs %v of the gate",
			fermionicOp.RegisterLength(), qargs)
	}

	embedded := make([]FermionTerm, len(fermionicOp.terms))
	for t, term := range fermionicOp.terms {
		actions := make([]FermionAction, len(term.Actions))
		for a, action := range term.Actions {
			actions[a] = FermionAction{Kind: action.Kind, Mode: qargs[action.Mode]}
		}
		embedded[t] = FermionTerm{Actions: actions, Coeff: term.Coeff}
	}

	return NewFermionicOp(embedded, numWires)
}

/*
CheckConservations inspects the circuit's gate generators to decide
whether the total particle number is conserved (as many creation as
annihilation operators in every term) and whether it is conserved per
fermionic species.

A global mismatch in any term makes both answers false immediately; a
per-species mismatch clears only spin conservation and checking
continues with the remaining terms.
*/
func (s *FermionSolver) CheckConservations(c *Circuit) (particleConservation, spinConservation bool, err error) {
	particleConservation = true
	spinConservation = true

	operators, err := s.operators(c)
	if err != nil {
		return false, false, err
	}

	for _, op := range operators {
		if op.RegisterLength() != c.NumWires {
			return false, false, errors.Wrapf(ErrShapeMismatch,
				"expected length %d for fermionic operator; received %d",
				c.NumWires, op.RegisterLength())
		}

		for _, term := range op.Terms() {
			creators, annihilators := countActions(term, 0, c.NumWires)
			if creators != annihilators {
				return false, false, nil
			}

			if s.numSpecies > 1 {
				if c.NumWires%s.numSpecies != 0 {
					return false, false, errors.Wrapf(ErrShapeMismatch,
						"the number of wires in the circuit %d is not a multiple of the %d fermionic species number",
						c.NumWires, s.numSpecies)
				}

				sites := c.NumWires / s.numSpecies

				for i := 0; i < s.numSpecies; i++ {
					creators, annihilators := countActions(term, i*sites, (i+1)*sites)
					if creators != annihilators {
						spinConservation = false
						break
					}
				}
			}
		}
	}

	return particleConservation, spinConservation, nil
}

// operators embeds every gate generator into the full register.
func (s *FermionSolver) operators(c *Circuit) ([]*FermionicOp, error) {
	operators := make([]*FermionicOp, 0, len(c.Gates))
	for _, gate := range c.Gates {
		embedded, err := s.EmbedOperator(gate.Generator, c.NumWires, gate.Qargs)
		if err != nil {
			return nil, errors.Wrapf(err, "gate %q", gate.Name)
		}
		operators = append(operators, embedded.(*FermionicOp))
	}
	return operators, nil
}

// OperatorToMat converts a fermionic operator to its sparse matrix
// over the current basis.
func (s *FermionSolver) OperatorToMat(op Generator) (*mat.Sparse, error) {
	fermionicOp, ok := op.(*FermionicOp)
	if !ok {
		return nil, errors.Wrapf(ErrTypeMismatch,
			"expected FermionicOp; got %T instead", op)
	}

	if s.basis == nil {
		return nil, errors.Wrap(ErrStateMissing,
			"no basis set; preprocess the circuit first")
	}

	return fermionicOp.ToMatrix(s.basis)
}

// DrawShots samples shot outcomes from the measurement distribution.
// Each outcome is the binary occupation string of one basis state in
// wire order, e.g. "011000".
func (s *FermionSolver) DrawShots(distribution []float64) ([]string, error) {
	if err := s.checkSampling(len(distribution)); err != nil {
		return nil, err
	}

	outcomes := s.basis.OutcomeStrings()
	memory := make([]string, s.shots)
	for i := range memory {
		memory[i] = outcomes[s.sampleIndex(distribution)]
	}

	return memory, nil
}
