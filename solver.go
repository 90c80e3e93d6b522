package qsim

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/theapemachine/errnie"

	"github.com/spinchain/qsim/mat"
)

/*
CircuitSolver is the contract shared by the fermionic and spin solvers.

A solver holds exactly one circuit's basis and dimension at a time:
PreprocessCircuit must run before any of the other per-circuit
operations, and preprocessing a new circuit replaces the previous
state wholesale.
*/
type CircuitSolver interface {
	// PreprocessCircuit computes and stores the Hilbert-space
	// dimension (and, for fermions, the basis) needed to simulate the
	// circuit.
	PreprocessCircuit(c *Circuit) error

	// InitialState returns the circuit's initial condition as a column
	// vector with a single unit amplitude.
	InitialState(c *Circuit) (mat.Vector, error)

	// EmbedOperator lifts an operator acting on the wires in qargs
	// into an operator on the full register of numWires wires.
	EmbedOperator(op Generator, numWires int, qargs []int) (Generator, error)

	// OperatorToMat converts an embedded operator into its sparse
	// matrix representation over the current basis.
	OperatorToMat(op Generator) (*mat.Sparse, error)

	// DrawShots samples shot outcomes from a measurement distribution
	// and decodes them into outcome strings.
	DrawShots(distribution []float64) ([]string, error)

	// Dim is the Hilbert-space dimension fixed by PreprocessCircuit.
	Dim() int

	// Shots is the configured measurement shot count; zero means
	// measurements are disabled.
	Shots() int
}

// baseSolver carries the state both variants share: the configured
// limits, the current dimension and the solver-held sampling RNG,
// seeded once at construction.
type baseSolver struct {
	shots  int
	maxDim int
	dim    int
	rng    *rand.Rand
}

func newBaseSolver(opts ...SolverOption) baseSolver {
	cfg := NewConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return baseSolver{
		shots:  cfg.Shots,
		maxDim: cfg.MaxDimension,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (b *baseSolver) Dim() int {
	return b.dim
}

func (b *baseSolver) Shots() int {
	return b.shots
}

// setDim assigns the current dimension, enforcing the ceiling before
// any matrix of that size can be allocated.
func (b *baseSolver) setDim(dim int) error {
	if dim > b.maxDim {
		return errors.Wrapf(ErrDimensionExceeded,
			"dimension %d exceeds the maximum allowed dimension %d", dim, b.maxDim)
	}
	b.dim = dim
	return nil
}

// checkSampling validates the preconditions shared by both DrawShots
// implementations.
func (b *baseSolver) checkSampling(measDim int) error {
	if measDim != b.dim {
		return errors.Wrapf(ErrShapeMismatch,
			"dimension of the measurement probabilities %d does not match the dimension expected by the solver, %d",
			measDim, b.dim)
	}
	if b.shots <= 0 {
		return errors.WithStack(ErrShotsUnset)
	}
	return nil
}

// sampleIndex draws one basis index from the distribution by walking
// the cumulative probabilities against a uniform draw.
func (b *baseSolver) sampleIndex(distribution []float64) int {
	r := b.rng.Float64()
	cumulative := 0.0
	for i, p := range distribution {
		cumulative += p
		if r <= cumulative {
			return i
		}
	}
	// Fall back to the last state when rounding leaves the cumulative
	// sum marginally below 1.
	return len(distribution) - 1
}

// Result is the outcome of one circuit simulation.
type Result struct {
	// Distribution holds the measurement probability of every basis
	// state, in the basis enumeration order.
	Distribution []float64

	// Memory lists the decoded outcome of every shot, empty when the
	// solver was built without shots.
	Memory []string

	// Counts aggregates Memory per outcome string.
	Counts map[string]int
}

/*
Simulate runs a circuit through a solver: preprocessing fixes the
dimension and basis, the initial state is built, each gate's generator
is embedded, converted to a matrix, exponentiated and applied in
sequence, and the final distribution is sampled into shots when the
solver carries a shot count.
*/
func Simulate(s CircuitSolver, c *Circuit) (*Result, error) {
	if err := s.PreprocessCircuit(c); err != nil {
		return nil, err
	}

	errnie.Info(
		"Simulate - %d wires, %d gates, dimension %d",
		c.NumWires,
		len(c.Gates),
		s.Dim(),
	)

	psi, err := s.InitialState(c)
	if err != nil {
		return nil, err
	}

	for _, gate := range c.Gates {
		embedded, err := s.EmbedOperator(gate.Generator, c.NumWires, gate.Qargs)
		if err != nil {
			return nil, errors.Wrapf(err, "embedding gate %q", gate.Name)
		}

		hamiltonian, err := s.OperatorToMat(embedded)
		if err != nil {
			return nil, errors.Wrapf(err, "converting gate %q", gate.Name)
		}

		unitary := mat.Expm(hamiltonian.Scale(-1i))
		psi = unitary.MulVec(psi)
	}

	result := &Result{Distribution: mat.Probabilities(psi)}

	if s.Shots() > 0 {
		memory, err := s.DrawShots(result.Distribution)
		if err != nil {
			return nil, err
		}

		result.Memory = memory
		result.Counts = make(map[string]int)
		for _, outcome := range memory {
			result.Counts[outcome]++
		}
	}

	return result, nil
}
