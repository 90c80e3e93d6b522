package qsim

import (
	"github.com/pkg/errors"

	"github.com/spinchain/qsim/mat"
)

// ActionKind distinguishes creation from annihilation.
type ActionKind int

const (
	Create ActionKind = iota
	Annihilate
)

// FermionAction is one creation or annihilation operator acting on a
// single fermionic mode.
type FermionAction struct {
	Kind ActionKind
	Mode int
}

// FermionTerm is an ordered product of actions with a complex
// coefficient. The rightmost action acts on the state first.
type FermionTerm struct {
	Actions []FermionAction
	Coeff   complex128
}

// FermionicOp is a sum of fermionic terms over a register of modes.
type FermionicOp struct {
	terms          []FermionTerm
	registerLength int
}

// NewFermionicOp builds an operator from its terms, validating that
// every mode index fits the register.
func NewFermionicOp(terms []FermionTerm, registerLength int) (*FermionicOp, error) {
	for _, term := range terms {
		for _, action := range term.Actions {
			if action.Mode < 0 || action.Mode >= registerLength {
				return nil, errors.Wrapf(ErrShapeMismatch,
					"mode index %d outside register of length %d", action.Mode, registerLength)
			}
		}
	}

	return &FermionicOp{terms: terms, registerLength: registerLength}, nil
}

func (op *FermionicOp) RegisterLength() int {
	return op.registerLength
}

// Terms returns the operator's terms. The slice is shared; callers
// must not mutate it.
func (op *FermionicOp) Terms() []FermionTerm {
	return op.terms
}

/*
ToMatrix computes the sparse matrix representation of the operator over
a basis of occupation-number states.

Creation and annihilation carry the Jordan-Wigner sign (-1)^k where k
is the number of occupied modes below the acted-on mode. Terms mapping
a basis state outside the (possibly conservation-reduced) basis are
projected out; operators of a conserving circuit never produce such
elements.
*/
func (op *FermionicOp) ToMatrix(basis *FermionicBasis) (*mat.Sparse, error) {
	if op.registerLength != basis.NumWires() {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"expected length %d for fermionic operator; received %d",
			basis.NumWires(), op.registerLength)
	}

	dim := basis.Dimension()
	matrix := mat.Zeros(dim, dim)

	for col, occupations := range basis.Occupations() {
		for _, term := range op.terms {
			target := make([]int, len(occupations))
			copy(target, occupations)

			sign := 1.0
			annihilated := false

			// Apply the product right to left.
			for i := len(term.Actions) - 1; i >= 0; i-- {
				action := term.Actions[i]

				parity := 0
				for m := 0; m < action.Mode; m++ {
					parity += target[m]
				}
				if parity%2 == 1 {
					sign = -sign
				}

				switch action.Kind {
				case Create:
					if target[action.Mode] == 1 {
						annihilated = true
					}
					target[action.Mode] = 1
				case Annihilate:
					if target[action.Mode] == 0 {
						annihilated = true
					}
					target[action.Mode] = 0
				}

				if annihilated {
					break
				}
			}

			if annihilated {
				continue
			}

			row, ok := basis.Index(target)
			if !ok {
				continue
			}

			matrix.Add(row, col, term.Coeff*complex(sign, 0))
		}
	}

	return matrix, nil
}

// countActions returns the number of creation and annihilation actions
// a term applies to modes in the half-open range [lo, hi).
func countActions(term FermionTerm, lo, hi int) (creators, annihilators int) {
	for _, action := range term.Actions {
		if action.Mode < lo || action.Mode >= hi {
			continue
		}
		switch action.Kind {
		case Create:
			creators++
		case Annihilate:
			annihilators++
		}
	}
	return creators, annihilators
}
