package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func fullBasis(numWires int) *FermionicBasis {
	state, _ := NewFermionicState(make([]int, numWires), 1)
	basis, _ := NewFermionicBasis(state, false, false)
	return basis
}

func TestFermionicOpToMatrix(t *testing.T) {
	Convey("Given the full 2-mode Fock basis", t, func() {
		basis := fullBasis(2)
		So(basis.Dimension(), ShouldEqual, 4)

		Convey("The number operator counts mode occupation", func() {
			op, err := NewFermionicOp([]FermionTerm{
				{
					Actions: []FermionAction{{Kind: Create, Mode: 1}, {Kind: Annihilate, Mode: 1}},
					Coeff:   1,
				},
			}, 2)
			So(err, ShouldBeNil)

			m, err := op.ToMatrix(basis)
			So(err, ShouldBeNil)

			for col, occ := range basis.Occupations() {
				So(m.At(col, col), ShouldEqual, complex(float64(occ[1]), 0))
			}
			So(m.NNZ(), ShouldEqual, 2)
		})

		Convey("Pair creation carries the Jordan-Wigner sign", func() {
			// c†_0 c†_1 applied right to left: mode 1 first, then mode 0.
			pair, err := NewFermionicOp([]FermionTerm{
				{
					Actions: []FermionAction{{Kind: Create, Mode: 0}, {Kind: Create, Mode: 1}},
					Coeff:   1,
				},
			}, 2)
			So(err, ShouldBeNil)

			vacuum, ok := basis.Index([]int{0, 0})
			So(ok, ShouldBeTrue)
			full, ok := basis.Index([]int{1, 1})
			So(ok, ShouldBeTrue)

			m, err := pair.ToMatrix(basis)
			So(err, ShouldBeNil)
			So(m.At(full, vacuum), ShouldEqual, complex(1, 0))

			// The anticommuted order flips the sign.
			swapped, err := NewFermionicOp([]FermionTerm{
				{
					Actions: []FermionAction{{Kind: Create, Mode: 1}, {Kind: Create, Mode: 0}},
					Coeff:   1,
				},
			}, 2)
			So(err, ShouldBeNil)

			ms, err := swapped.ToMatrix(basis)
			So(err, ShouldBeNil)
			So(ms.At(full, vacuum), ShouldEqual, complex(-1, 0))
		})

		Convey("Annihilating an empty mode contributes nothing", func() {
			op, err := NewFermionicOp([]FermionTerm{
				{Actions: []FermionAction{{Kind: Annihilate, Mode: 0}}, Coeff: 1},
			}, 2)
			So(err, ShouldBeNil)

			m, err := op.ToMatrix(basis)
			So(err, ShouldBeNil)

			vacuum, _ := basis.Index([]int{0, 0})
			for i := 0; i < basis.Dimension(); i++ {
				So(m.At(i, vacuum), ShouldEqual, complex(0, 0))
			}
		})

		Convey("A register length mismatch is rejected", func() {
			op, err := NewFermionicOp(nil, 3)
			So(err, ShouldBeNil)

			_, err = op.ToMatrix(basis)
			So(errors.Is(err, ErrShapeMismatch), ShouldBeTrue)
		})
	})

	Convey("Given a mode index outside the register", t, func() {
		_, err := NewFermionicOp([]FermionTerm{
			{Actions: []FermionAction{{Kind: Create, Mode: 5}}, Coeff: 1},
		}, 2)

		Convey("Construction fails", func() {
			So(errors.Is(err, ErrShapeMismatch), ShouldBeTrue)
		})
	})
}
