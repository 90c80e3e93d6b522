package qsim

import (
	"math"
	"math/big"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSpinMatrices(t *testing.T) {
	Convey("Given spin 1/2", t, func() {
		Convey("Sz is diagonal from -S to S", func() {
			z := spinMatrix(SpinZ, halfSpin())
			So(real(z.At(0, 0)), ShouldAlmostEqual, -0.5)
			So(real(z.At(1, 1)), ShouldAlmostEqual, 0.5)
		})

		Convey("Sx couples the two levels symmetrically", func() {
			x := spinMatrix(SpinX, halfSpin())
			So(real(x.At(0, 1)), ShouldAlmostEqual, 0.5)
			So(real(x.At(1, 0)), ShouldAlmostEqual, 0.5)
		})

		Convey("Sy is anti-Hermitian off the diagonal", func() {
			y := spinMatrix(SpinY, halfSpin())
			So(imag(y.At(0, 1)), ShouldAlmostEqual, 0.5)
			So(imag(y.At(1, 0)), ShouldAlmostEqual, -0.5)
		})
	})

	Convey("Given spin 1", t, func() {
		one := big.NewRat(1, 1)

		Convey("Sz spans three levels", func() {
			z := spinMatrix(SpinZ, one)
			So(real(z.At(0, 0)), ShouldAlmostEqual, -1)
			So(z.At(1, 1), ShouldEqual, complex(0, 0))
			So(real(z.At(2, 2)), ShouldAlmostEqual, 1)
		})

		Convey("Sx has the spin-1 ladder weights", func() {
			x := spinMatrix(SpinX, one)
			So(real(x.At(0, 1)), ShouldAlmostEqual, 1/math.Sqrt(2))
			So(real(x.At(1, 2)), ShouldAlmostEqual, 1/math.Sqrt(2))
		})
	})
}

func TestSpinOpToMatrix(t *testing.T) {
	Convey("Given Sz on wire 0 of a 2-wire register", t, func() {
		op, err := NewSpinOp([]SpinTerm{
			{Actions: []SpinAction{{Axis: SpinZ, Index: 0}}, Coeff: 1},
		}, halfSpin(), 2)
		So(err, ShouldBeNil)

		m, err := op.ToMatrix()
		So(err, ShouldBeNil)

		Convey("Wire 0 is the fastest-varying index", func() {
			rows, _ := m.Dims()
			So(rows, ShouldEqual, 4)

			for index := 0; index < 4; index++ {
				level := index % 2
				So(real(m.At(index, index)), ShouldAlmostEqual, float64(level)-0.5)
			}
		})
	})

	Convey("Given a squared action", t, func() {
		op, err := NewSpinOp([]SpinTerm{
			{Actions: []SpinAction{{Axis: SpinZ, Index: 0, Power: 2}}, Coeff: 1},
		}, halfSpin(), 1)
		So(err, ShouldBeNil)

		m, err := op.ToMatrix()
		So(err, ShouldBeNil)

		Convey("Sz^2 is 1/4 of the identity for spin 1/2", func() {
			So(real(m.At(0, 0)), ShouldAlmostEqual, 0.25)
			So(real(m.At(1, 1)), ShouldAlmostEqual, 0.25)
		})
	})

	Convey("Given a sum of terms on different wires", t, func() {
		op, err := NewSpinOp([]SpinTerm{
			{Actions: []SpinAction{{Axis: SpinZ, Index: 0}}, Coeff: 1},
			{Actions: []SpinAction{{Axis: SpinZ, Index: 1}}, Coeff: 1},
		}, halfSpin(), 2)
		So(err, ShouldBeNil)

		m, err := op.ToMatrix()
		So(err, ShouldBeNil)

		Convey("The diagonal is the total magnetization", func() {
			So(real(m.At(0, 0)), ShouldAlmostEqual, -1)
			So(real(m.At(3, 3)), ShouldAlmostEqual, 1)
			So(m.At(1, 1), ShouldEqual, complex(0, 0))
			So(m.At(2, 2), ShouldEqual, complex(0, 0))
		})
	})

	Convey("Given an action index outside the register", t, func() {
		_, err := NewSpinOp([]SpinTerm{
			{Actions: []SpinAction{{Axis: SpinX, Index: 3}}, Coeff: 1},
		}, halfSpin(), 2)

		Convey("Construction fails", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
