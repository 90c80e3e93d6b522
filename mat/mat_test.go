package mat

import (
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSparse(t *testing.T) {
	Convey("Given a sparse matrix", t, func() {
		m := Zeros(2, 2)
		m.Set(0, 1, 1)
		m.Set(1, 0, 1)

		Convey("Entries and dimensions are tracked", func() {
			rows, cols := m.Dims()
			So(rows, ShouldEqual, 2)
			So(cols, ShouldEqual, 2)
			So(m.NNZ(), ShouldEqual, 2)
			So(m.At(0, 1), ShouldEqual, complex(1, 0))
		})

		Convey("Setting an entry to zero removes it", func() {
			m.Set(0, 1, 0)
			So(m.NNZ(), ShouldEqual, 1)
		})

		Convey("Add accumulates onto existing entries", func() {
			m.Add(0, 1, 2)
			So(m.At(0, 1), ShouldEqual, complex(3, 0))
		})

		Convey("MulVec applies the matrix to a vector", func() {
			v := m.MulVec(Vector{1, 0})
			So(v[0], ShouldEqual, complex(0, 0))
			So(v[1], ShouldEqual, complex(1, 0))
		})

		Convey("Mul composes two matrices", func() {
			sq := m.Mul(m)
			So(sq.At(0, 0), ShouldEqual, complex(1, 0))
			So(sq.At(1, 1), ShouldEqual, complex(1, 0))
			So(sq.At(0, 1), ShouldEqual, complex(0, 0))
		})

		Convey("Pow repeats the product", func() {
			So(m.Pow(2).At(0, 0), ShouldEqual, complex(1, 0))
			So(m.Pow(0).At(0, 0), ShouldEqual, complex(1, 0))
		})
	})
}

func TestKron(t *testing.T) {
	Convey("Given the Kronecker product of identity and a flip", t, func() {
		flip := Zeros(2, 2)
		flip.Set(0, 1, 1)
		flip.Set(1, 0, 1)

		k := Kron(Identity(2), flip)

		Convey("The second factor varies fastest", func() {
			rows, cols := k.Dims()
			So(rows, ShouldEqual, 4)
			So(cols, ShouldEqual, 4)
			So(k.At(0, 1), ShouldEqual, complex(1, 0))
			So(k.At(1, 0), ShouldEqual, complex(1, 0))
			So(k.At(2, 3), ShouldEqual, complex(1, 0))
			So(k.At(3, 2), ShouldEqual, complex(1, 0))
			So(k.At(0, 3), ShouldEqual, complex(0, 0))
		})
	})
}

func TestExpm(t *testing.T) {
	Convey("Given the generator -i*(pi/2)*X", t, func() {
		flip := Zeros(2, 2)
		flip.Set(0, 1, complex(math.Pi/2, 0))
		flip.Set(1, 0, complex(math.Pi/2, 0))

		u := Expm(flip.Scale(-1i))

		Convey("The exponential is -i*X", func() {
			So(real(u.At(0, 1)), ShouldAlmostEqual, 0, 1e-12)
			So(imag(u.At(0, 1)), ShouldAlmostEqual, -1, 1e-12)
			So(real(u.At(1, 0)), ShouldAlmostEqual, 0, 1e-12)
			So(imag(u.At(1, 0)), ShouldAlmostEqual, -1, 1e-12)
			So(real(u.At(0, 0)), ShouldAlmostEqual, 0, 1e-12)
			So(real(u.At(1, 1)), ShouldAlmostEqual, 0, 1e-12)
		})
	})

	Convey("Given the zero matrix", t, func() {
		u := Expm(Zeros(3, 3))

		Convey("The exponential is the identity", func() {
			for i := 0; i < 3; i++ {
				So(real(u.At(i, i)), ShouldAlmostEqual, 1, 1e-12)
			}
			So(u.NNZ(), ShouldEqual, 3)
		})
	})

	Convey("Given a generator with norm well above one", t, func() {
		z := Zeros(2, 2)
		z.Set(0, 0, complex(5, 0))
		z.Set(1, 1, complex(-5, 0))

		u := Expm(z.Scale(-1i))

		Convey("Scaling and squaring keeps the result unitary", func() {
			So(real(u.At(0, 0)), ShouldAlmostEqual, math.Cos(5), 1e-10)
			So(imag(u.At(0, 0)), ShouldAlmostEqual, -math.Sin(5), 1e-10)
			So(real(u.At(1, 1)), ShouldAlmostEqual, math.Cos(5), 1e-10)
			So(imag(u.At(1, 1)), ShouldAlmostEqual, math.Sin(5), 1e-10)
		})
	})
}

func TestVector(t *testing.T) {
	Convey("Given a unit vector", t, func() {
		v := UnitVector(4, 2)

		Convey("It has a single unit amplitude", func() {
			So(len(v), ShouldEqual, 4)
			So(v[2], ShouldEqual, complex(1, 0))
			So(v[0], ShouldEqual, complex(0, 0))
		})

		Convey("Its probabilities concentrate on one state", func() {
			probs := Probabilities(v)
			So(probs[2], ShouldAlmostEqual, 1)
			So(probs[0], ShouldAlmostEqual, 0)
		})
	})

	Convey("Given an unnormalized amplitude vector", t, func() {
		probs := Probabilities(Vector{complex(1, 0), complex(0, 1)})

		Convey("Probabilities are normalized", func() {
			So(probs[0], ShouldAlmostEqual, 0.5)
			So(probs[1], ShouldAlmostEqual, 0.5)
		})
	})
}
