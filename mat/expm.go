package mat

import "math/cmplx"

// dropTol discards exponential entries that are pure floating-point
// noise when converting back to sparse storage.
const dropTol = 1e-15

// Expm computes the matrix exponential exp(M) of a square matrix by
// scaling and squaring with a truncated Taylor series. The dimensions
// involved are bounded by the solver's max dimension, so the dense
// intermediate is acceptable.
func Expm(m *Sparse) *Sparse {
	n := m.rows

	// Scale M down until its infinity norm is at most 1/2.
	norm := infNorm(m)
	squarings := 0
	for norm > 0.5 {
		norm /= 2
		squarings++
	}
	scale := complex(1, 0)
	if squarings > 0 {
		scale = complex(1/float64(int64(1)<<squarings), 0)
	}

	a := m.Scale(scale).dense()
	result := identityDense(n)
	term := identityDense(n)

	// Taylor series: sum_k A^k / k!
	for k := 1; k <= 32; k++ {
		term = mulDense(term, a)
		scaleDense(term, complex(1/float64(k), 0))
		addDense(result, term)
		if maxAbs(term) < 1e-18 {
			break
		}
	}

	for i := 0; i < squarings; i++ {
		result = mulDense(result, result)
	}

	out := Zeros(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if cmplx.Abs(result[i][j]) > dropTol {
				out.Set(i, j, result[i][j])
			}
		}
	}
	return out
}

// infNorm is the maximum absolute row sum.
func infNorm(m *Sparse) float64 {
	norm := 0.0
	for _, row := range m.data {
		sum := 0.0
		for _, v := range row {
			sum += cmplx.Abs(v)
		}
		if sum > norm {
			norm = sum
		}
	}
	return norm
}

func (m *Sparse) dense() [][]complex128 {
	d := make([][]complex128, m.rows)
	for i := range d {
		d[i] = make([]complex128, m.cols)
	}
	for i, row := range m.data {
		for j, v := range row {
			d[i][j] = v
		}
	}
	return d
}

func identityDense(n int) [][]complex128 {
	d := make([][]complex128, n)
	for i := range d {
		d[i] = make([]complex128, n)
		d[i][i] = 1
	}
	return d
}

func mulDense(a, b [][]complex128) [][]complex128 {
	n := len(a)
	out := make([][]complex128, n)
	for i := range out {
		out[i] = make([]complex128, n)
		for k, v := range a[i] {
			if v == 0 {
				continue
			}
			for j, w := range b[k] {
				out[i][j] += v * w
			}
		}
	}
	return out
}

func scaleDense(a [][]complex128, z complex128) {
	for i := range a {
		for j := range a[i] {
			a[i][j] *= z
		}
	}
}

func addDense(dst, src [][]complex128) {
	for i := range dst {
		for j := range dst[i] {
			dst[i][j] += src[i][j]
		}
	}
}

func maxAbs(a [][]complex128) float64 {
	max := 0.0
	for i := range a {
		for j := range a[i] {
			if v := cmplx.Abs(a[i][j]); v > max {
				max = v
			}
		}
	}
	return max
}
