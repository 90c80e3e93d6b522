// Package mat provides the small complex linear-algebra kernel used by
// the circuit solvers: sparse matrices, Kronecker products, matrix
// exponentials and matrix-vector products.
package mat

// Sparse is a complex matrix stored row-major as a map of maps. Zero
// entries are never stored.
type Sparse struct {
	rows, cols int
	data       map[int]map[int]complex128
}

// Zeros returns an empty rows x cols matrix.
func Zeros(rows, cols int) *Sparse {
	return &Sparse{
		rows: rows,
		cols: cols,
		data: make(map[int]map[int]complex128),
	}
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Sparse {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Dims returns the row and column counts.
func (m *Sparse) Dims() (int, int) {
	return m.rows, m.cols
}

// At returns the entry at (i, j).
func (m *Sparse) At(i, j int) complex128 {
	return m.data[i][j]
}

// Set stores v at (i, j), dropping the entry when v is zero.
func (m *Sparse) Set(i, j int, v complex128) {
	if v == 0 {
		delete(m.data[i], j)
		return
	}
	row, ok := m.data[i]
	if !ok {
		row = make(map[int]complex128)
		m.data[i] = row
	}
	row[j] = v
}

// Add accumulates v onto the entry at (i, j).
func (m *Sparse) Add(i, j int, v complex128) {
	m.Set(i, j, m.data[i][j]+v)
}

// NNZ returns the number of stored entries.
func (m *Sparse) NNZ() int {
	n := 0
	for _, row := range m.data {
		n += len(row)
	}
	return n
}

// Scale returns z*M as a new matrix.
func (m *Sparse) Scale(z complex128) *Sparse {
	out := Zeros(m.rows, m.cols)
	for i, row := range m.data {
		for j, v := range row {
			out.Set(i, j, z*v)
		}
	}
	return out
}

// AddMat returns M+B as a new matrix.
func (m *Sparse) AddMat(b *Sparse) *Sparse {
	out := m.Scale(1)
	for i, row := range b.data {
		for j, v := range row {
			out.Add(i, j, v)
		}
	}
	return out
}

// Mul returns the matrix product M*B.
func (m *Sparse) Mul(b *Sparse) *Sparse {
	out := Zeros(m.rows, b.cols)
	for i, row := range m.data {
		for k, v := range row {
			for j, w := range b.data[k] {
				out.Add(i, j, v*w)
			}
		}
	}
	return out
}

// MulVec applies M to a column vector.
func (m *Sparse) MulVec(v Vector) Vector {
	out := make(Vector, m.rows)
	for i, row := range m.data {
		for j, w := range row {
			out[i] += w * v[j]
		}
	}
	return out
}

// Kron returns the Kronecker product of a and b, with b varying
// fastest: entry ((ia*rb+ib), (ja*cb+jb)) = a(ia,ja)*b(ib,jb).
func Kron(a, b *Sparse) *Sparse {
	rb, cb := b.rows, b.cols
	out := Zeros(a.rows*rb, a.cols*cb)
	for ia, rowA := range a.data {
		for ja, va := range rowA {
			for ib, rowB := range b.data {
				for jb, vb := range rowB {
					out.Set(ia*rb+ib, ja*cb+jb, va*vb)
				}
			}
		}
	}
	return out
}

// Pow returns M^p for p >= 0.
func (m *Sparse) Pow(p int) *Sparse {
	out := Identity(m.rows)
	for i := 0; i < p; i++ {
		out = out.Mul(m)
	}
	return out
}
