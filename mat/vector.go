package mat

import "math/cmplx"

// Vector is a complex column vector.
type Vector []complex128

// UnitVector returns a vector of length dim with a single unit
// amplitude at index.
func UnitVector(dim, index int) Vector {
	v := make(Vector, dim)
	v[index] = 1
	return v
}

// Probabilities returns the normalized measurement probabilities
// |v_i|^2 of an amplitude vector.
func Probabilities(v Vector) []float64 {
	probs := make([]float64, len(v))
	total := 0.0
	for i, amplitude := range v {
		p := cmplx.Abs(amplitude)
		p *= p
		probs[i] = p
		total += p
	}
	if total == 0 {
		return probs
	}
	for i := range probs {
		probs[i] /= total
	}
	return probs
}
