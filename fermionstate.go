package qsim

import "github.com/pkg/errors"

// FermionicState holds the 0/1 occupation of every fermionic mode,
// grouped into one contiguous block of sites per species. Immutable
// once constructed.
type FermionicState struct {
	// occupations[species][site]
	occupations [][]int
}

// NewFermionicState splits a flat occupation vector into numSpecies
// contiguous blocks of equal length.
func NewFermionicState(flat []int, numSpecies int) (*FermionicState, error) {
	if numSpecies < 1 {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"number of fermionic species must be positive, got %d", numSpecies)
	}
	if len(flat)%numSpecies != 0 {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"the number of wires %d is not a multiple of the %d fermionic species number",
			len(flat), numSpecies)
	}

	for _, occ := range flat {
		if occ != 0 && occ != 1 {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"fermionic occupations must be 0 or 1, got %d", occ)
		}
	}

	sites := len(flat) / numSpecies
	occupations := make([][]int, numSpecies)
	for s := range occupations {
		occupations[s] = make([]int, sites)
		copy(occupations[s], flat[s*sites:(s+1)*sites])
	}

	return &FermionicState{occupations: occupations}, nil
}

// initialFermionicState derives the circuit's initial condition; a
// circuit without occupation metadata starts from the empty register.
func initialFermionicState(c *Circuit, numSpecies int) (*FermionicState, error) {
	flat := c.InitialOccupations
	if flat == nil {
		flat = make([]int, c.NumWires)
	}

	if len(flat) != c.NumWires {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"expected %d initial occupations; received %d", c.NumWires, len(flat))
	}

	return NewFermionicState(flat, numSpecies)
}

func (s *FermionicState) NumSpecies() int {
	return len(s.occupations)
}

// Sites is the number of lattice sites per species.
func (s *FermionicState) Sites() int {
	return len(s.occupations[0])
}

// OccupationsFlat flattens the per-species blocks back into wire order.
func (s *FermionicState) OccupationsFlat() []int {
	flat := make([]int, 0, s.NumSpecies()*s.Sites())
	for _, block := range s.occupations {
		flat = append(flat, block...)
	}
	return flat
}

// ParticleCount is the total number of particles across all species.
func (s *FermionicState) ParticleCount() int {
	total := 0
	for _, block := range s.occupations {
		for _, occ := range block {
			total += occ
		}
	}
	return total
}

// SpeciesCounts is the particle count of each species block.
func (s *FermionicState) SpeciesCounts() []int {
	counts := make([]int, s.NumSpecies())
	for i, block := range s.occupations {
		for _, occ := range block {
			counts[i] += occ
		}
	}
	return counts
}
