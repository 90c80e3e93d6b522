package qsim

import "github.com/pkg/errors"

// maxEnumerableWires caps the 2^N candidate enumeration; any basis
// beyond this would dwarf every realistic dimension ceiling anyway.
const maxEnumerableWires = 30

/*
FermionicBasis is the ordered, deduplicated set of occupation-number
vectors spanning the simulated Hilbert space.

The enumeration order is fixed and shared by basis indexing, initial
state lookup and shot decoding: candidate k (ascending) maps to the
occupation vector with wire i occupied iff bit i of k is set.
*/
type FermionicBasis struct {
	occupations [][]int
	index       map[string]int
	numWires    int
}

// NewFermionicBasis enumerates the occupation vectors compatible with
// the initial state under the active conservation constraints: the
// per-species particle counts when spin conservation holds, only the
// total count when just particle conservation holds, and every vector
// when neither does.
func NewFermionicBasis(state *FermionicState, particleConservation, spinConservation bool) (*FermionicBasis, error) {
	flat := state.OccupationsFlat()
	numWires := len(flat)

	if numWires > maxEnumerableWires {
		return nil, errors.Wrapf(ErrDimensionExceeded,
			"cannot enumerate a basis over %d wires", numWires)
	}

	sites := state.Sites()
	numSpecies := state.NumSpecies()
	total := state.ParticleCount()
	perSpecies := state.SpeciesCounts()

	basis := &FermionicBasis{
		index:    make(map[string]int),
		numWires: numWires,
	}

	for k := 0; k < 1<<numWires; k++ {
		occupations := make([]int, numWires)
		for i := range occupations {
			occupations[i] = (k >> i) & 1
		}

		if spinConservation {
			match := true
			for s := 0; s < numSpecies; s++ {
				count := 0
				for _, occ := range occupations[s*sites : (s+1)*sites] {
					count += occ
				}
				if count != perSpecies[s] {
					match = false
					break
				}
			}
			if !match {
				continue
			}
		} else if particleConservation {
			count := 0
			for _, occ := range occupations {
				count += occ
			}
			if count != total {
				continue
			}
		}

		basis.index[occupationKey(occupations)] = len(basis.occupations)
		basis.occupations = append(basis.occupations, occupations)
	}

	return basis, nil
}

// Dimension is the number of basis vectors.
func (b *FermionicBasis) Dimension() int {
	return len(b.occupations)
}

func (b *FermionicBasis) NumWires() int {
	return b.numWires
}

// Occupations returns the basis vectors in enumeration order. The
// slice is shared; callers must not mutate it.
func (b *FermionicBasis) Occupations() [][]int {
	return b.occupations
}

// Index looks up the basis index of an occupation vector.
func (b *FermionicBasis) Index(occupations []int) (int, bool) {
	idx, ok := b.index[occupationKey(occupations)]
	return idx, ok
}

// OutcomeStrings renders every basis vector as a concatenated string
// of 0/1 digits in wire order, the format shot outcomes use.
func (b *FermionicBasis) OutcomeStrings() []string {
	outcomes := make([]string, len(b.occupations))
	for i, occupations := range b.occupations {
		outcomes[i] = occupationKey(occupations)
	}
	return outcomes
}

func occupationKey(occupations []int) string {
	key := make([]byte, len(occupations))
	for i, occ := range occupations {
		key[i] = '0' + byte(occ)
	}
	return string(key)
}
