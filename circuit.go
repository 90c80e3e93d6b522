package qsim

// Generator is the Hamiltonian generator of a gate. Exponentiating a
// generator yields the gate's unitary, U = exp(-i*G).
type Generator interface {
	// RegisterLength is the number of wires the generator is defined on.
	RegisterLength() int
}

// Gate is one circuit operation: a generator scoped to a subset of the
// register's wires.
type Gate struct {
	Name      string
	Generator Generator
	// Qargs are the wire indices the gate acts on; the generator's
	// local index i maps to wire Qargs[i].
	Qargs []int
}

// Circuit is the minimal circuit contract the solvers consume: an
// ordered gate list over a fixed wire register plus the initial
// condition metadata.
type Circuit struct {
	NumWires int

	// InitialOccupations is the occupation of each wire before the
	// first gate, in wire order. Nil means the reference configuration
	// of all zeros.
	InitialOccupations []int

	Gates []Gate
}
