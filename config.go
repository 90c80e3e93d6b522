package qsim

// DefaultMaxDimension bounds the Hilbert-space dimension a solver will
// simulate. Memory for state vectors and matrices scales with this, so
// it is the sole backpressure mechanism.
const DefaultMaxDimension = 10000

// Config holds the tunable solver settings.
type Config struct {
	// MaxDimension rejects any basis or Hilbert space larger than this
	// before any matrix is allocated.
	MaxDimension int

	// Shots is the number of measurement draws; zero means no
	// measurements are performed.
	Shots int

	// Seed seeds the solver-held RNG for reproducible sampling. Zero
	// picks a time-based seed.
	Seed int64
}

func NewConfig() *Config {
	return &Config{
		MaxDimension: DefaultMaxDimension,
	}
}

// SolverOption is a function type for configuring solvers.
type SolverOption func(*Config)

// WithShots enables measurement sampling with the given shot count.
func WithShots(shots int) SolverOption {
	return func(c *Config) {
		c.Shots = shots
	}
}

// WithSeed fixes the sampling RNG seed.
func WithSeed(seed int64) SolverOption {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithMaxDimension overrides the default dimension ceiling.
func WithMaxDimension(max int) SolverOption {
	return func(c *Config) {
		c.MaxDimension = max
	}
}
