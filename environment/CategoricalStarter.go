package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states as vectors sampled from
// a multi-dimensional uniform categorical distribution. The categorical
// distributions sample values in (0, 1, 2, ... N). Each dimension is
// sampled independently.
type CategoricalStarter struct {
	features int
	seed     uint64
	rand     []distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter, sampling
// dimension i from (0, 1, 2, ... bounds[i]-1)
func NewCategoricalStarter(bounds []int, seed uint64) *CategoricalStarter {
	source := rand.NewSource(seed)

	rand := make([]distuv.Categorical, len(bounds))
	for i := range rand {
		if bounds[i] < 1 {
			panic("newCategoricalStarter: each dimension needs at " +
				"least one category")
		}

		// Create the weights for the uniform categorical distribution
		weights := make([]float64, bounds[i])
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		rand[i] = distuv.NewCategorical(weights, source)
	}

	return &CategoricalStarter{len(bounds), seed, rand}
}

// Start returns a starting state vector
func (c *CategoricalStarter) Start() *mat.VecDense {
	start := make([]float64, c.features)
	for i := range start {
		start[i] = c.rand[i].Rand()
	}

	return mat.NewVecDense(c.features, start)
}

// Seed returns the seed the starter was constructed with
func (c *CategoricalStarter) Seed() uint64 {
	return c.seed
}

// FixedStarter always starts episodes in the same state
type FixedStarter struct {
	state []float64
}

// NewFixedStarter returns a Starter which always returns a copy of state
func NewFixedStarter(state []float64) *FixedStarter {
	s := make([]float64, len(state))
	copy(s, state)
	return &FixedStarter{s}
}

// Start returns a starting state vector
func (f *FixedStarter) Start() *mat.VecDense {
	start := make([]float64, len(f.state))
	copy(start, f.state)
	return mat.NewVecDense(len(start), start)
}
