// Package agent defines the policies that drive environments in an
// experiment. Policies here are fixed: they select actions but never
// learn.
package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/pointmass/environment"
	"github.com/samuelfneumann/pointmass/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distmv"
)

// Policy determines how actions are selected in each timestep
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}

// Constant is a Policy which always selects the same action
type Constant struct {
	action []float64
}

// NewConstant returns a Policy which always selects action
func NewConstant(action []float64) *Constant {
	a := make([]float64, len(action))
	copy(a, action)
	return &Constant{a}
}

// SelectAction returns a copy of the constant action
func (c *Constant) SelectAction(timestep.TimeStep) *mat.VecDense {
	a := make([]float64, len(c.action))
	copy(a, c.action)
	return mat.NewVecDense(len(a), a)
}

// Uniform is a Policy which selects actions uniformly at random from
// the box described by a continuous action Spec
type Uniform struct {
	seed uint64
	rand *distmv.Uniform
}

// NewUniform returns a Policy which samples actions uniformly from
// the bounds of the argument action Spec
func NewUniform(actionSpec environment.Spec, seed uint64) (*Uniform, error) {
	if actionSpec.Type != environment.Action {
		return nil, fmt.Errorf("newUniform: spec should be an action spec, "+
			"have %v", actionSpec.Type)
	}
	if actionSpec.Cardinality != environment.Continuous {
		return nil, fmt.Errorf("newUniform: actions should be continuous, "+
			"have %v", actionSpec.Cardinality)
	}

	bounds := make([]r1.Interval, actionSpec.Shape.Len())
	for i := range bounds {
		bounds[i] = r1.Interval{
			Min: actionSpec.LowerBound.AtVec(i),
			Max: actionSpec.UpperBound.AtVec(i),
		}
	}

	source := rand.NewSource(seed)
	return &Uniform{seed, distmv.NewUniform(bounds, source)}, nil
}

// SelectAction samples an action
func (u *Uniform) SelectAction(timestep.TimeStep) *mat.VecDense {
	sample := u.rand.Rand(nil)
	return mat.NewVecDense(len(sample), sample)
}
