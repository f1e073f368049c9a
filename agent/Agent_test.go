package agent

import (
	"testing"

	"github.com/samuelfneumann/pointmass/environment"
	"github.com/samuelfneumann/pointmass/timestep"
	"gonum.org/v1/gonum/mat"
)

func TestConstant(t *testing.T) {
	c := NewConstant([]float64{0.9, 0})

	a := c.SelectAction(timestep.TimeStep{})
	a.SetVec(0, 100)

	b := c.SelectAction(timestep.TimeStep{})
	if b.AtVec(0) != 0.9 || b.AtVec(1) != 0 {
		t.Errorf("selectAction: \n\twant([0.9 0]) \n\thave(%v)",
			b.RawVector().Data)
	}
}

func TestUniform(t *testing.T) {
	spec := environment.NewBoxSpec(2, environment.Action, -1, 1)

	u, err := NewUniform(spec, 5)
	if err != nil {
		t.Fatal(err)
	}
	v, err := NewUniform(spec, 5)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		a := u.SelectAction(timestep.TimeStep{})
		if !spec.Contains(a) {
			t.Errorf("selectAction: %v outside the action box",
				a.RawVector().Data)
		}
		if !mat.Equal(a, v.SelectAction(timestep.TimeStep{})) {
			t.Fatal("selectAction: same seed gave different actions")
		}
	}
}

func TestUniformErrors(t *testing.T) {
	obsSpec := environment.NewBoxSpec(2, environment.Observation, -1, 1)
	if _, err := NewUniform(obsSpec, 0); err == nil {
		t.Error("newUniform: expected error for observation spec")
	}

	discrete := environment.NewBoxSpec(1, environment.Action, 0, 3)
	discrete.Cardinality = environment.Discrete
	if _, err := NewUniform(discrete, 0); err == nil {
		t.Error("newUniform: expected error for discrete actions")
	}
}
