// Package environment outlines the interfaces and structs needed to
// implement concrete environments, together with generic Starters and
// Enders that concrete Tasks are built from.
package environment

import (
	"github.com/samuelfneumann/pointmass/timestep"
	"gonum.org/v1/gonum/mat"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() *mat.VecDense
}

// Ender determines when episodes should end. If an episode should end,
// End changes the StepType of the argument TimeStep to timestep.Last,
// records the reason with SetEnd, and returns true.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Task implements the reward scheme, start state distribution, and
// episode termination rules for taking actions in some environment
type Task interface {
	Starter
	Ender

	// GetReward returns the reward for the transition
	// (state, action) -> nextState
	GetReward(state, action, nextState mat.Vector) float64

	// AtGoal returns whether the argument state is a goal state
	AtGoal(state mat.Matrix) bool

	// Min and Max return the minimum and maximum attainable rewards
	Min() float64
	Max() float64

	RewardSpec() Spec
}

// Environment implements a simulated environment, which includes a
// Task to complete. Environments start ready to use and are not safe
// for concurrent use.
type Environment interface {
	Task
	Reset() (timestep.TimeStep, error)
	Step(action *mat.VecDense) (timestep.TimeStep, bool, error)
	CurrentTimeStep() timestep.TimeStep
	ActionSpec() Spec
	ObservationSpec() Spec
	DiscountSpec() Spec
}
