// Package pointmass implements a 2D point mass goal reaching
// environment. An agent moves a point mass in the plane by directly
// displacing it, starting near the origin, and must bring it within
// range of one of four fixed goals before a step limit is reached.
package pointmass

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/pointmass/environment"
	ts "github.com/samuelfneumann/pointmass/timestep"
	"github.com/samuelfneumann/pointmass/utils/floatutils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	ActionHigh      float64 = 1.0
	ActionDims      int     = 2
	ObservationDims int     = 2
)

var (
	// ErrActionDims is returned when stepping with an action that is
	// not 2-dimensional
	ErrActionDims = errors.New("actions must be 2-dimensional")

	// ErrEpisodeEnded is returned when stepping an environment whose
	// episode has ended without first resetting it
	ErrEpisodeEnded = errors.New("episode has ended, reset required")
)

// Info describes the environment after a step
type Info struct {
	Position r2.Vec // Unclamped position of the point mass
	Goal     r2.Vec
	Terminal string // "", TimeUp, or OutOfRange
}

// PointMass implements the point mass environment. The state of the
// environment is the (x, y) position of the point mass.
//
// Actions are continuous and 2-dimensional. Each action component is
// clipped to [-ActionHigh, ActionHigh] and then added to the position
// of the point mass.
//
// Observations are the position of the point mass, with each component
// clipped to [-ObservationHigh(), ObservationHigh()]. The position
// itself is never clipped, so the Reach task can end episodes that
// leave the observation bounds.
//
// PointMass implements the environment.Environment interface. It is
// not safe for concurrent use.
type PointMass struct {
	*Reach
	position    r2.Vec
	discount    float64
	currentStep ts.TimeStep
	info        Info
}

// New creates and returns a new PointMass environment with the
// argument task, as well as the first timestep of the first episode
func New(t *Reach, discount float64) (*PointMass, ts.TimeStep, error) {
	if t == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: task must not be nil")
	}

	p := &PointMass{
		Reach:    t,
		discount: discount,
	}

	step, err := p.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %w", err)
	}

	return p, step, nil
}

// Reset resets the environment to a starting state drawn from the
// Reach task and returns the first timestep of the new episode. The
// current task is kept.
func (p *PointMass) Reset() (ts.TimeStep, error) {
	if err := p.SetTask(p.TaskID()); err != nil {
		return ts.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	start := p.Start()
	p.position = r2.Vec{X: start.AtVec(0), Y: start.AtVec(1)}

	step := ts.New(ts.First, 0, p.discount, p.state(), 0)
	p.currentStep = step
	p.info = Info{Position: p.position, Goal: p.Goal()}

	return step, nil
}

// ResetTask selects the task given by id and then resets the
// environment. The observation bounds are not changed.
func (p *PointMass) ResetTask(id TaskID) (ts.TimeStep, error) {
	if err := p.SetTask(id); err != nil {
		return ts.TimeStep{}, fmt.Errorf("resetTask: %w", err)
	}
	return p.Reset()
}

// Step takes one environmental step given action a and returns the
// next timestep as a timestep.TimeStep and a bool indicating whether
// or not the episode has ended.
func (p *PointMass) Step(action *mat.VecDense) (ts.TimeStep, bool, error) {
	if p.currentStep.Last() {
		return ts.TimeStep{}, true, fmt.Errorf("step: %w", ErrEpisodeEnded)
	}
	if action.Len() != ActionDims {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w \n\twant(%v) "+
			"\n\thave(%v)", ErrActionDims, ActionDims, action.Len())
	}

	prevState := p.state()

	// Clip the action, NaN components to ActionHigh, and move the point mass
	displacement := r2.Vec{
		X: floatutils.Clip(action.AtVec(0), -ActionHigh, ActionHigh),
		Y: floatutils.Clip(action.AtVec(1), -ActionHigh, ActionHigh),
	}
	p.position = r2.Add(p.position, displacement)

	// Rewards and episode ends are computed on the unclamped position
	nextState := p.state()
	reward := p.GetReward(prevState, action, nextState)
	nextStep := ts.New(ts.Mid, reward, p.discount, nextState,
		p.currentStep.Number+1)
	last := p.End(&nextStep)

	nextStep.Observation = p.observation()
	p.currentStep = nextStep
	p.info = Info{
		Position: p.position,
		Goal:     p.Goal(),
		Terminal: Label(nextStep.EndType()),
	}

	return nextStep, last, nil
}

// StepInfo takes one environmental step like Step, returning the
// observation, reward, episode termination, and Info of the step
func (p *PointMass) StepInfo(action *mat.VecDense) (*mat.VecDense, float64,
	bool, Info, error) {
	step, done, err := p.Step(action)
	if err != nil {
		return nil, 0, done, Info{}, err
	}
	return step.Observation, step.Reward, done, p.info, nil
}

// CurrentTimeStep returns the current timestep in the environment
func (p *PointMass) CurrentTimeStep() ts.TimeStep {
	return p.currentStep
}

// Info returns the Info of the most recent step or reset
func (p *PointMass) Info() Info {
	return p.info
}

// Position returns the unclamped position of the point mass
func (p *PointMass) Position() r2.Vec {
	return p.position
}

// ActionSpec returns the action specification of the environment
func (p *PointMass) ActionSpec() environment.Spec {
	return environment.NewBoxSpec(ActionDims, environment.Action,
		-ActionHigh, ActionHigh)
}

// ObservationSpec returns the observation specification of the
// environment
func (p *PointMass) ObservationSpec() environment.Spec {
	high := p.ObservationHigh()
	return environment.NewBoxSpec(ObservationDims, environment.Observation,
		-high, high)
}

// DiscountSpec returns the discount specification of the environment
func (p *PointMass) DiscountSpec() environment.Spec {
	return environment.NewBoxSpec(1, environment.Discount, p.discount,
		p.discount)
}

// String converts the environment to a string representation
func (p *PointMass) String() string {
	str := "PointMass  |  task: %v  |  goal: (%v, %v)  |  " +
		"position: (%v, %v)  |  step: %v"

	return fmt.Sprintf(str, p.TaskInt(), p.Goal().X, p.Goal().Y,
		p.position.X, p.position.Y, p.currentStep.Number)
}

// state returns the unclamped position as a vector
func (p *PointMass) state() *mat.VecDense {
	return mat.NewVecDense(ObservationDims, []float64{
		p.position.X,
		p.position.Y,
	})
}

// observation returns the position clamped to the observation bounds
func (p *PointMass) observation() *mat.VecDense {
	obs := []float64{p.position.X, p.position.Y}
	high := p.ObservationHigh()
	floatutils.ClipSlice(obs, -high, high)

	return mat.NewVecDense(ObservationDims, obs)
}
