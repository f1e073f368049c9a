// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either a
// first environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended. Only TimeSteps with StepType
// Last carry a meaningful EndType.
type EndType int

const (
	// Unknown is the EndType of every TimeStep that did not end an
	// episode
	Unknown EndType = iota

	// Timeout denotes an episode that was cut off by a step limit
	Timeout

	// OutOfBounds denotes an episode ended because the underlying
	// state left the legal region of the environment
	OutOfBounds

	// TerminalStateReached denotes an episode ended in a terminal
	// (goal) state
	TerminalStateReached
)

func (e EndType) String() string {
	switch e {
	case Timeout:
		return "Timeout"
	case OutOfBounds:
		return "OutOfBounds"
	case TerminalStateReached:
		return "TerminalStateReached"
	default:
		return "Unknown"
	}
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation *mat.VecDense
	Number      int

	endType EndType
}

// New returns a new TimeStep with step type t, reward r, discount d,
// observation o, and timestep number n.
func New(t StepType, r, d float64, o *mat.VecDense, n int) TimeStep {
	return TimeStep{
		StepType:    t,
		Reward:      r,
		Discount:    d,
		Observation: o,
		Number:      n,
		endType:     Unknown,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd records why the episode ended on this TimeStep
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns why the episode ended on this TimeStep. If the
// TimeStep is not the last in its episode, Unknown is returned.
func (t TimeStep) EndType() EndType {
	if !t.Last() {
		return Unknown
	}
	return t.endType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v"
	str = fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Number)

	if t.Observation != nil {
		str += fmt.Sprintf("  |  Observation: %v",
			mat.Formatted(t.Observation.T(), mat.Squeeze()))
	}
	if t.Last() {
		str += fmt.Sprintf("  |  End: %v", t.EndType())
	}

	return str
}
